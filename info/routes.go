package info

import (
	"encoding/json"
	"net/http"

	"github.com/drblury/respweaver/responder"
)

// GetStatus returns a simple health payload that can be used for lightweight diagnostics.
func (ih *InfoHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ih.Respond(w, r, responder.Of(newProbePayload("HEALTHY")))
}

// GetHealthz implements the liveness probe recommended for Kubernetes.
func (ih *InfoHandler) GetHealthz(w http.ResponseWriter, r *http.Request) {
	ih.respondProbe(w, r, ih.livenessChecks, "ok")
}

// GetReadyz implements the readiness probe recommended for Kubernetes.
func (ih *InfoHandler) GetReadyz(w http.ResponseWriter, r *http.Request) {
	ih.respondProbe(w, r, ih.readinessChecks, "ready")
}

// GetVersion returns the structure provided by the configured InfoProvider.
func (ih *InfoHandler) GetVersion(w http.ResponseWriter, r *http.Request) {
	payload := ih.infoProvider()
	if payload == nil {
		payload = map[string]string{}
	}
	ih.Respond(w, r, responder.Of(payload).WithHeader("Cache-Control", "no-store"))
}

// GetOpenAPIJSON serves the configured OpenAPI document.
func (ih *InfoHandler) GetOpenAPIJSON(w http.ResponseWriter, r *http.Request) {
	doc, err := ih.swaggerProvider(r.Context())
	if err != nil {
		ih.HandleInternalServerError(w, r, err, "failed to load swagger spec")
		return
	}
	ih.Respond(w, r, responder.Of(json.RawMessage(doc)).WithContentType("application/json"))
}
