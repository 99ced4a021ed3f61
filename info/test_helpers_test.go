package info

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/drblury/respweaver/responder"
)

func quietResponder() *responder.Responder {
	return responder.NewResponder(responder.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func newQuietInfoHandler(opts ...InfoOption) *InfoHandler {
	return NewInfoHandler(append([]InfoOption{WithInfoResponder(quietResponder())}, opts...)...)
}

func decodeProbePayload(t *testing.T, body []byte) probePayload {
	t.Helper()

	var payload probePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("failed to decode probe payload: %v (body: %s)", err, string(body))
	}
	return payload
}

func decodeAPIError(t *testing.T, body []byte) responder.APIError {
	t.Helper()

	var apiErr responder.APIError
	if err := json.Unmarshal(body, &apiErr); err != nil {
		t.Fatalf("failed to decode error envelope: %v (body: %s)", err, string(body))
	}
	return apiErr
}
