package info

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/drblury/respweaver/apischema"
)

func TestInfoHandler_GetStatus(t *testing.T) {
	handler := newQuietInfoHandler()
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rr := httptest.NewRecorder()

	handler.GetStatus(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	payload := decodeProbePayload(t, rr.Body.Bytes())
	if payload.Status != "HEALTHY" {
		t.Fatalf("expected status HEALTHY, got %s", payload.Status)
	}
}

func TestInfoHandler_GetHealthz(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler := newQuietInfoHandler(WithLivenessChecks(func(context.Context) error { return nil }))
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rr := httptest.NewRecorder()

		handler.GetHealthz(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
		}
		if got := rr.Header().Get("Cache-Control"); got != "no-store" {
			t.Fatalf("expected Cache-Control no-store, got %q", got)
		}

		payload := decodeProbePayload(t, rr.Body.Bytes())
		if payload.Status != "ok" {
			t.Fatalf("expected status ok, got %s", payload.Status)
		}
	})

	t.Run("failure propagates probe error", func(t *testing.T) {
		sentinel := errors.New("db down")
		handler := newQuietInfoHandler(WithLivenessChecks(func(context.Context) error { return sentinel }))
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rr := httptest.NewRecorder()

		handler.GetHealthz(rr, req)

		if rr.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, rr.Code)
		}

		apiErr := decodeAPIError(t, rr.Body.Bytes())
		if apiErr.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected envelope code %d, got %d", http.StatusServiceUnavailable, apiErr.Code)
		}
		details, _ := apiErr.Details.(string)
		if !strings.Contains(details, sentinel.Error()) {
			t.Fatalf("expected details to include %q, got %q", sentinel.Error(), details)
		}
		if apiErr.TraceID == "" || rr.Header().Get("X-Trace-Id") != apiErr.TraceID {
			t.Fatalf("expected trace id in header and body, got %q / %q", rr.Header().Get("X-Trace-Id"), apiErr.TraceID)
		}
	})
}

func TestInfoHandler_GetReadyz(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler := newQuietInfoHandler(WithReadinessChecks(func(context.Context) error { return nil }))
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		rr := httptest.NewRecorder()

		handler.GetReadyz(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
		}

		payload := decodeProbePayload(t, rr.Body.Bytes())
		if payload.Status != "ready" {
			t.Fatalf("expected status ready, got %s", payload.Status)
		}
	})

	t.Run("failure propagates probe error", func(t *testing.T) {
		sentinel := errors.New("cache warming")
		handler := newQuietInfoHandler(WithReadinessChecks(func(context.Context) error { return sentinel }))
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		rr := httptest.NewRecorder()

		handler.GetReadyz(rr, req)

		if rr.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, rr.Code)
		}

		apiErr := decodeAPIError(t, rr.Body.Bytes())
		details, _ := apiErr.Details.(string)
		if !strings.Contains(details, sentinel.Error()) {
			t.Fatalf("expected details to include %q, got %q", sentinel.Error(), details)
		}
	})
}

func TestInfoHandler_GetVersion(t *testing.T) {
	t.Run("uses configured provider", func(t *testing.T) {
		handler := newQuietInfoHandler(WithInfoProvider(func() any {
			return map[string]string{"commit": "abc123"}
		}))
		req := httptest.NewRequest(http.MethodGet, "/version", nil)
		rr := httptest.NewRecorder()

		handler.GetVersion(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
		}

		var payload map[string]string
		if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
			t.Fatalf("failed to decode version payload: %v", err)
		}
		if payload["commit"] != "abc123" {
			t.Fatalf("expected commit abc123, got %s", payload["commit"])
		}
	})

	t.Run("falls back to empty map when provider returns nil", func(t *testing.T) {
		handler := newQuietInfoHandler(WithInfoProvider(func() any { return nil }))
		req := httptest.NewRequest(http.MethodGet, "/version", nil)
		rr := httptest.NewRecorder()

		handler.GetVersion(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
		}
		if got := strings.TrimSpace(rr.Body.String()); got != "{}" {
			t.Fatalf("expected empty payload, got %s", got)
		}
	})
}

func TestInfoHandler_GetOpenAPIJSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		expected := `{"openapi":"3.0.0"}`
		handler := newQuietInfoHandler(WithSwaggerProvider(func(context.Context) ([]byte, error) {
			return []byte(expected), nil
		}))
		req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
		rr := httptest.NewRecorder()

		handler.GetOpenAPIJSON(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
		}
		if got := rr.Header().Get("Content-Type"); got != "application/json" {
			t.Fatalf("expected Content-Type application/json, got %s", got)
		}
		if rr.Body.String() != expected {
			t.Fatalf("expected body %s, got %s", expected, rr.Body.String())
		}
	})

	t.Run("serves the envelope schema document", func(t *testing.T) {
		handler := newQuietInfoHandler(WithSwaggerProvider(func(ctx context.Context) ([]byte, error) {
			return apischema.Document(ctx, "Demo", "1.0.0")
		}))
		req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
		rr := httptest.NewRecorder()

		handler.GetOpenAPIJSON(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d (body: %s)", http.StatusOK, rr.Code, rr.Body.String())
		}
		if !strings.Contains(rr.Body.String(), `"`+apischema.Name+`"`) {
			t.Fatalf("expected %s schema in document, got %s", apischema.Name, rr.Body.String())
		}
	})

	t.Run("provider error is surfaced", func(t *testing.T) {
		sentinel := errors.New("missing document")
		handler := newQuietInfoHandler(WithSwaggerProvider(func(context.Context) ([]byte, error) {
			return nil, sentinel
		}))
		req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
		rr := httptest.NewRecorder()

		handler.GetOpenAPIJSON(rr, req)

		if rr.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
		}
		apiErr := decodeAPIError(t, rr.Body.Bytes())
		details, _ := apiErr.Details.(string)
		if !strings.Contains(details, sentinel.Error()) {
			t.Fatalf("expected details to include %q, got %q", sentinel.Error(), details)
		}
	})

	t.Run("default provider is not configured", func(t *testing.T) {
		handler := newQuietInfoHandler()
		rr := httptest.NewRecorder()

		handler.GetOpenAPIJSON(rr, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

		if rr.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
		}
	})

	t.Run("malformed document degrades", func(t *testing.T) {
		handler := newQuietInfoHandler(WithSwaggerProvider(func(context.Context) ([]byte, error) {
			return []byte(`{"openapi":`), nil
		}))
		rr := httptest.NewRecorder()

		handler.GetOpenAPIJSON(rr, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

		if rr.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
		}
		if got := rr.Header().Get("Content-Type"); got != "text/plain" {
			t.Fatalf("expected text/plain, got %q", got)
		}
	})
}
