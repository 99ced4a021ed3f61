package responder

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type failingPayload struct{}

func (failingPayload) MarshalJSON() ([]byte, error) {
	return nil, errors.New("refusing to encode payload")
}

func newRequest() *http.Request {
	return httptest.NewRequest(http.MethodGet, "/resource", nil)
}

// objectKeys returns the top-level keys of a JSON object in wire order.
func objectKeys(t *testing.T, body []byte) []string {
	t.Helper()

	dec := json.NewDecoder(bytes.NewReader(body))
	tok, err := dec.Token()
	if err != nil {
		t.Fatalf("failed to read opening token: %v (body: %s)", err, body)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		t.Fatalf("expected JSON object, got %v (body: %s)", tok, body)
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			t.Fatalf("failed to read key: %v", err)
		}
		keys = append(keys, tok.(string))

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			t.Fatalf("failed to skip value for %v: %v", tok, err)
		}
	}
	return keys
}

func decodeObject(t *testing.T, body []byte) map[string]json.RawMessage {
	t.Helper()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		t.Fatalf("failed to decode body: %v (body: %s)", err, body)
	}
	return fields
}
