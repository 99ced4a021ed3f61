package responder

import (
	"net/http"

	"github.com/drblury/respweaver/jsonutil"
)

// Response is a fully constructed HTTP response. It is produced by
// Respondable values and copied onto an http.ResponseWriter by Write.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Respondable is implemented by every value that knows how to turn itself
// into an HTTP response for a given request. RespondTo never fails: encoding
// problems are absorbed into a degraded but valid response.
type Respondable interface {
	RespondTo(req *http.Request) *Response
}

// Write copies the response onto w. Header names present on the response
// replace any values already staged on w.
func (resp *Response) Write(w http.ResponseWriter) error {
	dst := w.Header()
	for name, values := range resp.Header {
		dst[name] = append([]string(nil), values...)
	}
	w.WriteHeader(resp.Status)
	if len(resp.Body) == 0 {
		return nil
	}
	_, err := w.Write(resp.Body)
	return err
}

func newResponse(status int, contentType string, body []byte) *Response {
	header := make(http.Header)
	header.Set("Content-Type", contentType)
	return &Response{
		Status: status,
		Header: header,
		Body:   body,
	}
}

func encodeBody(v any) ([]byte, error) {
	return jsonutil.Marshal(v)
}

// degradedResponse is emitted by decorators whose payload could not be
// encoded. The body carries the encoder's message verbatim.
func degradedResponse(err error) *Response {
	return newResponse(http.StatusInternalServerError, textContentType, []byte(err.Error()))
}

// statusOr returns code when net/http would accept it for WriteHeader and
// fallback otherwise.
func statusOr(code, fallback int) int {
	if code < 100 || code > 999 {
		return fallback
	}
	return code
}
