package responder

import (
	"net/http"
	"slices"

	"golang.org/x/net/http/httpguts"
)

// HeaderField is a single response header staged by a decorator.
type HeaderField struct {
	Name  string
	Value string
}

func (f HeaderField) valid() bool {
	return httpguts.ValidHeaderFieldName(f.Name) && httpguts.ValidHeaderFieldValue(f.Value)
}

// appendHeader never writes into the backing array of fields, so earlier
// links of a chain keep their own header list.
func appendHeader(fields []HeaderField, name, value string) []HeaderField {
	return append(slices.Clip(fields), HeaderField{Name: name, Value: value})
}

// Payload lifts any JSON-encodable value into the decorator chain.
type Payload[T any] struct {
	inner T
}

// Of starts a decorator chain for v.
func Of[T any](v T) Payload[T] {
	return Payload[T]{inner: v}
}

// Inner returns the wrapped value.
func (p Payload[T]) Inner() T { return p.inner }

// WithHeader stages a response header.
func (p Payload[T]) WithHeader(name, value string) WithHeader[T] {
	return WithHeader[T]{inner: p.inner, headers: appendHeader(nil, name, value)}
}

// WithStatus sets the response status.
func (p Payload[T]) WithStatus(code int) WithStatus[T] {
	return WithStatus[T]{inner: p.inner, status: code}
}

// WithContentType overrides the Content-Type header.
func (p Payload[T]) WithContentType(contentType string) WithContentType[T] {
	return WithContentType[T]{inner: p.inner, contentType: contentType}
}

// RespondTo renders the payload as a 200 JSON response.
func (p Payload[T]) RespondTo(_ *http.Request) *Response {
	body, err := encodeBody(p.inner)
	if err != nil {
		return degradedResponse(err)
	}
	return newResponse(http.StatusOK, jsonContentType, body)
}

// WithHeader wraps a payload together with an ordered list of headers. Only
// headers with a valid name and value reach the response; the rest are
// dropped silently.
type WithHeader[T any] struct {
	inner   T
	headers []HeaderField
}

// Inner returns the wrapped value.
func (h WithHeader[T]) Inner() T { return h.inner }

// Headers returns a copy of the staged headers in insertion order.
func (h WithHeader[T]) Headers() []HeaderField { return slices.Clone(h.headers) }

// WithHeader stages another header after the existing ones.
func (h WithHeader[T]) WithHeader(name, value string) WithHeader[T] {
	h.headers = appendHeader(h.headers, name, value)
	return h
}

// WithStatus carries the staged headers into a status decorator.
func (h WithHeader[T]) WithStatus(code int) WithStatus[T] {
	return WithStatus[T]{inner: h.inner, status: code, headers: h.headers}
}

// WithContentType carries the staged headers into a content type decorator.
func (h WithHeader[T]) WithContentType(contentType string) WithContentType[T] {
	return WithContentType[T]{inner: h.inner, contentType: contentType, headers: h.headers}
}

// RespondTo renders the payload as a 200 JSON response carrying every valid
// staged header.
func (h WithHeader[T]) RespondTo(_ *http.Request) *Response {
	body, err := encodeBody(h.inner)
	if err != nil {
		return degradedResponse(err)
	}
	resp := newResponse(http.StatusOK, jsonContentType, body)
	for _, field := range h.headers {
		if !field.valid() {
			continue
		}
		resp.Header.Add(field.Name, field.Value)
	}
	return resp
}

// WithStatus wraps a payload with an explicit status code. Codes net/http
// would reject fall back to 200. Staged headers are appended as given.
type WithStatus[T any] struct {
	inner   T
	status  int
	headers []HeaderField
}

// Inner returns the wrapped value.
func (s WithStatus[T]) Inner() T { return s.inner }

// Status returns the configured status code.
func (s WithStatus[T]) Status() int { return s.status }

// Headers returns a copy of the staged headers in insertion order.
func (s WithStatus[T]) Headers() []HeaderField { return slices.Clone(s.headers) }

// WithHeader stages another header after the existing ones.
func (s WithStatus[T]) WithHeader(name, value string) WithStatus[T] {
	s.headers = appendHeader(s.headers, name, value)
	return s
}

// WithStatus replaces the status code.
func (s WithStatus[T]) WithStatus(code int) WithStatus[T] {
	s.status = code
	return s
}

// WithContentType carries the staged headers into a content type decorator.
// The status is not carried over.
func (s WithStatus[T]) WithContentType(contentType string) WithContentType[T] {
	return WithContentType[T]{inner: s.inner, contentType: contentType, headers: s.headers}
}

// RespondTo renders the payload with the configured status. The body is JSON
// text; its Content-Type follows the negotiated format.
func (s WithStatus[T]) RespondTo(req *http.Request) *Response {
	contentType := jsonContentType
	if negotiate(req) == FormatText {
		contentType = textContentType
	}

	body, err := encodeBody(s.inner)
	if err != nil {
		return degradedResponse(err)
	}
	resp := newResponse(statusOr(s.status, http.StatusOK), contentType, body)
	for _, field := range s.headers {
		resp.Header.Add(field.Name, field.Value)
	}
	return resp
}

// WithContentType wraps a payload with a caller chosen Content-Type. The body
// is still the JSON encoding of the payload.
type WithContentType[T any] struct {
	inner       T
	contentType string
	headers     []HeaderField
}

// Inner returns the wrapped value.
func (c WithContentType[T]) Inner() T { return c.inner }

// ContentType returns the configured Content-Type.
func (c WithContentType[T]) ContentType() string { return c.contentType }

// Headers returns a copy of the staged headers in insertion order.
func (c WithContentType[T]) Headers() []HeaderField { return slices.Clone(c.headers) }

// WithHeader stages another header after the existing ones.
func (c WithContentType[T]) WithHeader(name, value string) WithContentType[T] {
	c.headers = appendHeader(c.headers, name, value)
	return c
}

// WithContentType replaces the Content-Type.
func (c WithContentType[T]) WithContentType(contentType string) WithContentType[T] {
	c.contentType = contentType
	return c
}

// RespondTo renders the payload as a 200 response under the configured
// Content-Type.
func (c WithContentType[T]) RespondTo(_ *http.Request) *Response {
	body, err := encodeBody(c.inner)
	if err != nil {
		return degradedResponse(err)
	}
	resp := newResponse(http.StatusOK, c.contentType, body)
	for _, field := range c.headers {
		resp.Header.Add(field.Name, field.Value)
	}
	return resp
}

var (
	_ Respondable = Payload[any]{}
	_ Respondable = WithHeader[any]{}
	_ Respondable = WithStatus[any]{}
	_ Respondable = WithContentType[any]{}
)
