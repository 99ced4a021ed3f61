package responder

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/http/httpguts"

	"github.com/drblury/respweaver/jsonutil"
)

const (
	traceIDHeader       = "X-Trace-Id"
	fallbackMessage     = "Failed to process error response"
	fallbackStatusCode  = http.StatusInternalServerError
	unknownTraceDisplay = "unknown"
)

// APIError is the failure envelope returned to API clients. It is a value
// type: builder methods return modified copies and never touch the receiver.
//
// On the wire it is always a JSON object with the keys success, message,
// code, details, data, trace_id and timestamp in that order. Absent optional
// values are encoded as null rather than omitted.
type APIError struct {
	Message string
	// Code carries an HTTP status. Codes net/http would reject are replaced
	// by 500 when the response is emitted; the body keeps the original.
	Code    uint16
	Details any
	Data    any
	// TraceID is empty when no correlation id has been attached. Ids that
	// cannot travel in an HTTP header are treated as absent.
	TraceID string
	// Timestamp holds seconds since the Unix epoch at construction.
	Timestamp uint64

	cause error
	// not comparable: Details and Data may hold maps
	_ [0]func()
}

type apiErrorWire struct {
	Success   bool    `json:"success"`
	Message   string  `json:"message"`
	Code      uint16  `json:"code"`
	Details   any     `json:"details"`
	Data      any     `json:"data"`
	TraceID   *string `json:"trace_id"`
	Timestamp uint64  `json:"timestamp"`
}

var errSuccessEnvelope = errors.New("responder: error envelope must have success=false")

var (
	_ error       = APIError{}
	_ Respondable = APIError{}
)

// New builds an APIError with the given code and message.
func New(code uint16, message string) APIError {
	return APIError{
		Message:   message,
		Code:      code,
		Timestamp: unixSeconds(time.Now()),
	}
}

// BadRequest reports a 400.
func BadRequest(message string) APIError { return New(http.StatusBadRequest, message) }

// Unauthorized reports a 401.
func Unauthorized(message string) APIError { return New(http.StatusUnauthorized, message) }

// Forbidden reports a 403.
func Forbidden(message string) APIError { return New(http.StatusForbidden, message) }

// NotFound reports a 404.
func NotFound(message string) APIError { return New(http.StatusNotFound, message) }

// InternalError reports a 500.
func InternalError(message string) APIError { return New(http.StatusInternalServerError, message) }

// ServiceUnavailable reports a 503.
func ServiceUnavailable(message string) APIError {
	return New(http.StatusServiceUnavailable, message)
}

// FromStatusCode builds an APIError whose message comes from DefaultMessages.
func FromStatusCode(code uint16) APIError {
	return FromStatusCodeWith(code, DefaultMessages())
}

// FromStatusCodeWith builds an APIError whose message comes from catalog.
func FromStatusCodeWith(code uint16, catalog Messages) APIError {
	return New(code, catalog.For(code))
}

// FromError wraps err. The error text becomes the details, a fresh trace id
// is attached, and err stays reachable through errors.Is and errors.As.
func FromError(code uint16, err error) APIError {
	msg := http.StatusText(int(code))
	if msg == "" {
		msg = DefaultMessages().Unknown
	}
	e := New(code, msg)
	if err != nil {
		e.Details = err.Error()
		e.cause = err
	}
	return e.WithTrace()
}

// WithDetails sets the details to the given text.
func (e APIError) WithDetails(details string) APIError {
	e.Details = details
	return e
}

// WithoutDetails clears the details.
func (e APIError) WithoutDetails() APIError {
	e.Details = nil
	return e
}

// WithData attaches v in its generic JSON form. A nil v clears the data, and
// so does a value that cannot be encoded: the envelope must always build.
func (e APIError) WithData(v any) APIError {
	if v == nil {
		e.Data = nil
		return e
	}
	value, err := jsonutil.ToValue(v)
	if err != nil {
		e.Data = nil
		return e
	}
	e.Data = value
	return e
}

// WithTrace attaches a freshly generated eight character hex trace id,
// replacing any previous one. Use WithTraceID with Responder.NewTraceID to
// honour a configured generator.
func (e APIError) WithTrace() APIError {
	e.TraceID = newTraceID()
	return e
}

// WithTraceID attaches id as the trace id. An empty id clears it, and so
// does one that is not a valid header value.
func (e APIError) WithTraceID(id string) APIError {
	if !validTraceID(id) {
		id = ""
	}
	e.TraceID = id
	return e
}

// Success always reports false.
func (e APIError) Success() bool { return false }

// Error returns the diagnostic form of the envelope.
func (e APIError) Error() string {
	trace := e.TraceID
	if trace == "" {
		trace = unknownTraceDisplay
	}
	return fmt.Sprintf("%s (code: %d, trace_id: %s)", e.Message, e.Code, trace)
}

// Unwrap returns the error passed to FromError, if any.
func (e APIError) Unwrap() error { return e.cause }

// MarshalJSON encodes the fixed seven-key envelope.
func (e APIError) MarshalJSON() ([]byte, error) {
	return jsonutil.Marshal(e.wire())
}

// UnmarshalJSON decodes an envelope produced by MarshalJSON. Numbers inside
// details and data are kept as json.Number. An envelope claiming success is
// rejected.
func (e *APIError) UnmarshalJSON(data []byte) error {
	var wire apiErrorWire
	if err := jsonutil.UnmarshalNumbers(data, &wire); err != nil {
		return err
	}
	if wire.Success {
		return errSuccessEnvelope
	}
	*e = APIError{
		Message:   wire.Message,
		Code:      wire.Code,
		Details:   wire.Details,
		Data:      wire.Data,
		Timestamp: wire.Timestamp,
	}
	if wire.TraceID != nil {
		e.TraceID = *wire.TraceID
	}
	return nil
}

// RespondTo renders the envelope as application/json. The status is Code when
// valid and 500 otherwise. When the envelope itself cannot be encoded a
// minimal fallback envelope carrying the encoder error is sent instead.
func (e APIError) RespondTo(_ *http.Request) *Response {
	var resp *Response
	body, err := jsonutil.Marshal(e)
	if err != nil {
		resp = newResponse(fallbackStatusCode, jsonContentType, fallbackEnvelope(err))
	} else {
		resp = newResponse(statusOr(int(e.Code), fallbackStatusCode), jsonContentType, body)
	}
	if validTraceID(e.TraceID) {
		resp.Header.Add(traceIDHeader, e.TraceID)
	}
	return resp
}

func (e APIError) wire() apiErrorWire {
	wire := apiErrorWire{
		Message:   e.Message,
		Code:      e.Code,
		Details:   e.Details,
		Data:      e.Data,
		Timestamp: e.Timestamp,
	}
	if validTraceID(e.TraceID) {
		trace := e.TraceID
		wire.TraceID = &trace
	}
	return wire
}

func fallbackEnvelope(cause error) []byte {
	wire := apiErrorWire{
		Message:   fallbackMessage,
		Code:      fallbackStatusCode,
		Details:   cause.Error(),
		Timestamp: unixSeconds(time.Now()),
	}
	body, err := jsonutil.Marshal(wire)
	if err != nil {
		return fmt.Appendf(nil, `{"success":false,"message":%q,"code":%d,"details":null,"data":null,"trace_id":null,"timestamp":%d}`,
			fallbackMessage, fallbackStatusCode, wire.Timestamp)
	}
	return body
}

// validTraceID reports whether id can be sent both in the body and as the
// X-Trace-Id header. Surrounding whitespace would be stripped in transit.
func validTraceID(id string) bool {
	return id != "" && strings.TrimSpace(id) == id && httpguts.ValidHeaderFieldValue(id)
}

// unixSeconds clamps instants before the epoch to zero.
func unixSeconds(t time.Time) uint64 {
	secs := t.Unix()
	if secs < 0 {
		return 0
	}
	return uint64(secs)
}
