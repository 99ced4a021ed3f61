package responder

import "net/http"

// ContentFormat is the wire format selected for a response body.
type ContentFormat int

const (
	FormatJSON ContentFormat = iota
	FormatText
)

func (f ContentFormat) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// negotiate is the format selector used by WithStatus.
var negotiate = Negotiate

// Negotiate picks the body format for req. It currently always selects JSON;
// callers must still produce a valid response for either format.
func Negotiate(_ *http.Request) ContentFormat {
	return FormatJSON
}
