package responder

import (
	"log/slog"
	"net/http"
)

const (
	jsonContentType = "application/json"
	textContentType = "text/plain"
)

// ErrorClassifierFunc inspects an error and returns the HTTP status that should
// be used for the response. The boolean indicates whether the error was
// classified and prevents the generic internal server handler from running.
type ErrorClassifierFunc func(err error) (status int, handled bool)

// ResponderOption follows the functional options pattern used by NewResponder
// to configure optional collaborators.
type ResponderOption func(*Responder)

type statusMeta struct {
	message  string
	logLevel slog.Level
	logMsg   string
}

// StatusMetadata allows callers to customise how particular HTTP status codes
// are logged and which message error envelopes carry for them.
type StatusMetadata struct {
	Message  string
	LogLevel slog.Level
	LogMsg   string
}

// Responder writes Respondable values to net/http and logs every error
// envelope it emits. The zero value is not usable; call NewResponder.
type Responder struct {
	log             *slog.Logger
	statusMetadata  map[int]statusMeta
	messages        Messages
	errorClassifier ErrorClassifierFunc
	traceID         TraceIDFunc
}

// NewResponder constructs a Responder with default status metadata, the
// English message catalog, and the global slog logger.
func NewResponder(opts ...ResponderOption) *Responder {
	r := &Responder{
		log:            slog.Default(),
		statusMetadata: defaultStatusMetadata(),
		messages:       DefaultMessages(),
		traceID:        newTraceID,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// WithLogger injects a custom slog logger.
func WithLogger(logger *slog.Logger) ResponderOption {
	return func(r *Responder) {
		if logger != nil {
			r.log = logger
		}
	}
}

// WithErrorClassifier installs a classifier used by HandleErrors to derive the
// HTTP status code from returned errors.
func WithErrorClassifier(classifier ErrorClassifierFunc) ResponderOption {
	return func(r *Responder) {
		r.errorClassifier = classifier
	}
}

// WithMessages replaces the catalog used for envelope messages when no status
// metadata overrides them.
func WithMessages(catalog Messages) ResponderOption {
	return func(r *Responder) {
		r.messages = catalog
	}
}

// WithTraceIDGenerator replaces the generator used for envelopes built by the
// Handle* helpers, NewError and NewTraceID.
func WithTraceIDGenerator(gen TraceIDFunc) ResponderOption {
	return func(r *Responder) {
		if gen != nil {
			r.traceID = gen
		}
	}
}

// WithStatusMetadata overrides the message and log settings used for a
// specific HTTP status code.
func WithStatusMetadata(status int, meta StatusMetadata) ResponderOption {
	return func(r *Responder) {
		if r.statusMetadata == nil {
			r.statusMetadata = make(map[int]statusMeta)
		}
		r.statusMetadata[status] = statusMeta{
			message:  meta.Message,
			logLevel: meta.LogLevel,
			logMsg:   meta.LogMsg,
		}
	}
}

// Logger returns the slog logger used internally by the responder.
func (r *Responder) Logger() *slog.Logger {
	return r.logger()
}

func (r *Responder) logger() *slog.Logger {
	if r == nil || r.log == nil {
		return slog.Default()
	}
	return r.log
}

func (r *Responder) classifyError(err error) (int, bool) {
	if r.errorClassifier == nil {
		return 0, false
	}
	return r.errorClassifier(err)
}

// NewTraceID returns an id from the generator installed with
// WithTraceIDGenerator, or an eight character hex id by default.
func (r *Responder) NewTraceID() string {
	if r.traceID == nil {
		return newTraceID()
	}
	return r.traceID()
}

func (r *Responder) statusMetaFor(status int) statusMeta {
	meta := r.statusMetadata[status]
	if meta.logLevel == 0 {
		meta.logLevel = defaultLogLevel(status)
	}
	if meta.message == "" {
		meta.message = r.defaultMessage(status)
	}
	if meta.logMsg == "" {
		meta.logMsg = meta.message
	}
	return meta
}

func (r *Responder) defaultMessage(status int) string {
	if msg, ok := r.messages.lookup(codeFromStatus(status)); ok {
		return msg
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return r.messages.Unknown
}

// defaultLogLevel reports client errors as warnings. slog.LevelInfo is the
// zero level, so an explicit Info override is indistinguishable from unset.
func defaultLogLevel(status int) slog.Level {
	if status >= 400 && status < 500 {
		return slog.LevelWarn
	}
	return slog.LevelError
}

func defaultStatusMetadata() map[int]statusMeta {
	return map[int]statusMeta{
		http.StatusInternalServerError: {logLevel: slog.LevelError, logMsg: "Internal Server Error"},
		http.StatusServiceUnavailable:  {logLevel: slog.LevelError, logMsg: "Service Unavailable"},
		http.StatusBadRequest:          {logLevel: slog.LevelWarn, logMsg: "Bad Request"},
		http.StatusUnauthorized:        {logLevel: slog.LevelWarn, logMsg: "Unauthorized"},
		http.StatusForbidden:           {logLevel: slog.LevelWarn, logMsg: "Forbidden"},
		http.StatusNotFound:            {logLevel: slog.LevelWarn, logMsg: "Not Found"},
	}
}

func codeFromStatus(status int) uint16 {
	if status < 0 || status > 0xFFFF {
		return http.StatusInternalServerError
	}
	return uint16(status)
}
