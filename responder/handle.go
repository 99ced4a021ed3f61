package responder

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
)

// HandlerFunc computes the response for a request.
type HandlerFunc func(req *http.Request) Respondable

// Handler adapts fn to net/http, writing whatever it returns via Respond.
func (r *Responder) Handler(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if fn == nil {
			r.HandleInternalServerError(w, req, errors.New("responder: nil handler"))
			return
		}
		r.Respond(w, req, fn(req))
	})
}

// Respond renders v and writes it to w. Error envelopes are logged at the
// level configured for their status; decorator responses are logged only when
// they degraded to a 5xx.
func (r *Responder) Respond(w http.ResponseWriter, req *http.Request, v Respondable) {
	if w == nil {
		return
	}
	if p, ok := v.(*APIError); ok {
		if p == nil {
			v = nil
		} else {
			v = *p
		}
	}
	if v == nil {
		v = r.errorFor(http.StatusInternalServerError, errors.New("handler returned no response"))
	}

	resp := v.RespondTo(req)
	if resp == nil {
		resp = r.errorFor(http.StatusInternalServerError, errors.New("response renderer returned nil")).RespondTo(req)
	}

	if apiErr, ok := v.(APIError); ok {
		r.logAPIError(req, apiErr, resp.Status, nil)
	} else if resp.Status >= http.StatusInternalServerError {
		r.logger().Log(requestContext(req), slog.LevelError, "degraded response", "status", resp.Status, "body", string(resp.Body))
	}

	r.writeResponse(w, resp)
}

// HandleAPIError renders an envelope for the supplied HTTP status and error,
// and logs it using the configured logger.
func (r *Responder) HandleAPIError(w http.ResponseWriter, req *http.Request, status int, err error, logMsg ...string) {
	if err == nil {
		return
	}

	apiErr := r.errorFor(status, err)
	r.logAPIError(req, apiErr, statusOr(status, http.StatusInternalServerError), logMsg)
	r.writeResponse(w, apiErr.RespondTo(req))
}

// HandleInternalServerError is a shortcut that reports a 500 status code.
func (r *Responder) HandleInternalServerError(w http.ResponseWriter, req *http.Request, err error, logMsg ...string) {
	r.HandleAPIError(w, req, http.StatusInternalServerError, err, logMsg...)
}

// HandleBadRequestError reports client validation errors using HTTP 400.
func (r *Responder) HandleBadRequestError(w http.ResponseWriter, req *http.Request, err error, logMsg ...string) {
	r.HandleAPIError(w, req, http.StatusBadRequest, err, logMsg...)
}

// HandleUnauthorizedError reports authentication failures using HTTP 401.
func (r *Responder) HandleUnauthorizedError(w http.ResponseWriter, req *http.Request, err error, logMsg ...string) {
	r.HandleAPIError(w, req, http.StatusUnauthorized, err, logMsg...)
}

// HandleForbiddenError reports authorization failures using HTTP 403.
func (r *Responder) HandleForbiddenError(w http.ResponseWriter, req *http.Request, err error, logMsg ...string) {
	r.HandleAPIError(w, req, http.StatusForbidden, err, logMsg...)
}

// HandleNotFoundError reports missing resources using HTTP 404.
func (r *Responder) HandleNotFoundError(w http.ResponseWriter, req *http.Request, err error, logMsg ...string) {
	r.HandleAPIError(w, req, http.StatusNotFound, err, logMsg...)
}

// HandleServiceUnavailableError reports unavailable dependencies using HTTP 503.
func (r *Responder) HandleServiceUnavailableError(w http.ResponseWriter, req *http.Request, err error, logMsg ...string) {
	r.HandleAPIError(w, req, http.StatusServiceUnavailable, err, logMsg...)
}

// RespondWithJSON serialises the provided value and writes it to the response
// using the supplied status code.
func (r *Responder) RespondWithJSON(w http.ResponseWriter, req *http.Request, status int, v any) {
	r.Respond(w, req, Of(v).WithStatus(status))
}

// HandleErrors writes err as an error envelope. APIError values anywhere in
// the chain are sent as they are; other errors go through the classifier and
// default to a 500.
func (r *Responder) HandleErrors(w http.ResponseWriter, req *http.Request, err error, msgs ...string) {
	if err == nil {
		return
	}

	var apiErr APIError
	var apiErrPtr *APIError
	found := errors.As(err, &apiErr)
	if !found && errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		apiErr, found = *apiErrPtr, true
	}
	if found {
		r.logAPIError(req, apiErr, statusOr(int(apiErr.Code), http.StatusInternalServerError), msgs)
		r.writeResponse(w, apiErr.RespondTo(req))
		return
	}

	if status, handled := r.classifyError(err); handled {
		r.HandleAPIError(w, req, status, err, msgs...)
		return
	}

	r.HandleInternalServerError(w, req, err, msgs...)
}

// NewError builds an envelope for status using the responder's messages and
// trace id generator. The error text, if any, becomes the details.
func (r *Responder) NewError(status int, err error) APIError {
	return r.errorFor(status, err)
}

func (r *Responder) errorFor(status int, err error) APIError {
	meta := r.statusMetaFor(status)
	apiErr := New(codeFromStatus(status), meta.message).WithTraceID(r.NewTraceID())
	if err != nil {
		apiErr.Details = err.Error()
		apiErr.cause = err
	}
	return apiErr
}

func (r *Responder) logAPIError(req *http.Request, apiErr APIError, status int, msgs []string) {
	meta := r.statusMetaFor(status)
	logger := r.logger().With("code", apiErr.Code, "status", status, "traceId", apiErr.TraceID)
	if details, ok := apiErr.Details.(string); ok && details != "" {
		logger = logger.With("error", details)
	}
	if len(msgs) > 0 {
		logger = logger.With("logMessages", msgs)
	}
	logger.Log(requestContext(req), meta.logLevel, meta.logMsg)
}

func (r *Responder) writeResponse(w http.ResponseWriter, resp *Response) {
	if w == nil || resp == nil {
		return
	}
	if err := resp.Write(w); err != nil {
		r.logger().Error("failed to write response", "error", err)
	}
}

func requestContext(req *http.Request) context.Context {
	if req == nil {
		return context.Background()
	}
	return req.Context()
}
