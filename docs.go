// Package respweaver bundles small HTTP helpers for services that answer
// with a uniform JSON envelope. Pull in only the packages you need; the
// root package holds documentation only.
//
// The responder package owns the ApiError envelope, the response
// decorators (headers, status codes, content types) and the fallback path
// used when a payload cannot be serialized. The info package mounts
// status, health, version and OpenAPI endpoints on top of a Responder,
// while apischema publishes the envelope as an OpenAPI component for
// documentation tooling. jsonutil wraps sonic with the standard-library
// compatible configuration used by every package here.
//
// # Packages
//
//   - responder: ApiError construction, decorators, content negotiation and
//     slog-backed error handling via functional options.
//   - info: health, readiness, version and OpenAPI document endpoints.
//   - apischema: opt-in OpenAPI schema and document for the ApiError shape.
//   - jsonutil: deterministic sonic helpers for encoding and decoding.
//
// # Quick Start
//
//	resp := responder.NewResponder(responder.WithLogger(logger))
//	mux.Handle("GET /users/{id}", resp.Handler(func(r *http.Request) responder.Respondable {
//	    u, ok := store.Get(r.PathValue("id"))
//	    if !ok {
//	        return responder.NotFound("user not found").WithTrace()
//	    }
//	    return responder.Of(u).WithHeader("Cache-Control", "no-store")
//	}))
//
// Error values render as
//
//	{"success":false,"message":"user not found","code":404,"details":null,"data":null,"trace_id":"1a2b3c4d","timestamp":1700000000}
//
// and carry an X-Trace-Id header whenever a trace id is present.
package respweaver
