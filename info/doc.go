// Package info exposes status, health, version, and OpenAPI document
// endpoints whose responses are built with the responder toolkit: successes
// are decorated payloads and failures are APIError envelopes carrying a
// trace id.
//
// See ExampleInfoHandler_full for a runnable wiring of the handler and probes.
package info
