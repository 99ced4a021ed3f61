// Package apischema describes the responder.APIError envelope as an OpenAPI
// schema. Importing it is opt-in and has no effect on how envelopes are
// rendered; it only exposes metadata for documentation and contract tests.
package apischema
