// Package jsonutil wraps sonic so every body the module emits goes through a
// single, deterministic encoder. Map keys are sorted and HTML is escaped the
// same way encoding/json does it, which keeps wire output stable for clients
// that diff responses in tests.
package jsonutil
