package responder

import (
	"fmt"
	mathrand "math/rand"
	randv2 "math/rand/v2"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// TraceIDFunc produces correlation identifiers for error envelopes.
type TraceIDFunc func() string

// newTraceID returns eight lower-case hex characters derived from a
// non-cryptographic 32-bit random value.
func newTraceID() string {
	return fmt.Sprintf("%08x", randv2.Uint32())
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(mathrand.New(mathrand.NewSource(time.Now().UnixNano())), 0)
)

// NewULIDTraceID returns a time-ordered ULID. Install it with
// WithTraceIDGenerator when trace ids need to sort by creation time.
func NewULIDTraceID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()

	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
	return id.String()
}
