package info

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/drblury/respweaver/responder"
)

type probePayload struct {
	Status  string   `json:"status"`
	Details []string `json:"details,omitempty"`
}

func newProbePayload(state string, details ...string) probePayload {
	return probePayload{Status: state, Details: slices.Clone(details)}
}

// respondProbe runs checks and answers with state on success. On failure
// the envelope is a 503 whose data lists every failed probe.
func (ih *InfoHandler) respondProbe(w http.ResponseWriter, r *http.Request, checks []ProbeFunc, state string) {
	if err := ih.runChecks(r.Context(), checks); err != nil {
		apiErr := ih.NewError(http.StatusServiceUnavailable, err).
			WithData(newProbePayload("unavailable", probeFailures(err)...))
		ih.Respond(w, r, apiErr)
		return
	}
	ih.Respond(w, r, responder.Of(newProbePayload(state)).WithHeader("Cache-Control", "no-store"))
}

// runChecks runs every check under one shared deadline and joins the
// failures in check order.
func (ih *InfoHandler) runChecks(ctx context.Context, checks []ProbeFunc) error {
	if len(checks) == 0 {
		return nil
	}

	timeout := ih.probeTimeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var errs []error
	for idx, check := range checks {
		if check == nil {
			continue
		}
		if err := check(probeCtx); err != nil {
			errs = append(errs, describeProbeError(idx+1, timeout, err))
		}
	}
	return errors.Join(errs...)
}

func describeProbeError(n int, timeout time.Duration, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("probe %d timed out after %s: %w", n, timeout, err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("probe %d was cancelled: %w", n, err)
	default:
		return fmt.Errorf("probe %d failed: %w", n, err)
	}
}

func probeFailures(err error) []string {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{err.Error()}
	}
	errs := joined.Unwrap()
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Error())
	}
	return out
}

func filterProbes(checks []ProbeFunc) []ProbeFunc {
	filtered := slices.DeleteFunc(slices.Clone(checks), func(check ProbeFunc) bool {
		return check == nil
	})
	if len(filtered) == 0 {
		return nil
	}
	return filtered
}
