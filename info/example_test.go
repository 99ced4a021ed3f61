package info_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/drblury/respweaver/info"
	"github.com/drblury/respweaver/responder"
)

func ExampleInfoHandler_full() {
	handler := info.NewInfoHandler(
		info.WithInfoResponder(responder.NewResponder(
			responder.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		)),
		info.WithInfoProvider(func() any {
			return map[string]string{"version": "1.2.3"}
		}),
		info.WithLivenessChecks(func(ctx context.Context) error {
			return nil
		}),
		info.WithReadinessChecks(func(ctx context.Context) error {
			return errors.New("db unreachable")
		}),
	)

	healthRec := httptest.NewRecorder()
	handler.GetHealthz(healthRec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	fmt.Println(healthRec.Code)
	fmt.Println(strings.TrimSpace(healthRec.Body.String()))

	versionRec := httptest.NewRecorder()
	handler.GetVersion(versionRec, httptest.NewRequest(http.MethodGet, "/version", nil))
	fmt.Println(versionRec.Code)
	fmt.Println(strings.TrimSpace(versionRec.Body.String()))

	readyRec := httptest.NewRecorder()
	handler.GetReadyz(readyRec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	fmt.Println(readyRec.Code)
	fmt.Println(readyRec.Header().Get("X-Trace-Id") != "")

	// Output:
	// 200
	// {"status":"ok"}
	// 200
	// {"version":"1.2.3"}
	// 503
	// true
}
