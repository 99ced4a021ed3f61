// Package main runs a small user API whose handlers answer with responder
// envelopes and decorators.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/drblury/respweaver/responder"
)

func main() {
	addr := flag.String("addr", ":8080", "Listen address")
	logFormat := flag.String("log-format", "text", "Log format (text, json)")
	ulidTraces := flag.Bool("ulid-traces", false, "Use ULIDs instead of short hex trace ids")
	flag.Parse()

	logger := newLogger(*logFormat)

	opts := []responder.ResponderOption{
		responder.WithLogger(logger),
		responder.WithErrorClassifier(classifyError),
	}
	if *ulidTraces {
		opts = append(opts, responder.WithTraceIDGenerator(responder.NewULIDTraceID))
	}
	resp := responder.NewResponder(opts...)

	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           newRouter(resp, newUserStore()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", "addr", *addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func newLogger(format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
