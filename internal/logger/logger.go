// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger for the auth gateway.
//
// Logger embeds zerolog.Logger, so the whole zerolog API is available on
// *Logger. Components receive a *Logger at construction time; request
// handling code obtains the request-scoped logger (carrying the trace ID)
// with FromRequest or FromContext.
package logger

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const traceIDField = "trace_id"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON *Logger writing to os.Stdout for the given
// role label (e.g. "auth-gateway").
//
// Every entry carries the role, a timestamp and a "func" caller field with
// the fully-qualified function name. The global level starts at Debug and
// can be lowered with SetLevel once configuration is loaded.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}

	zerolog.CallerFieldName = "func"
	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// SetLevel sets the global zerolog level from its name ("debug", "info",
// "warn", ...).
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("error parsing log level %q: %w", level, err)
	}

	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Nop returns a *Logger that discards all log output. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithTraceID returns ctx carrying a child of l that tags every entry with
// traceID. FromContext on the returned context yields that child.
func (l *Logger) WithTraceID(ctx context.Context, traceID string) context.Context {
	child := l.With().Str(traceIDField, traceID).Logger()
	return child.WithContext(ctx)
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx by zerolog's WithContext.
// When none is attached, zerolog's default context logger is returned
// (disabled unless configured), so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
