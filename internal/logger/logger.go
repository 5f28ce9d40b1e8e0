// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// oc-serve gateway.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/MKhiriev/oc-serve/internal/config"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a production-ready *Logger for the given role label
// (e.g. "server", "worker").
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to role, useful for filtering logs from different
//     application components;
//   - a "ts" timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
//
// Output is written to os.Stdout in JSON format.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}

	zerolog.CallerFieldName = "func"
	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// New constructs the process logger from cfg.
//
// Entries are written to two sinks, each with its own minimum level:
//   - stdout through a colour zerolog.ConsoleWriter (cfg.ConsoleLevel);
//   - cfg.File through a lumberjack rotator (cfg.FileLevel), rotated at
//     cfg.MaxBytes and keeping cfg.BackupCount old files.
//
// If the directory of cfg.File cannot be created the file sink is dropped
// and a warning is logged to the console. The returned closer closes the
// file sink and is never nil.
func New(role string, cfg config.Log) (*Logger, io.Closer) {
	base, _ := config.ParseLevel(cfg.BaseLevel)
	consoleLevel, err := config.ParseLevel(cfg.ConsoleLevel)
	if err != nil {
		consoleLevel = zerolog.InfoLevel
	}
	fileLevel, err := config.ParseLevel(cfg.FileLevel)
	if err != nil {
		fileLevel = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(base)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.DateTime}
	writers := []io.Writer{
		&zerolog.FilteredLevelWriter{Writer: zerolog.LevelWriterAdapter{Writer: console}, Level: consoleLevel},
	}

	var closer io.Closer = nopCloser{}
	var fileErr error
	if cfg.File != "" {
		if fileErr = os.MkdirAll(filepath.Dir(cfg.File), 0o755); fileErr == nil {
			rotator := &lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    maxSizeMB(cfg.MaxBytes),
				MaxBackups: cfg.BackupCount,
			}
			writers = append(writers,
				&zerolog.FilteredLevelWriter{Writer: zerolog.LevelWriterAdapter{Writer: rotator}, Level: fileLevel})
			closer = rotator
		}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	l := &Logger{logger}
	if fileErr != nil {
		l.Warn().Err(fileErr).Str("file", cfg.File).Msg("log file sink disabled")
	}
	return l, closer
}

// maxSizeMB converts a byte limit into lumberjack megabytes, rounding up.
func maxSizeMB(maxBytes int64) int {
	const mb = 1024 * 1024
	if maxBytes <= 0 {
		return 0
	}
	return int((maxBytes + mb - 1) / mb)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
//
// This is typically used in HTTP middleware that has previously attached a
// request-scoped logger to the context via zerolog's WithContext.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
