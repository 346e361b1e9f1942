// Package logging provides structured logging using Go's standard library log/slog.
// It writes JSON by default, text on request, and adapts a logger into the build log listener.
package logging
