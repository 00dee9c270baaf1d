package gltext

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Stored atomically so SetLogger can
// race with logging from the render thread without a lock.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger used by gltext. By default, gltext
// produces no log output. Pass nil to restore the default silent behavior.
//
// Log levels used by gltext:
//   - [slog.LevelDebug]: atlas page builds (page number, texture size)
//   - [slog.LevelWarn]: non-fatal degradations (a glyph that failed to
//     rasterize and was left as a blank atlas cell)
//
// Example:
//
//	gltext.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by gltext.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
