package polytess

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/polytess/internal/sweep"
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

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with any tessellation in progress.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by polytess and its internal
// subpackages. By default, polytess produces no log output.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by polytess:
//   - [slog.LevelDebug]: sweep diagnostics (event count and fill rule at
//     completion, intersections found, bottom-order fixes)
//   - [slog.LevelWarn]: non-fatal issues (degenerate contour dropped)
//
// Example:
//
//	// Enable debug-level logging to stderr:
//	polytess.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	sweep.SetLogger(l)
}

// Logger returns the current logger used by polytess itself (contour
// loading). The sweep carries its own logger, kept in sync by
// SetLogger, since internal/sweep cannot import this package without a
// cycle.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
