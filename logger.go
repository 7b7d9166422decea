package pixdraw

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record and reports every level as disabled, so
// log calls return before any attribute is formatted.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// current holds the logger used by draw calls.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(newNopLogger())
}

// SetLogger routes pixdraw's diagnostics to l. Nothing is logged until it
// is called; nil switches logging off again. It may be called while other
// goroutines are drawing.
//
// pixdraw logs at two levels:
//   - Debug: a Context was created or its clipping region changed
//   - Warn: the surface rejected a call; the record carries the operation
//     and the surface error
//
// Individual pixels and runs are not logged.
//
//	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
//	pixdraw.SetLogger(slog.New(h).With("display", "lcd0"))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger, or a discarding one.
func Logger() *slog.Logger {
	return current.Load()
}
