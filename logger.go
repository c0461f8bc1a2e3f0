package stlview

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards everything. Enabled reports false so disabled log
// calls skip formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger installs the logger used by the loaders and the renderer.
// The package is silent until SetLogger is called; nil restores that.
//
// Levels:
//   - Debug: decode, upload and raster sizes
//   - Info: files written
//   - Warn: objects skipped during a draw
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
