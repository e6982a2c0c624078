package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// loggerKey is the context key the CLI logger travels under.
type loggerKey struct{}

// newLogger creates a logger writing to w at the given level, with
// millisecond timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// withLogger attaches l to ctx.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext retrieves the CLI logger, falling back to the
// package default when none was attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
