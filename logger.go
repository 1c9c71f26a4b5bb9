package viewedit

import (
	"log/slog"

	"github.com/gogpu/viewedit/internal/vlog"
)

// SetLogger configures the logger for viewedit and all its sub-packages.
// By default, viewedit produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the silent
// default.
//
// Log levels used by viewedit:
//   - [slog.LevelDebug]: mode transitions, edit flushes
//   - [slog.LevelInfo]: views opened and closed
//   - [slog.LevelWarn]: dropped re-entrant notifications, failed refreshes
//
// Example:
//
//	viewedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	vlog.Set(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return vlog.L()
}
