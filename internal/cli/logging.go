package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// logLevel maps the -v / -q counts to a slog level. Warnings are shown by
// default; -v adds info, -vv adds debug, -q keeps only errors.
func logLevel(cmd *cobra.Command) slog.Level {
	verbose, _ := cmd.Flags().GetCount("verbose")
	quiet, _ := cmd.Flags().GetCount("quiet")

	switch {
	case quiet > 0:
		return slog.LevelError
	case verbose >= 2:
		return slog.LevelDebug
	case verbose == 1:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// newLogger builds a text logger on w at the level selected by the flags.
func newLogger(cmd *cobra.Command, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel(cmd)}))
}
