package cli

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verbosityCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{}
	cmd.Flags().CountP("verbose", "v", "")
	cmd.Flags().CountP("quiet", "q", "")
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		args []string
		want slog.Level
	}{
		{nil, slog.LevelWarn},
		{[]string{"-v"}, slog.LevelInfo},
		{[]string{"-vv"}, slog.LevelDebug},
		{[]string{"-vvv"}, slog.LevelDebug},
		{[]string{"-q"}, slog.LevelError},
		{[]string{"-q", "-vv"}, slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, logLevel(verbosityCmd(t, tt.args...)))
		})
	}
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(verbosityCmd(t, "-v"), &buf)
	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}
