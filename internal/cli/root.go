// Package cli defines the Cobra command tree for the rmold CLI.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kstenerud/rmold/internal/prune"
	"github.com/spf13/cobra"
)

const appName = "rmold"

// BuildInfo identifies the binary; main fills it from ldflags.
type BuildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context, info BuildInfo) int {
	rootCmd := newRootCmd(info)
	return execute(ctx, rootCmd, os.Stderr)
}

// execute runs cmd and reports any failure on stderr. Split out from Execute
// so tests can drive it with their own streams.
func execute(ctx context.Context, rootCmd *cobra.Command, stderr io.Writer) int {
	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}

	if jsonEnabled(cmd) {
		writeJSONError(stderr, err)
	} else {
		st := newStyles(stderr, colorEnabled(cmd, stderr))
		fmt.Fprintf(stderr, "%s %s\n", st.errorPrefix(appName+":"), err) //nolint:errcheck // best-effort stderr write
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) && !jsonEnabled(cmd) {
		fmt.Fprintln(stderr)                  //nolint:errcheck
		fmt.Fprint(stderr, cmd.UsageString()) //nolint:errcheck
	}

	return exitCode(err)
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return 2
	}

	if kind := prune.KindOf(err); kind != prune.KindUnknown {
		return kind.ExitCode()
	}

	return 1
}

// newRootCmd creates the root Cobra command with all subcommands registered.
func newRootCmd(info BuildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   appName + " --path <dir> --duration <n>{d|w}",
		Short: "Remove directory entries older than a given age",
		Long: `Remove every file and directory directly inside --path whose last
modification is older than --duration. Durations are a whole number of
days or weeks, e.g. 30d or 2w. Old subdirectories are removed together
with everything inside them.

A summary is shown first and nothing is removed unless you answer "y".`,
		Example: `  ` + appName + ` -p ~/Downloads -d 30d
  ` + appName + ` --path /var/tmp/builds --duration 2w`,
		Args:          noArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runPrune,
	}

	rootCmd.Flags().StringP("path", "p", "", "Directory whose entries are candidates for removal (required)")
	rootCmd.Flags().StringP("duration", "d", "", "Minimum age of removed entries: <n>d or <n>w (required)")

	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (-v for info, -vv for debug)")
	rootCmd.PersistentFlags().CountP("quiet", "q", "Suppress non-essential output (-q for errors only)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	registerCommands(rootCmd, info)

	return rootCmd
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &UsageError{Err: err}
	}
	return nil
}
