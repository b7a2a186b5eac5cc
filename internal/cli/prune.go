package cli

// ABOUTME: Root command action: validates flags, runs the prune pipeline and
// ABOUTME: reports the number of removed entries.

import (
	"fmt"
	"strings"

	"github.com/kstenerud/rmold/internal/prune"
	"github.com/spf13/cobra"
)

func runPrune(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("path")
	age, _ := cmd.Flags().GetString("duration")

	// An explicitly empty value is passed through so the parser and scanner
	// report it; only flags that were never given are usage errors.
	var missing []string
	for _, name := range []string{"path", "duration"} {
		if !cmd.Flags().Changed(name) {
			missing = append(missing, fmt.Sprintf("%q", name))
		}
	}
	if len(missing) > 0 {
		return NewUsageError("required flag(s) %s not set", strings.Join(missing, ", "))
	}

	output := cmd.OutOrStdout()
	prompt := cmd.ErrOrStderr()
	promptStyles := newStyles(prompt, colorEnabled(cmd, prompt))

	res, err := prune.Run(cmd.Context(), prune.Options{
		Path:        path,
		Age:         age,
		Input:       cmd.InOrStdin(),
		Output:      prompt,
		Logger:      newLogger(cmd, cmd.ErrOrStderr()),
		StylePrompt: promptStyles.prompt,
	})
	if err != nil {
		return err
	}

	if jsonEnabled(cmd) {
		return writeJSON(output, res)
	}

	st := newStyles(output, colorEnabled(cmd, output))
	_, err = fmt.Fprintln(output, st.success(fmt.Sprintf("Successfully removed %d files!", res.Removed)))
	return err
}
