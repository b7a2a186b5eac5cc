package cli

// ABOUTME: --json output. A successful run prints the prune.Result (path,
// ABOUTME: threshold, scanned, old, removed) on stdout; a failure prints
// ABOUTME: {"error", "kind"} on stderr, kind naming the pipeline stage that failed.

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kstenerud/rmold/internal/prune"
	"github.com/spf13/cobra"
)

// jsonEnabled reports whether --json was given. Flag resolves both the
// command's own flags and the root's persistent ones.
func jsonEnabled(cmd *cobra.Command) bool {
	f := cmd.Flag("json")
	return f != nil && f.Value.String() == "true"
}

// writeJSON writes v to w as two-space indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// writeJSONError writes a JSON error object to w. Used for stderr error output
// when --json is active. The kind is included for errors from the pipeline.
func writeJSONError(w io.Writer, err error) {
	obj := map[string]string{"error": err.Error()}
	if kind := prune.KindOf(err); kind != prune.KindUnknown {
		obj["kind"] = kind.String()
	}
	data, _ := json.Marshal(obj)
	fmt.Fprintf(w, "%s\n", data) //nolint:errcheck // best-effort stderr write
}
