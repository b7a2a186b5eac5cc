package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func colorCmd() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().Bool("no-color", false, "")
	return cmd
}

func TestColorEnabled_Buffer(t *testing.T) {
	assert.False(t, colorEnabled(colorCmd(), &bytes.Buffer{}))
}

func TestColorEnabled_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	assert.False(t, colorEnabled(colorCmd(), f))
}

func TestColorEnabled_NoColorFlag(t *testing.T) {
	cmd := colorCmd()
	require.NoError(t, cmd.Flags().Set("no-color", "true"))
	assert.False(t, colorEnabled(cmd, os.Stdout))
}

func TestColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, colorEnabled(colorCmd(), os.Stdout))
}

func TestStyles_PlainWhenDisabled(t *testing.T) {
	st := newStyles(&bytes.Buffer{}, false)
	assert.Equal(t, "Successfully removed 3 files!", st.success("Successfully removed 3 files!"))
	assert.Equal(t, "rmold:", st.errorPrefix("rmold:"))
	assert.Equal(t, "Enter \"y\" to confirm. ", st.prompt("Enter \"y\" to confirm. "))
}

func TestStyles_KeepsTextWhenEnabled(t *testing.T) {
	st := newStyles(&bytes.Buffer{}, true)
	assert.Contains(t, st.success("done"), "done")
}
