package prune

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// writeAgedFile creates dir/name with some content and sets its mtime.
func writeAgedFile(t *testing.T, dir, name string, modTime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(name), 0600))
	require.NoError(t, os.Chtimes(path, modTime, modTime))
	return path
}

// makeAgedDir creates dir/name containing a nested file and sets the
// directory's mtime after it has been populated.
func makeAgedDir(t *testing.T, dir, name string, modTime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Join(path, "nested"), 0750))
	require.NoError(t, os.WriteFile(filepath.Join(path, "nested", "inner.txt"), []byte("x"), 0600))
	require.NoError(t, os.Chtimes(path, modTime, modTime))
	return path
}

func entryByName(t *testing.T, entries []Entry, name string) Entry {
	t.Helper()
	for _, e := range entries {
		if e.Name == name {
			return e
		}
	}
	require.Failf(t, "entry not found", "no entry named %q", name)
	return Entry{}
}

const day = 24 * time.Hour
