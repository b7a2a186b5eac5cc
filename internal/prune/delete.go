package prune

// ABOUTME: Removes entries classified as old. Files are unlinked, directories
// ABOUTME: removed with their whole subtree; the batch stops at the first failure.

import (
	"fmt"
	"log/slog"
	"os"
)

// Remover abstracts the filesystem calls used to delete entries so tests can
// inject failures.
type Remover interface {
	Stat(path string) (os.FileInfo, error)
	Remove(path string) error
	RemoveAll(path string) error
}

// OSRemover deletes through the os package.
type OSRemover struct{}

func (OSRemover) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }
func (OSRemover) Remove(path string) error             { return os.Remove(path) }
func (OSRemover) RemoveAll(path string) error          { return os.RemoveAll(path) }

// Delete removes every entry marked Old, in order, and returns how many were
// removed. Entries not marked Old are never touched.
//
// The type of each entry is resolved at deletion time, following symlinks: a
// regular file is removed with Remove, a directory with RemoveAll (for a
// symlink this removes the link itself). Anything else, including a dangling
// symlink or an entry that vanished after the scan, is a KindDeleteFailed
// error. The first failure ends the batch; the returned count then covers
// only the entries removed before it.
func Delete(entries []Entry, rm Remover, logger *slog.Logger) (int, error) {
	if rm == nil {
		rm = OSRemover{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	removed := 0
	for _, e := range entries {
		if !e.Old {
			continue
		}
		if err := deleteEntry(e, rm); err != nil {
			logger.Debug("delete failed", "name", e.Name, "removed", removed, "error", err)
			return removed, err
		}
		removed++
		logger.Info("removed", "path", e.Path)
	}
	return removed, nil
}

func deleteEntry(e Entry, rm Remover) error {
	info, err := rm.Stat(e.Path)
	if err != nil {
		return newError(KindDeleteFailed, e.Name, err)
	}

	switch {
	case info.Mode().IsRegular():
		err = rm.Remove(e.Path)
	case info.IsDir():
		err = rm.RemoveAll(e.Path)
	default:
		err = fmt.Errorf("unsupported file type %s", info.Mode().Type())
	}
	if err != nil {
		return newError(KindDeleteFailed, e.Name, err)
	}
	return nil
}
