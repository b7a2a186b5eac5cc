package prune

// ABOUTME: Lists the immediate children of a directory and classifies each one
// ABOUTME: as old or not old against a cutoff. All-or-nothing: any read failure aborts.

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

var errNotDir = errors.New("not a directory")

// Entry is a direct child of the scanned directory together with its age classification.
type Entry struct {
	Name    string
	Path    string
	ModTime time.Time
	Old     bool // ModTime is strictly before the threshold
}

// dirHandle is an open directory. *os.File satisfies it.
type dirHandle interface {
	Stat() (fs.FileInfo, error)
	ReadDir(n int) ([]fs.DirEntry, error)
	Close() error
}

// dirOpener opens a directory for listing.
type dirOpener func(dir string) (dirHandle, error)

func openOSDir(dir string) (dirHandle, error) {
	f, err := os.Open(dir) //nolint:gosec // G304: dir is the user-selected target
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Scan reads every immediate child of dir, in the order the directory listing
// yields them, and marks the ones last modified strictly before threshold.
// Symlinks are classified by their own modification time, not their target's.
// Subdirectories are not descended into.
func Scan(dir string, threshold time.Time) ([]Entry, error) {
	return scan(dir, threshold, openOSDir)
}

func scan(dir string, threshold time.Time, open dirOpener) ([]Entry, error) {
	d, err := open(dir)
	if err != nil {
		return nil, newError(KindReadDir, dir, err)
	}
	defer d.Close() //nolint:errcheck // read-only handle

	info, err := d.Stat()
	if err != nil {
		return nil, newError(KindReadDir, dir, err)
	}
	if !info.IsDir() {
		return nil, newError(KindReadDir, dir, errNotDir)
	}

	// A listing error voids whatever entries came back with it.
	dirEntries, err := d.ReadDir(-1)
	if err != nil {
		return nil, newError(KindReadDirEntry, "", err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		fi, err := de.Info()
		if err != nil {
			return nil, newError(KindReadFile, "", err)
		}
		modTime := fi.ModTime()
		entries = append(entries, Entry{
			Name:    de.Name(),
			Path:    filepath.Join(dir, de.Name()),
			ModTime: modTime,
			Old:     modTime.Before(threshold),
		})
	}

	return entries, nil
}

// OldEntries returns the entries classified as old, preserving order.
func OldEntries(entries []Entry) []Entry {
	var old []Entry
	for _, e := range entries {
		if e.Old {
			old = append(old, e)
		}
	}
	return old
}
