// Package prune removes the direct children of a directory that were last
// modified before an age threshold, after interactive confirmation.
package prune

// ABOUTME: Pipeline wiring: parse age -> threshold -> scan -> confirm -> delete.

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Options configures a single run.
type Options struct {
	Path string // directory whose immediate children are candidates
	Age  string // "<n>d" or "<n>w"

	Now     func() time.Time // defaults to time.Now
	Input   io.Reader        // confirmation answer source, defaults to os.Stdin
	Output  io.Writer        // confirmation prompt destination, defaults to os.Stderr
	Remover Remover          // defaults to OSRemover
	Logger  *slog.Logger     // defaults to slog.Default()

	// StylePrompt, when set, decorates the prompt before it is written.
	StylePrompt func(string) string
}

// Result summarizes a completed run.
type Result struct {
	Path      string    `json:"path"`
	Threshold time.Time `json:"threshold"`
	Scanned   int       `json:"scanned"`
	Old       int       `json:"old"`
	Removed   int       `json:"removed"`
}

// Run executes the pipeline and stops at the first error. The returned Result
// is populated up to the stage that failed; on a deletion failure Removed
// holds the number of entries removed before it.
func Run(ctx context.Context, opts Options) (Result, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	input := opts.Input
	if input == nil {
		input = os.Stdin
	}
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	res := Result{Path: opts.Path}

	age, err := ParseAge(opts.Age)
	if err != nil {
		return res, err
	}

	threshold, err := Threshold(now(), age)
	if err != nil {
		return res, err
	}
	res.Threshold = threshold
	logger.Debug("threshold computed", "age_seconds", age.Seconds(), "threshold", threshold)

	entries, err := Scan(opts.Path, threshold)
	if err != nil {
		return res, err
	}
	res.Scanned = len(entries)
	for _, e := range entries {
		logger.Debug("classified", "name", e.Name, "mod_time", e.ModTime, "old", e.Old)
	}
	old := OldEntries(entries)
	res.Old = len(old)

	prompt := Prompt(threshold, opts.Path)
	if opts.StylePrompt != nil {
		prompt = opts.StylePrompt(prompt)
	}
	if err := Confirm(ctx, prompt, input, output); err != nil {
		return res, err
	}

	removed, err := Delete(old, opts.Remover, logger)
	res.Removed = removed
	return res, err
}
