package prune

// ABOUTME: Flat error taxonomy for the prune pipeline. Every failure is an *Error
// ABOUTME: carrying a Kind, an optional detail (argument, directory or file name) and cause.

import (
	"errors"
	"fmt"
)

// Kind identifies which stage of the pipeline failed.
type Kind int

const (
	// KindUnknown is returned by KindOf for errors that are not *Error.
	KindUnknown Kind = iota
	KindInvalidArgument
	KindReadDir
	KindReadDirEntry
	KindReadFile
	KindTimeSubtraction
	KindDeleteFailed
	KindCancelled
)

var kindNames = map[Kind]string{
	KindUnknown:         "Unknown",
	KindInvalidArgument: "InvalidArgument",
	KindReadDir:         "ReadDirError",
	KindReadDirEntry:    "ReadDirEntryError",
	KindReadFile:        "ReadFileError",
	KindTimeSubtraction: "TimeSubtractionError",
	KindDeleteFailed:    "DeleteFailed",
	KindCancelled:       "Cancelled",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ExitCode returns the process exit code used when a run fails with this kind.
func (k Kind) ExitCode() int {
	switch k {
	case KindInvalidArgument, KindTimeSubtraction:
		return 2
	case KindReadDir, KindReadDirEntry, KindReadFile:
		return 3
	case KindDeleteFailed:
		return 4
	case KindCancelled:
		return 5
	default:
		return 1
	}
}

// Error is the single error type produced by this package.
type Error struct {
	Kind   Kind
	Detail string // argument name, directory name or file name; empty when the kind carries none
	Err    error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindInvalidArgument:
		msg = "invalid argument provided for argument " + e.Detail
	case KindReadDir:
		msg = fmt.Sprintf("failed to read directory %q", e.Detail)
	case KindReadDirEntry:
		msg = "failed to read dir entry"
	case KindReadFile:
		msg = "failed to read file"
	case KindTimeSubtraction:
		msg = "failed to subtract time"
	case KindDeleteFailed:
		msg = fmt.Sprintf("failed to delete %q", e.Detail)
	case KindCancelled:
		msg = "cancelled by user"
	default:
		msg = "unknown failure"
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind, so callers can
// match with errors.Is(err, &Error{Kind: KindCancelled}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, detail string, cause error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: cause}
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
