// Package errs defines the closed set of error kinds used by the core.
//
// Internal callers branch on Kind (via KindOf or errors.Is against the
// sentinel values); text is only produced at the command boundary.
package errs

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Kind classifies a failure
type Kind int

const (
	KindIO Kind = iota
	KindNotFound
	KindNotADirectory
	KindPermissionDenied
	KindArchiveOpen
	KindArchiveParse
	KindArchiveEntry
	KindInvalidArgument
)

var kindNames = map[Kind]string{
	KindIO:               "IOError",
	KindNotFound:         "NotFound",
	KindNotADirectory:    "NotADirectory",
	KindPermissionDenied: "PermissionDenied",
	KindArchiveOpen:      "ArchiveOpenError",
	KindArchiveParse:     "ArchiveParseError",
	KindArchiveEntry:     "ArchiveEntryError",
	KindInvalidArgument:  "InvalidArgument",
}

// String returns the wire name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinels usable with errors.Is
var (
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrNotADirectory    = &Error{Kind: KindNotADirectory}
	ErrPermissionDenied = &Error{Kind: KindPermissionDenied}
	ErrArchiveOpen      = &Error{Kind: KindArchiveOpen}
	ErrArchiveParse     = &Error{Kind: KindArchiveParse}
	ErrArchiveEntry     = &Error{Kind: KindArchiveEntry}
	ErrInvalidArgument  = &Error{Kind: KindInvalidArgument}
	ErrIO               = &Error{Kind: KindIO}
)

// NoIndex marks an error that is not tied to an archive entry
const NoIndex = -1

// Error carries the kind, the operation, the affected path and, for archive
// failures, the index of the failing entry.
type Error struct {
	Kind  Kind
	Op    string
	Path  string
	Index int
	Err   error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Index >= 0 && e.Kind == KindArchiveEntry {
		msg += fmt.Sprintf(" (entry %d)", e.Index)
	}
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same kind, so sentinels work with errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Path == "" && t.Err == nil
}

// New creates an error of the given kind
func New(kind Kind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Index: NoIndex, Err: err}
}

// Newf creates an error of the given kind with a formatted cause
func Newf(kind Kind, op, path, format string, args ...interface{}) *Error {
	return New(kind, op, path, fmt.Errorf(format, args...))
}

// Entry creates an ArchiveEntryError for the entry at index
func Entry(index int, path string, err error) *Error {
	return &Error{Kind: KindArchiveEntry, Op: "extract", Path: path, Index: index, Err: err}
}

// FromOS classifies an error returned by the os package
func FromOS(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return New(classify(err), op, path, unwrapPathError(err))
}

// KindOf returns the kind of err, or KindIO for foreign errors
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return classify(err)
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	case errors.Is(err, syscall.ENOTDIR):
		return KindNotADirectory
	default:
		return KindIO
	}
}

// unwrapPathError drops the *fs.PathError wrapper since Error already
// records the operation and path.
func unwrapPathError(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
