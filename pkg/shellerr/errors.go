// Package shellerr defines the shell's error taxonomy.
//
// Every failure a command can report is an *Error with a Kind. Usage kinds
// describe caller mistakes; the remaining kinds describe path and I/O
// problems. No kind ends the session.
package shellerr

import (
	"errors"

	"github.com/ideamans/go-l10n"
)

// Kind classifies an Error.
type Kind int

const (
	// Usage family.
	KindIllegalUsage Kind = iota + 1
	KindMissingArgument
	KindCommandNotFound

	// I/O and path family.
	KindPathNotFound
	KindAlreadyExists
	KindNotADirectory
	KindNotAFile
	KindNotInCurrentDirectory
	KindUnableToDelete
	KindUnableToRead
	KindInvalidPath
	KindUnableToCreate
	KindUnableToWrite
)

var kindNames = map[Kind]string{
	KindIllegalUsage:          "IllegalUsage",
	KindMissingArgument:       "MissingArgument",
	KindCommandNotFound:       "CommandNotFound",
	KindPathNotFound:          "PathNotFound",
	KindAlreadyExists:         "AlreadyExists",
	KindNotADirectory:         "NotADirectory",
	KindNotAFile:              "NotAFile",
	KindNotInCurrentDirectory: "NotInCurrentDirectory",
	KindUnableToDelete:        "UnableToDelete",
	KindUnableToRead:          "UnableToRead",
	KindInvalidPath:           "InvalidPath",
	KindUnableToCreate:        "UnableToCreate",
	KindUnableToWrite:         "UnableToWrite",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsUsage reports whether k belongs to the usage family.
func (k Kind) IsUsage() bool {
	return k == KindIllegalUsage || k == KindMissingArgument || k == KindCommandNotFound
}

// Error is a recoverable shell failure.
type Error struct {
	Kind    Kind
	Command string // usage family: the offending command
	Flag    string // MissingArgument: the required flag
	Path    string // I/O family: the path as shown to the user
	Err     error  // underlying cause, never shown to the user
}

// Error renders the user-facing diagnostic line.
func (e *Error) Error() string {
	switch e.Kind {
	case KindIllegalUsage:
		return l10n.F(`Illegal usage of command "%s"`, e.Command)
	case KindMissingArgument:
		return l10n.F(`Command "%s" requires the "%s" flag`, e.Command, e.Flag)
	case KindCommandNotFound:
		return l10n.F(`Command "%s" is not found`, e.Command)
	case KindPathNotFound:
		return l10n.F(`"%s" doesn't exist`, e.Path)
	case KindAlreadyExists:
		return l10n.F(`"%s" already exists`, e.Path)
	case KindNotADirectory:
		return l10n.F(`"%s" is not a directory`, e.Path)
	case KindNotAFile:
		return l10n.F(`"%s" is not a file`, e.Path)
	case KindNotInCurrentDirectory:
		return l10n.F(`"%s" is not in the current directory`, e.Path)
	case KindUnableToDelete:
		return l10n.F(`"%s" can't be deleted`, e.Path)
	case KindUnableToRead:
		return l10n.F(`Unable to read "%s"`, e.Path)
	case KindInvalidPath:
		return l10n.F(`Invalid path "%s"`, e.Path)
	case KindUnableToCreate:
		return l10n.F(`"%s" can't be created`, e.Path)
	case KindUnableToWrite:
		return l10n.F(`Unable to write "%s"`, e.Path)
	default:
		return l10n.T("Unknown error")
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind, so the sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrIllegalUsage          = &Error{Kind: KindIllegalUsage}
	ErrMissingArgument       = &Error{Kind: KindMissingArgument}
	ErrCommandNotFound       = &Error{Kind: KindCommandNotFound}
	ErrPathNotFound          = &Error{Kind: KindPathNotFound}
	ErrAlreadyExists         = &Error{Kind: KindAlreadyExists}
	ErrNotADirectory         = &Error{Kind: KindNotADirectory}
	ErrNotAFile              = &Error{Kind: KindNotAFile}
	ErrNotInCurrentDirectory = &Error{Kind: KindNotInCurrentDirectory}
	ErrUnableToDelete        = &Error{Kind: KindUnableToDelete}
	ErrUnableToRead          = &Error{Kind: KindUnableToRead}
	ErrInvalidPath           = &Error{Kind: KindInvalidPath}
	ErrUnableToCreate        = &Error{Kind: KindUnableToCreate}
	ErrUnableToWrite         = &Error{Kind: KindUnableToWrite}
)

// IllegalUsage reports arguments of the wrong shape for command.
func IllegalUsage(command string) *Error {
	return &Error{Kind: KindIllegalUsage, Command: command}
}

// MissingArgument reports that command needs flag to proceed.
func MissingArgument(command, flag string) *Error {
	return &Error{Kind: KindMissingArgument, Command: command, Flag: flag}
}

// CommandNotFound reports a name absent from the command table.
func CommandNotFound(command string) *Error {
	return &Error{Kind: KindCommandNotFound, Command: command}
}

// PathNotFound reports that path does not exist.
func PathNotFound(path string) *Error {
	return &Error{Kind: KindPathNotFound, Path: path}
}

// AlreadyExists reports that a creation target is taken.
func AlreadyExists(path string) *Error {
	return &Error{Kind: KindAlreadyExists, Path: path}
}

// NotADirectory reports a path that must be a directory but is not.
func NotADirectory(path string) *Error {
	return &Error{Kind: KindNotADirectory, Path: path}
}

// NotAFile reports a path that must be a regular file but is not.
func NotAFile(path string) *Error {
	return &Error{Kind: KindNotAFile, Path: path}
}

// NotInCurrentDirectory reports a creation target outside the current directory.
func NotInCurrentDirectory(path string) *Error {
	return &Error{Kind: KindNotInCurrentDirectory, Path: path}
}

// UnableToDelete reports a failed removal of path.
func UnableToDelete(path string, cause error) *Error {
	return &Error{Kind: KindUnableToDelete, Path: path, Err: cause}
}

// UnableToRead reports a failed read of path.
func UnableToRead(path string, cause error) *Error {
	return &Error{Kind: KindUnableToRead, Path: path, Err: cause}
}

// InvalidPath reports an argument that cannot be interpreted as a path.
func InvalidPath(raw string) *Error {
	return &Error{Kind: KindInvalidPath, Path: raw}
}

// UnableToCreate reports a host failure creating path.
func UnableToCreate(path string, cause error) *Error {
	return &Error{Kind: KindUnableToCreate, Path: path, Err: cause}
}

// UnableToWrite reports a failed append to path.
func UnableToWrite(path string, cause error) *Error {
	return &Error{Kind: KindUnableToWrite, Path: path, Err: cause}
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
