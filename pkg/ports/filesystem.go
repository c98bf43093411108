package ports

import (
	"io"
	"io/fs"
)

// AccessMode is a capability checked by FileSystem.Access.
type AccessMode int

const (
	// AccessRead checks that the caller may read the entry.
	AccessRead AccessMode = iota
	// AccessWrite checks that the caller may write the entry.
	AccessWrite
	// AccessExecute checks that the caller may execute (or traverse) the entry.
	AccessExecute
)

// FileSystem abstracts the file system operations the shell performs.
// All paths are absolute and already normalized by the caller.
type FileSystem interface {
	// Stat returns metadata for path, following symbolic links.
	Stat(path string) (fs.FileInfo, error)

	// Lstat returns metadata for path without following a final symbolic link.
	Lstat(path string) (fs.FileInfo, error)

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// ReadDir returns the direct children of a directory sorted by name.
	ReadDir(path string) ([]fs.FileInfo, error)

	// Mkdir creates a single directory. The parent must exist.
	Mkdir(path string) error

	// CreateFile creates an empty regular file, failing if path already exists.
	CreateFile(path string) error

	// Open opens a file for reading.
	Open(path string) (io.ReadCloser, error)

	// AppendFile appends data to an existing file. It never creates the file.
	AppendFile(path string, data []byte) error

	// Remove deletes a file or empty directory.
	Remove(path string) error

	// Access reports whether the current process holds the given capability on path.
	Access(path string, mode AccessMode) bool
}
