// Package osfilesystem provides a filesystem implementation backed by afero.
package osfilesystem

import (
	"io"
	"io/fs"
	"os"

	"github.com/spf13/afero"

	"github.com/user/dirsh/pkg/ports"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// FileSystem implements ports.FileSystem on top of an afero.Fs.
type FileSystem struct {
	fs     afero.Fs
	access func(path string, mode ports.AccessMode) bool
}

// New creates a FileSystem operating on the host operating system.
func New() *FileSystem {
	return &FileSystem{
		fs:     afero.NewOsFs(),
		access: hostAccess,
	}
}

// NewFromAfero creates a FileSystem over an arbitrary afero.Fs, such as an
// in-memory filesystem. Capabilities are derived from the owner permission bits.
func NewFromAfero(afs afero.Fs) *FileSystem {
	f := &FileSystem{fs: afs}
	f.access = f.modeAccess
	return f
}

// Stat returns metadata for path, following symbolic links.
func (f *FileSystem) Stat(path string) (fs.FileInfo, error) {
	return f.fs.Stat(path)
}

// Lstat returns metadata for path without following a final symbolic link.
// Filesystems without symlink support fall back to Stat.
func (f *FileSystem) Lstat(path string) (fs.FileInfo, error) {
	if lstater, ok := f.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return f.fs.Stat(path)
}

// Exists checks if a file or directory exists.
func (f *FileSystem) Exists(path string) (bool, error) {
	_, err := f.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ReadDir returns the direct children of a directory sorted by name.
func (f *FileSystem) ReadDir(path string) ([]fs.FileInfo, error) {
	return afero.ReadDir(f.fs, path)
}

// Mkdir creates a single directory.
func (f *FileSystem) Mkdir(path string) error {
	return f.fs.Mkdir(path, dirPerm)
}

// CreateFile creates an empty regular file, failing if path already exists.
func (f *FileSystem) CreateFile(path string) error {
	file, err := f.fs.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return err
	}
	return file.Close()
}

// Open opens a file for reading.
func (f *FileSystem) Open(path string) (io.ReadCloser, error) {
	return f.fs.Open(path)
}

// AppendFile appends data to an existing file.
func (f *FileSystem) AppendFile(path string, data []byte) error {
	file, err := f.fs.OpenFile(path, os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return err
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Remove deletes a file or empty directory.
func (f *FileSystem) Remove(path string) error {
	return f.fs.Remove(path)
}

// Access reports whether the current process holds the given capability on path.
func (f *FileSystem) Access(path string, mode ports.AccessMode) bool {
	return f.access(path, mode)
}

func (f *FileSystem) modeAccess(path string, mode ports.AccessMode) bool {
	info, err := f.fs.Stat(path)
	if err != nil {
		return false
	}
	return permitted(info.Mode().Perm(), mode)
}

// permitted checks the owner permission bits for mode.
func permitted(perm fs.FileMode, mode ports.AccessMode) bool {
	switch mode {
	case ports.AccessRead:
		return perm&0400 != 0
	case ports.AccessWrite:
		return perm&0200 != 0
	case ports.AccessExecute:
		return perm&0100 != 0
	default:
		return false
	}
}

// Ensure FileSystem implements ports.FileSystem
var _ ports.FileSystem = (*FileSystem)(nil)
