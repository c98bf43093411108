package mocks

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/user/dirsh/pkg/adapters/osfilesystem"
	"github.com/user/dirsh/pkg/ports"
)

// FileSystem is a mock implementation of ports.FileSystem backed by an
// in-memory afero filesystem. The *Err hooks inject failures: when a hook
// returns a non-nil error the call fails with it, otherwise the in-memory
// behavior runs. Remove refuses non-empty directories like a real
// filesystem does, and successful removals are recorded in order.
type FileSystem struct {
	Afero afero.Fs
	base  *osfilesystem.FileSystem

	mu      sync.Mutex
	removed []string

	StatErr       func(path string) error
	ReadDirErr    func(path string) error
	MkdirErr      func(path string) error
	CreateFileErr func(path string) error
	OpenErr       func(path string) error
	AppendFileErr func(path string) error
	RemoveErr     func(path string) error
	AccessFunc    func(path string, mode ports.AccessMode) bool
}

// NewFileSystem creates a new mock FileSystem with an empty root.
func NewFileSystem() *FileSystem {
	afs := afero.NewMemMapFs()
	return &FileSystem{
		Afero: afs,
		base:  osfilesystem.NewFromAfero(afs),
	}
}

// AddDir creates path and any missing parents.
func (m *FileSystem) AddDir(path string) {
	if err := m.Afero.MkdirAll(path, 0755); err != nil {
		panic(err)
	}
}

// AddFile creates path with the given content, creating parents as needed.
func (m *FileSystem) AddFile(path, content string) {
	m.AddDir(filepath.Dir(path))
	if err := afero.WriteFile(m.Afero, path, []byte(content), 0644); err != nil {
		panic(err)
	}
}

// Content returns the content of the file at path.
func (m *FileSystem) Content(path string) string {
	data, err := afero.ReadFile(m.Afero, path)
	if err != nil {
		return ""
	}
	return string(data)
}

// Removed returns the paths removed so far, in removal order.
func (m *FileSystem) Removed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.removed...)
}

func (m *FileSystem) Stat(path string) (fs.FileInfo, error) {
	if err := hook(m.StatErr, path); err != nil {
		return nil, err
	}
	return m.base.Stat(path)
}

func (m *FileSystem) Lstat(path string) (fs.FileInfo, error) {
	if err := hook(m.StatErr, path); err != nil {
		return nil, err
	}
	return m.base.Lstat(path)
}

func (m *FileSystem) Exists(path string) (bool, error) {
	return m.base.Exists(path)
}

func (m *FileSystem) ReadDir(path string) ([]fs.FileInfo, error) {
	if err := hook(m.ReadDirErr, path); err != nil {
		return nil, err
	}
	return m.base.ReadDir(path)
}

func (m *FileSystem) Mkdir(path string) error {
	if err := hook(m.MkdirErr, path); err != nil {
		return err
	}
	return m.base.Mkdir(path)
}

func (m *FileSystem) CreateFile(path string) error {
	if err := hook(m.CreateFileErr, path); err != nil {
		return err
	}
	return m.base.CreateFile(path)
}

func (m *FileSystem) Open(path string) (io.ReadCloser, error) {
	if err := hook(m.OpenErr, path); err != nil {
		return nil, err
	}
	return m.base.Open(path)
}

func (m *FileSystem) AppendFile(path string, data []byte) error {
	if err := hook(m.AppendFileErr, path); err != nil {
		return err
	}
	return m.base.AppendFile(path, data)
}

func (m *FileSystem) Remove(path string) error {
	if err := hook(m.RemoveErr, path); err != nil {
		return err
	}
	info, err := m.base.Lstat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		children, err := m.base.ReadDir(path)
		if err != nil {
			return err
		}
		if len(children) > 0 {
			return &fs.PathError{Op: "remove", Path: path, Err: fmt.Errorf("directory not empty")}
		}
	}
	if err := m.base.Remove(path); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.removed = append(m.removed, path)
	return nil
}

func (m *FileSystem) Access(path string, mode ports.AccessMode) bool {
	if m.AccessFunc != nil {
		return m.AccessFunc(path, mode)
	}
	return m.base.Access(path, mode)
}

func hook(fn func(string) error, path string) error {
	if fn == nil {
		return nil
	}
	return fn(path)
}

var _ ports.FileSystem = (*FileSystem)(nil)
