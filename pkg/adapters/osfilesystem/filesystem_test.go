package osfilesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/user/dirsh/pkg/ports"
)

func TestFileSystem_CreateAppendAndRead(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	testPath := filepath.Join(tmpDir, "test.txt")
	if err := fs.CreateFile(testPath); err != nil {
		t.Fatalf("CreateFile failed: %v", err)
	}

	if err := fs.AppendFile(testPath, []byte("hello ")); err != nil {
		t.Fatalf("AppendFile failed: %v", err)
	}
	if err := fs.AppendFile(testPath, []byte("world")); err != nil {
		t.Fatalf("AppendFile failed: %v", err)
	}

	r, err := fs.Open(testPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", data)
	}
}

func TestFileSystem_CreateFileRefusesExisting(t *testing.T) {
	fs := New()
	testPath := filepath.Join(t.TempDir(), "test.txt")

	if err := fs.CreateFile(testPath); err != nil {
		t.Fatalf("CreateFile failed: %v", err)
	}
	err := fs.CreateFile(testPath)
	if !os.IsExist(err) {
		t.Errorf("expected exist error, got %v", err)
	}
}

func TestFileSystem_AppendFileDoesNotCreate(t *testing.T) {
	fs := New()
	testPath := filepath.Join(t.TempDir(), "missing.txt")

	if err := fs.AppendFile(testPath, []byte("x")); err == nil {
		t.Fatal("expected error appending to missing file")
	}
	exists, err := fs.Exists(testPath)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected file to not exist")
	}
}

func TestFileSystem_Mkdir(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	testPath := filepath.Join(tmpDir, "a")
	if err := fs.Mkdir(testPath); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}

	info, err := fs.Stat(testPath)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}

	if err := fs.Mkdir(filepath.Join(tmpDir, "b", "c")); err == nil {
		t.Error("expected Mkdir to fail when the parent is missing")
	}
}

func TestFileSystem_Exists(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	testPath := filepath.Join(tmpDir, "test.txt")
	os.WriteFile(testPath, []byte("test"), 0644)

	exists, err := fs.Exists(testPath)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected file to exist")
	}

	exists, err = fs.Exists(filepath.Join(tmpDir, "nonexistent.txt"))
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected file to not exist")
	}
}

func TestFileSystem_Remove(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	testPath := filepath.Join(tmpDir, "test.txt")
	os.WriteFile(testPath, []byte("test"), 0644)

	if err := fs.Remove(testPath); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	exists, _ := fs.Exists(testPath)
	if exists {
		t.Error("expected file to be removed")
	}
}

func TestFileSystem_LstatDoesNotFollowSymlinks(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	target := filepath.Join(tmpDir, "target")
	link := filepath.Join(tmpDir, "link")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	info, err := fs.Lstat(link)
	if err != nil {
		t.Fatalf("Lstat failed: %v", err)
	}
	if info.IsDir() {
		t.Error("expected Lstat to report the link, not the directory")
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Error("expected symlink mode bit")
	}
}

func TestFileSystem_ReadDirSorted(t *testing.T) {
	fs := NewFromAfero(afero.NewMemMapFs())
	if err := fs.Mkdir("/d"); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	for _, name := range []string{"/d/c", "/d/a", "/d/b"} {
		if err := fs.CreateFile(name); err != nil {
			t.Fatalf("CreateFile(%s) failed: %v", name, err)
		}
	}

	entries, err := fs.ReadDir("/d")
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Errorf("expected sorted [a b c], got %v", names)
	}
}

func TestFileSystem_ModeAccess(t *testing.T) {
	afs := afero.NewMemMapFs()
	fs := NewFromAfero(afs)

	if err := afero.WriteFile(afs, "/ro.txt", []byte("x"), 0444); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := afs.Mkdir("/dir", 0755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}

	tests := []struct {
		path string
		mode ports.AccessMode
		want bool
	}{
		{"/ro.txt", ports.AccessRead, true},
		{"/ro.txt", ports.AccessWrite, false},
		{"/ro.txt", ports.AccessExecute, false},
		{"/dir", ports.AccessExecute, true},
		{"/missing", ports.AccessRead, false},
	}
	for _, tt := range tests {
		if got := fs.Access(tt.path, tt.mode); got != tt.want {
			t.Errorf("Access(%s, %d) = %v, want %v", tt.path, tt.mode, got, tt.want)
		}
	}
}

func TestFileSystem_StatMissing(t *testing.T) {
	fs := NewFromAfero(afero.NewMemMapFs())
	_, err := fs.Stat("/nope")
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
