package resolver

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/dirsh/pkg/shellerr"
)

func TestResolve(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix path layout")
	}

	tests := []struct {
		raw, cwd, want string
	}{
		{"dir", "/home/user", "/home/user/dir"},
		{"./dir/", "/home/user", "/home/user/dir"},
		{"../", "/home/user", "/home"},
		{"../../..", "/home/user", "/"},
		{"a/./b/../c", "/w", "/w/a/c"},
		{"/etc//passwd", "/home/user", "/etc/passwd"},
		{"/", "/home/user", "/"},
		{"", "/home/user", "/home/user"},
		{".", "/home/user", "/home/user"},
	}
	for _, tt := range tests {
		got, err := Resolve(tt.raw, tt.cwd)
		require.NoError(t, err, "raw %q", tt.raw)
		assert.Equal(t, tt.want, got, "raw %q", tt.raw)
	}
}

func TestResolve_InvalidPath(t *testing.T) {
	_, err := Resolve("bad\x00name", "/tmp")

	require.Error(t, err)
	assert.True(t, errors.Is(err, shellerr.ErrInvalidPath))
}

func TestValid_Windows(t *testing.T) {
	assert.True(t, valid(`C:\Users\me`, "windows"))
	assert.True(t, valid(`relative\dir`, "windows"))
	assert.True(t, valid(`a:b`, "windows"), "drive-relative path")
	assert.False(t, valid(`1:x`, "windows"))
	assert.False(t, valid(`ab:c`, "windows"))
	assert.False(t, valid(`\x:y`, "windows"))
	assert.False(t, valid(`what?`, "windows"))
	assert.False(t, valid("tab\there", "windows"))
	assert.True(t, valid("what?", "linux"))
}
