package shellerr

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Messages(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{IllegalUsage("cd"), `Illegal usage of command "cd"`},
		{MissingArgument("rm", "-r"), `Command "rm" requires the "-r" flag`},
		{CommandNotFound("cp"), `Command "cp" is not found`},
		{PathNotFound("a/b"), `"a/b" doesn't exist`},
		{AlreadyExists("dir"), `"dir" already exists`},
		{NotADirectory("f.txt"), `"f.txt" is not a directory`},
		{NotAFile("dir"), `"dir" is not a file`},
		{NotInCurrentDirectory("../x"), `"../x" is not in the current directory`},
		{UnableToDelete("/tmp/x", nil), `"/tmp/x" can't be deleted`},
		{UnableToRead("f", nil), `Unable to read "f"`},
		{InvalidPath("a\x00b"), "Invalid path \"a\x00b\""},
		{UnableToCreate("d", nil), `"d" can't be created`},
		{UnableToWrite("f", nil), `Unable to write "f"`},
	}
	for _, tt := range tests {
		t.Run(tt.err.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_IsAndAs(t *testing.T) {
	cause := os.ErrPermission
	err := fmt.Errorf("wrapped: %w", UnableToDelete("/x", cause))

	assert.True(t, errors.Is(err, ErrUnableToDelete))
	assert.False(t, errors.Is(err, ErrUnableToRead))
	assert.True(t, errors.Is(err, os.ErrPermission))

	var se *Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "/x", se.Path)
	assert.Equal(t, KindUnableToDelete, KindOf(err))
}

func TestError_JoinedFailures(t *testing.T) {
	err := errors.Join(UnableToDelete("/a/1", nil), UnableToDelete("/a", nil))

	assert.True(t, errors.Is(err, ErrUnableToDelete))
	assert.Equal(t, "\"/a/1\" can't be deleted\n\"/a\" can't be deleted", err.Error())
}

func TestKind_Family(t *testing.T) {
	assert.True(t, KindIllegalUsage.IsUsage())
	assert.True(t, KindMissingArgument.IsUsage())
	assert.True(t, KindCommandNotFound.IsUsage())
	assert.False(t, KindPathNotFound.IsUsage())
	assert.False(t, KindInvalidPath.IsUsage())
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
}
