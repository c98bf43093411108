//go:build !unix

package osfilesystem

import (
	"os"

	"github.com/user/dirsh/pkg/ports"
)

func hostAccess(path string, mode ports.AccessMode) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return permitted(info.Mode().Perm(), mode)
}
