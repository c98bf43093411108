//go:build unix

package osfilesystem

import (
	"golang.org/x/sys/unix"

	"github.com/user/dirsh/pkg/ports"
)

// hostAccess asks the kernel via access(2), so ACLs and the effective user are honored.
func hostAccess(path string, mode ports.AccessMode) bool {
	var bits uint32
	switch mode {
	case ports.AccessRead:
		bits = unix.R_OK
	case ports.AccessWrite:
		bits = unix.W_OK
	case ports.AccessExecute:
		bits = unix.X_OK
	default:
		return false
	}
	return unix.Access(path, bits) == nil
}
