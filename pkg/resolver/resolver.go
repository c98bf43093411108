// Package resolver maps user-supplied path arguments onto absolute paths.
package resolver

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/user/dirsh/pkg/shellerr"
)

// windowsReserved are the characters Windows refuses in path components.
const windowsReserved = `<>"|?*`

// Resolve joins raw onto cwd (an absolute raw replaces cwd) and lexically
// normalizes "." and ".." segments. The result need not exist. It fails with
// InvalidPath when raw contains characters the host filesystem cannot store.
func Resolve(raw, cwd string) (string, error) {
	if !valid(raw, runtime.GOOS) {
		return "", shellerr.InvalidPath(raw)
	}
	if filepath.IsAbs(raw) {
		return filepath.Clean(raw), nil
	}
	return filepath.Join(cwd, raw), nil
}

func valid(raw, goos string) bool {
	if strings.IndexByte(raw, 0) >= 0 {
		return false
	}
	if goos != "windows" {
		return true
	}
	for i, r := range raw {
		if r < 0x20 || strings.ContainsRune(windowsReserved, r) {
			return false
		}
		// a colon is only legal as a drive separator after an ASCII letter
		if r == ':' && (i != 1 || !isASCIILetter(raw[0])) {
			return false
		}
	}
	return true
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
