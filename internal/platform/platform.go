package platform

import (
	"os"
	"runtime"
)

// IsWindows reports whether the generator is running on a Windows host.
// Certificate generation and the bundled-keys fallback both branch on this.
func IsWindows() bool {
	return runtime.GOOS == "windows"
}

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits; generated files keep the
// default ACLs of their parent directory there.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
