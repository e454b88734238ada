//go:build windows

package generator

import "os"

// renameio has no Windows support; fall back to a plain write.
func writeAtomic(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
