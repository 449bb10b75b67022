package bootstrap

import (
	"errors"
	"fmt"
	"os"
)

// DirPerm is the mode used for created directories (before umask)
const DirPerm = 0o755

// ErrEmptyPath is returned when a directory path is empty
var ErrEmptyPath = errors.New("empty directory path")

// EnsureDirectories creates each path, including missing parents, in order.
// Directories that already exist are left untouched. The first failure is
// returned and the remaining paths are not attempted.
func EnsureDirectories(paths ...string) error {
	for _, p := range paths {
		if p == "" {
			return ErrEmptyPath
		}
		if err := os.MkdirAll(p, DirPerm); err != nil {
			return fmt.Errorf("create directory %q: %w", p, err)
		}
	}
	return nil
}
