package fsutil

import (
	"os"
	"path/filepath"
)

// GetProjectRoot returns the nearest directory containing go.mod, "go test" runs with package dir as
// working dir. The working dir is returned if there is no go.mod above it.
func GetProjectRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		return "./"
	}

	for dir := wd; ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		if parent := filepath.Dir(dir); parent == dir {
			return wd
		}
	}
}
