package test

import (
	"log"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/golangci/golangci-mirror/internal/shared/fsutil"
	"github.com/joho/godotenv"
)

var initOnce sync.Once

// LoadEnv overrides process env with .env of the project root if it exists.
func LoadEnv() {
	envNames := []string{".env"}
	for _, envName := range envNames {
		fpath := filepath.Join(fsutil.GetProjectRoot(), envName)
		if _, err := os.Stat(fpath); os.IsNotExist(err) {
			continue
		}

		if err := godotenv.Overload(fpath); err != nil {
			log.Fatalf("Can't load %s: %s", envName, err)
		}
	}
}

func Init() {
	initOnce.Do(func() {
		LoadEnv()
	})
}

func MarkAsSlow(t *testing.T) {
	if os.Getenv("SLOW_TESTS_ENABLED") != "1" {
		t.SkipNow()
	}
}
