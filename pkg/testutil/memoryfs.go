package testutil

import (
	"testing"

	"github.com/spf13/afero"
)

// NewMemoryFS creates an empty in-memory filesystem
func NewMemoryFS() afero.Fs {
	return afero.NewMemMapFs()
}

// WriteMemoryFiles creates empty files at the given absolute paths.
// Parent directories are created implicitly.
func WriteMemoryFiles(t *testing.T, fs afero.Fs, paths ...string) {
	t.Helper()

	for _, path := range paths {
		if err := afero.WriteFile(fs, path, []byte(path), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}
}

// MemoryExists reports whether path exists in fs
func MemoryExists(t *testing.T, fs afero.Fs, path string) bool {
	t.Helper()

	exists, err := afero.Exists(fs, path)
	if err != nil {
		t.Fatalf("Failed to stat %s: %v", path, err)
	}
	return exists
}
