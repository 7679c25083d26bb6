// Package testutil provides helpers for building file trees in tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/filewise/pkg/filesystem"
	"github.com/arthur-debert/filewise/pkg/types"
	"github.com/spf13/afero"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// CreateDir creates a directory in the specified parent directory.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)

	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}

	return path
}

// FileExists checks if a file exists and is not a directory.
func FileExists(t *testing.T, path string) bool {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a directory exists.
func DirExists(t *testing.T, path string) bool {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// MemFS returns an in-memory types.FS pre-populated with the given
// files. Map keys are paths, values are file contents; parent
// directories are created as needed.
func MemFS(t *testing.T, files map[string]string) types.FS {
	t.Helper()

	mem := afero.NewMemMapFs()
	for path, content := range files {
		if err := mem.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directories for %s: %v", path, err)
		}
		if err := afero.WriteFile(mem, path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}
	return filesystem.NewAferoFS(mem)
}
