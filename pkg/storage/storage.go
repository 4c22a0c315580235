package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

type Storage struct{}

func (s *Storage) SaveFile(filePath string, content []byte) error {
	err := os.WriteFile(filePath, content, 0644)
	if err != nil {
		return fmt.Errorf("error saving file %s: %w", filePath, err)
	}

	return nil
}

// RequireDir fails unless path exists and is a directory.
func (s *Storage) RequireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s is not a directory: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

// EnsureDir creates dir and its parents when missing and returns its absolute
// path. An existing non-directory at dir is an error.
func (s *Storage) EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	info, err := os.Stat(abs)
	switch {
	case err == nil && !info.IsDir():
		return "", fmt.Errorf("%s is not a directory", abs)
	case err == nil:
		return abs, nil
	case !os.IsNotExist(err):
		return "", fmt.Errorf("failed to stat %s: %w", abs, err)
	}

	if err := os.MkdirAll(abs, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", abs, err)
	}
	return abs, nil
}
