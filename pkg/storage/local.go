// Package storage persists uploaded documents on local disk.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore writes files under a base directory, one subdirectory per user.
// Stored names are random UUIDs so uploads never collide and original
// filenames never reach the filesystem.
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

// Save writes data and returns the stored path (relative to the base dir).
func (s *LocalStore) Save(userID, originalName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.NewString() + ext

	userDir := filepath.Join(s.baseDir, userID)
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create user directory: %w", err)
	}

	path := filepath.Join(userID, name)
	if err := os.WriteFile(filepath.Join(s.baseDir, path), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return path, nil
}

// Open returns the absolute path for a stored file, refusing paths that
// escape the base directory.
func (s *LocalStore) Open(storedPath string) (string, error) {
	abs := filepath.Join(s.baseDir, storedPath)
	base, err := filepath.Abs(s.baseDir)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.Abs(abs)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(resolved, base+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid stored path")
	}
	if _, err := os.Stat(resolved); err != nil {
		return "", err
	}
	return resolved, nil
}

// Delete removes a stored file. Missing files are not an error.
func (s *LocalStore) Delete(storedPath string) error {
	abs, err := s.Open(storedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return os.Remove(abs)
}
