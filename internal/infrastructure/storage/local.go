// Package storage provides the local-disk blob store backing logo uploads.
// Files live under a single directory served statically at /uploads/; the
// rest of the system only ever handles the returned URL string.
package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

const publicPrefix = "/uploads/"

// LocalStore stores blobs on the local filesystem under dir.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

// EnsureReady creates the upload directory. Idempotent; called once at
// process startup rather than as an import side effect.
func (s *LocalStore) EnsureReady() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("ensure upload dir: %w", err)
	}
	return nil
}

// Store writes data under a random unique name preserving the extension of
// originalName and returns the public URL.
func (s *LocalStore) Store(data []byte, originalName string) (string, error) {
	name := uuid.NewString() + filepath.Ext(originalName)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("store blob: %w", err)
	}
	return publicPrefix + name, nil
}

// RemoveByURL deletes the blob behind url. Missing blobs are not an error.
func (s *LocalStore) RemoveByURL(url string) error {
	name := path.Base(url)
	if name == "." || name == "/" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove blob: %w", err)
	}
	return nil
}

// Dir returns the directory blobs are written to.
func (s *LocalStore) Dir() string {
	return s.dir
}
