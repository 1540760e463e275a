// Package uploads keeps uploaded documents on local disk while they are processed.
package uploads

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store writes uploads into a single directory.
type Store struct {
	dir  string
	keep bool
}

// NewStore creates dir if needed. When keep is false, Remove deletes files.
func NewStore(dir string, keep bool) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, keep: keep}, nil
}

// Dir returns the upload directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes data under a unique name derived from filename and returns its path.
func (s *Store) Save(filename string, data []byte) (string, error) {
	name := uuid.NewString() + "-" + SanitizeFilename(filename)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return path, nil
}

// Remove deletes a saved upload unless the store keeps files.
func (s *Store) Remove(path string) error {
	if s.keep {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

// SanitizeFilename strips directory components and traversal sequences.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." || name == "_" {
		name = "unnamed"
	}
	return name
}
