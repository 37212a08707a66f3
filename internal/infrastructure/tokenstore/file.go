// Package tokenstore persists the bearer credential. The durable state of the
// whole client is exactly one key (auth_token); the file store keeps it as a
// single 0600 file, the platform analogue of the browser's localStorage entry.
package tokenstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// File stores the token at a fixed path on disk.
type File struct {
	path string
}

// NewFile creates a file-backed store, ensuring the parent directory exists.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("tokenstore: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("tokenstore: create dir: %w", err)
	}
	return &File{path: path}, nil
}

// Token returns the stored token, or "" when none is stored.
func (f *File) Token() (string, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("tokenstore: read: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// Save writes the token, replacing any previous value.
func (f *File) Save(token string) error {
	if err := os.WriteFile(f.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("tokenstore: write: %w", err)
	}
	return nil
}

// Clear removes the token. Clearing an absent token is a no-op.
func (f *File) Clear() error {
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("tokenstore: remove: %w", err)
	}
	return nil
}
