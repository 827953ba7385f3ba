// Package media stores captured photos on the local filesystem.
package media

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store writes photo payloads under a media directory and hands back the
// URI persisted on the completion row. Files are never deleted by the
// tracker, even when the owning task is: they are user media.
type Store struct {
	dir string
}

// NewStore creates a media store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// SavePhoto writes the payload to a uniquely named file and returns its path.
func (s *Store) SavePhoto(data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	path := filepath.Join(s.dir, uuid.New().String()+".jpg")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write photo: %w", err)
	}
	return path, nil
}
