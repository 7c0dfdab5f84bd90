// internal/storage/local.go
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage writes proof images to a directory that the router serves
// statically under /uploads. No cleanup of orphaned files is performed.
type LocalStorage struct {
	dir string
}

// NewLocalStorage ensures the upload directory exists.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &LocalStorage{dir: dir}, nil
}

func (s *LocalStorage) Save(originalName string, r io.Reader) (string, string, error) {
	name := uniqueName(originalName)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return name, "/uploads/" + name, nil
}
