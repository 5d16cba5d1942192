package attach

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// DirStore is a filesystem-backed Uploader and Resolver.
// Images are written under a single directory with random names; indices
// are dense and assigned in upload order.
type DirStore struct {
	mu    sync.Mutex
	dir   string
	paths []string
}

// NewDirStore creates (if needed) the attachments directory and returns a
// store over it.
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create attachments dir: %w", err)
	}
	return &DirStore{dir: dir}, nil
}

// Upload writes data into the store and returns its index.
func (s *DirStore) Upload(ctx context.Context, data []byte, mime string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	name := uuid.NewString() + extensionFor(mime)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("write attachment: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.paths = append(s.paths, path)
	return len(s.paths) - 1, nil
}

// Resolve returns the stored file path for an index.
func (s *DirStore) Resolve(index int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.paths) {
		return "", false
	}
	return s.paths[index], true
}

// Len returns the number of stored attachments.
func (s *DirStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.paths)
}

// extensionFor maps common image mime types to file extensions.
func extensionFor(mime string) string {
	switch mime {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	default:
		return ".bin"
	}
}
