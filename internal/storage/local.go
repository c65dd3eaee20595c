package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sbilibin2017/freaksearch-chat/internal/logger"
)

// LocalStorage stores files in a directory on the local filesystem.
// Writing an existing name replaces the file.
type LocalStorage struct {
	dir string
}

// NewLocalStorage creates dir if absent and returns a storage writing into it.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir %s: %w", dir, err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Save writes the contents of r under filename and returns the written path.
func (s *LocalStorage) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	name, err := CleanFilename(filename)
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	n, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	logger.FromContext(ctx).Infow("file stored", "path", path, "size", n)
	return path, nil
}
