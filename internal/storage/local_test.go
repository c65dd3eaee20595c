package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestNewLocalStorage_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewLocalStorage(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalStorage_Save(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("writes file under its name", func(t *testing.T) {
		path, err := s.Save(ctx, "hello.txt", strings.NewReader("hello"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "hello.txt"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("last write wins", func(t *testing.T) {
		_, err := s.Save(ctx, "same.txt", strings.NewReader("first version"))
		require.NoError(t, err)
		_, err = s.Save(ctx, "same.txt", strings.NewReader("second"))
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "same.txt"))
		require.NoError(t, err)
		assert.Equal(t, "second", string(data))
	})

	t.Run("traversal stays inside dir", func(t *testing.T) {
		path, err := s.Save(ctx, "../escape.txt", strings.NewReader("x"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "escape.txt"), path)

		_, err = os.Stat(filepath.Join(filepath.Dir(dir), "escape.txt"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("invalid filename", func(t *testing.T) {
		_, err := s.Save(ctx, "..", strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrInvalidFilename)
	})

	t.Run("read failure removes partial file", func(t *testing.T) {
		_, err := s.Save(ctx, "broken.bin", failingReader{})
		assert.Error(t, err)

		_, statErr := os.Stat(filepath.Join(dir, "broken.bin"))
		assert.True(t, os.IsNotExist(statErr))
	})
}
