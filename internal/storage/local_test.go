package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveImageWritesFile(t *testing.T) {
	store := NewLocalStorage(t.TempDir())

	path, err := store.SaveImage("profile_images", "avatar.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "profile_images/"), "path %q", path)
	assert.True(t, strings.HasSuffix(path, ".png"), "path %q", path)

	data, err := os.ReadFile(filepath.Join(store.baseDir, path))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestSaveImageRejectsBadExtension(t *testing.T) {
	store := NewLocalStorage(t.TempDir())

	_, err := store.SaveImage("profile_images", "avatar.exe", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidImageExtension)

	_, err = store.SaveImage("profile_images", "avatar", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidImageExtension)
}

func TestSaveImageGeneratesUniqueNames(t *testing.T) {
	store := NewLocalStorage(t.TempDir())

	first, err := store.SaveImage("posters", "poster.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.SaveImage("posters", "poster.jpg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := NewLocalStorage(t.TempDir())

	path, err := store.SaveImage("posters", "poster.jpg", strings.NewReader("a"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(path))
	require.NoError(t, store.Delete(path))
	require.NoError(t, store.Delete(""))
}
