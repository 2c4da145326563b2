package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var imageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
}

// ErrInvalidImageExtension is returned for uploads that are not jpg, jpeg,
// png or gif.
var ErrInvalidImageExtension = fmt.Errorf("invalid image extension, allowed: jpg, jpeg, png, gif")

// LocalStorage stores uploaded media on the local filesystem under a base
// directory, with a uuid suffix so concurrent uploads of the same filename
// never collide.
type LocalStorage struct {
	baseDir string
}

func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir}
}

// SaveImage validates the extension and writes the file under
// <baseDir>/<subdir>, returning the path relative to the base directory.
func (s *LocalStorage) SaveImage(subdir, filename string, src io.Reader) (string, error) {
	name, ext := splitExtension(filename)
	if !imageExtensions[strings.ToLower(ext)] {
		return "", ErrInvalidImageExtension
	}

	unique := fmt.Sprintf("%s_%s.%s", name, uuid.New().String(), ext)

	dir := filepath.Join(s.baseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(dir, unique))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filepath.Join(subdir, unique), nil
}

// Delete removes a previously stored file. A missing file is a no-op.
func (s *LocalStorage) Delete(relativePath string) error {
	if relativePath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, relativePath))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func splitExtension(filename string) (string, string) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return filename, ""
	}
	return filename[:idx], filename[idx+1:]
}
