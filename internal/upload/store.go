package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"jobconnect/internal/domain"
)

var (
	allowedExtensions = map[string]struct{}{
		".pdf": {}, ".doc": {}, ".docx": {},
	}
	unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
)

// Store writes uploaded files under a single directory. Saves are
// synchronous: the handler waits for the full body before acknowledging.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Allowed reports whether the filename carries an accepted extension
// (pdf, doc, docx).
func Allowed(filename string) bool {
	_, ok := allowedExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// Save persists the file under a unique, sanitized name and returns the
// stored filename and its full path.
func (s *Store) Save(fh *multipart.FileHeader) (filename, path string, err error) {
	if fh == nil || fh.Filename == "" {
		return "", "", fmt.Errorf("%w: missing file", domain.ErrInvalidInput)
	}
	if !Allowed(fh.Filename) {
		return "", "", fmt.Errorf("%w: invalid file type", domain.ErrInvalidInput)
	}
	safe := unsafeChars.ReplaceAllString(filepath.Base(fh.Filename), "_")
	filename = fmt.Sprintf("%d_%s", time.Now().UnixMilli(), safe)
	path = filepath.Join(s.dir, filename)

	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(path)
		return "", "", fmt.Errorf("write upload: %w", err)
	}
	return filename, path, nil
}

// Remove deletes a stored file; a missing file is not an error.
func (s *Store) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
