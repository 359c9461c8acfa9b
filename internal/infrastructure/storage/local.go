package storage

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// LocalStorage writes images below a root directory.
type LocalStorage struct {
	fs        afero.Fs
	root      string
	publicURL string
}

func NewLocalStorage(fs afero.Fs, root, publicURL string) *LocalStorage {
	return &LocalStorage{
		fs:        fs,
		root:      root,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

func (s *LocalStorage) Put(ctx context.Context, reference, contentType string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := s.path(reference)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create image directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, target, data, 0o644); err != nil {
		return fmt.Errorf("write image %s: %w", reference, err)
	}
	return nil
}

func (s *LocalStorage) URL(reference string) string {
	return s.publicURL + "/" + strings.TrimPrefix(reference, "/")
}

// path keeps references inside the storage root.
func (s *LocalStorage) path(reference string) (string, error) {
	clean := path.Clean("/" + reference)
	if clean == "/" || strings.Contains(reference, "..") {
		return "", fmt.Errorf("invalid image reference %q", reference)
	}
	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}
