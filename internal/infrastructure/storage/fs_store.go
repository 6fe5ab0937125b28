package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jobportal/job-portal/internal/core/domain"
)

// FSStore persists application documents on the local filesystem under a
// single root directory. Stored names are uuid-prefixed so client-supplied
// filenames can never collide or traverse outside the root.
type FSStore struct {
	root string
}

// NewFSStore creates the root directory if needed and returns the store.
func NewFSStore(root string) (*FSStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create document root: %w", err)
	}
	return &FSStore{root: root}, nil
}

// Save writes content to a new file and returns its path and size. The
// write goes through a temp file and a rename so a crashed upload never
// leaves a partial document at the final path.
func (s *FSStore) Save(ctx context.Context, filename string, content io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	name := uuid.NewString() + "_" + sanitizeFilename(filename)
	finalPath := filepath.Join(s.root, name)

	tmp, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}

	size, err := io.Copy(tmp, content)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return "", 0, fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}

	if err := os.Rename(tmp.Name(), finalPath); err != nil {
		_ = os.Remove(tmp.Name())
		return "", 0, fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}

	return finalPath, size, nil
}

// Delete removes a stored document. Missing files are not an error: the
// compensating cleanup may race a manual removal.
func (s *FSStore) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}
	return nil
}

// sanitizeFilename strips any path components and characters that have no
// business in a stored name. The result is only a readability suffix; the
// uuid prefix carries the uniqueness.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == ".." || name == "/" || name == "" {
		return "document"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		return "document"
	}
	return out
}
