package ports

import (
	"context"
	"io"
)

// DocumentStore abstracts stable storage for application documents.
// Save must generate a collision-resistant name; the client-supplied
// filename is only a hint and is never used as-is.
type DocumentStore interface {
	Save(ctx context.Context, filename string, content io.Reader) (path string, size int64, err error)
	Delete(ctx context.Context, path string) error
}
