package port

import (
	"context"
	"io"
)

// Storage is the blob-store collaborator behind the admin upload form. The
// CRUD controller only ever consumes the returned public URL.
type Storage interface {
	InitBucket() error
	SaveFile(ctx context.Context, fileKey string, r io.Reader, size int64, contentType string) (string, error)
}
