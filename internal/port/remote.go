package port

import (
	"context"

	"github.com/psastudios/content-ms-go/internal/model"
)

// RemoteRepo is the hosted-git contents API the snapshot publisher writes to.
type RemoteRepo interface {
	// GetFileSHA returns the current content hash of the remote file, or ""
	// when the file does not exist yet (absence is not an error).
	GetFileSHA(ctx context.Context, cfg model.GithubConfig, path string) (string, error)
	// UpsertFile creates or replaces the remote file and returns the new
	// commit sha. Passing sha == "" signals "create new".
	UpsertFile(ctx context.Context, cfg model.GithubConfig, path string, in UpsertFileInput) (string, error)
}

type UpsertFileInput struct {
	Message string
	Content string // base64-encoded payload
	SHA     string
}
