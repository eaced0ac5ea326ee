package port

import (
	"context"

	"github.com/psastudios/content-ms-go/internal/model"
)

// ContentStore is the persisted key-value namespace holding the studio content.
//
// Load never fails: a missing or corrupted key yields that key's default data,
// so callers always get a valid Store shape back. Save must broadcast a
// same-process change notification after a successful write.
type ContentStore interface {
	Load(ctx context.Context) model.Store
	Save(ctx context.Context, s model.Store) error

	// Github credentials live in the same namespace but saving them must not
	// trigger gallery notifications.
	LoadGithubConfig(ctx context.Context) model.GithubConfig
	SaveGithubConfig(ctx context.Context, cfg model.GithubConfig) error

	// Wipe removes every key in the namespace, credentials included. The next
	// Load falls back to the default seed data.
	Wipe(ctx context.Context) error
}
