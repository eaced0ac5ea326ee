package cache

import (
	"context"

	"github.com/psastudios/content-ms-go/internal/model"
	"github.com/psastudios/content-ms-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetGallery(ctx context.Context, category model.Category) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) SetGallery(ctx context.Context, category model.Category, data []byte) {}

func (n *NoopCache) InvalidateGalleries(ctx context.Context) error { return nil }
