package port

import (
	"context"

	"github.com/psastudios/content-ms-go/internal/model"
)

// Cache holds rendered gallery projections between store changes.
type Cache interface {
	// GetGallery returns the cached payload for a category, or nil on miss.
	GetGallery(ctx context.Context, category model.Category) ([]byte, error)
	SetGallery(ctx context.Context, category model.Category, data []byte)
	// InvalidateGalleries drops every cached projection. Called on each
	// store change notification.
	InvalidateGalleries(ctx context.Context) error
}
