package gallery

import (
	"context"

	"github.com/psastudios/content-ms-go/internal/model"
	"github.com/psastudios/content-ms-go/internal/port"
)

// Project filters the store's media items down to one category, preserving
// insertion order. Every returned item carries a fully-populated layout; an
// empty projection is a valid, displayable state.
func Project(s model.Store, category model.Category) []model.MediaItem {
	out := make([]model.MediaItem, 0)
	if !category.Valid() {
		return out
	}

	for _, item := range s.MediaItems {
		if item.Category != category {
			continue
		}
		item.Normalize()
		out = append(out, item)
	}
	return out
}

// Counts tallies media items per valid category. Every category is present
// in the result even when empty, so display code never checks for a missing
// key.
func Counts(items []model.MediaItem) map[model.Category]int {
	counts := make(map[model.Category]int, len(model.Categories()))
	for _, cat := range model.Categories() {
		counts[cat] = 0
	}
	for _, item := range items {
		if item.Category.Valid() {
			counts[item.Category]++
		}
	}
	return counts
}

type galleryGetterSrv struct {
	store port.ContentStore
}

// NewGalleryGetter constructs a GalleryGetter implementation.
func NewGalleryGetter(store port.ContentStore) port.GalleryGetter {
	return &galleryGetterSrv{store: store}
}

func (s *galleryGetterSrv) GetGallery(ctx context.Context, category model.Category) ([]model.MediaItem, error) {
	return Project(s.store.Load(ctx), category), nil
}
