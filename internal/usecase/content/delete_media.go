package content

import (
	"context"

	"github.com/psastudios/content-ms-go/internal/port"
)

type mediaDeleterSrv struct {
	store port.ContentStore
}

// NewMediaDeleter constructs a MediaDeleter implementation.
func NewMediaDeleter(store port.ContentStore) port.MediaDeleter {
	return &mediaDeleterSrv{store: store}
}

// DeleteMedia removes the item matching id. Deleting an id that is not
// there leaves the store untouched and does not save.
func (s *mediaDeleterSrv) DeleteMedia(ctx context.Context, id string) error {
	st := s.store.Load(ctx)

	kept := st.MediaItems[:0:0]
	for _, item := range st.MediaItems {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(st.MediaItems) {
		return nil
	}

	st.MediaItems = kept
	return s.store.Save(ctx, st)
}
