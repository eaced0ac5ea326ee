package content

import (
	"context"

	"github.com/psastudios/content-ms-go/internal/model"
	"github.com/psastudios/content-ms-go/internal/port"
)

type mediaUpdaterSrv struct {
	store port.ContentStore
}

// NewMediaUpdater constructs a MediaUpdater implementation.
func NewMediaUpdater(store port.ContentStore) port.MediaUpdater {
	return &mediaUpdaterSrv{store: store}
}

// UpdateMedia replaces the item matching id. An unknown id is a silent
// no-op: the id came from a list this controller just rendered, so a miss
// only means the record is already gone.
func (s *mediaUpdaterSrv) UpdateMedia(ctx context.Context, id string, in port.MediaInput) (model.MediaItem, error) {
	item, err := mediaFromInput(in)
	if err != nil {
		return model.MediaItem{}, err
	}
	item.ID = id

	st := s.store.Load(ctx)
	for i := range st.MediaItems {
		if st.MediaItems[i].ID != id {
			continue
		}
		st.MediaItems[i] = item
		if err := s.store.Save(ctx, st); err != nil {
			return model.MediaItem{}, err
		}
		return item, nil
	}

	return item, nil
}
