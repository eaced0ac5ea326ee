package content

import (
	"context"

	"github.com/psastudios/content-ms-go/internal/port"
	"github.com/psastudios/content-ms-go/internal/usecase/gallery"
)

type contentListerSrv struct {
	store port.ContentStore
}

// NewContentLister constructs a ContentLister implementation.
func NewContentLister(store port.ContentStore) port.ContentLister {
	return &contentListerSrv{store: store}
}

// ListContent returns both entity arrays annotated with per-category counts
// for the admin panel's tab badges.
func (s *contentListerSrv) ListContent(ctx context.Context) (port.ListContentOutput, error) {
	st := s.store.Load(ctx)

	return port.ListContentOutput{
		MediaItems:     st.MediaItems,
		Projects:       st.Projects,
		CategoryCounts: gallery.Counts(st.MediaItems),
	}, nil
}
