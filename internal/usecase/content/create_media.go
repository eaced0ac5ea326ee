package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/psastudios/content-ms-go/internal/model"
	"github.com/psastudios/content-ms-go/internal/port"
)

type mediaCreatorSrv struct {
	store port.ContentStore
	genID port.IDGen
}

// NewMediaCreator constructs a MediaCreator implementation.
func NewMediaCreator(store port.ContentStore, genID port.IDGen) port.MediaCreator {
	return &mediaCreatorSrv{store: store, genID: genID}
}

// CreateMedia validates the input, assigns a fresh ID, appends the item and
// persists the store. The save cascades to the notification bus.
func (s *mediaCreatorSrv) CreateMedia(ctx context.Context, in port.MediaInput) (model.MediaItem, error) {
	item, err := mediaFromInput(in)
	if err != nil {
		return model.MediaItem{}, err
	}
	item.ID = s.genID()

	st := s.store.Load(ctx)
	st.MediaItems = append(st.MediaItems, item)
	if err := s.store.Save(ctx, st); err != nil {
		return model.MediaItem{}, err
	}

	return item, nil
}

// mediaFromInput builds a normalized media item from caller-supplied fields.
// Derived fields are recomputed here on every create and update so isExternal
// and externalUrl can never drift apart.
func mediaFromInput(in port.MediaInput) (model.MediaItem, error) {
	title := strings.TrimSpace(in.Title)
	desc := strings.TrimSpace(in.Description)
	src := strings.TrimSpace(in.Src)

	if title == "" {
		return model.MediaItem{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if desc == "" {
		return model.MediaItem{}, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if src == "" {
		return model.MediaItem{}, fmt.Errorf("%w: src is required", ErrValidation)
	}

	mediaType := model.MediaType(in.Type)
	if !mediaType.Valid() {
		return model.MediaItem{}, fmt.Errorf("%w: unknown media type %q", ErrValidation, in.Type)
	}
	category := model.Category(in.Category)
	if !category.Valid() {
		return model.MediaItem{}, fmt.Errorf("%w: unknown category %q", ErrValidation, in.Category)
	}

	sourceType := model.SourceType(in.SourceType)
	if sourceType != model.SourceTypeFile && sourceType != model.SourceTypeURL {
		sourceType = model.SourceTypeURL
	}

	item := model.MediaItem{
		Type:        mediaType,
		Title:       title,
		Description: desc,
		Src:         src,
		Thumbnail:   strings.TrimSpace(in.Thumbnail),
		Category:    category,
		SourceType:  sourceType,
	}
	if in.Layout != nil {
		item.Layout = *in.Layout
	}
	item.Normalize()

	return item, nil
}
