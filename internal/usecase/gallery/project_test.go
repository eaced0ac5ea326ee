package gallery

import (
	"testing"

	"github.com/psastudios/content-ms-go/internal/model"
)

func storeWith(items ...model.MediaItem) model.Store {
	return model.Store{MediaItems: items}
}

func TestProject_FiltersAndPreservesOrder(t *testing.T) {
	s := storeWith(
		model.MediaItem{ID: "1", Type: model.MediaTypeImage, Category: model.CategoryCinematography},
		model.MediaItem{ID: "2", Type: model.MediaTypeVideo, Category: model.CategoryVideoEditing},
		model.MediaItem{ID: "3", Type: model.MediaTypeImage, Category: model.CategoryCinematography},
	)

	got := Project(s, model.CategoryCinematography)
	if len(got) != 2 {
		t.Fatalf("got %d items; want 2", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("order not preserved: %q, %q", got[0].ID, got[1].ID)
	}
}

func TestProject_PopulatesMissingLayout(t *testing.T) {
	s := storeWith(model.MediaItem{ID: "1", Type: model.MediaTypeVideo, Category: model.CategorySocialMedia})

	got := Project(s, model.CategorySocialMedia)
	if len(got) != 1 {
		t.Fatalf("got %d items; want 1", len(got))
	}
	if got[0].Layout.AspectRatio != "aspect-video" {
		t.Errorf("layout not synthesized: %+v", got[0].Layout)
	}
}

func TestProject_EmptyAndInvalidCategory(t *testing.T) {
	s := storeWith(model.MediaItem{ID: "1", Category: model.CategoryCinematography})

	if got := Project(s, model.CategoryVideoEditing); got == nil || len(got) != 0 {
		t.Errorf("empty projection should be an empty slice, got %v", got)
	}
	if got := Project(s, model.Category("branding")); len(got) != 0 {
		t.Errorf("invalid category should project to nothing, got %v", got)
	}
}

// The three projections partition the full media array: their union covers
// every item and they are pairwise disjoint.
func TestProject_PartitionsStore(t *testing.T) {
	s := storeWith(
		model.MediaItem{ID: "1", Category: model.CategoryCinematography},
		model.MediaItem{ID: "2", Category: model.CategoryVideoEditing},
		model.MediaItem{ID: "3", Category: model.CategorySocialMedia},
		model.MediaItem{ID: "4", Category: model.CategoryCinematography},
	)

	seen := make(map[string]model.Category)
	total := 0
	for _, cat := range model.Categories() {
		for _, item := range Project(s, cat) {
			if prev, dup := seen[item.ID]; dup {
				t.Fatalf("item %q appears in both %q and %q", item.ID, prev, cat)
			}
			seen[item.ID] = cat
			total++
		}
	}

	if total != len(s.MediaItems) {
		t.Errorf("projections cover %d items; want %d", total, len(s.MediaItems))
	}
}

func TestCounts(t *testing.T) {
	items := []model.MediaItem{
		{ID: "1", Category: model.CategoryCinematography},
		{ID: "2", Category: model.CategoryCinematography},
		{ID: "3", Category: model.CategorySocialMedia},
		{ID: "4", Category: model.Category("branding")}, // not counted anywhere
	}

	counts := Counts(items)
	if counts[model.CategoryCinematography] != 2 {
		t.Errorf("cinematography = %d; want 2", counts[model.CategoryCinematography])
	}
	if counts[model.CategorySocialMedia] != 1 {
		t.Errorf("social-media = %d; want 1", counts[model.CategorySocialMedia])
	}
	if got, ok := counts[model.CategoryVideoEditing]; !ok || got != 0 {
		t.Errorf("video-editing should be present with 0, got %d (present=%v)", got, ok)
	}
}
