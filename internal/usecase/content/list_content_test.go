package content

import (
	"context"
	"testing"

	"github.com/psastudios/content-ms-go/internal/model"
)

func TestListContent(t *testing.T) {
	st := model.Store{
		MediaItems: []model.MediaItem{
			{ID: "1", Category: model.CategoryCinematography},
			{ID: "2", Category: model.CategoryCinematography},
			{ID: "3", Category: model.CategorySocialMedia},
		},
		Projects: []model.Project{{ID: "p", Title: "T"}},
	}
	repo := &mockStore{store: st}
	svc := NewContentLister(repo)

	out, err := svc.ListContent(context.Background())
	if err != nil {
		t.Fatalf("ListContent: %v", err)
	}

	if len(out.MediaItems) != 3 || len(out.Projects) != 1 {
		t.Errorf("unexpected sizes: media=%d projects=%d", len(out.MediaItems), len(out.Projects))
	}
	if out.CategoryCounts[model.CategoryCinematography] != 2 {
		t.Errorf("cinematography count = %d; want 2", out.CategoryCounts[model.CategoryCinematography])
	}
	if out.CategoryCounts[model.CategoryVideoEditing] != 0 {
		t.Errorf("video-editing count = %d; want 0", out.CategoryCounts[model.CategoryVideoEditing])
	}
}
