package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/psastudios/content-ms-go/internal/model"
)

type mockNotifier struct {
	notifyCount int
	localWrites []string
}

func (m *mockNotifier) Notify()                      { m.notifyCount++ }
func (m *mockNotifier) RecordLocalWrite(name string) { m.localWrites = append(m.localWrites, name) }

func testStore(t *testing.T) (*FileStore, *mockNotifier, string) {
	t.Helper()
	dir := t.TempDir()
	n := &mockNotifier{}
	s, err := NewFileStore(dir, n)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return s, n, dir
}

func sampleStore() model.Store {
	st := model.Store{
		MediaItems: []model.MediaItem{
			{ID: "a", Type: model.MediaTypeImage, Title: "A", Description: "d", Src: "/a.jpg", Category: model.CategoryCinematography, SourceType: model.SourceTypeFile},
			{ID: "b", Type: model.MediaTypeVideo, Title: "B", Description: "d", Src: "/b.mp4", Category: model.CategoryVideoEditing, SourceType: model.SourceTypeURL},
		},
		Projects: []model.Project{
			{ID: "p1", Title: "P", Category: "Films", Description: "d", Thumbnail: "/t.jpg", SourceType: model.SourceTypeFile},
		},
	}
	st.Normalize()
	return st
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, n, _ := testStore(t)
	ctx := context.Background()

	want := sampleStore()
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := s.Load(ctx)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round-trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}

	if n.notifyCount != 1 {
		t.Errorf("Save fired %d notifications; want exactly 1", n.notifyCount)
	}
}

func TestSaveRecordsLocalWritesBeforeRename(t *testing.T) {
	s, n, _ := testStore(t)

	if err := s.Save(context.Background(), sampleStore()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	want := map[string]bool{KeyMedia + ".json": true, KeyProjects + ".json": true}
	for _, name := range n.localWrites {
		delete(want, name)
	}
	if len(want) != 0 {
		t.Errorf("missing self-write records for %v", want)
	}
}

func TestLoadMissingKeysReturnsDefaults(t *testing.T) {
	s, _, dir := testStore(t)

	got := s.Load(context.Background())
	if len(got.MediaItems) == 0 || len(got.Projects) == 0 {
		t.Fatal("expected default data for missing keys")
	}

	// defaults must not be written back by Load
	if _, err := os.Stat(filepath.Join(dir, KeyMedia+".json")); !os.IsNotExist(err) {
		t.Error("Load wrote the default media back to disk")
	}
}

func TestLoadCorruptedKeyReturnsDefaults(t *testing.T) {
	s, _, dir := testStore(t)

	if err := os.WriteFile(filepath.Join(dir, KeyMedia+".json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := s.Load(context.Background())
	if len(got.MediaItems) != len(DefaultMediaItems()) {
		t.Errorf("got %d media items; want the %d defaults", len(got.MediaItems), len(DefaultMediaItems()))
	}
}

func TestLoadNormalizesStoredRecords(t *testing.T) {
	s, _, dir := testStore(t)

	// a record persisted by an older build, without layout or derived fields
	raw := []map[string]any{{
		"id": "x", "type": "video", "title": "T", "description": "d",
		"src": "/v.mp4", "category": "cinematography", "sourceType": "url",
	}}
	data, _ := json.Marshal(raw)
	if err := os.WriteFile(filepath.Join(dir, KeyMedia+".json"), data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := s.Load(context.Background())
	if len(got.MediaItems) != 1 {
		t.Fatalf("got %d items; want 1", len(got.MediaItems))
	}
	if got.MediaItems[0].Layout.AspectRatio != "aspect-video" {
		t.Errorf("layout not synthesized: %+v", got.MediaItems[0].Layout)
	}
}

func TestGithubConfigRoundTripWithoutNotification(t *testing.T) {
	s, n, _ := testStore(t)
	ctx := context.Background()

	cfg := model.GithubConfig{Token: "tok", Owner: "psa", Repo: "site"}
	if err := s.SaveGithubConfig(ctx, cfg); err != nil {
		t.Fatalf("SaveGithubConfig: %v", err)
	}

	if got := s.LoadGithubConfig(ctx); got != cfg {
		t.Errorf("got %+v; want %+v", got, cfg)
	}
	if n.notifyCount != 0 {
		t.Errorf("saving credentials fired %d notifications; want 0", n.notifyCount)
	}
}

func TestLoadGithubConfigMissingIsZero(t *testing.T) {
	s, _, _ := testStore(t)

	if got := s.LoadGithubConfig(context.Background()); got != (model.GithubConfig{}) {
		t.Errorf("got %+v; want zero config", got)
	}
}

func TestWipeRemovesEverythingAndNotifies(t *testing.T) {
	s, n, dir := testStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, sampleStore()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.SaveGithubConfig(ctx, model.GithubConfig{Token: "tok", Owner: "psa", Repo: "site"}); err != nil {
		t.Fatalf("SaveGithubConfig: %v", err)
	}
	n.notifyCount = 0

	if err := s.Wipe(ctx); err != nil {
		t.Fatalf("Wipe: %v", err)
	}

	for _, key := range []string{KeyMedia, KeyProjects, KeyGithubConfig} {
		if _, err := os.Stat(filepath.Join(dir, key+".json")); !os.IsNotExist(err) {
			t.Errorf("%q still present after wipe (err=%v)", key, err)
		}
	}
	if n.notifyCount != 1 {
		t.Errorf("Wipe fired %d notifications; want exactly 1", n.notifyCount)
	}

	got := s.Load(ctx)
	if len(got.MediaItems) != len(DefaultMediaItems()) || len(got.Projects) != len(DefaultProjects()) {
		t.Errorf("post-wipe Load returned %d media / %d projects; want the defaults", len(got.MediaItems), len(got.Projects))
	}
	if cfg := s.LoadGithubConfig(ctx); cfg != (model.GithubConfig{}) {
		t.Errorf("credentials survived the wipe: %+v", cfg)
	}
}

func TestWipeOnEmptyStoreIsANoOp(t *testing.T) {
	s, n, _ := testStore(t)

	if err := s.Wipe(context.Background()); err != nil {
		t.Fatalf("Wipe on empty dir: %v", err)
	}
	if n.notifyCount != 1 {
		t.Errorf("Wipe fired %d notifications; want 1", n.notifyCount)
	}
}
