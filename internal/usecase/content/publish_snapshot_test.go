package content

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/psastudios/content-ms-go/internal/model"
)

func fixedNow() time.Time {
	return time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC)
}

func newTestPublisher(repo *mockStore, remote *mockRemote) *snapshotPublisherSrv {
	srv := NewSnapshotPublisher(repo, remote).(*snapshotPublisherSrv)
	srv.now = fixedNow
	return srv
}

func TestPublishSnapshot_MissingCredentialsMakesNoCalls(t *testing.T) {
	cases := []model.GithubConfig{
		{},
		{Owner: "psa", Repo: "site"},
		{Token: "tok", Repo: "site"},
		{Token: "tok", Owner: "psa"},
	}

	for _, cfg := range cases {
		repo := &mockStore{cfg: cfg}
		remote := &mockRemote{}
		srv := newTestPublisher(repo, remote)

		if _, err := srv.PublishSnapshot(context.Background()); !errors.Is(err, ErrNotConfigured) {
			t.Fatalf("cfg %+v: expected ErrNotConfigured, got %v", cfg, err)
		}
		if remote.shaCalls != 0 || remote.upsertCalls != 0 {
			t.Errorf("cfg %+v: expected zero network calls, got sha=%d upsert=%d", cfg, remote.shaCalls, remote.upsertCalls)
		}
	}
}

func TestPublishSnapshot_CreatesWhenFileAbsent(t *testing.T) {
	repo := &mockStore{
		cfg:   model.GithubConfig{Token: "tok", Owner: "psa", Repo: "site"},
		store: storeWithOneItem("x"),
	}
	remote := &mockRemote{shaOut: "", upsertOut: "deadbeefcafe"}
	srv := newTestPublisher(repo, remote)

	out, err := srv.PublishSnapshot(context.Background())
	if err != nil {
		t.Fatalf("PublishSnapshot: %v", err)
	}

	if remote.lastUpsert.SHA != "" {
		t.Errorf("sha = %q; want empty for create", remote.lastUpsert.SHA)
	}
	if out.CommitSHA != "deadbeefcafe" || out.ShortSHA != "deadbee" {
		t.Errorf("output = %+v", out)
	}

	// the payload is the full store plus version metadata
	raw, err := base64.StdEncoding.DecodeString(remote.lastUpsert.Content)
	if err != nil {
		t.Fatalf("content is not base64: %v", err)
	}
	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		t.Fatalf("content is not JSON: %v", err)
	}
	if snap.Version != "1.0" {
		t.Errorf("version = %q; want 1.0", snap.Version)
	}
	if snap.LastUpdated != "2025-03-14T15:09:26Z" {
		t.Errorf("lastUpdated = %q", snap.LastUpdated)
	}
	if len(snap.MediaItems) != 1 || snap.MediaItems[0].ID != "x" {
		t.Errorf("snapshot media: %+v", snap.MediaItems)
	}

	if !strings.Contains(remote.lastUpsert.Message, "Update studio content - ") {
		t.Errorf("commit message = %q", remote.lastUpsert.Message)
	}
}

func TestPublishSnapshot_UpdatesWithExistingSHA(t *testing.T) {
	repo := &mockStore{cfg: model.GithubConfig{Token: "tok", Owner: "psa", Repo: "site"}}
	remote := &mockRemote{shaOut: "abc123", upsertOut: "cafe"}
	srv := newTestPublisher(repo, remote)

	out, err := srv.PublishSnapshot(context.Background())
	if err != nil {
		t.Fatalf("PublishSnapshot: %v", err)
	}
	if remote.lastUpsert.SHA != "abc123" {
		t.Errorf("sha = %q; want abc123", remote.lastUpsert.SHA)
	}
	if out.ShortSHA != "cafe" {
		t.Errorf("short sha = %q; want cafe (shorter than 7 stays whole)", out.ShortSHA)
	}
}

func TestPublishSnapshot_MetadataFailureFallsBackToCreate(t *testing.T) {
	repo := &mockStore{cfg: model.GithubConfig{Token: "tok", Owner: "psa", Repo: "site"}}
	remote := &mockRemote{shaErr: errors.New("boom"), upsertOut: "cafe"}
	srv := newTestPublisher(repo, remote)

	if _, err := srv.PublishSnapshot(context.Background()); err != nil {
		t.Fatalf("PublishSnapshot: %v", err)
	}
	if remote.lastUpsert.SHA != "" {
		t.Errorf("sha = %q; want empty after a metadata failure", remote.lastUpsert.SHA)
	}
}

func TestPublishSnapshot_RemoteErrorSurfaced(t *testing.T) {
	repo := &mockStore{cfg: model.GithubConfig{Token: "tok", Owner: "psa", Repo: "site"}, store: storeWithOneItem("x")}
	before := repo.store
	remote := &mockRemote{upsertErr: errors.New("data/psa-studios-data.json does not match sha")}
	srv := newTestPublisher(repo, remote)

	_, err := srv.PublishSnapshot(context.Background())
	if err == nil || err.Error() != "data/psa-studios-data.json does not match sha" {
		t.Fatalf("expected the remote message verbatim, got %v", err)
	}

	// a failed publish never mutates local state
	if repo.saveCount != 0 {
		t.Error("publish must not save the local store")
	}
	if len(repo.store.MediaItems) != len(before.MediaItems) {
		t.Error("local store changed after a failed publish")
	}
}
