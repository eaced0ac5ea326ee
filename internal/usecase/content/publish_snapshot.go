package content

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/psastudios/content-ms-go/internal/logger"
	"github.com/psastudios/content-ms-go/internal/model"
	"github.com/psastudios/content-ms-go/internal/port"
)

// SnapshotPath is where the exported store lands in the remote repository.
const SnapshotPath = "data/psa-studios-data.json"

type snapshotPublisherSrv struct {
	store  port.ContentStore
	remote port.RemoteRepo
	now    func() time.Time
}

// NewSnapshotPublisher constructs a SnapshotPublisher implementation.
func NewSnapshotPublisher(store port.ContentStore, remote port.RemoteRepo) port.SnapshotPublisher {
	return &snapshotPublisherSrv{store: store, remote: remote, now: time.Now}
}

type snapshot struct {
	MediaItems  []model.MediaItem `json:"mediaItems"`
	Projects    []model.Project   `json:"projects"`
	LastUpdated string            `json:"lastUpdated"`
	Version     string            `json:"version"`
}

// PublishSnapshot exports the store as a JSON blob to the remote repository
// file, create-or-replace keyed on the remote content hash. One attempt, no
// retry; the local store is unaffected either way.
func (s *snapshotPublisherSrv) PublishSnapshot(ctx context.Context) (port.PublishSnapshotOutput, error) {
	cfg := s.store.LoadGithubConfig(ctx)
	if !cfg.Complete() {
		return port.PublishSnapshotOutput{}, ErrNotConfigured
	}

	st := s.store.Load(ctx)
	snap := snapshot{
		MediaItems:  st.MediaItems,
		Projects:    st.Projects,
		LastUpdated: s.now().UTC().Format(time.RFC3339),
		Version:     "1.0",
	}
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return port.PublishSnapshotOutput{}, fmt.Errorf("encoding snapshot: %w", err)
	}

	// A missing remote file means "create"; any other metadata failure is
	// also treated as create and left for the PUT to surface properly.
	sha, err := s.remote.GetFileSHA(ctx, cfg, SnapshotPath)
	if err != nil {
		logger.Warnf(ctx, "⚠️  Could not fetch remote file metadata, creating new: %v", err)
		sha = ""
	}

	commit, err := s.remote.UpsertFile(ctx, cfg, SnapshotPath, port.UpsertFileInput{
		Message: fmt.Sprintf("Update studio content - %s", s.now().Format("Jan 2, 2006 3:04:05 PM")),
		Content: base64.StdEncoding.EncodeToString(raw),
		SHA:     sha,
	})
	if err != nil {
		return port.PublishSnapshotOutput{}, err
	}

	short := commit
	if len(short) > 7 {
		short = short[:7]
	}
	return port.PublishSnapshotOutput{CommitSHA: commit, ShortSHA: short}, nil
}
