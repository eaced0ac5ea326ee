package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/psastudios/content-ms-go/internal/logger"
	"github.com/psastudios/content-ms-go/internal/model"
	"github.com/psastudios/content-ms-go/internal/port"
)

// Keys of the persisted namespace. Each key is one JSON document in the
// data directory.
const (
	KeyMedia        = "psaStudiosMedia"
	KeyProjects     = "psaStudiosProjects"
	KeyGithubConfig = "psaStudiosGithubConfig"
)

// ContentKeyFiles lists the file names the cross-process watcher should
// react to. Credentials are deliberately excluded: saving a token must not
// force gallery re-renders.
func ContentKeyFiles() []string {
	return []string{KeyMedia + ".json", KeyProjects + ".json"}
}

// Notifier is the slice of the bus the store needs: a same-process broadcast
// after each save, and self-write suppression for the directory watcher.
type Notifier interface {
	Notify()
	RecordLocalWrite(name string)
}

// FileStore persists the content namespace as JSON documents in a single
// directory. Writes are atomic (temp file + rename); individual saves are
// atomic but multi-key saves are not transactional, matching the
// last-write-wins model of the namespace.
type FileStore struct {
	dir string
	bus Notifier
}

// compile-time check: *FileStore must satisfy port.ContentStore
var _ port.ContentStore = (*FileStore)(nil)

func NewFileStore(dir string, bus Notifier) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir %q: %w", dir, err)
	}
	return &FileStore{dir: dir, bus: bus}, nil
}

// Load reads both entity arrays. A missing or unparsable key falls back to
// that key's default data; callers always get a valid, normalized Store and
// never an error. Defaults are not written back.
func (s *FileStore) Load(ctx context.Context) model.Store {
	out := model.Store{}

	if err := s.readKey(KeyMedia, &out.MediaItems); err != nil {
		if !os.IsNotExist(err) {
			logger.Warnf(ctx, "⚠️  Corrupted %q, falling back to defaults: %v", KeyMedia, err)
		}
		out.MediaItems = DefaultMediaItems()
	}
	if err := s.readKey(KeyProjects, &out.Projects); err != nil {
		if !os.IsNotExist(err) {
			logger.Warnf(ctx, "⚠️  Corrupted %q, falling back to defaults: %v", KeyProjects, err)
		}
		out.Projects = DefaultProjects()
	}

	out.Normalize()
	return out
}

// Save writes both entity arrays, then broadcasts on the bus. Save without
// notification is the bug class the Notifier seam exists to prevent.
func (s *FileStore) Save(ctx context.Context, st model.Store) error {
	if err := s.writeKey(KeyMedia, st.MediaItems); err != nil {
		return fmt.Errorf("saving %q: %w", KeyMedia, err)
	}
	if err := s.writeKey(KeyProjects, st.Projects); err != nil {
		return fmt.Errorf("saving %q: %w", KeyProjects, err)
	}

	s.bus.Notify()
	return nil
}

// LoadGithubConfig returns the stored credentials, or the zero value when
// absent or corrupt.
func (s *FileStore) LoadGithubConfig(ctx context.Context) model.GithubConfig {
	var cfg model.GithubConfig
	if err := s.readKey(KeyGithubConfig, &cfg); err != nil {
		if !os.IsNotExist(err) {
			logger.Warnf(ctx, "⚠️  Corrupted %q, ignoring: %v", KeyGithubConfig, err)
		}
		return model.GithubConfig{}
	}
	return cfg
}

func (s *FileStore) SaveGithubConfig(ctx context.Context, cfg model.GithubConfig) error {
	if err := s.writeKey(KeyGithubConfig, cfg); err != nil {
		return fmt.Errorf("saving %q: %w", KeyGithubConfig, err)
	}
	return nil
}

// Wipe removes all three key files, credentials included. Missing files are
// fine; the point is the post-state. Subscribers are notified once so
// gallery-derived state re-reads the (now default) store.
func (s *FileStore) Wipe(ctx context.Context) error {
	for _, key := range []string{KeyMedia, KeyProjects, KeyGithubConfig} {
		if err := os.Remove(s.keyPath(key)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("wiping %q: %w", key, err)
		}
	}

	s.bus.Notify()
	return nil
}

func (s *FileStore) readKey(key string, v any) error {
	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (s *FileStore) writeKey(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	name := key + ".json"
	tmp, err := os.CreateTemp(s.dir, name+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	// Suppress our own filesystem event before it can happen.
	s.bus.RecordLocalWrite(name)
	return os.Rename(tmp.Name(), s.keyPath(key))
}

func (s *FileStore) keyPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}
