package content

import (
	"context"
	"io"

	"github.com/psastudios/content-ms-go/internal/model"
	"github.com/psastudios/content-ms-go/internal/port"
)

type mockStore struct {
	store model.Store
	cfg   model.GithubConfig

	saveErr   error
	saveCount int
}

func (m *mockStore) Load(ctx context.Context) model.Store { return m.store }

func (m *mockStore) Save(ctx context.Context, s model.Store) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saveCount++
	m.store = s
	return nil
}

func (m *mockStore) LoadGithubConfig(ctx context.Context) model.GithubConfig { return m.cfg }

func (m *mockStore) SaveGithubConfig(ctx context.Context, cfg model.GithubConfig) error {
	m.cfg = cfg
	return nil
}

func (m *mockStore) Wipe(ctx context.Context) error {
	m.store = model.Store{}
	m.cfg = model.GithubConfig{}
	return nil
}

type mockRemote struct {
	shaOut   string
	shaErr   error
	shaCalls int

	upsertOut   string
	upsertErr   error
	upsertCalls int
	lastUpsert  port.UpsertFileInput
}

func (m *mockRemote) GetFileSHA(ctx context.Context, cfg model.GithubConfig, path string) (string, error) {
	m.shaCalls++
	return m.shaOut, m.shaErr
}

func (m *mockRemote) UpsertFile(ctx context.Context, cfg model.GithubConfig, path string, in port.UpsertFileInput) (string, error) {
	m.upsertCalls++
	m.lastUpsert = in
	if m.upsertErr != nil {
		return "", m.upsertErr
	}
	return m.upsertOut, nil
}

type mockStorage struct {
	urlOut  string
	saveErr error

	saveCalls int
	lastKey   string
	lastType  string
	lastSize  int64
}

func (m *mockStorage) InitBucket() error { return nil }

func (m *mockStorage) SaveFile(ctx context.Context, fileKey string, r io.Reader, size int64, contentType string) (string, error) {
	m.saveCalls++
	m.lastKey, m.lastType, m.lastSize = fileKey, contentType, size
	if m.saveErr != nil {
		return "", m.saveErr
	}
	return m.urlOut, nil
}

func staticID(id string) port.IDGen {
	return func() string { return id }
}
