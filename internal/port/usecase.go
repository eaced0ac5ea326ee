package port

import (
	"context"
	"io"

	"github.com/psastudios/content-ms-go/internal/model"
)

type IDGen func() string

// MediaCreator appends a new media item to the store.
type MediaCreator interface {
	CreateMedia(ctx context.Context, in MediaInput) (model.MediaItem, error)
}

// MediaInput carries caller-supplied fields for a create or update. Derived
// fields (isExternal, externalUrl) are always recomputed, never accepted.
type MediaInput struct {
	Type        string
	Title       string
	Description string
	Src         string
	Thumbnail   string
	Category    string
	SourceType  string
	Layout      *model.Layout
}

// MediaUpdater replaces the media item matching the given ID.
// An unknown ID is a silent no-op, not an error.
type MediaUpdater interface {
	UpdateMedia(ctx context.Context, id string, in MediaInput) (model.MediaItem, error)
}

// MediaDeleter removes a media item by ID. An unknown ID is a no-op.
type MediaDeleter interface {
	DeleteMedia(ctx context.Context, id string) error
}

// ProjectCreator, ProjectUpdater and ProjectDeleter mirror the media
// operations for the secondary entity.
type ProjectCreator interface {
	CreateProject(ctx context.Context, in ProjectInput) (model.Project, error)
}
type ProjectInput struct {
	Title       string
	Category    string
	Description string
	Thumbnail   string
	URL         string
	SourceType  string
}
type ProjectUpdater interface {
	UpdateProject(ctx context.Context, id string, in ProjectInput) (model.Project, error)
}
type ProjectDeleter interface {
	DeleteProject(ctx context.Context, id string) error
}

// ContentLister returns the current store annotated with per-category counts.
type ContentLister interface {
	ListContent(ctx context.Context) (ListContentOutput, error)
}
type ListContentOutput struct {
	MediaItems     []model.MediaItem      `json:"mediaItems"`
	Projects       []model.Project        `json:"projects"`
	CategoryCounts map[model.Category]int `json:"categoryCounts"`
}

// GalleryGetter projects the store onto one gallery category.
type GalleryGetter interface {
	GetGallery(ctx context.Context, category model.Category) ([]model.MediaItem, error)
}

// SnapshotPublisher pushes a point-in-time JSON export of the store to the
// remote repository file.
type SnapshotPublisher interface {
	PublishSnapshot(ctx context.Context) (PublishSnapshotOutput, error)
}
type PublishSnapshotOutput struct {
	CommitSHA string `json:"commit_sha"`
	ShortSHA  string `json:"short_sha"`
}

// FileUploader stores an uploaded file with the blob collaborator and returns
// its public URL.
type FileUploader interface {
	UploadFile(ctx context.Context, in UploadFileInput) (UploadFileOutput, error)
}
type UploadFileInput struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}
type UploadFileOutput struct {
	URL string `json:"url"`
	Key string `json:"key"`
}
