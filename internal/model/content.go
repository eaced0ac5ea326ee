package model

// MediaType discriminates how a gallery entry is rendered downstream.
type MediaType string

const (
	MediaTypeImage        MediaType = "image"
	MediaTypeVideo        MediaType = "video"
	MediaTypeExternalLink MediaType = "external-link"
)

func (t MediaType) Valid() bool {
	switch t {
	case MediaTypeImage, MediaTypeVideo, MediaTypeExternalLink:
		return true
	}
	return false
}

// Category drives which gallery page a media item surfaces on.
// Exactly one category per item.
type Category string

const (
	CategoryCinematography Category = "cinematography"
	CategoryVideoEditing   Category = "video-editing"
	CategorySocialMedia    Category = "social-media"
)

// Categories lists every valid gallery category, in display order.
func Categories() []Category {
	return []Category{CategoryCinematography, CategoryVideoEditing, CategorySocialMedia}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryCinematography, CategoryVideoEditing, CategorySocialMedia:
		return true
	}
	return false
}

// SourceType is a provenance tag only; it never affects rendering.
type SourceType string

const (
	SourceTypeFile SourceType = "file"
	SourceTypeURL  SourceType = "url"
)

// Layout is a display hint bundle. Presentation metadata, defaulted if absent.
type Layout struct {
	ColSpan     string `json:"colSpan"`
	RowSpan     string `json:"rowSpan"`
	AspectRatio string `json:"aspectRatio"`
}

const (
	defaultColSpan    = "md:col-span-1"
	defaultRowSpan    = "md:row-span-1"
	aspectRatioVideo  = "aspect-video"
	aspectRatioSquare = "aspect-square"
)

// DefaultLayout synthesizes the layout used when a stored item lacks one.
func DefaultLayout(t MediaType) Layout {
	ratio := aspectRatioSquare
	if t == MediaTypeVideo {
		ratio = aspectRatioVideo
	}
	return Layout{ColSpan: defaultColSpan, RowSpan: defaultRowSpan, AspectRatio: ratio}
}

type MediaItem struct {
	ID          string     `json:"id"`
	Type        MediaType  `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Src         string     `json:"src"`
	Thumbnail   string     `json:"thumbnail,omitempty"`
	Category    Category   `json:"category"`
	SourceType  SourceType `json:"sourceType"`
	Layout      Layout     `json:"layout"`
	// IsExternal and ExternalURL are derived from Type and Src; they are
	// recomputed on every write and never trusted from caller input.
	IsExternal  bool   `json:"isExternal"`
	ExternalURL string `json:"externalUrl,omitempty"`
}

// Normalize fills missing layout fields and recomputes the derived
// external-link pair so the two can never drift out of sync.
func (m *MediaItem) Normalize() {
	def := DefaultLayout(m.Type)
	if m.Layout.ColSpan == "" {
		m.Layout.ColSpan = def.ColSpan
	}
	if m.Layout.RowSpan == "" {
		m.Layout.RowSpan = def.RowSpan
	}
	if m.Layout.AspectRatio == "" {
		m.Layout.AspectRatio = def.AspectRatio
	}

	if m.Type == MediaTypeExternalLink {
		m.IsExternal = true
		m.ExternalURL = m.Src
	} else {
		m.IsExternal = false
		m.ExternalURL = ""
	}
}

// Project is a secondary portfolio entity. Its category is free text,
// not the gallery enum.
type Project struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Thumbnail   string     `json:"thumbnail"`
	URL         string     `json:"url,omitempty"`
	IsExternal  bool       `json:"isExternal"`
	SourceType  SourceType `json:"sourceType"`
}

func (p *Project) Normalize() {
	p.IsExternal = p.URL != ""
}

// Store is the persisted collection of media items and projects. The two
// arrays are persisted under independent keys in the same namespace.
type Store struct {
	MediaItems []MediaItem `json:"mediaItems"`
	Projects   []Project   `json:"projects"`
}

// Normalize normalizes every record in place. Applied once at load time so
// downstream consumers always see fully-populated, schema-valid records.
func (s *Store) Normalize() {
	for i := range s.MediaItems {
		s.MediaItems[i].Normalize()
	}
	for i := range s.Projects {
		s.Projects[i].Normalize()
	}
}

// GithubConfig holds the credentials for the remote snapshot publisher.
// All three fields must be non-empty for a publish to be attempted.
type GithubConfig struct {
	Token string `json:"token"`
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

func (c GithubConfig) Complete() bool {
	return c.Token != "" && c.Owner != "" && c.Repo != ""
}
