package store

import "github.com/psastudios/content-ms-go/internal/model"

// DefaultMediaItems is the built-in portfolio shown before an operator has
// saved anything. Consumers fall back to it on a missing or corrupt key; it
// is only ever persisted once the admin surface saves a change.
func DefaultMediaItems() []model.MediaItem {
	return []model.MediaItem{
		{
			ID:          "1",
			Type:        model.MediaTypeImage,
			Title:       "Cinematic Portrait",
			Description: "Dramatic lighting cinematography",
			Src:         "/placeholder.svg?height=400&width=600",
			Category:    model.CategoryCinematography,
			SourceType:  model.SourceTypeFile,
			Layout:      model.Layout{ColSpan: "md:col-span-2", RowSpan: "md:row-span-2", AspectRatio: "aspect-[16/10]"},
		},
		{
			ID:          "2",
			Type:        model.MediaTypeVideo,
			Title:       "Behind the Scenes",
			Description: "Video editing process showcase",
			Src:         "/placeholder.svg?height=400&width=600",
			Thumbnail:   "/placeholder.svg?height=400&width=600",
			Category:    model.CategoryVideoEditing,
			SourceType:  model.SourceTypeURL,
			Layout:      model.Layout{ColSpan: "md:col-span-1", RowSpan: "md:row-span-1", AspectRatio: "aspect-video"},
		},
		{
			ID:          "3",
			Type:        model.MediaTypeExternalLink,
			Title:       "Campaign Reel",
			Description: "Short-form content for social platforms",
			Src:         "https://www.instagram.com/psa.studios",
			Thumbnail:   "/placeholder.svg?height=400&width=600",
			Category:    model.CategorySocialMedia,
			SourceType:  model.SourceTypeURL,
			Layout:      model.Layout{ColSpan: "md:col-span-1", RowSpan: "md:row-span-1", AspectRatio: "aspect-square"},
		},
	}
}

func DefaultProjects() []model.Project {
	return []model.Project{
		{
			ID:          "1",
			Title:       "Wedding Film",
			Category:    "Cinematography",
			Description: "Full-day coverage with a cinematic edit",
			Thumbnail:   "/placeholder.svg?height=400&width=600",
			SourceType:  model.SourceTypeFile,
		},
		{
			ID:          "2",
			Title:       "Product Launch",
			Category:    "Social Media",
			Description: "Vertical campaign assets for a product drop",
			Thumbnail:   "/placeholder.svg?height=400&width=600",
			URL:         "https://www.instagram.com/psa.studios",
			SourceType:  model.SourceTypeURL,
		},
	}
}
