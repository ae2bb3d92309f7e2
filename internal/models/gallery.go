package models

import "time"

type GalleryKind string

const (
	GalleryKindImage GalleryKind = "image"
	GalleryKindVideo GalleryKind = "video"
)

// GalleryItem is polymorphic over image and video entries; the backend marks
// the variant by which of imagePath / videoUrl is populated.
type GalleryItem struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	ImagePath   string     `json:"imagePath"`
	VideoURL    string     `json:"videoUrl"`
	IsFeatured  bool       `json:"isFeatured"`
	SortOrder   int        `json:"sortOrder"`
	CreatedAt   *time.Time `json:"createdAt"`
}

func (g GalleryItem) Kind() GalleryKind {
	if g.VideoURL != "" {
		return GalleryKindVideo
	}
	return GalleryKindImage
}

type GalleryStats struct {
	TotalItems  int `json:"totalItems"`
	TotalImages int `json:"totalImages"`
	TotalVideos int `json:"totalVideos"`
	Featured    int `json:"featured"`
}
