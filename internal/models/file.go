package models

import "time"

type FileType string

const (
	FileTypeFolder   FileType = "folder"
	FileTypeImage    FileType = "image"
	FileTypeVideo    FileType = "video"
	FileTypeDocument FileType = "document"
)

// FileEntry is a node in the server-exposed media tree. Path is a virtual
// hierarchical key, not a local filesystem handle.
type FileEntry struct {
	Name      string     `json:"name"`
	Type      FileType   `json:"type"`
	Size      int64      `json:"size"`
	CreatedAt *time.Time `json:"createdAt"`
	Path      string     `json:"path"`
}

func (f FileEntry) IsFolder() bool {
	return f.Type == FileTypeFolder
}
