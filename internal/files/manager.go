package files

import (
	"context"
	"io"
	"net/url"
	"path"
	"sort"
	"strings"

	"sairajtravels/internal/api"
	"sairajtravels/internal/models"
)

// Manager is the client side of the admin file browser. The folder tree
// lives entirely on the backend; paths here are virtual keys, never local
// filesystem handles.
type Manager struct {
	client *api.Client
}

func NewManager(client *api.Client) *Manager {
	return &Manager{client: client}
}

type BrowseResponse struct {
	Path    string             `json:"path"`
	Entries []models.FileEntry `json:"entries"`
}

// Browse lists one folder, folders first then files, both alphabetically.
func (m *Manager) Browse(ctx context.Context, folderPath string) (*BrowseResponse, error) {
	var resp BrowseResponse
	endpoint := "/api/admin/files/browse"
	if folderPath != "" {
		endpoint += "?path=" + url.QueryEscape(folderPath)
	}
	if err := m.client.Get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	sort.SliceStable(resp.Entries, func(i, j int) bool {
		a, b := resp.Entries[i], resp.Entries[j]
		if a.IsFolder() != b.IsFolder() {
			return a.IsFolder()
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})

	return &resp, nil
}

func (m *Manager) CreateFolder(ctx context.Context, parentPath, name string) error {
	return m.client.Post(ctx, "/api/admin/files/create-folder", map[string]string{
		"path": parentPath,
		"name": name,
	}, nil)
}

// Upload sends one file into the given folder.
func (m *Manager) Upload(ctx context.Context, folderPath, filename string, file io.Reader) (*models.FileEntry, error) {
	var entry models.FileEntry
	err := m.client.PostMultipart(ctx, "/api/admin/files/upload", filename, file, map[string]string{
		"path": folderPath,
	}, &entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Crumb is one segment of the breadcrumb trail above the browser.
type Crumb struct {
	Name string
	Path string
}

// Breadcrumbs expands a virtual path into clickable trail segments, root
// first.
func Breadcrumbs(folderPath string) []Crumb {
	crumbs := []Crumb{{Name: "Home", Path: ""}}
	clean := strings.Trim(path.Clean("/"+folderPath), "/")
	if clean == "" || clean == "." {
		return crumbs
	}

	current := ""
	for _, segment := range strings.Split(clean, "/") {
		current = path.Join(current, segment)
		crumbs = append(crumbs, Crumb{Name: segment, Path: current})
	}
	return crumbs
}
