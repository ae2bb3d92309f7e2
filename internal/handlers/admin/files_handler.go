package admin

import (
	"net/http"

	"sairajtravels/internal/api"
	"sairajtravels/internal/files"

	"github.com/gin-gonic/gin"
)

func (h *Handler) fileManager(c *gin.Context) *files.Manager {
	return files.NewManager(h.authed(c))
}

func (h *Handler) FileManager(c *gin.Context) {
	path := c.Query("path")

	var loadErr string
	browse, err := h.fileManager(c).Browse(c.Request.Context(), path)
	if err != nil {
		loadErr = api.UserMessage(err)
		browse = &files.BrowseResponse{Path: path}
	}

	c.HTML(http.StatusOK, "admin_files.tmpl", gin.H{
		"Path":    browse.Path,
		"Entries": browse.Entries,
		"Crumbs":  files.Breadcrumbs(path),
		"LoadErr": loadErr,
		"Error":   c.Query("error"),
	})
}

func (h *Handler) CreateFolder(c *gin.Context) {
	path := c.PostForm("path")
	name := c.PostForm("name")
	if name == "" {
		c.Redirect(http.StatusFound, "/admin/files?path="+urlEscape(path)+"&error="+urlEscape("Folder name is required"))
		return
	}

	if err := h.fileManager(c).CreateFolder(c.Request.Context(), path, name); err != nil {
		c.Redirect(http.StatusFound, "/admin/files?path="+urlEscape(path)+"&error="+urlEscape(api.UserMessage(err)))
		return
	}

	h.notifier.ShowSuccess("Folder created")
	c.Redirect(http.StatusFound, "/admin/files?path="+urlEscape(path))
}

// UploadFile relays a browser upload into the backend's storage tree.
func (h *Handler) UploadFile(c *gin.Context) {
	path := c.PostForm("path")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/files?path="+urlEscape(path)+"&error="+urlEscape("Choose a file to upload"))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/files?path="+urlEscape(path)+"&error="+urlEscape("Could not read the uploaded file"))
		return
	}
	defer src.Close()

	if _, err := h.fileManager(c).Upload(c.Request.Context(), path, fileHeader.Filename, src); err != nil {
		c.Redirect(http.StatusFound, "/admin/files?path="+urlEscape(path)+"&error="+urlEscape(api.UserMessage(err)))
		return
	}

	h.notifier.ShowSuccess("File uploaded")
	c.Redirect(http.StatusFound, "/admin/files?path="+urlEscape(path))
}
