package admin

import (
	"net/http"
	"strconv"

	"sairajtravels/internal/api"
	"sairajtravels/internal/models"
	"sairajtravels/internal/resource"
	"sairajtravels/internal/utils"

	"github.com/gin-gonic/gin"
)

func (h *Handler) packagesController(c *gin.Context) *resource.Controller[models.TourPackage] {
	return resource.NewController[models.TourPackage](h.authed(c), "/api/packages", h.log)
}

func (h *Handler) Packages(c *gin.Context) {
	ctrl := h.packagesController(c)

	var loadErr string
	if err := ctrl.Reload(c.Request.Context()); err != nil {
		loadErr = api.UserMessage(err)
	}

	query := c.Query("q")
	packages := ctrl.Filter(func(p models.TourPackage) bool {
		return resource.MatchesQuery(query, p.PackageName, p.PackageDescription)
	})

	c.HTML(http.StatusOK, "admin_packages.tmpl", gin.H{
		"Packages": packages,
		"Query":    query,
		"Loaded":   ctrl.Loaded(),
		"LoadErr":  loadErr,
		"Error":    c.Query("error"),
	})
}

func (h *Handler) SavePackage(c *gin.Context) {
	form := resource.NewForm(models.TourPackage{IsActive: true})
	if id, err := strconv.Atoi(c.PostForm("packageId")); err == nil && id > 0 {
		form.Load(id, models.TourPackage{})
	}

	draft := form.Draft()
	draft.PackageID = form.ID()
	draft.PackageName = c.PostForm("packageName")
	draft.PackageDescription = c.PostForm("packageDescription")
	draft.PackagePrice, _ = strconv.ParseFloat(c.PostForm("packagePrice"), 64)
	draft.PackageImageURL = c.PostForm("packageImageUrl")
	draft.IsActive = c.PostForm("isActive") != "false"
	draft.IsFeatured = c.PostForm("isFeatured") == "true"
	draft.SortOrder, _ = strconv.Atoi(c.PostForm("sortOrder"))
	draft.PackageCategoryID, _ = strconv.Atoi(c.PostForm("packageCategoryId"))

	if err := form.Submit(c.Request.Context(), h.packagesController(c)); err != nil {
		c.Redirect(http.StatusFound, "/admin/packages?error="+urlEscape(formMessage(err)))
		return
	}

	h.notifier.ShowSuccess("Package saved")
	c.Redirect(http.StatusFound, "/admin/packages")
}

func (h *Handler) DeletePackage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid package ID")
		return
	}

	ctrl := h.packagesController(c)
	if err := ctrl.Remove(c.Request.Context(), id); err != nil {
		utils.UpstreamErrorResponse(c, api.UserMessage(err))
		return
	}
	utils.SuccessResponse(c, "Package deleted", gin.H{"packages": ctrl.Items()})
}
