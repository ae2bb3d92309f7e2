package admin

import (
	"net/http"

	"sairajtravels/internal/api"
	"sairajtravels/internal/models"
	"sairajtravels/internal/resource"

	"github.com/gin-gonic/gin"
)

// Vehicles lists the fleet as the backend sees it. Vehicle media and
// pricing are edited through upload endpoints the backend owns, so this
// page is read-only apart from the search box.
func (h *Handler) Vehicles(c *gin.Context) {
	ctrl := resource.NewController[models.Vehicle](h.authed(c), "/api/vehicle-details", h.log)

	var loadErr string
	if err := ctrl.Reload(c.Request.Context()); err != nil {
		loadErr = api.UserMessage(err)
	}

	query := c.Query("q")
	vehicles := ctrl.Filter(func(v models.Vehicle) bool {
		return resource.MatchesQuery(query, v.Name, v.Description)
	})

	c.HTML(http.StatusOK, "admin_vehicles.tmpl", gin.H{
		"Vehicles": vehicles,
		"Query":    query,
		"Loaded":   ctrl.Loaded(),
		"LoadErr":  loadErr,
	})
}

func (h *Handler) Drivers(c *gin.Context) {
	ctrl := resource.NewController[models.Driver](h.authed(c), "/api/drivers", h.log)

	var loadErr string
	if err := ctrl.Reload(c.Request.Context()); err != nil {
		loadErr = api.UserMessage(err)
	}

	query := c.Query("q")
	drivers := ctrl.Filter(func(d models.Driver) bool {
		return resource.MatchesQuery(query, d.FullName, d.LicenseNumber, d.Description)
	})

	c.HTML(http.StatusOK, "admin_drivers.tmpl", gin.H{
		"Drivers": drivers,
		"Query":   query,
		"Loaded":  ctrl.Loaded(),
		"LoadErr": loadErr,
	})
}
