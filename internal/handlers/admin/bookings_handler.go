package admin

import (
	"net/http"

	"sairajtravels/internal/api"
	"sairajtravels/internal/models"
	"sairajtravels/internal/resource"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Bookings(c *gin.Context) {
	ctrl := resource.NewController[models.Booking](h.authed(c), "/api/vehicle-bookings", h.log)

	var loadErr string
	if err := ctrl.Reload(c.Request.Context()); err != nil {
		loadErr = api.UserMessage(err)
	}

	query := c.Query("q")
	status := c.Query("status")
	bookings := ctrl.Filter(func(b models.Booking) bool {
		if status != "" && string(b.Status) != status {
			return false
		}
		return resource.MatchesQuery(query, b.CustomerName, b.CustomerPhone, b.PickupLocation, b.DropLocation)
	})

	c.HTML(http.StatusOK, "admin_bookings.tmpl", gin.H{
		"Bookings": bookings,
		"Query":    query,
		"Status":   status,
		"Loaded":   ctrl.Loaded(),
		"LoadErr":  loadErr,
	})
}
