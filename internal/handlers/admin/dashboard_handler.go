package admin

import (
	"net/http"

	"sairajtravels/internal/api"
	"sairajtravels/internal/models"
	"sairajtravels/internal/reports"
	"sairajtravels/internal/session"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	user, _ := h.sessions.User(c)

	var stats models.GalleryStats
	if err := h.authed(c).Get(ctx, "/api/gallery/stats", &stats); err != nil {
		h.log.WithError(err).Warn("Gallery stats fetch failed")
	}

	// Display-only peek at the token claims; gating stays presence-only.
	var claims *session.Claims
	if token := h.sessions.Token(c); token != "" {
		claims, _ = session.ReadClaims(token)
	}

	c.HTML(http.StatusOK, "admin_dashboard.tmpl", gin.H{
		"User":         user,
		"Claims":       claims,
		"GalleryStats": stats,
	})
}

// Reports fetches five collections concurrently and aggregates them once
// all have resolved. A single failed fetch fails the whole report rather
// than charting partial numbers.
func (h *Handler) Reports(c *gin.Context) {
	aggregator := reports.NewAggregator(h.authed(c))

	summary, err := aggregator.Build(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusOK, "admin_reports.tmpl", gin.H{
			"LoadErr": api.UserMessage(err),
		})
		return
	}

	c.HTML(http.StatusOK, "admin_reports.tmpl", gin.H{
		"Summary": summary,
	})
}
