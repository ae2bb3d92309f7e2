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

func (h *Handler) enquiriesController(c *gin.Context) *resource.Controller[models.Enquiry] {
	return resource.NewController[models.Enquiry](h.authed(c), "/api/enquiries", h.log)
}

func (h *Handler) Enquiries(c *gin.Context) {
	ctrl := h.enquiriesController(c)

	var loadErr string
	if err := ctrl.Reload(c.Request.Context()); err != nil {
		loadErr = api.UserMessage(err)
	}

	query := c.Query("q")
	status := c.Query("status")
	enquiries := ctrl.Filter(func(e models.Enquiry) bool {
		if status != "" && string(e.Status) != status {
			return false
		}
		return resource.MatchesQuery(query, e.FullName, e.Phone, e.Email, e.Message)
	})

	c.HTML(http.StatusOK, "admin_enquiries.tmpl", gin.H{
		"Enquiries": enquiries,
		"Query":     query,
		"Status":    status,
		"Loaded":    ctrl.Loaded(),
		"LoadErr":   loadErr,
	})
}

// ResolveEnquiry marks an enquiry handled via the status patch endpoint.
func (h *Handler) ResolveEnquiry(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid enquiry ID")
		return
	}

	ctx := c.Request.Context()
	ctrl := h.enquiriesController(c)
	patch := map[string]string{"status": string(models.EnquiryStatusResolved)}
	if err := h.authed(c).Patch(ctx, "/api/enquiries/"+strconv.Itoa(id), patch, nil); err != nil {
		utils.UpstreamErrorResponse(c, api.UserMessage(err))
		return
	}
	if err := ctrl.Reload(ctx); err != nil {
		utils.UpstreamErrorResponse(c, api.UserMessage(err))
		return
	}
	utils.SuccessResponse(c, "Enquiry resolved", gin.H{"enquiries": ctrl.Items()})
}

func (h *Handler) DeleteEnquiry(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid enquiry ID")
		return
	}

	ctrl := h.enquiriesController(c)
	if err := ctrl.Remove(c.Request.Context(), id); err != nil {
		utils.UpstreamErrorResponse(c, api.UserMessage(err))
		return
	}
	utils.SuccessResponse(c, "Enquiry deleted", gin.H{"enquiries": ctrl.Items()})
}
