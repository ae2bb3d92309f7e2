package admin

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"sairajtravels/internal/api"
	"sairajtravels/internal/models"
	"sairajtravels/internal/resource"
	"sairajtravels/internal/utils"

	"github.com/gin-gonic/gin"
)

func (h *Handler) testimonialsController(c *gin.Context) *resource.Controller[models.Testimonial] {
	return resource.NewController[models.Testimonial](h.authed(c), "/api/testimonials", h.log)
}

func (h *Handler) Testimonials(c *gin.Context) {
	ctrl := h.testimonialsController(c)

	var loadErr string
	if err := ctrl.Reload(c.Request.Context()); err != nil {
		loadErr = api.UserMessage(err)
	}

	query := c.Query("q")
	testimonials := ctrl.Filter(func(t models.Testimonial) bool {
		return resource.MatchesQuery(query, t.CustomerName, t.CustomerType, t.TestimonialText)
	})

	c.HTML(http.StatusOK, "admin_testimonials.tmpl", gin.H{
		"Testimonials": testimonials,
		"Query":        query,
		"Loaded":       ctrl.Loaded(),
		"LoadErr":      loadErr,
		"Error":        c.Query("error"),
	})
}

// SaveTestimonial backs both the add and the edit modal; an id field marks
// edit mode.
func (h *Handler) SaveTestimonial(c *gin.Context) {
	form := resource.NewForm(models.Testimonial{Rating: 5, IsActive: true})
	if id, err := strconv.Atoi(c.PostForm("id")); err == nil && id > 0 {
		form.Load(id, models.Testimonial{})
	}

	draft := form.Draft()
	draft.ID = form.ID()
	draft.CustomerName = c.PostForm("customerName")
	draft.CustomerType = c.PostForm("customerType")
	draft.TestimonialText = c.PostForm("testimonialText")
	if rating, err := strconv.Atoi(c.PostForm("rating")); err == nil {
		draft.Rating = rating
	}
	draft.IsActive = c.PostForm("isActive") != "false"
	draft.SortOrder, _ = strconv.Atoi(c.PostForm("sortOrder"))
	draft.AvatarLetter = c.PostForm("avatarLetter")
	if draft.AvatarLetter == "" && draft.CustomerName != "" {
		// First rune, not first byte, so multi-byte names stay valid.
		r, _ := utf8.DecodeRuneInString(draft.CustomerName)
		draft.AvatarLetter = strings.ToUpper(string(r))
	}

	if err := form.Submit(c.Request.Context(), h.testimonialsController(c)); err != nil {
		c.Redirect(http.StatusFound, "/admin/testimonials?error="+urlEscape(formMessage(err)))
		return
	}

	h.notifier.ShowSuccess("Testimonial saved")
	c.Redirect(http.StatusFound, "/admin/testimonials")
}

func (h *Handler) DeleteTestimonial(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid testimonial ID")
		return
	}

	ctrl := h.testimonialsController(c)
	if err := ctrl.Remove(c.Request.Context(), id); err != nil {
		utils.UpstreamErrorResponse(c, api.UserMessage(err))
		return
	}
	utils.SuccessResponse(c, "Testimonial deleted", gin.H{"testimonials": ctrl.Items()})
}

func (h *Handler) ToggleTestimonial(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid testimonial ID")
		return
	}

	ctrl := h.testimonialsController(c)
	if err := ctrl.Toggle(c.Request.Context(), id); err != nil {
		utils.UpstreamErrorResponse(c, api.UserMessage(err))
		return
	}
	utils.SuccessResponse(c, "Testimonial updated", gin.H{"testimonials": ctrl.Items()})
}
