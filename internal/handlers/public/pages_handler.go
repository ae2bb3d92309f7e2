package public

import (
	"net/http"
	"strconv"

	"sairajtravels/internal/api"
	"sairajtravels/internal/content"
	"sairajtravels/internal/gallery"
	"sairajtravels/internal/models"
	"sairajtravels/internal/notify"
	"sairajtravels/internal/resource"
	"sairajtravels/internal/utils"
	"sairajtravels/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handler serves the public marketing pages. Every fetch that fails falls
// back to the static default content so the site stays navigable when the
// backend is down; the Fallback flag lets templates note degraded data.
type Handler struct {
	client   *api.Client
	notifier *notify.Service
	log      *logger.Logger
}

func NewHandler(client *api.Client, notifier *notify.Service, log *logger.Logger) *Handler {
	return &Handler{
		client:   client,
		notifier: notifier,
		log:      log,
	}
}

func (h *Handler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	var vehicles []models.Vehicle
	if err := h.client.Get(ctx, "/api/vehicles", &vehicles); err != nil {
		vehicles = content.DefaultVehicles()
	}

	var packages []models.TourPackage
	if err := h.client.Get(ctx, "/api/packages", &packages); err != nil {
		packages = content.DefaultPackages()
	}

	var testimonials []models.Testimonial
	if err := h.client.Get(ctx, "/api/testimonials/active", &testimonials); err != nil {
		testimonials = content.DefaultTestimonials()
	}

	c.HTML(http.StatusOK, "home.tmpl", gin.H{
		"Vehicles":     vehicles,
		"Packages":     models.PopularPackages(packages, utils.PopularPackagesLimit),
		"Testimonials": testimonials,
	})
}

func (h *Handler) Fleet(c *gin.Context) {
	var vehicles []models.Vehicle
	fallback := false
	if err := h.client.Get(c.Request.Context(), "/api/vehicles", &vehicles); err != nil {
		h.log.WithError(err).Warn("Fleet fetch failed, serving default content")
		vehicles = content.DefaultVehicles()
		fallback = true
	}

	c.HTML(http.StatusOK, "fleet.tmpl", gin.H{
		"Vehicles": vehicles,
		"Fallback": fallback,
	})
}

func (h *Handler) VehicleDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "not_found.tmpl", gin.H{"Resource": "Vehicle"})
		return
	}

	var vehicle models.Vehicle
	if err := h.client.Get(c.Request.Context(), "/api/vehicle-details/"+strconv.Itoa(id), &vehicle); err != nil {
		for _, v := range content.DefaultVehicles() {
			if v.ID == id {
				vehicle = v
				break
			}
		}
		if vehicle.ID == 0 {
			c.HTML(http.StatusNotFound, "not_found.tmpl", gin.H{"Resource": "Vehicle"})
			return
		}
	}

	c.HTML(http.StatusOK, "vehicle_detail.tmpl", gin.H{"Vehicle": vehicle})
}

func (h *Handler) Drivers(c *gin.Context) {
	var drivers []models.Driver
	fallback := false
	if err := h.client.Get(c.Request.Context(), "/api/drivers", &drivers); err != nil {
		drivers = content.DefaultDrivers()
		fallback = true
	}

	c.HTML(http.StatusOK, "drivers.tmpl", gin.H{
		"Drivers":  drivers,
		"Fallback": fallback,
	})
}

func (h *Handler) DriverDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "not_found.tmpl", gin.H{"Resource": "Driver"})
		return
	}

	var driver models.Driver
	if err := h.client.Get(c.Request.Context(), "/api/drivers/"+strconv.Itoa(id), &driver); err != nil {
		for _, d := range content.DefaultDrivers() {
			if d.DriverID == id {
				driver = d
				break
			}
		}
		if driver.DriverID == 0 {
			c.HTML(http.StatusNotFound, "not_found.tmpl", gin.H{"Resource": "Driver"})
			return
		}
	}

	c.HTML(http.StatusOK, "driver_detail.tmpl", gin.H{"Driver": driver})
}

func (h *Handler) Packages(c *gin.Context) {
	var packages []models.TourPackage
	fallback := false
	if err := h.client.Get(c.Request.Context(), "/api/packages", &packages); err != nil {
		packages = content.DefaultPackages()
		fallback = true
	}

	active := make([]models.TourPackage, 0, len(packages))
	for _, p := range packages {
		if p.IsActive {
			active = append(active, p)
		}
	}

	c.HTML(http.StatusOK, "packages.tmpl", gin.H{
		"Packages": active,
		"Fallback": fallback,
	})
}

// Gallery renders the filter/search/sort/load-more pipeline. All filtering
// is client-side over the fully fetched collection; the query string only
// reconstructs the view state per request.
func (h *Handler) Gallery(c *gin.Context) {
	var items []models.GalleryItem
	if err := h.client.Get(c.Request.Context(), "/api/gallery/active", &items); err != nil {
		items = nil
	}

	view := gallery.NewView(items)
	if category := c.Query("category"); category != "" {
		view.SetCategory(category)
	}
	if query := c.Query("q"); query != "" {
		view.SetQuery(query)
	}
	if sortBy := c.Query("sort"); sortBy != "" {
		view.SetSort(gallery.SortKey(sortBy))
	}
	if count, err := strconv.Atoi(c.Query("count")); err == nil && count > gallery.DefaultPageSize {
		for view.HasMore() && len(view.Visible()) < count {
			view.LoadMore()
		}
	}

	c.HTML(http.StatusOK, "gallery.tmpl", gin.H{
		"Items":      view.Visible(),
		"Categories": view.Categories(),
		"Category":   view.Category(),
		"Query":      view.Query(),
		"SortBy":     view.SortBy(),
		"HasMore":    view.HasMore(),
		"NextCount":  len(view.Visible()) + gallery.DefaultPageSize,
	})
}

func (h *Handler) Contact(c *gin.Context) {
	var info models.ContactInfo
	if err := h.client.Get(c.Request.Context(), "/api/contact", &info); err != nil {
		info = content.DefaultContact()
	}

	c.HTML(http.StatusOK, "contact.tmpl", gin.H{
		"Contact": info,
		"Sent":    c.Query("sent") == "1",
		"Error":   c.Query("error"),
	})
}

// SubmitEnquiry validates the enquiry form (presence only) and forwards it.
// Validation failures never reach the network.
func (h *Handler) SubmitEnquiry(c *gin.Context) {
	form := resource.NewForm(models.Enquiry{})
	draft := form.Draft()
	draft.FullName = c.PostForm("fullName")
	draft.Phone = c.PostForm("phone")
	draft.Email = c.PostForm("email")
	draft.Service = c.PostForm("service")
	draft.Message = c.PostForm("message")

	if err := form.Validate(); err != nil {
		c.Redirect(http.StatusFound, "/contact?error="+urlEscape(err.Error()))
		return
	}

	if err := h.client.Post(c.Request.Context(), "/api/enquiries", draft, nil); err != nil {
		h.notifier.ShowError(api.UserMessage(err))
		c.Redirect(http.StatusFound, "/contact?error="+urlEscape(api.UserMessage(err)))
		return
	}

	h.notifier.ShowSuccess("Enquiry sent")
	c.Redirect(http.StatusFound, "/contact?sent=1")
}
