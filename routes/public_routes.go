package routes

import (
	"sairajtravels/internal/handlers/public"

	"github.com/gin-gonic/gin"
)

// SetupPublicRoutes registers the marketing site pages.
func SetupPublicRoutes(r *gin.Engine, handler *public.Handler, wizards *public.WizardStore) {
	r.GET("/", handler.Home)
	r.GET("/fleet", handler.Fleet)
	r.GET("/fleet/:id", handler.VehicleDetails)
	r.GET("/drivers", handler.Drivers)
	r.GET("/drivers/:id", handler.DriverDetails)
	r.GET("/packages", handler.Packages)
	r.GET("/gallery", handler.Gallery)
	r.GET("/contact", handler.Contact)
	r.POST("/contact/enquiry", handler.SubmitEnquiry)

	// Booking wizard: one linear four-step flow.
	bookings := r.Group("/booking")
	{
		bookings.GET("", handler.BookingPage(wizards))
		bookings.POST("/next", handler.BookingNext(wizards))
		bookings.POST("/prev", handler.BookingPrev(wizards))
		bookings.POST("/submit", handler.BookingSubmit(wizards))
		bookings.POST("/restart", handler.BookingRestart(wizards))
	}
}
