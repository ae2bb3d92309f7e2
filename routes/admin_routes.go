package routes

import (
	"sairajtravels/internal/handlers/admin"
	"sairajtravels/internal/middleware"
	"sairajtravels/internal/session"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers the back-office. Everything except the auth
// pages sits behind the presence-only token guard.
func SetupAdminRoutes(r *gin.Engine, handler *admin.Handler, sessions *session.Manager) {
	// Auth pages (no guard)
	r.GET("/admin/login", handler.LoginPage)
	r.POST("/admin/login", handler.Login)
	r.GET("/admin/logout", handler.Logout)
	r.GET("/admin/forgot-password", handler.ForgotPasswordPage)
	r.POST("/admin/forgot-password", handler.ForgotPassword)
	r.GET("/admin/reset-password", handler.ResetPasswordPage)
	r.POST("/admin/reset-password", handler.ResetPassword)

	protected := r.Group("/admin")
	protected.Use(middleware.AdminRequired(sessions))
	{
		protected.GET("", handler.Dashboard)
		protected.GET("/reports", handler.Reports)

		protected.GET("/users", handler.Users)
		protected.POST("/users", handler.CreateUser)
		protected.POST("/users/:id/active", handler.SetUserActive)

		protected.GET("/bookings", handler.Bookings)

		protected.GET("/enquiries", handler.Enquiries)
		protected.POST("/enquiries/:id/resolve", handler.ResolveEnquiry)
		protected.POST("/enquiries/:id/delete", handler.DeleteEnquiry)

		protected.GET("/testimonials", handler.Testimonials)
		protected.POST("/testimonials", handler.SaveTestimonial)
		protected.POST("/testimonials/:id/delete", handler.DeleteTestimonial)
		protected.POST("/testimonials/:id/toggle", handler.ToggleTestimonial)

		protected.GET("/packages", handler.Packages)
		protected.POST("/packages", handler.SavePackage)
		protected.POST("/packages/:id/delete", handler.DeletePackage)

		protected.GET("/vehicles", handler.Vehicles)
		protected.GET("/drivers", handler.Drivers)

		protected.GET("/files", handler.FileManager)
		protected.POST("/files/create-folder", handler.CreateFolder)
		protected.POST("/files/upload", handler.UploadFile)
	}
}
