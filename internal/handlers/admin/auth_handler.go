package admin

import (
	"net/http"

	"sairajtravels/internal/api"

	"github.com/gin-gonic/gin"
)

func (h *Handler) LoginPage(c *gin.Context) {
	// Already signed in: straight to the dashboard.
	if h.sessions.Token(c) != "" {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.HTML(http.StatusOK, "admin_login.tmpl", gin.H{
		"Error": c.Query("error"),
	})
}

func (h *Handler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.Redirect(http.StatusFound, "/admin/login?error="+urlEscape("Username and password are required"))
		return
	}

	resp, err := h.sessions.Login(c.Request.Context(), username, password)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/login?error="+urlEscape(api.UserMessage(err)))
		return
	}

	h.sessions.Establish(c, resp)
	h.log.WithField("username", username).Info("Admin signed in")
	c.Redirect(http.StatusFound, "/admin")
}

func (h *Handler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	c.Redirect(http.StatusFound, "/admin/login")
}

func (h *Handler) ForgotPasswordPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_forgot_password.tmpl", gin.H{
		"Sent":  c.Query("sent") == "1",
		"Error": c.Query("error"),
	})
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	email := c.PostForm("email")
	if email == "" {
		c.Redirect(http.StatusFound, "/admin/forgot-password?error="+urlEscape("Email is required"))
		return
	}

	if err := h.sessions.ForgotPassword(c.Request.Context(), email); err != nil {
		c.Redirect(http.StatusFound, "/admin/forgot-password?error="+urlEscape(api.UserMessage(err)))
		return
	}
	c.Redirect(http.StatusFound, "/admin/forgot-password?sent=1")
}

// ResetPasswordPage validates the emailed token before showing the form, so
// a dead link fails fast instead of after the user typed a new password.
func (h *Handler) ResetPasswordPage(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}

	if err := h.sessions.ValidateResetToken(c.Request.Context(), token); err != nil {
		c.HTML(http.StatusOK, "admin_reset_password.tmpl", gin.H{
			"Invalid": true,
			"Error":   api.UserMessage(err),
		})
		return
	}

	c.HTML(http.StatusOK, "admin_reset_password.tmpl", gin.H{
		"Token": token,
		"Error": c.Query("error"),
	})
}

func (h *Handler) ResetPassword(c *gin.Context) {
	token := c.PostForm("token")
	newPassword := c.PostForm("newPassword")
	if token == "" || newPassword == "" {
		c.Redirect(http.StatusFound, "/admin/reset-password?token="+urlEscape(token)+"&error="+urlEscape("New password is required"))
		return
	}

	if err := h.sessions.ResetPassword(c.Request.Context(), token, newPassword); err != nil {
		c.Redirect(http.StatusFound, "/admin/reset-password?token="+urlEscape(token)+"&error="+urlEscape(api.UserMessage(err)))
		return
	}

	c.Redirect(http.StatusFound, "/admin/login?error="+urlEscape("Password updated, please sign in"))
}
