package middleware

import (
	"net/http"

	"sairajtravels/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	ContextToken = "admin_token"
	ContextUser  = "admin_user"
)

// AdminRequired gates every admin page on the presence of a stored token.
// It deliberately performs no validity or expiry check; the backend rejects
// stale tokens on the first real API call. Absence always redirects to the
// login page before any protected content renders.
func AdminRequired(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessions.Token(c)
		if token == "" {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		c.Set(ContextToken, token)
		if user, ok := sessions.User(c); ok {
			c.Set(ContextUser, user)
		}

		c.Next()
	}
}

// SessionToken returns the token placed in the context by AdminRequired.
func SessionToken(c *gin.Context) string {
	token, exists := c.Get(ContextToken)
	if !exists {
		return ""
	}
	tokenStr, ok := token.(string)
	if !ok {
		return ""
	}
	return tokenStr
}
