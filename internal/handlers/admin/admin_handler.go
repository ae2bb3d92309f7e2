package admin

import (
	"errors"
	"net/url"

	"sairajtravels/internal/api"
	"sairajtravels/internal/middleware"
	"sairajtravels/internal/notify"
	"sairajtravels/internal/resource"
	"sairajtravels/internal/session"
	"sairajtravels/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handler serves the admin back-office. Unlike the public pages it never
// fabricates fallback data: a failed fetch surfaces an error banner and the
// view keeps its last-good state.
type Handler struct {
	client   *api.Client
	sessions *session.Manager
	notifier *notify.Service
	log      *logger.Logger
}

func NewHandler(client *api.Client, sessions *session.Manager, notifier *notify.Service, log *logger.Logger) *Handler {
	return &Handler{
		client:   client,
		sessions: sessions,
		notifier: notifier,
		log:      log,
	}
}

// authed binds the shared client to the current session's bearer token.
func (h *Handler) authed(c *gin.Context) *api.Client {
	return h.client.WithToken(middleware.SessionToken(c))
}

func urlEscape(s string) string {
	return url.QueryEscape(s)
}

// formMessage keeps client-side validation wording intact and normalizes
// everything else to the backend's user-facing message.
func formMessage(err error) string {
	if errors.Is(err, resource.ErrValidation) {
		return err.Error()
	}
	return api.UserMessage(err)
}
