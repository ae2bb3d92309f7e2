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

func (h *Handler) usersController(c *gin.Context) *resource.Controller[models.AdminUser] {
	return resource.NewController[models.AdminUser](h.authed(c), "/api/admin/users", h.log)
}

func (h *Handler) Users(c *gin.Context) {
	ctx := c.Request.Context()
	ctrl := h.usersController(c)

	var loadErr string
	if err := ctrl.Reload(ctx); err != nil {
		loadErr = api.UserMessage(err)
	}

	query := c.Query("q")
	users := ctrl.Filter(func(u models.AdminUser) bool {
		return resource.MatchesQuery(query, u.Username, u.Email, u.FullName)
	})

	var roles []models.Role
	if err := h.authed(c).Get(ctx, "/api/admin/roles/active", &roles); err != nil {
		roles = nil
	}

	c.HTML(http.StatusOK, "admin_users.tmpl", gin.H{
		"Users":   users,
		"Roles":   roles,
		"Query":   query,
		"Loaded":  ctrl.Loaded(),
		"LoadErr": loadErr,
		"Error":   c.Query("error"),
	})
}

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	FullName string `json:"fullName" validate:"required"`
	Password string `json:"password" validate:"required"`
	RoleID   int    `json:"roleId"`
}

func (h *Handler) CreateUser(c *gin.Context) {
	form := resource.NewForm(createUserRequest{})
	draft := form.Draft()
	draft.Username = c.PostForm("username")
	draft.Email = c.PostForm("email")
	draft.FullName = c.PostForm("fullName")
	draft.Password = c.PostForm("password")
	draft.RoleID, _ = strconv.Atoi(c.PostForm("roleId"))

	if err := form.Validate(); err != nil {
		c.Redirect(http.StatusFound, "/admin/users?error="+urlEscape(err.Error()))
		return
	}

	if err := h.authed(c).Post(c.Request.Context(), "/api/admin/users", draft, nil); err != nil {
		c.Redirect(http.StatusFound, "/admin/users?error="+urlEscape(api.UserMessage(err)))
		return
	}

	h.notifier.ShowSuccess("User created")
	c.Redirect(http.StatusFound, "/admin/users")
}

// SetUserActive handles the inline activate/deactivate buttons; the page
// refetches afterwards so the badge always reflects confirmed server state.
func (h *Handler) SetUserActive(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID")
		return
	}

	action := "deactivate"
	if c.PostForm("active") == "true" {
		action = "activate"
	}

	ctrl := h.usersController(c)
	if err := ctrl.Act(c.Request.Context(), id, action); err != nil {
		utils.UpstreamErrorResponse(c, api.UserMessage(err))
		return
	}

	utils.SuccessResponse(c, "User updated", gin.H{"users": ctrl.Items()})
}
