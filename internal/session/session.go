package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/url"
	"time"

	"sairajtravels/internal/api"
	"sairajtravels/internal/config"
	"sairajtravels/internal/models"
	"sairajtravels/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Manager owns the admin session: the bearer token and cached user blob
// persisted as cookies, and the auth flows against the backend.
type Manager struct {
	client *api.Client
	cfg    *config.SessionConfig
	log    *logger.Logger
}

func NewManager(client *api.Client, cfg *config.SessionConfig, log *logger.Logger) *Manager {
	return &Manager{
		client: client,
		cfg:    cfg,
		log:    log,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token              string           `json:"token"`
	User               models.AdminUser `json:"user"`
	MustChangePassword bool             `json:"mustChangePassword"`
}

func (m *Manager) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := m.client.Post(ctx, "/api/admin/auth/login-enhanced", LoginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (m *Manager) ForgotPassword(ctx context.Context, email string) error {
	return m.client.Post(ctx, "/api/admin/auth/forgot-password", map[string]string{
		"email": email,
	}, nil)
}

func (m *Manager) ValidateResetToken(ctx context.Context, token string) error {
	return m.client.Get(ctx, "/api/admin/auth/validate-reset-token?token="+url.QueryEscape(token), nil)
}

func (m *Manager) ResetPassword(ctx context.Context, token, newPassword string) error {
	return m.client.Post(ctx, "/api/admin/auth/reset-password", map[string]string{
		"token":       token,
		"newPassword": newPassword,
	}, nil)
}

// Establish persists the session after a successful login: the raw bearer
// token plus a base64 user blob, under the adminToken / adminUser keys.
func (m *Manager) Establish(c *gin.Context, resp *LoginResponse) {
	user := models.SessionUser{
		ID:                 resp.User.ID,
		Username:           resp.User.Username,
		Email:              resp.User.Email,
		FullName:           resp.User.FullName,
		MustChangePassword: resp.MustChangePassword,
		LoginTime:          time.Now(),
	}
	if resp.User.Role != nil {
		user.Role = resp.User.Role.RoleName
	}

	maxAge := int(m.cfg.CookieMaxAge.Seconds())
	c.SetCookie(m.cfg.TokenCookie, resp.Token, maxAge, "/", "", m.cfg.Secure, true)

	blob, err := json.Marshal(user)
	if err == nil {
		encoded := base64.RawURLEncoding.EncodeToString(blob)
		c.SetCookie(m.cfg.UserCookie, encoded, maxAge, "/", "", m.cfg.Secure, true)
	}
}

// Clear removes the token and cached user info. Logout is purely
// client-side; the backend invalidates nothing.
func (m *Manager) Clear(c *gin.Context) {
	c.SetCookie(m.cfg.TokenCookie, "", -1, "/", "", m.cfg.Secure, true)
	c.SetCookie(m.cfg.UserCookie, "", -1, "/", "", m.cfg.Secure, true)
}

// Token returns the stored bearer token, empty when absent. Presence is the
// only thing the frontend ever checks; validity is the backend's problem.
func (m *Manager) Token(c *gin.Context) string {
	token, err := c.Cookie(m.cfg.TokenCookie)
	if err != nil {
		return ""
	}
	return token
}

// User returns the cached user blob, if present and decodable.
func (m *Manager) User(c *gin.Context) (*models.SessionUser, bool) {
	encoded, err := c.Cookie(m.cfg.UserCookie)
	if err != nil || encoded == "" {
		return nil, false
	}
	blob, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, false
	}
	var user models.SessionUser
	if err := json.Unmarshal(blob, &user); err != nil {
		return nil, false
	}
	return &user, true
}

// Claims is the subset of token claims the UI may want to display.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// ReadClaims decodes the token without verifying its signature. The secret
// lives with the backend, so this is display-only information; it must
// never be used for gating, which stays presence-only.
func ReadClaims(token string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
