package models

import "time"

type Role struct {
	ID          int    `json:"id"`
	RoleName    string `json:"roleName"`
	DisplayName string `json:"displayName"`
}

type AdminUser struct {
	ID                 int        `json:"id"`
	Username           string     `json:"username" validate:"required"`
	Email              string     `json:"email" validate:"required"`
	FullName           string     `json:"fullName" validate:"required"`
	Role               *Role      `json:"role"`
	IsActive           bool       `json:"isActive"`
	LastLogin          *time.Time `json:"lastLogin"`
	MustChangePassword bool       `json:"mustChangePassword"`
}

// SessionUser is the cached identity blob persisted alongside the bearer
// token after a successful login.
type SessionUser struct {
	ID                 int       `json:"id"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	FullName           string    `json:"fullName"`
	Role               string    `json:"role"`
	MustChangePassword bool      `json:"mustChangePassword"`
	LoginTime          time.Time `json:"loginTime"`
}
