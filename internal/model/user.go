package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the API view of a login account, without the password hash.
type User struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// AuthResponse is returned by login.
type AuthResponse struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	UserID    uuid.UUID `json:"userId"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *User     `json:"user"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the registration payload. Role defaults to tenant.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

// Role constants carried inside the JWT.
const (
	RoleAdmin  = "admin"
	RoleTenant = "tenant"
)

// ValidRole reports whether s is a recognized role.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleTenant
}
