package domain

import (
	"errors"
	"time"
)

const (
	RoleSales   = "sales"
	RoleManager = "manager"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already in use")
var ErrForbidden = errors.New("access forbidden")

// ValidRole reports whether r is one of the known user roles.
func ValidRole(r string) bool {
	return r == RoleSales || r == RoleManager
}

// User models a persisted account. PasswordHash never crosses the wire.
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Department   *string   `json:"department"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SessionUser is the per-request identity snapshot recovered from a session
// token. It is threaded explicitly through the request context; no handler
// reads authentication state from anywhere else.
type SessionUser struct {
	ID    int
	Name  string
	Email string
	Role  string
}

// IsManager reports whether the session belongs to a manager.
func (s SessionUser) IsManager() bool { return s.Role == RoleManager }
