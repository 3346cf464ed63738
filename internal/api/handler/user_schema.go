package handler

import (
	"time"

	"github.com/salesdesk/daily-report-api/internal/core/domain"
)

type createUserRequest struct {
	Name       string  `json:"name"       validate:"required"`
	Email      string  `json:"email"      validate:"required,email"`
	Password   string  `json:"password"   validate:"required"`
	Role       string  `json:"role"       validate:"required,oneof=sales manager"`
	Department *string `json:"department"`
}

// updateUserRequest is the create shape minus the password; passwords are
// neither updated nor returned through this pipeline.
type updateUserRequest struct {
	Name       string  `json:"name"       validate:"required"`
	Email      string  `json:"email"      validate:"required,email"`
	Role       string  `json:"role"       validate:"required,oneof=sales manager"`
	Department *string `json:"department"`
}

type userResponse struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department *string   `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
		CreatedAt:  u.CreatedAt.UTC(),
		UpdatedAt:  u.UpdatedAt.UTC(),
	}
}

func toUserListResponse(items []domain.User) []userResponse {
	out := make([]userResponse, len(items))
	for i := range items {
		out[i] = toUserResponse(&items[i])
	}
	return out
}
