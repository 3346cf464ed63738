package ports

import (
	"context"

	"github.com/salesdesk/daily-report-api/internal/core/domain"
)

// CreateUserInput carries validated data for creating a user account.
type CreateUserInput struct {
	Name       string
	Email      string
	Password   string
	Role       string
	Department *string
}

// UpdateUserInput carries validated data for updating a user account.
// Passwords are never updated through this path.
type UpdateUserInput struct {
	Name       string
	Email      string
	Role       string
	Department *string
}

// Page is a normalized pagination window: Page is 1-based, PerPage is
// already defaulted and capped by the transport layer.
type Page struct {
	Page    int
	PerPage int
}

// Offset converts the window to a row offset.
func (p Page) Offset() int { return (p.Page - 1) * p.PerPage }

// UserList is one page of users plus the total count.
type UserList struct {
	Items []domain.User
	Total int
}

// UserService defines use-case operations for account management.
// Authorization (manager only) is enforced at the transport layer.
type UserService interface {
	List(ctx context.Context, page Page) (*UserList, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id int) (*domain.User, error)
	Update(ctx context.Context, id int, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int) error
}
