package ports

import (
	"context"

	"github.com/salesdesk/daily-report-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// List returns one page of users ordered by creation time ascending,
	// plus the total count across all pages.
	List(ctx context.Context, limit, offset int) ([]domain.User, int, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts the user and fills in ID/CreatedAt/UpdatedAt.
	// A duplicate email surfaces as domain.ErrEmailTaken.
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int) error
}
