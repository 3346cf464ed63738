package ports

import (
	"context"

	"github.com/salesdesk/daily-report-api/internal/core/domain"
)

// CustomerFilter carries all query parameters for listing customers.
type CustomerFilter struct {
	Query    string // case-insensitive substring on name or company_name
	Industry string // optional exact match
	Limit    int
	Offset   int
}

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	// List returns one page ordered by creation time ascending, plus the
	// total count of matching customers.
	List(ctx context.Context, f CustomerFilter) ([]domain.Customer, int, error)
	FindByID(ctx context.Context, id int) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int) error
}
