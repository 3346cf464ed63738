package ports

import (
	"context"

	"github.com/salesdesk/daily-report-api/internal/core/domain"
)

// CustomerInput carries validated data for creating or updating a customer.
type CustomerInput struct {
	Name        string
	CompanyName string
	Department  *string
	Industry    *string
	ContactName *string
	DealSize    *string
	Phone       *string
	Address     *string
}

// ListCustomersInput carries the validated customer list query.
type ListCustomersInput struct {
	Query    string
	Industry string
	Page     Page
}

// CustomerList is one page of customers plus the total count.
type CustomerList struct {
	Items []domain.Customer
	Total int
}

// CustomerService defines use-case operations for customer master data.
// Reads require authentication, writes require the manager role; both are
// enforced at the transport layer.
type CustomerService interface {
	List(ctx context.Context, in ListCustomersInput) (*CustomerList, error)
	Create(ctx context.Context, in CustomerInput) (*domain.Customer, error)
	Get(ctx context.Context, id int) (*domain.Customer, error)
	Update(ctx context.Context, id int, in CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id int) error
}
