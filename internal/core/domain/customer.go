package domain

import (
	"errors"
	"time"
)

var ErrCustomerNotFound = errors.New("customer not found")

// Customer is a master-data record. Readable by any authenticated user,
// mutable only by managers.
type Customer struct {
	ID          int
	Name        string
	CompanyName string
	Department  *string
	Industry    *string
	ContactName *string
	DealSize    *string
	Phone       *string
	Address     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
