package ports

import (
	"context"

	"github.com/salesdesk/daily-report-api/internal/core/domain"
)

// AuthRepository is the credential lookup used at login time.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
