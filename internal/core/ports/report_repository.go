package ports

import (
	"context"
	"time"

	"github.com/salesdesk/daily-report-api/internal/core/domain"
)

// ReportFilter carries all query parameters for listing reports.
// UserID is always forced by the service layer for sales callers.
type ReportFilter struct {
	UserID   int        // 0 = no owner filter (manager without user_id)
	DateFrom *time.Time // inclusive lower bound on report_date
	DateTo   *time.Time // inclusive upper bound on report_date
	Status   string     // optional exact match
	Limit    int
	Offset   int
}

// ReportRepository defines persistence operations for daily reports.
// Visit records travel with their parent: Create and Update write them in
// the same transaction, FindByID and List return them ordered by sort_order.
type ReportRepository interface {
	// List returns one page ordered by report_date descending, plus the
	// total count of matching reports.
	List(ctx context.Context, f ReportFilter) ([]domain.Report, int, error)
	FindByID(ctx context.Context, id int) (*domain.Report, error)
	// FindByUserAndDate returns the report owned by userID on date, or
	// domain.ErrReportNotFound.
	FindByUserAndDate(ctx context.Context, userID int, date time.Time) (*domain.Report, error)
	// Create inserts the report and its visit records atomically. A
	// duplicate (user_id, report_date) surfaces as domain.ErrDuplicateReport.
	Create(ctx context.Context, r *domain.Report) error
	// Update rewrites the report row and replaces its visit records
	// wholesale, atomically.
	Update(ctx context.Context, r *domain.Report) error
	Delete(ctx context.Context, id int) error
}
