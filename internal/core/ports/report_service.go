package ports

import (
	"context"
	"time"

	"github.com/salesdesk/daily-report-api/internal/core/domain"
)

// VisitRecordInput is one customer visit inside a report write.
type VisitRecordInput struct {
	CustomerID int
	VisitTime  *time.Time
	Content    string
	SortOrder  int
}

// CreateReportInput carries validated data for creating a daily report.
type CreateReportInput struct {
	ReportDate   time.Time
	Problem      *string
	Plan         *string
	VisitRecords []VisitRecordInput
}

// UpdateReportInput mirrors CreateReportInput; visit records are replaced
// wholesale on update.
type UpdateReportInput = CreateReportInput

// ListReportsInput carries the validated list query. The caller's identity
// decides the effective owner scope.
type ListReportsInput struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Status   string
	UserID   int // manager-only owner filter; ignored for sales callers
	Page     Page
}

// ReportList is one page of reports plus the total count.
type ReportList struct {
	Items []domain.Report
	Total int
}

// ReportService defines use-case operations for daily reports. Every method
// takes the caller identity and enforces ownership scoping:
// sales see and mutate only their own reports, managers read everything.
type ReportService interface {
	List(ctx context.Context, caller domain.SessionUser, in ListReportsInput) (*ReportList, error)
	Create(ctx context.Context, caller domain.SessionUser, in CreateReportInput) (*domain.Report, error)
	Get(ctx context.Context, caller domain.SessionUser, id int) (*domain.Report, error)
	Update(ctx context.Context, caller domain.SessionUser, id int, in UpdateReportInput) (*domain.Report, error)
	Delete(ctx context.Context, caller domain.SessionUser, id int) error
}
