package domain

import (
	"errors"
	"time"
)

// ReportStatus represents the lifecycle state of a daily report.
type ReportStatus string

const (
	StatusDraft     ReportStatus = "draft"
	StatusSubmitted ReportStatus = "submitted"
	StatusReviewed  ReportStatus = "reviewed"
)

var ErrReportNotFound = errors.New("report not found")
var ErrDuplicateReport = errors.New("report already exists for this date")
var ErrInvalidTransition = errors.New("invalid status transition")

// ValidReportStatus reports whether s names a known status value.
func ValidReportStatus(s string) bool {
	switch ReportStatus(s) {
	case StatusDraft, StatusSubmitted, StatusReviewed:
		return true
	}
	return false
}

// Report is a sales representative's daily activity report. Exactly one
// report may exist per (UserID, ReportDate) pair; the store enforces this
// with a unique constraint and the service pre-checks it.
type Report struct {
	ID           int
	UserID       int
	ReportDate   time.Time // date only, midnight UTC
	Problem      *string
	Plan         *string
	Status       ReportStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
	VisitRecords []VisitRecord
}

// VisitRecord is a customer visit logged inside a report. Records have no
// lifecycle of their own: they are written atomically with their parent and
// removed when it is deleted. Ordering is by ascending SortOrder.
type VisitRecord struct {
	ID         int
	ReportID   int
	CustomerID int
	VisitTime  *time.Time // time of day only; date component is ignored
	Content    string
	SortOrder  int
}
