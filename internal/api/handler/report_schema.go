package handler

import "time"

// --- Request types ---

type visitRecordRequest struct {
	CustomerID int    `json:"customer_id" validate:"required,gt=0"`
	VisitTime  string `json:"visit_time"  validate:"omitempty,datetime=15:04"`
	Content    string `json:"content"     validate:"required"`
	SortOrder  int    `json:"sort_order"  validate:"gte=0"`
}

type createReportRequest struct {
	ReportDate   string               `json:"report_date"   validate:"required,datetime=2006-01-02"`
	Problem      *string              `json:"problem"`
	Plan         *string              `json:"plan"`
	VisitRecords []visitRecordRequest `json:"visit_records" validate:"dive"`
}

// updateReportRequest mirrors the create shape; visit records are replaced
// wholesale on update.
type updateReportRequest = createReportRequest

// --- Response types ---

// Wire representation: report_date as YYYY-MM-DD, visit_time as HH:MM or
// null, timestamps as RFC 3339.

type visitRecordResponse struct {
	ID         int     `json:"id"`
	CustomerID int     `json:"customer_id"`
	VisitTime  *string `json:"visit_time"`
	Content    string  `json:"content"`
	SortOrder  int     `json:"sort_order"`
}

type reportResponse struct {
	ID           int                   `json:"id"`
	UserID       int                   `json:"user_id"`
	ReportDate   string                `json:"report_date"`
	Problem      *string               `json:"problem"`
	Plan         *string               `json:"plan"`
	Status       string                `json:"status"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	VisitRecords []visitRecordResponse `json:"visit_records"`
}
