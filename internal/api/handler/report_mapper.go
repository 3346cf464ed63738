package handler

import (
	"time"

	"github.com/salesdesk/daily-report-api/internal/core/domain"
	"github.com/salesdesk/daily-report-api/internal/core/ports"
)

const timeOfDayLayout = "15:04"

// --- Request → Service input ---

func toReportInput(req createReportRequest) ports.CreateReportInput {
	// Formats were already validated; parse errors cannot occur here.
	date, _ := time.Parse(dateLayout, req.ReportDate)

	records := make([]ports.VisitRecordInput, len(req.VisitRecords))
	for i, vr := range req.VisitRecords {
		in := ports.VisitRecordInput{
			CustomerID: vr.CustomerID,
			Content:    vr.Content,
			SortOrder:  vr.SortOrder,
		}
		if vr.VisitTime != "" {
			t, _ := time.Parse(timeOfDayLayout, vr.VisitTime)
			in.VisitTime = &t
		}
		records[i] = in
	}

	return ports.CreateReportInput{
		ReportDate:   date,
		Problem:      req.Problem,
		Plan:         req.Plan,
		VisitRecords: records,
	}
}

// --- Domain → HTTP response ---

func toReportResponse(r *domain.Report) reportResponse {
	records := make([]visitRecordResponse, len(r.VisitRecords))
	for i, vr := range r.VisitRecords {
		out := visitRecordResponse{
			ID:         vr.ID,
			CustomerID: vr.CustomerID,
			Content:    vr.Content,
			SortOrder:  vr.SortOrder,
		}
		if vr.VisitTime != nil {
			s := vr.VisitTime.Format(timeOfDayLayout)
			out.VisitTime = &s
		}
		records[i] = out
	}

	return reportResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		ReportDate:   r.ReportDate.Format(dateLayout),
		Problem:      r.Problem,
		Plan:         r.Plan,
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
		VisitRecords: records,
	}
}

func toReportListResponse(items []domain.Report) []reportResponse {
	out := make([]reportResponse, len(items))
	for i := range items {
		out[i] = toReportResponse(&items[i])
	}
	return out
}
