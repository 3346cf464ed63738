package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/salesdesk/daily-report-api/internal/core/domain"
	"github.com/salesdesk/daily-report-api/internal/core/ports"
)

// ReportService implements daily report use cases with ownership scoping:
// sales callers operate only on their own reports, managers read everything.
type ReportService struct {
	repo   ports.ReportRepository
	logger zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, logger: logger}
}

func (s *ReportService) List(ctx context.Context, caller domain.SessionUser, in ports.ListReportsInput) (*ports.ReportList, error) {
	filter := ports.ReportFilter{
		DateFrom: in.DateFrom,
		DateTo:   in.DateTo,
		Status:   in.Status,
		Limit:    in.Page.PerPage,
		Offset:   in.Page.Offset(),
	}

	// Sales always see their own reports only, whatever filter they sent.
	// Managers may narrow to a single owner.
	if caller.Role == domain.RoleSales {
		filter.UserID = caller.ID
	} else if in.UserID > 0 {
		filter.UserID = in.UserID
	}

	reports, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.ReportList{Items: reports, Total: total}, nil
}

func (s *ReportService) Create(ctx context.Context, caller domain.SessionUser, in ports.CreateReportInput) (*domain.Report, error) {
	if caller.Role != domain.RoleSales {
		return nil, domain.ErrForbidden
	}

	// Pre-check for a friendly 409; the unique index on
	// (user_id, report_date) is the authoritative guard.
	if _, err := s.repo.FindByUserAndDate(ctx, caller.ID, in.ReportDate); err == nil {
		return nil, domain.ErrDuplicateReport
	} else if !errors.Is(err, domain.ErrReportNotFound) {
		return nil, err
	}

	report := &domain.Report{
		UserID:       caller.ID,
		ReportDate:   in.ReportDate,
		Problem:      in.Problem,
		Plan:         in.Plan,
		Status:       domain.StatusDraft,
		VisitRecords: toVisitRecords(in.VisitRecords),
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("report_id", report.ID).
		Int("user_id", caller.ID).
		Str("report_date", in.ReportDate.Format("2006-01-02")).
		Int("visit_records", len(report.VisitRecords)).
		Msg("report created")

	return report, nil
}

func (s *ReportService) Get(ctx context.Context, caller domain.SessionUser, id int) (*domain.Report, error) {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// A foreign report is indistinguishable from a missing one.
	if caller.Role == domain.RoleSales && report.UserID != caller.ID {
		return nil, domain.ErrReportNotFound
	}
	return report, nil
}

func (s *ReportService) Update(ctx context.Context, caller domain.SessionUser, id int, in ports.UpdateReportInput) (*domain.Report, error) {
	report, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	// Only the owner may write; managers have read-only access here.
	if report.UserID != caller.ID {
		return nil, domain.ErrForbidden
	}

	// Moving the report to another date must not collide with a sibling.
	if !report.ReportDate.Equal(in.ReportDate) {
		if _, err := s.repo.FindByUserAndDate(ctx, caller.ID, in.ReportDate); err == nil {
			return nil, domain.ErrDuplicateReport
		} else if !errors.Is(err, domain.ErrReportNotFound) {
			return nil, err
		}
	}

	report.ReportDate = in.ReportDate
	report.Problem = in.Problem
	report.Plan = in.Plan
	report.VisitRecords = toVisitRecords(in.VisitRecords)
	for i := range report.VisitRecords {
		report.VisitRecords[i].ReportID = report.ID
	}

	if err := s.repo.Update(ctx, report); err != nil {
		return nil, err
	}

	s.logger.Info().Int("report_id", report.ID).Int("user_id", caller.ID).Msg("report updated")
	return report, nil
}

func (s *ReportService) Delete(ctx context.Context, caller domain.SessionUser, id int) error {
	report, err := s.Get(ctx, caller, id)
	if err != nil {
		return err
	}
	if report.UserID != caller.ID {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int("report_id", id).Int("user_id", caller.ID).Msg("report deleted")
	return nil
}

func toVisitRecords(in []ports.VisitRecordInput) []domain.VisitRecord {
	out := make([]domain.VisitRecord, len(in))
	for i, vr := range in {
		out[i] = domain.VisitRecord{
			CustomerID: vr.CustomerID,
			VisitTime:  vr.VisitTime,
			Content:    vr.Content,
			SortOrder:  vr.SortOrder,
		}
	}
	return out
}
