package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salesdesk/daily-report-api/internal/core/domain"
	"github.com/salesdesk/daily-report-api/internal/core/ports"
)

const reportColumns = "id, user_id, report_date, problem, plan, status, created_at, updated_at"

// ReportRepository persists daily reports together with their visit
// records. Parent and children are always written in one transaction; the
// unique index on (user_id, report_date) is the authoritative duplicate
// guard and surfaces as domain.ErrDuplicateReport.
type ReportRepository struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

func (r *ReportRepository) List(ctx context.Context, f ports.ReportFilter) ([]domain.Report, int, error) {
	where, args := reportWhere(f)

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM daily_reports`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reports: %w", err)
	}

	query := `SELECT ` + reportColumns + ` FROM daily_reports` + where +
		` ORDER BY report_date DESC LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	reports := []domain.Report{}
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, 0, err
		}
		reports = append(reports, *rep)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}

	if err := r.attachVisitRecords(ctx, reports); err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

func (r *ReportRepository) FindByID(ctx context.Context, id int) (*domain.Report, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+reportColumns+` FROM daily_reports WHERE id = $1`, id)
	rep, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("find report by id: %w", err)
	}

	page := []domain.Report{*rep}
	if err := r.attachVisitRecords(ctx, page); err != nil {
		return nil, err
	}
	return &page[0], nil
}

func (r *ReportRepository) FindByUserAndDate(ctx context.Context, userID int, date time.Time) (*domain.Report, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+reportColumns+` FROM daily_reports WHERE user_id = $1 AND report_date = $2`,
		userID, date)
	rep, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("find report by user and date: %w", err)
	}
	return rep, nil
}

func (r *ReportRepository) Create(ctx context.Context, rep *domain.Report) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO daily_reports (user_id, report_date, problem, plan, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		rep.UserID, rep.ReportDate, rep.Problem, rep.Plan, rep.Status,
	).Scan(&rep.ID, &rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReport
		}
		return fmt.Errorf("create report: %w", err)
	}

	if err := insertVisitRecords(ctx, tx, rep.ID, rep.VisitRecords); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}

func (r *ReportRepository) Update(ctx context.Context, rep *domain.Report) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("update report: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`UPDATE daily_reports
		 SET report_date = $2, problem = $3, plan = $4, status = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING updated_at`,
		rep.ID, rep.ReportDate, rep.Problem, rep.Plan, rep.Status,
	).Scan(&rep.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrReportNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReport
		}
		return fmt.Errorf("update report: %w", err)
	}

	// Visit records are replaced wholesale.
	if _, err := tx.Exec(ctx, `DELETE FROM visit_records WHERE report_id = $1`, rep.ID); err != nil {
		return fmt.Errorf("update report: clear visit records: %w", err)
	}
	if err := insertVisitRecords(ctx, tx, rep.ID, rep.VisitRecords); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("update report: %w", err)
	}
	return nil
}

func (r *ReportRepository) Delete(ctx context.Context, id int) error {
	// visit_records go with the parent via ON DELETE CASCADE.
	tag, err := r.pool.Exec(ctx, `DELETE FROM daily_reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

// reportWhere builds the WHERE clause for List from the filter.
func reportWhere(f ports.ReportFilter) (string, []any) {
	conds := []string{}
	args := []any{}

	if f.UserID > 0 {
		args = append(args, f.UserID)
		conds = append(conds, "user_id = $"+strconv.Itoa(len(args)))
	}
	if f.DateFrom != nil {
		args = append(args, *f.DateFrom)
		conds = append(conds, "report_date >= $"+strconv.Itoa(len(args)))
	}
	if f.DateTo != nil {
		args = append(args, *f.DateTo)
		conds = append(conds, "report_date <= $"+strconv.Itoa(len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func insertVisitRecords(ctx context.Context, tx pgx.Tx, reportID int, records []domain.VisitRecord) error {
	for i := range records {
		records[i].ReportID = reportID
		err := tx.QueryRow(ctx,
			`INSERT INTO visit_records (report_id, customer_id, visit_time, content, sort_order)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id`,
			reportID, records[i].CustomerID, records[i].VisitTime, records[i].Content, records[i].SortOrder,
		).Scan(&records[i].ID)
		if err != nil {
			return fmt.Errorf("insert visit record: %w", err)
		}
	}
	return nil
}

// attachVisitRecords loads the visit records for a page of reports in one
// query and distributes them, preserving sort_order ascending.
func (r *ReportRepository) attachVisitRecords(ctx context.Context, reports []domain.Report) error {
	if len(reports) == 0 {
		return nil
	}

	ids := make([]int, len(reports))
	index := make(map[int]*domain.Report, len(reports))
	for i := range reports {
		ids[i] = reports[i].ID
		reports[i].VisitRecords = []domain.VisitRecord{}
		index[reports[i].ID] = &reports[i]
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, report_id, customer_id, visit_time, content, sort_order
		 FROM visit_records
		 WHERE report_id = ANY($1)
		 ORDER BY report_id, sort_order ASC`,
		ids)
	if err != nil {
		return fmt.Errorf("load visit records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var vr domain.VisitRecord
		if err := rows.Scan(&vr.ID, &vr.ReportID, &vr.CustomerID, &vr.VisitTime, &vr.Content, &vr.SortOrder); err != nil {
			return fmt.Errorf("scan visit record: %w", err)
		}
		if rep, ok := index[vr.ReportID]; ok {
			rep.VisitRecords = append(rep.VisitRecords, vr)
		}
	}
	return rows.Err()
}

func scanReport(row pgx.Row) (*domain.Report, error) {
	var rep domain.Report
	err := row.Scan(
		&rep.ID,
		&rep.UserID,
		&rep.ReportDate,
		&rep.Problem,
		&rep.Plan,
		&rep.Status,
		&rep.CreatedAt,
		&rep.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}
