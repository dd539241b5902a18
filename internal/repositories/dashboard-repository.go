package repositories

import (
	"context"
	"errors"
	"time"

	"daily-report-system/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DashboardRepositoryInterface interface {
	FindReportIDForDate(ctx context.Context, salesPersonID int64, date time.Time) (*int64, error)
	GetRecentReports(ctx context.Context, salesPersonID int64, limit int) ([]entities.DailyReport, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
}

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage}
}

// FindReportIDForDate returns nil when no report exists for the date.
func (r *DashboardRepository) FindReportIDForDate(ctx context.Context, salesPersonID int64, date time.Time) (*int64, error) {
	var id int64
	err := r.storage.QueryRow(ctx,
		"SELECT id FROM daily_reports WHERE sales_person_id = $1 AND report_date = $2",
		salesPersonID, date,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &id, nil
}

func (r *DashboardRepository) GetRecentReports(ctx context.Context, salesPersonID int64, limit int) ([]entities.DailyReport, error) {
	query := `
		SELECT dr.id, dr.report_date,
			(SELECT COUNT(*) FROM visit_records vr WHERE vr.report_id = dr.id) AS visit_count,
			(SELECT COUNT(*) FROM manager_comments mc WHERE mc.report_id = dr.id) AS comment_count
		FROM daily_reports dr
		WHERE dr.sales_person_id = $1
		ORDER BY dr.report_date DESC
		LIMIT $2`
	rows, err := r.storage.Query(ctx, query, salesPersonID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := make([]entities.DailyReport, 0)
	for rows.Next() {
		var report entities.DailyReport
		if err := rows.Scan(&report.ID, &report.ReportDate, &report.VisitCount, &report.CommentCount); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}
