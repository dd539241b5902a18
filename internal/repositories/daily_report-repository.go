package repositories

import (
	"context"
	"errors"
	"time"

	"daily-report-system/internal/dto"
	"daily-report-system/internal/entities"
	apperrors "daily-report-system/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const dailyReportListColumns = `
	dr.id, dr.sales_person_id, dr.report_date, dr.problem, dr.plan, dr.created_at, dr.updated_at,
	sp.name AS sales_person_name, sp.department AS sales_person_department,
	(SELECT COUNT(*) FROM visit_records vr WHERE vr.report_id = dr.id) AS visit_count,
	(SELECT COUNT(*) FROM manager_comments mc WHERE mc.report_id = dr.id) AS comment_count`

const dailyReportJoin = "daily_reports dr JOIN sales_persons sp ON sp.id = dr.sales_person_id"

type DailyReportRepositoryInterface interface {
	GetDailyReports(ctx context.Context, filter dto.DailyReportListFilter) ([]entities.DailyReport, int64, error)
	FindByID(ctx context.Context, id int64) (*entities.DailyReport, error)
	ExistsForPersonAndDate(ctx context.Context, salesPersonID int64, reportDate time.Time) (bool, error)
	CreateReport(ctx context.Context, tx pgx.Tx, entity *entities.DailyReport) (*entities.DailyReport, error)
	UpdateReport(ctx context.Context, tx pgx.Tx, entity *entities.DailyReport) (*entities.DailyReport, error)
	ReplaceVisitRecords(ctx context.Context, tx pgx.Tx, reportID int64, records []entities.VisitRecord) error
	Delete(ctx context.Context, id int64) error
	GetVisitRecords(ctx context.Context, reportID int64) ([]entities.VisitRecord, error)
	CountBySalesPerson(ctx context.Context, salesPersonID int64) (int64, error)
}

type DailyReportRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDailyReportRepository(storage *pgxpool.Pool, logger *zap.Logger) DailyReportRepositoryInterface {
	return &DailyReportRepository{storage: storage, logger: logger}
}

func scanDailyReport(row pgx.Row) (*entities.DailyReport, error) {
	var r entities.DailyReport
	err := row.Scan(
		&r.ID, &r.SalesPersonID, &r.ReportDate, &r.Problem, &r.Plan,
		&r.CreatedAt, &r.UpdatedAt,
		&r.SalesPersonName, &r.SalesPersonDepartment,
		&r.VisitCount, &r.CommentCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Daily report not found")
		}
		return nil, err
	}
	return &r, nil
}

func dailyReportListConditions(qb sq.SelectBuilder, filter dto.DailyReportListFilter) sq.SelectBuilder {
	if filter.SalesPersonID != nil {
		qb = qb.Where(sq.Eq{"dr.sales_person_id": *filter.SalesPersonID})
	}
	if filter.DateFrom != nil {
		qb = qb.Where(sq.GtOrEq{"dr.report_date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		qb = qb.Where(sq.LtOrEq{"dr.report_date": *filter.DateTo})
	}
	return qb
}

// GetDailyReports returns a page of reports with visit/comment counts. The
// filter's SalesPersonID is the scope the authorization policy decided on;
// the repository applies it blindly.
func (r *DailyReportRepository) GetDailyReports(ctx context.Context, filter dto.DailyReportListFilter) ([]entities.DailyReport, int64, error) {
	countSQL, countArgs, err := dailyReportListConditions(
		psql.Select("COUNT(*)").From(dailyReportJoin), filter).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var totalCount int64
	if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return []entities.DailyReport{}, 0, nil
	}

	listQuery := dailyReportListConditions(
		psql.Select(dailyReportListColumns).From(dailyReportJoin), filter).
		OrderBy("dr.report_date DESC", "dr.id DESC").
		Limit(uint64(filter.PerPage)).
		Offset(uint64((filter.Page - 1) * filter.PerPage))
	listSQL, listArgs, err := listQuery.ToSql()
	if err != nil {
		return nil, 0, err
	}

	r.logger.Debug("listing daily reports", zap.String("query", listSQL), zap.Any("args", listArgs))

	rows, err := r.storage.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	reports := make([]entities.DailyReport, 0)
	for rows.Next() {
		report, err := scanDailyReport(rows)
		if err != nil {
			return nil, 0, err
		}
		reports = append(reports, *report)
	}
	return reports, totalCount, rows.Err()
}

func (r *DailyReportRepository) FindByID(ctx context.Context, id int64) (*entities.DailyReport, error) {
	query := "SELECT " + dailyReportListColumns + " FROM " + dailyReportJoin + " WHERE dr.id = $1"
	row := r.storage.QueryRow(ctx, query, id)
	return scanDailyReport(row)
}

func (r *DailyReportRepository) ExistsForPersonAndDate(ctx context.Context, salesPersonID int64, reportDate time.Time) (bool, error) {
	var count int64
	err := r.storage.QueryRow(ctx,
		"SELECT COUNT(*) FROM daily_reports WHERE sales_person_id = $1 AND report_date = $2",
		salesPersonID, reportDate,
	).Scan(&count)
	return count > 0, err
}

func (r *DailyReportRepository) CreateReport(ctx context.Context, tx pgx.Tx, entity *entities.DailyReport) (*entities.DailyReport, error) {
	query := `
		INSERT INTO daily_reports (sales_person_id, report_date, problem, plan)
		VALUES ($1, $2, $3, $4)
		RETURNING id, sales_person_id, report_date, problem, plan, created_at, updated_at`
	var created entities.DailyReport
	err := tx.QueryRow(ctx, query,
		entity.SalesPersonID, entity.ReportDate, entity.Problem, entity.Plan,
	).Scan(
		&created.ID, &created.SalesPersonID, &created.ReportDate,
		&created.Problem, &created.Plan, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, mapConstraintError(err,
			"A daily report for this date already exists",
			"Related record does not exist")
	}
	return &created, nil
}

func (r *DailyReportRepository) UpdateReport(ctx context.Context, tx pgx.Tx, entity *entities.DailyReport) (*entities.DailyReport, error) {
	query := `
		UPDATE daily_reports
		SET report_date = $1, problem = $2, plan = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, sales_person_id, report_date, problem, plan, created_at, updated_at`
	var updated entities.DailyReport
	err := tx.QueryRow(ctx, query,
		entity.ReportDate, entity.Problem, entity.Plan, entity.ID,
	).Scan(
		&updated.ID, &updated.SalesPersonID, &updated.ReportDate,
		&updated.Problem, &updated.Plan, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Daily report not found")
		}
		return nil, mapConstraintError(err,
			"A daily report for this date already exists",
			"Related record does not exist")
	}
	return &updated, nil
}

// ReplaceVisitRecords deletes the report's visit rows and recreates them from
// the submitted set, inside the caller's transaction. A failure rolls back to
// the prior set.
func (r *DailyReportRepository) ReplaceVisitRecords(ctx context.Context, tx pgx.Tx, reportID int64, records []entities.VisitRecord) error {
	if _, err := tx.Exec(ctx, "DELETE FROM visit_records WHERE report_id = $1", reportID); err != nil {
		return err
	}

	for _, rec := range records {
		_, err := tx.Exec(ctx,
			"INSERT INTO visit_records (report_id, customer_id, visit_time, visit_content) VALUES ($1, $2, $3::time, $4)",
			reportID, rec.CustomerID, rec.VisitTime, rec.VisitContent,
		)
		if err != nil {
			return mapConstraintError(err,
				"Duplicate visit record",
				"The selected customer does not exist")
		}
	}
	return nil
}

func (r *DailyReportRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM daily_reports WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.NotFound("Daily report not found")
	}
	return nil
}

func (r *DailyReportRepository) GetVisitRecords(ctx context.Context, reportID int64) ([]entities.VisitRecord, error) {
	query := `
		SELECT vr.id, vr.report_id, vr.customer_id, to_char(vr.visit_time, 'HH24:MI'), vr.visit_content, c.company_name
		FROM visit_records vr
		JOIN customers c ON c.id = vr.customer_id
		WHERE vr.report_id = $1
		ORDER BY vr.id ASC`
	rows, err := r.storage.Query(ctx, query, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]entities.VisitRecord, 0)
	for rows.Next() {
		var rec entities.VisitRecord
		if err := rows.Scan(&rec.ID, &rec.ReportID, &rec.CustomerID, &rec.VisitTime, &rec.VisitContent, &rec.CustomerName); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CountBySalesPerson backs the referential delete guard.
func (r *DailyReportRepository) CountBySalesPerson(ctx context.Context, salesPersonID int64) (int64, error) {
	var count int64
	err := r.storage.QueryRow(ctx, "SELECT COUNT(*) FROM daily_reports WHERE sales_person_id = $1", salesPersonID).Scan(&count)
	return count, err
}
