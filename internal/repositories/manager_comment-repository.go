package repositories

import (
	"context"
	"time"

	"daily-report-system/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ManagerCommentRepositoryInterface interface {
	Create(ctx context.Context, entity *entities.ManagerComment) (*entities.ManagerComment, error)
	GetByReport(ctx context.Context, reportID int64) ([]entities.ManagerComment, error)
	CountForOwnerSince(ctx context.Context, salesPersonID int64, since time.Time) (int64, error)
}

type ManagerCommentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewManagerCommentRepository(storage *pgxpool.Pool, logger *zap.Logger) ManagerCommentRepositoryInterface {
	return &ManagerCommentRepository{storage: storage, logger: logger}
}

func (r *ManagerCommentRepository) Create(ctx context.Context, entity *entities.ManagerComment) (*entities.ManagerComment, error) {
	query := `
		WITH ins AS (
			INSERT INTO manager_comments (report_id, manager_id, coment)
			VALUES ($1, $2, $3)
			RETURNING id, report_id, manager_id, coment, created_at
		)
		SELECT ins.id, ins.report_id, ins.manager_id, ins.coment, ins.created_at, sp.name
		FROM ins JOIN sales_persons sp ON sp.id = ins.manager_id`
	var created entities.ManagerComment
	err := r.storage.QueryRow(ctx, query, entity.ReportID, entity.ManagerID, entity.Coment).Scan(
		&created.ID, &created.ReportID, &created.ManagerID,
		&created.Coment, &created.CreatedAt, &created.ManagerName,
	)
	if err != nil {
		return nil, mapConstraintError(err,
			"Duplicate comment",
			"The daily report does not exist")
	}
	return &created, nil
}

func (r *ManagerCommentRepository) GetByReport(ctx context.Context, reportID int64) ([]entities.ManagerComment, error) {
	query := `
		SELECT mc.id, mc.report_id, mc.manager_id, mc.coment, mc.created_at, sp.name
		FROM manager_comments mc
		JOIN sales_persons sp ON sp.id = mc.manager_id
		WHERE mc.report_id = $1
		ORDER BY mc.created_at ASC`
	rows, err := r.storage.Query(ctx, query, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]entities.ManagerComment, 0)
	for rows.Next() {
		var c entities.ManagerComment
		if err := rows.Scan(&c.ID, &c.ReportID, &c.ManagerID, &c.Coment, &c.CreatedAt, &c.ManagerName); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// CountForOwnerSince counts comments attached to the owner's reports from
// `since` on. The dashboard treats this as the unread-comment figure.
func (r *ManagerCommentRepository) CountForOwnerSince(ctx context.Context, salesPersonID int64, since time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM manager_comments mc
		JOIN daily_reports dr ON dr.id = mc.report_id
		WHERE dr.sales_person_id = $1 AND mc.created_at >= $2`
	var count int64
	err := r.storage.QueryRow(ctx, query, salesPersonID, since).Scan(&count)
	return count, err
}
