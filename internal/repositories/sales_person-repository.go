package repositories

import (
	"context"
	"errors"

	"daily-report-system/internal/dto"
	"daily-report-system/internal/entities"
	apperrors "daily-report-system/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const salesPersonColumns = "id, name, email, password, department, is_manager, created_at, updated_at"

type SalesPersonRepositoryInterface interface {
	GetSalesPersons(ctx context.Context, filter dto.SalesPersonListFilter) ([]entities.SalesPerson, int64, error)
	FindByID(ctx context.Context, id int64) (*entities.SalesPerson, error)
	FindByEmail(ctx context.Context, email string) (*entities.SalesPerson, error)
	Create(ctx context.Context, entity *entities.SalesPerson) (*entities.SalesPerson, error)
	Update(ctx context.Context, entity *entities.SalesPerson) (*entities.SalesPerson, error)
	Delete(ctx context.Context, id int64) error
}

type SalesPersonRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewSalesPersonRepository(storage *pgxpool.Pool, logger *zap.Logger) SalesPersonRepositoryInterface {
	return &SalesPersonRepository{storage: storage, logger: logger}
}

func scanSalesPerson(row pgx.Row) (*entities.SalesPerson, error) {
	var p entities.SalesPerson
	err := row.Scan(
		&p.ID, &p.Name, &p.Email, &p.Password, &p.Department,
		&p.IsManager, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Sales person not found")
		}
		return nil, err
	}
	return &p, nil
}

func salesPersonListConditions(qb sq.SelectBuilder, filter dto.SalesPersonListFilter) sq.SelectBuilder {
	if filter.Name != "" {
		qb = qb.Where(sq.ILike{"name": "%" + filter.Name + "%"})
	}
	if filter.Department != "" {
		qb = qb.Where(sq.ILike{"department": "%" + filter.Department + "%"})
	}
	return qb
}

func (r *SalesPersonRepository) GetSalesPersons(ctx context.Context, filter dto.SalesPersonListFilter) ([]entities.SalesPerson, int64, error) {
	countQuery := salesPersonListConditions(psql.Select("COUNT(*)").From("sales_persons"), filter)
	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var totalCount int64
	if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return []entities.SalesPerson{}, 0, nil
	}

	listQuery := salesPersonListConditions(psql.Select(salesPersonColumns).From("sales_persons"), filter).
		OrderBy("name ASC").
		Limit(uint64(filter.PerPage)).
		Offset(uint64((filter.Page - 1) * filter.PerPage))
	listSQL, listArgs, err := listQuery.ToSql()
	if err != nil {
		return nil, 0, err
	}

	r.logger.Debug("listing sales persons", zap.String("query", listSQL), zap.Any("args", listArgs))

	rows, err := r.storage.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	persons := make([]entities.SalesPerson, 0)
	for rows.Next() {
		p, err := scanSalesPerson(rows)
		if err != nil {
			return nil, 0, err
		}
		persons = append(persons, *p)
	}
	return persons, totalCount, rows.Err()
}

func (r *SalesPersonRepository) FindByID(ctx context.Context, id int64) (*entities.SalesPerson, error) {
	row := r.storage.QueryRow(ctx, "SELECT "+salesPersonColumns+" FROM sales_persons WHERE id = $1", id)
	return scanSalesPerson(row)
}

func (r *SalesPersonRepository) FindByEmail(ctx context.Context, email string) (*entities.SalesPerson, error) {
	row := r.storage.QueryRow(ctx, "SELECT "+salesPersonColumns+" FROM sales_persons WHERE email = $1", email)
	return scanSalesPerson(row)
}

func (r *SalesPersonRepository) Create(ctx context.Context, entity *entities.SalesPerson) (*entities.SalesPerson, error) {
	query := `
		INSERT INTO sales_persons (name, email, password, department, is_manager)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + salesPersonColumns
	row := r.storage.QueryRow(ctx, query,
		entity.Name, entity.Email, entity.Password, entity.Department, entity.IsManager,
	)
	created, err := scanSalesPerson(row)
	if err != nil {
		return nil, mapConstraintError(err,
			"This email address is already registered",
			"Related record does not exist")
	}
	return created, nil
}

func (r *SalesPersonRepository) Update(ctx context.Context, entity *entities.SalesPerson) (*entities.SalesPerson, error) {
	query := `
		UPDATE sales_persons
		SET name = $1, email = $2, password = $3, department = $4, is_manager = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING ` + salesPersonColumns
	row := r.storage.QueryRow(ctx, query,
		entity.Name, entity.Email, entity.Password, entity.Department, entity.IsManager, entity.ID,
	)
	updated, err := scanSalesPerson(row)
	if err != nil {
		return nil, mapConstraintError(err,
			"This email address is already registered",
			"Related record does not exist")
	}
	return updated, nil
}

func (r *SalesPersonRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM sales_persons WHERE id = $1", id)
	if err != nil {
		return mapConstraintError(err,
			"This email address is already registered",
			"This sales person is referenced by daily reports and cannot be deleted")
	}
	if result.RowsAffected() == 0 {
		return apperrors.NotFound("Sales person not found")
	}
	return nil
}
