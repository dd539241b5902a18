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

const customerColumns = "id, company_name, company_person, email, address, phone, created_at, updated_at"

type CustomerRepositoryInterface interface {
	GetCustomers(ctx context.Context, filter dto.CustomerListFilter) ([]entities.Customer, int64, error)
	GetMasterList(ctx context.Context) ([]entities.Customer, error)
	FindByID(ctx context.Context, id int64) (*entities.Customer, error)
	Create(ctx context.Context, entity *entities.Customer) (*entities.Customer, error)
	Update(ctx context.Context, entity *entities.Customer) (*entities.Customer, error)
	Delete(ctx context.Context, id int64) error
	CountVisitRecords(ctx context.Context, customerID int64) (int64, error)
}

type CustomerRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCustomerRepository(storage *pgxpool.Pool, logger *zap.Logger) CustomerRepositoryInterface {
	return &CustomerRepository{storage: storage, logger: logger}
}

func scanCustomer(row pgx.Row) (*entities.Customer, error) {
	var c entities.Customer
	err := row.Scan(
		&c.ID, &c.CompanyName, &c.CompanyPerson, &c.Email,
		&c.Address, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Customer not found")
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) GetCustomers(ctx context.Context, filter dto.CustomerListFilter) ([]entities.Customer, int64, error) {
	applyFilter := func(qb sq.SelectBuilder) sq.SelectBuilder {
		if filter.CompanyName != "" {
			qb = qb.Where(sq.ILike{"company_name": "%" + filter.CompanyName + "%"})
		}
		return qb
	}

	countSQL, countArgs, err := applyFilter(psql.Select("COUNT(*)").From("customers")).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var totalCount int64
	if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return []entities.Customer{}, 0, nil
	}

	listSQL, listArgs, err := applyFilter(psql.Select(customerColumns).From("customers")).
		OrderBy("company_name ASC").
		Limit(uint64(filter.PerPage)).
		Offset(uint64((filter.Page - 1) * filter.PerPage)).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	customers := make([]entities.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, err
		}
		customers = append(customers, *c)
	}
	return customers, totalCount, rows.Err()
}

// GetMasterList returns every customer as an id+name pair for dropdowns.
func (r *CustomerRepository) GetMasterList(ctx context.Context) ([]entities.Customer, error) {
	rows, err := r.storage.Query(ctx, "SELECT id, company_name FROM customers ORDER BY company_name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]entities.Customer, 0)
	for rows.Next() {
		var c entities.Customer
		if err := rows.Scan(&c.ID, &c.CompanyName); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*entities.Customer, error) {
	row := r.storage.QueryRow(ctx, "SELECT "+customerColumns+" FROM customers WHERE id = $1", id)
	return scanCustomer(row)
}

func (r *CustomerRepository) Create(ctx context.Context, entity *entities.Customer) (*entities.Customer, error) {
	query := `
		INSERT INTO customers (company_name, company_person, email, address, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + customerColumns
	row := r.storage.QueryRow(ctx, query,
		entity.CompanyName, entity.CompanyPerson, entity.Email, entity.Address, entity.Phone,
	)
	return scanCustomer(row)
}

func (r *CustomerRepository) Update(ctx context.Context, entity *entities.Customer) (*entities.Customer, error) {
	query := `
		UPDATE customers
		SET company_name = $1, company_person = $2, email = $3, address = $4, phone = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING ` + customerColumns
	row := r.storage.QueryRow(ctx, query,
		entity.CompanyName, entity.CompanyPerson, entity.Email, entity.Address, entity.Phone, entity.ID,
	)
	return scanCustomer(row)
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return mapConstraintError(err,
			"Duplicate customer",
			"This customer is referenced by visit records and cannot be deleted")
	}
	if result.RowsAffected() == 0 {
		return apperrors.NotFound("Customer not found")
	}
	return nil
}

// CountVisitRecords backs the referential delete guard.
func (r *CustomerRepository) CountVisitRecords(ctx context.Context, customerID int64) (int64, error) {
	var count int64
	err := r.storage.QueryRow(ctx, "SELECT COUNT(*) FROM visit_records WHERE customer_id = $1", customerID).Scan(&count)
	return count, err
}
