package services

import (
	"context"
	"time"

	"daily-report-system/internal/dto"
	"daily-report-system/internal/entities"
	apperrors "daily-report-system/pkg/errors"

	"github.com/jackc/pgx/v5"
)

// In-memory stand-ins for the repository interfaces, enough to drive the
// service logic without a database.

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	m.calls++
	return fn(nil)
}

type fakeSalesPersonRepo struct {
	persons map[int64]*entities.SalesPerson
	deleted []int64
}

func newFakeSalesPersonRepo(persons ...*entities.SalesPerson) *fakeSalesPersonRepo {
	repo := &fakeSalesPersonRepo{persons: map[int64]*entities.SalesPerson{}}
	for _, p := range persons {
		repo.persons[p.ID] = p
	}
	return repo
}

func (r *fakeSalesPersonRepo) GetSalesPersons(ctx context.Context, filter dto.SalesPersonListFilter) ([]entities.SalesPerson, int64, error) {
	out := make([]entities.SalesPerson, 0, len(r.persons))
	for _, p := range r.persons {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSalesPersonRepo) FindByID(ctx context.Context, id int64) (*entities.SalesPerson, error) {
	if p, ok := r.persons[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, apperrors.NotFound("Sales person not found")
}

func (r *fakeSalesPersonRepo) FindByEmail(ctx context.Context, email string) (*entities.SalesPerson, error) {
	for _, p := range r.persons {
		if p.Email == email {
			copied := *p
			return &copied, nil
		}
	}
	return nil, apperrors.NotFound("Sales person not found")
}

func (r *fakeSalesPersonRepo) Create(ctx context.Context, entity *entities.SalesPerson) (*entities.SalesPerson, error) {
	entity.ID = int64(len(r.persons) + 1)
	entity.CreatedAt = time.Now()
	entity.UpdatedAt = entity.CreatedAt
	r.persons[entity.ID] = entity
	return entity, nil
}

func (r *fakeSalesPersonRepo) Update(ctx context.Context, entity *entities.SalesPerson) (*entities.SalesPerson, error) {
	r.persons[entity.ID] = entity
	return entity, nil
}

func (r *fakeSalesPersonRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.persons[id]; !ok {
		return apperrors.NotFound("Sales person not found")
	}
	delete(r.persons, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeDailyReportRepo struct {
	reports      map[int64]*entities.DailyReport
	visits       map[int64][]entities.VisitRecord
	reportCounts map[int64]int64
	nextID       int64
	replaceErr   error
}

func newFakeDailyReportRepo(reports ...*entities.DailyReport) *fakeDailyReportRepo {
	repo := &fakeDailyReportRepo{
		reports:      map[int64]*entities.DailyReport{},
		visits:       map[int64][]entities.VisitRecord{},
		reportCounts: map[int64]int64{},
		nextID:       1,
	}
	for _, r := range reports {
		repo.reports[r.ID] = r
		if r.ID >= repo.nextID {
			repo.nextID = r.ID + 1
		}
	}
	return repo
}

func (r *fakeDailyReportRepo) GetDailyReports(ctx context.Context, filter dto.DailyReportListFilter) ([]entities.DailyReport, int64, error) {
	out := make([]entities.DailyReport, 0)
	for _, report := range r.reports {
		if filter.SalesPersonID != nil && report.SalesPersonID != *filter.SalesPersonID {
			continue
		}
		out = append(out, *report)
	}
	return out, int64(len(out)), nil
}

func (r *fakeDailyReportRepo) FindByID(ctx context.Context, id int64) (*entities.DailyReport, error) {
	if report, ok := r.reports[id]; ok {
		copied := *report
		return &copied, nil
	}
	return nil, apperrors.NotFound("Daily report not found")
}

func (r *fakeDailyReportRepo) ExistsForPersonAndDate(ctx context.Context, salesPersonID int64, reportDate time.Time) (bool, error) {
	for _, report := range r.reports {
		if report.SalesPersonID == salesPersonID && report.ReportDate.Equal(reportDate) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeDailyReportRepo) CreateReport(ctx context.Context, tx pgx.Tx, entity *entities.DailyReport) (*entities.DailyReport, error) {
	entity.ID = r.nextID
	r.nextID++
	entity.CreatedAt = time.Now()
	entity.UpdatedAt = entity.CreatedAt
	r.reports[entity.ID] = entity
	return entity, nil
}

func (r *fakeDailyReportRepo) UpdateReport(ctx context.Context, tx pgx.Tx, entity *entities.DailyReport) (*entities.DailyReport, error) {
	r.reports[entity.ID] = entity
	return entity, nil
}

func (r *fakeDailyReportRepo) ReplaceVisitRecords(ctx context.Context, tx pgx.Tx, reportID int64, records []entities.VisitRecord) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	for i := range records {
		records[i].ID = int64(i + 1)
		records[i].ReportID = reportID
	}
	r.visits[reportID] = records
	return nil
}

func (r *fakeDailyReportRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.reports[id]; !ok {
		return apperrors.NotFound("Daily report not found")
	}
	delete(r.reports, id)
	delete(r.visits, id)
	return nil
}

func (r *fakeDailyReportRepo) GetVisitRecords(ctx context.Context, reportID int64) ([]entities.VisitRecord, error) {
	return r.visits[reportID], nil
}

func (r *fakeDailyReportRepo) CountBySalesPerson(ctx context.Context, salesPersonID int64) (int64, error) {
	return r.reportCounts[salesPersonID], nil
}

type fakeCustomerRepo struct {
	customers   map[int64]*entities.Customer
	visitCounts map[int64]int64
	deleted     []int64
	nextID      int64
}

func newFakeCustomerRepo(customers ...*entities.Customer) *fakeCustomerRepo {
	repo := &fakeCustomerRepo{
		customers:   map[int64]*entities.Customer{},
		visitCounts: map[int64]int64{},
		nextID:      1,
	}
	for _, c := range customers {
		repo.customers[c.ID] = c
		if c.ID >= repo.nextID {
			repo.nextID = c.ID + 1
		}
	}
	return repo
}

func (r *fakeCustomerRepo) GetCustomers(ctx context.Context, filter dto.CustomerListFilter) ([]entities.Customer, int64, error) {
	out := make([]entities.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCustomerRepo) GetMasterList(ctx context.Context) ([]entities.Customer, error) {
	out := make([]entities.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) FindByID(ctx context.Context, id int64) (*entities.Customer, error) {
	if c, ok := r.customers[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, apperrors.NotFound("Customer not found")
}

func (r *fakeCustomerRepo) Create(ctx context.Context, entity *entities.Customer) (*entities.Customer, error) {
	entity.ID = r.nextID
	r.nextID++
	entity.CreatedAt = time.Now()
	entity.UpdatedAt = entity.CreatedAt
	r.customers[entity.ID] = entity
	return entity, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, entity *entities.Customer) (*entities.Customer, error) {
	entity.UpdatedAt = time.Now()
	r.customers[entity.ID] = entity
	return entity, nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.customers[id]; !ok {
		return apperrors.NotFound("Customer not found")
	}
	delete(r.customers, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeCustomerRepo) CountVisitRecords(ctx context.Context, customerID int64) (int64, error) {
	return r.visitCounts[customerID], nil
}

type fakeCommentRepo struct {
	comments map[int64][]entities.ManagerComment
	nextID   int64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[int64][]entities.ManagerComment{}, nextID: 1}
}

func (r *fakeCommentRepo) Create(ctx context.Context, entity *entities.ManagerComment) (*entities.ManagerComment, error) {
	entity.ID = r.nextID
	r.nextID++
	entity.CreatedAt = time.Now()
	entity.ManagerName = "Manager Sato"
	r.comments[entity.ReportID] = append(r.comments[entity.ReportID], *entity)
	return entity, nil
}

func (r *fakeCommentRepo) GetByReport(ctx context.Context, reportID int64) ([]entities.ManagerComment, error) {
	return r.comments[reportID], nil
}

func (r *fakeCommentRepo) CountForOwnerSince(ctx context.Context, salesPersonID int64, since time.Time) (int64, error) {
	var count int64
	for _, list := range r.comments {
		count += int64(len(list))
	}
	return count, nil
}
