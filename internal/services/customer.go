package services

import (
	"context"

	"daily-report-system/internal/authz"
	"daily-report-system/internal/dto"
	"daily-report-system/internal/entities"
	"daily-report-system/internal/repositories"
	apperrors "daily-report-system/pkg/errors"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type CustomerServiceInterface interface {
	GetCustomers(ctx context.Context, actor *authz.Actor, filter dto.CustomerListFilter) ([]dto.CustomerDTO, int64, error)
	GetMasterList(ctx context.Context, actor *authz.Actor) ([]dto.MasterCustomerDTO, error)
	FindCustomer(ctx context.Context, actor *authz.Actor, id int64) (*dto.CustomerDTO, error)
	CreateCustomer(ctx context.Context, actor *authz.Actor, payload dto.CreateCustomerDTO) (*dto.CustomerDTO, error)
	UpdateCustomer(ctx context.Context, actor *authz.Actor, id int64, payload dto.UpdateCustomerDTO) (*dto.CustomerDTO, error)
	DeleteCustomer(ctx context.Context, actor *authz.Actor, id int64) error
}

type CustomerService struct {
	customerRepo repositories.CustomerRepositoryInterface
	logger       *zap.Logger
}

func NewCustomerService(customerRepo repositories.CustomerRepositoryInterface, logger *zap.Logger) CustomerServiceInterface {
	return &CustomerService{customerRepo: customerRepo, logger: logger}
}

func toCustomerDTO(c *entities.Customer) *dto.CustomerDTO {
	return &dto.CustomerDTO{
		ID:            c.ID,
		CompanyName:   c.CompanyName,
		CompanyPerson: c.CompanyPerson.Ptr(),
		Email:         c.Email.Ptr(),
		Address:       c.Address.Ptr(),
		Phone:         c.Phone.Ptr(),
		CreatedAt:     formatTimestamp(c.CreatedAt),
		UpdatedAt:     formatTimestamp(c.UpdatedAt),
	}
}

func (s *CustomerService) GetCustomers(ctx context.Context, actor *authz.Actor, filter dto.CustomerListFilter) ([]dto.CustomerDTO, int64, error) {
	if err := authz.Can(actor, authz.CustomersView, nil); err != nil {
		return nil, 0, err
	}

	customers, total, err := s.customerRepo.GetCustomers(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.CustomerDTO, len(customers))
	for i := range customers {
		dtos[i] = *toCustomerDTO(&customers[i])
	}
	return dtos, total, nil
}

func (s *CustomerService) GetMasterList(ctx context.Context, actor *authz.Actor) ([]dto.MasterCustomerDTO, error) {
	if err := authz.Can(actor, authz.CustomersView, nil); err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.GetMasterList(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.MasterCustomerDTO, len(customers))
	for i, c := range customers {
		dtos[i] = dto.MasterCustomerDTO{ID: c.ID, CompanyName: c.CompanyName}
	}
	return dtos, nil
}

func (s *CustomerService) FindCustomer(ctx context.Context, actor *authz.Actor, id int64) (*dto.CustomerDTO, error) {
	if err := authz.Can(actor, authz.CustomersView, nil); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomerDTO(customer), nil
}

func (s *CustomerService) CreateCustomer(ctx context.Context, actor *authz.Actor, payload dto.CreateCustomerDTO) (*dto.CustomerDTO, error) {
	if err := authz.Can(actor, authz.CustomersCreate, nil); err != nil {
		return nil, err
	}

	entity := &entities.Customer{
		CompanyName:   payload.CompanyName,
		CompanyPerson: null.StringFromPtr(payload.CompanyPerson),
		Email:         emptyToNull(payload.Email),
		Address:       null.StringFromPtr(payload.Address),
		Phone:         null.StringFromPtr(payload.Phone),
	}

	created, err := s.customerRepo.Create(ctx, entity)
	if err != nil {
		return nil, err
	}
	return toCustomerDTO(created), nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, actor *authz.Actor, id int64, payload dto.UpdateCustomerDTO) (*dto.CustomerDTO, error) {
	if err := authz.Can(actor, authz.CustomersUpdate, nil); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.CompanyName = payload.CompanyName
	customer.CompanyPerson = null.StringFromPtr(payload.CompanyPerson)
	customer.Email = emptyToNull(payload.Email)
	customer.Address = null.StringFromPtr(payload.Address)
	customer.Phone = null.StringFromPtr(payload.Phone)

	updated, err := s.customerRepo.Update(ctx, customer)
	if err != nil {
		return nil, err
	}
	return toCustomerDTO(updated), nil
}

// DeleteCustomer is manager-only and guarded: a customer referenced by any
// visit record stays.
func (s *CustomerService) DeleteCustomer(ctx context.Context, actor *authz.Actor, id int64) error {
	if err := authz.Can(actor, authz.CustomersDelete, nil); err != nil {
		return err
	}

	if _, err := s.customerRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.customerRepo.CountVisitRecords(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.Reference("This customer is referenced by visit records and cannot be deleted")
	}

	return s.customerRepo.Delete(ctx, id)
}

// emptyToNull treats an empty string like an absent value, matching the
// "valid format or empty" email rule.
func emptyToNull(p *string) null.String {
	if p == nil || *p == "" {
		return null.String{}
	}
	return null.StringFrom(*p)
}
