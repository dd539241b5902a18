package services

import (
	"context"

	"daily-report-system/internal/authz"
	"daily-report-system/internal/dto"
	"daily-report-system/internal/entities"
	"daily-report-system/internal/repositories"
	apperrors "daily-report-system/pkg/errors"
	"daily-report-system/pkg/utils"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type SalesPersonServiceInterface interface {
	GetSalesPersons(ctx context.Context, actor *authz.Actor, filter dto.SalesPersonListFilter) ([]dto.SalesPersonDTO, int64, error)
	FindSalesPerson(ctx context.Context, actor *authz.Actor, id int64) (*dto.SalesPersonDTO, error)
	CreateSalesPerson(ctx context.Context, actor *authz.Actor, payload dto.CreateSalesPersonDTO) (*dto.SalesPersonDTO, error)
	UpdateSalesPerson(ctx context.Context, actor *authz.Actor, id int64, payload dto.UpdateSalesPersonDTO) (*dto.SalesPersonDTO, error)
	DeleteSalesPerson(ctx context.Context, actor *authz.Actor, id int64) error
}

type SalesPersonService struct {
	salesPersonRepo repositories.SalesPersonRepositoryInterface
	dailyReportRepo repositories.DailyReportRepositoryInterface
	logger          *zap.Logger
}

func NewSalesPersonService(
	salesPersonRepo repositories.SalesPersonRepositoryInterface,
	dailyReportRepo repositories.DailyReportRepositoryInterface,
	logger *zap.Logger,
) SalesPersonServiceInterface {
	return &SalesPersonService{
		salesPersonRepo: salesPersonRepo,
		dailyReportRepo: dailyReportRepo,
		logger:          logger,
	}
}

func toSalesPersonDTO(p *entities.SalesPerson) *dto.SalesPersonDTO {
	return &dto.SalesPersonDTO{
		ID:         p.ID,
		Name:       p.Name,
		Email:      p.Email,
		Department: p.Department.Ptr(),
		IsManager:  p.IsManager,
		CreatedAt:  formatTimestamp(p.CreatedAt),
		UpdatedAt:  formatTimestamp(p.UpdatedAt),
	}
}

func (s *SalesPersonService) GetSalesPersons(ctx context.Context, actor *authz.Actor, filter dto.SalesPersonListFilter) ([]dto.SalesPersonDTO, int64, error) {
	if err := authz.Can(actor, authz.SalesPersonsView, nil); err != nil {
		return nil, 0, err
	}

	persons, total, err := s.salesPersonRepo.GetSalesPersons(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.SalesPersonDTO, len(persons))
	for i := range persons {
		dtos[i] = *toSalesPersonDTO(&persons[i])
	}
	return dtos, total, nil
}

func (s *SalesPersonService) FindSalesPerson(ctx context.Context, actor *authz.Actor, id int64) (*dto.SalesPersonDTO, error) {
	if err := authz.Can(actor, authz.SalesPersonsView, nil); err != nil {
		return nil, err
	}

	person, err := s.salesPersonRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSalesPersonDTO(person), nil
}

func (s *SalesPersonService) CreateSalesPerson(ctx context.Context, actor *authz.Actor, payload dto.CreateSalesPersonDTO) (*dto.SalesPersonDTO, error) {
	if err := authz.Can(actor, authz.SalesPersonsCreate, nil); err != nil {
		return nil, err
	}

	if _, err := s.salesPersonRepo.FindByEmail(ctx, payload.Email); err == nil {
		return nil, apperrors.Duplicate("This email address is already registered")
	} else if !isNotFound(err) {
		return nil, err
	}

	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	isManager := false
	if payload.IsManager != nil {
		isManager = *payload.IsManager
	}

	entity := &entities.SalesPerson{
		Name:       payload.Name,
		Email:      payload.Email,
		Password:   hashed,
		Department: null.StringFromPtr(payload.Department),
		IsManager:  isManager,
	}

	created, err := s.salesPersonRepo.Create(ctx, entity)
	if err != nil {
		return nil, err
	}
	return toSalesPersonDTO(created), nil
}

func (s *SalesPersonService) UpdateSalesPerson(ctx context.Context, actor *authz.Actor, id int64, payload dto.UpdateSalesPersonDTO) (*dto.SalesPersonDTO, error) {
	if err := authz.Can(actor, authz.SalesPersonsUpdate, nil); err != nil {
		return nil, err
	}

	person, err := s.salesPersonRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Email != person.Email {
		if _, err := s.salesPersonRepo.FindByEmail(ctx, payload.Email); err == nil {
			return nil, apperrors.Duplicate("This email address is already registered")
		} else if !isNotFound(err) {
			return nil, err
		}
	}

	person.Name = payload.Name
	person.Email = payload.Email
	person.Department = null.StringFromPtr(payload.Department)
	if payload.IsManager != nil {
		person.IsManager = *payload.IsManager
	}

	// Empty password means keep the current one.
	if payload.Password != "" {
		hashed, err := utils.HashPassword(payload.Password)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		person.Password = hashed
	}

	updated, err := s.salesPersonRepo.Update(ctx, person)
	if err != nil {
		return nil, err
	}
	return toSalesPersonDTO(updated), nil
}

func (s *SalesPersonService) DeleteSalesPerson(ctx context.Context, actor *authz.Actor, id int64) error {
	if err := authz.Can(actor, authz.SalesPersonsDelete, nil); err != nil {
		return err
	}

	person, err := s.salesPersonRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := authz.Can(actor, authz.SalesPersonsDelete, person); err != nil {
		return err
	}

	count, err := s.dailyReportRepo.CountBySalesPerson(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.Reference("This sales person is referenced by daily reports and cannot be deleted")
	}

	return s.salesPersonRepo.Delete(ctx, id)
}
