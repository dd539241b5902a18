package services

import (
	"context"

	"daily-report-system/internal/dto"
	"daily-report-system/internal/repositories"
	apperrors "daily-report-system/pkg/errors"
	"daily-report-system/pkg/service"
	"daily-report-system/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
	Profile(ctx context.Context, claims *service.SessionClaims) (*dto.ProfileDTO, error)
}

type AuthService struct {
	salesPersonRepo repositories.SalesPersonRepositoryInterface
	jwtService      service.JWTService
	logger          *zap.Logger
}

func NewAuthService(
	salesPersonRepo repositories.SalesPersonRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		salesPersonRepo: salesPersonRepo,
		jwtService:      jwtService,
		logger:          logger,
	}
}

// Login verifies the credentials and issues a session token. An unknown
// email and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	user, err := s.salesPersonRepo.FindByEmail(ctx, payload.Email)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(user.Password, payload.Password) {
		s.logger.Warn("login rejected", zap.String("email", payload.Email))
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.IssueToken(user.ID, user.Email, user.Name, user.IsManager)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &dto.LoginResponseDTO{
		Token: token,
		User: dto.ProfileDTO{
			ID:         user.ID,
			Name:       user.Name,
			Email:      user.Email,
			Department: user.Department.Ptr(),
			IsManager:  user.IsManager,
		},
	}, nil
}

func (s *AuthService) Profile(ctx context.Context, claims *service.SessionClaims) (*dto.ProfileDTO, error) {
	if claims == nil {
		return nil, apperrors.ErrAuthRequired
	}

	user, err := s.salesPersonRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileDTO{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Department: user.Department.Ptr(),
		IsManager:  user.IsManager,
	}, nil
}
