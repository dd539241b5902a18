package controllers

import (
	"net/http"

	"daily-report-system/internal/dto"
	"daily-report-system/internal/services"
	apperrors "daily-report-system/pkg/errors"
	"daily-report-system/pkg/middleware"
	"daily-report-system/pkg/service"
	"daily-report-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	authService services.AuthServiceInterface
	jwtService  service.JWTService
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, jwtService service.JWTService, logger *zap.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Login issues the session token both in the body and as an HttpOnly cookie,
// so browser and API clients use the same endpoint.
func (ctrl *AuthController) Login(ctx echo.Context) error {
	var payload dto.LoginDTO

	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.Validation("Invalid request body"), ctrl.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	result, err := ctrl.authService.Login(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	ctx.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    result.Token,
		Path:     "/",
		MaxAge:   int(ctrl.jwtService.SessionTTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	ctrl.logger.Info("login succeeded", zap.Int64("userID", result.User.ID))
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}

// Logout clears the session cookie. The token itself stays valid until it
// expires; the server keeps no session state.
func (ctrl *AuthController) Logout(ctx echo.Context) error {
	ctx.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	return utils.SuccessResponse(ctx, nil, http.StatusOK)
}

func (ctrl *AuthController) Me(ctx echo.Context) error {
	claims, err := utils.ClaimsFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	profile, err := ctrl.authService.Profile(ctx.Request().Context(), claims)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, profile, http.StatusOK)
}
