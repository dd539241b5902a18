package middleware

import (
	"strings"

	apperrors "daily-report-system/pkg/errors"
	"daily-report-system/pkg/service"
	"daily-report-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
	}
}

// Auth is the coarse gate: a request without a valid session never reaches a
// handler. All token failures look identical to the client.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			return utils.ErrorResponse(c, apperrors.ErrAuthRequired, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			m.logger.Warn("session token rejected", zap.Error(err))
			return utils.ErrorResponse(c, apperrors.ErrAuthRequired, m.logger)
		}

		c.SetRequest(c.Request().WithContext(utils.WithClaims(c.Request().Context(), claims)))
		return next(c)
	}
}

// RequireManager is the coarse role gate for manager-only route groups.
// Fine-grained checks against loaded records stay in the services.
func (m *AuthMiddleware) RequireManager(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := utils.ClaimsFromCtx(c.Request().Context())
		if err != nil {
			return utils.ErrorResponse(c, err, m.logger)
		}
		if !claims.IsManager {
			m.logger.Warn("manager-only route denied",
				zap.Int64("userID", claims.UserID),
				zap.String("path", c.Path()),
			)
			return utils.ErrorResponse(c, apperrors.ErrPermissionDenied, m.logger)
		}
		return next(c)
	}
}

// extractToken prefers the session cookie; a Bearer header is accepted for
// non-browser clients.
func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
