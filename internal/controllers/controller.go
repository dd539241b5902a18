package controllers

import (
	"strconv"
	"time"

	"daily-report-system/internal/authz"
	"daily-report-system/internal/services"
	apperrors "daily-report-system/pkg/errors"
	"daily-report-system/pkg/utils"

	"github.com/labstack/echo/v4"
)

// idParam parses the :id path segment. A malformed id is a lookup that can
// never match, so it reports NOT_FOUND rather than a validation failure.
func idParam(ctx echo.Context, notFoundMessage string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NotFound(notFoundMessage)
	}
	return id, nil
}

func actorFromRequest(ctx echo.Context) (*authz.Actor, error) {
	claims, err := utils.ClaimsFromCtx(ctx.Request().Context())
	if err != nil {
		return nil, err
	}
	return services.ActorFromClaims(claims), nil
}

func parseDateParam(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}
