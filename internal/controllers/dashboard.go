package controllers

import (
	"net/http"

	"daily-report-system/internal/services"
	"daily-report-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(dashboardService services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, logger: logger}
}

func (ctrl *DashboardController) GetDashboard(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	dashboard, err := ctrl.dashboardService.GetDashboard(ctx.Request().Context(), actor)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, dashboard, http.StatusOK)
}
