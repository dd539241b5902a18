package controllers

import (
	"net/http"

	"daily-report-system/internal/dto"
	"daily-report-system/internal/services"
	apperrors "daily-report-system/pkg/errors"
	"daily-report-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type SalesPersonController struct {
	salesPersonService services.SalesPersonServiceInterface
	logger             *zap.Logger
}

func NewSalesPersonController(salesPersonService services.SalesPersonServiceInterface, logger *zap.Logger) *SalesPersonController {
	return &SalesPersonController{salesPersonService: salesPersonService, logger: logger}
}

func (ctrl *SalesPersonController) GetSalesPersons(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	page, perPage := utils.ParsePaginationParams(ctx.Request().URL.Query())
	filter := dto.SalesPersonListFilter{
		Name:       ctx.QueryParam("name"),
		Department: ctx.QueryParam("department"),
		Page:       page,
		PerPage:    perPage,
	}

	persons, total, err := ctrl.salesPersonService.GetSalesPersons(ctx.Request().Context(), actor, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	return utils.SuccessResponse(ctx, utils.PaginatedBody{
		Items:      persons,
		Pagination: utils.NewPaginationMeta(page, perPage, total),
	}, http.StatusOK)
}

func (ctrl *SalesPersonController) FindSalesPerson(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	id, err := idParam(ctx, "Sales person not found")
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	person, err := ctrl.salesPersonService.FindSalesPerson(ctx.Request().Context(), actor, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, person, http.StatusOK)
}

func (ctrl *SalesPersonController) CreateSalesPerson(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	var payload dto.CreateSalesPersonDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.Validation("Invalid request body"), ctrl.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	person, err := ctrl.salesPersonService.CreateSalesPerson(ctx.Request().Context(), actor, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	ctrl.logger.Info("sales person created", zap.Int64("id", person.ID))
	return utils.SuccessResponse(ctx, person, http.StatusCreated)
}

func (ctrl *SalesPersonController) UpdateSalesPerson(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	id, err := idParam(ctx, "Sales person not found")
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	var payload dto.UpdateSalesPersonDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.Validation("Invalid request body"), ctrl.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	person, err := ctrl.salesPersonService.UpdateSalesPerson(ctx.Request().Context(), actor, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, person, http.StatusOK)
}

func (ctrl *SalesPersonController) DeleteSalesPerson(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	id, err := idParam(ctx, "Sales person not found")
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	if err := ctrl.salesPersonService.DeleteSalesPerson(ctx.Request().Context(), actor, id); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	ctrl.logger.Info("sales person deleted", zap.Int64("id", id))
	return utils.SuccessResponse(ctx, nil, http.StatusOK)
}
