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

type CustomerController struct {
	customerService services.CustomerServiceInterface
	logger          *zap.Logger
}

func NewCustomerController(customerService services.CustomerServiceInterface, logger *zap.Logger) *CustomerController {
	return &CustomerController{customerService: customerService, logger: logger}
}

func (ctrl *CustomerController) GetCustomers(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	page, perPage := utils.ParsePaginationParams(ctx.Request().URL.Query())
	filter := dto.CustomerListFilter{
		CompanyName: ctx.QueryParam("company_name"),
		Page:        page,
		PerPage:     perPage,
	}

	customers, total, err := ctrl.customerService.GetCustomers(ctx.Request().Context(), actor, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	return utils.SuccessResponse(ctx, utils.PaginatedBody{
		Items:      customers,
		Pagination: utils.NewPaginationMeta(page, perPage, total),
	}, http.StatusOK)
}

// GetMasterList serves the id+name pairs the report form's customer dropdown
// needs, without pagination.
func (ctrl *CustomerController) GetMasterList(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	customers, err := ctrl.customerService.GetMasterList(ctx.Request().Context(), actor)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, customers, http.StatusOK)
}

func (ctrl *CustomerController) FindCustomer(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	id, err := idParam(ctx, "Customer not found")
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	customer, err := ctrl.customerService.FindCustomer(ctx.Request().Context(), actor, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, customer, http.StatusOK)
}

func (ctrl *CustomerController) CreateCustomer(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	var payload dto.CreateCustomerDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.Validation("Invalid request body"), ctrl.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	customer, err := ctrl.customerService.CreateCustomer(ctx.Request().Context(), actor, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, customer, http.StatusCreated)
}

func (ctrl *CustomerController) UpdateCustomer(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	id, err := idParam(ctx, "Customer not found")
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	var payload dto.UpdateCustomerDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.Validation("Invalid request body"), ctrl.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	customer, err := ctrl.customerService.UpdateCustomer(ctx.Request().Context(), actor, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, customer, http.StatusOK)
}

func (ctrl *CustomerController) DeleteCustomer(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	id, err := idParam(ctx, "Customer not found")
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	if err := ctrl.customerService.DeleteCustomer(ctx.Request().Context(), actor, id); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, nil, http.StatusOK)
}
