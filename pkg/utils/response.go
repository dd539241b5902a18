package utils

import (
	"errors"
	"net/http"

	apperrors "daily-report-system/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HTTPResponse is the uniform wire envelope of every endpoint.
type HTTPResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PaginationMeta accompanies every list payload.
type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	PerPage     int   `json:"perPage"`
	TotalCount  int64 `json:"totalCount"`
	TotalPages  int   `json:"totalPages"`
}

type PaginatedBody struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationMeta `json:"pagination"`
}

func SuccessResponse(ctx echo.Context, data interface{}, code int) error {
	return ctx.JSON(code, &HTTPResponse{Success: true, Data: data})
}

// ErrorResponse maps any error to the failure envelope. Expected failures
// (AppError) keep their code and status; everything else collapses to
// INTERNAL_ERROR with a generic message, details go to the log only.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			logger.Error("request failed",
				zap.String("code", appErr.Code),
				zap.Int("status", appErr.Status),
				zap.Error(appErr.Err),
			)
		}
		return ctx.JSON(appErr.Status, &HTTPResponse{
			Success: false,
			Error:   &ErrorBody{Code: appErr.Code, Message: appErr.Message},
		})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return ctx.JSON(http.StatusBadRequest, &HTTPResponse{
			Success: false,
			Error:   &ErrorBody{Code: apperrors.CodeValidation, Message: FirstValidationMessage(validationErrors)},
		})
	}

	logger.Error("unexpected error", zap.Error(err))
	return ctx.JSON(http.StatusInternalServerError, &HTTPResponse{
		Success: false,
		Error:   &ErrorBody{Code: apperrors.CodeInternal, Message: "An unexpected server error occurred"},
	})
}
