package errors

import (
	"fmt"
	"net/http"
)

// Error codes of the API. The set is closed: every failure leaving a handler
// carries exactly one of these.
const (
	CodeAuthRequired     = "AUTH_REQUIRED"
	CodeAuthInvalid      = "AUTH_INVALID"
	CodePermissionDenied = "PERMISSION_DENIED"
	CodeValidation       = "VALIDATION_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodeDuplicate        = "DUPLICATE_ERROR"
	CodeReference        = "REFERENCE_ERROR"
	CodeSelfDelete       = "SELF_DELETE_ERROR"
	CodeInternal         = "INTERNAL_ERROR"
)

// AppError is the single error type the handlers understand. Status is the
// HTTP status the code maps to; Err keeps the underlying cause for the logs
// and is never sent to the client.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func AuthRequired(message string) *AppError {
	return &AppError{Code: CodeAuthRequired, Message: message, Status: http.StatusUnauthorized}
}

func AuthInvalid(message string) *AppError {
	return &AppError{Code: CodeAuthInvalid, Message: message, Status: http.StatusUnauthorized}
}

func PermissionDenied(message string) *AppError {
	return &AppError{Code: CodePermissionDenied, Message: message, Status: http.StatusForbidden}
}

func Validation(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message, Status: http.StatusBadRequest}
}

func NotFound(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message, Status: http.StatusNotFound}
}

func Duplicate(message string) *AppError {
	return &AppError{Code: CodeDuplicate, Message: message, Status: http.StatusBadRequest}
}

func Reference(message string) *AppError {
	return &AppError{Code: CodeReference, Message: message, Status: http.StatusBadRequest}
}

func SelfDelete(message string) *AppError {
	return &AppError{Code: CodeSelfDelete, Message: message, Status: http.StatusBadRequest}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "An unexpected server error occurred",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// Shared instances for the failures that carry no per-call detail.
var (
	ErrAuthRequired       = AuthRequired("Authentication required")
	ErrInvalidCredentials = AuthInvalid("Email or password is incorrect")
	ErrPermissionDenied   = PermissionDenied("Permission denied")
)
