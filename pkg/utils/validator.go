package utils

import (
	"fmt"
	"reflect"
	"strings"

	apperrors "daily-report-system/pkg/errors"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator wraps a validator instance for echo. Field names in messages
// come from the json tag, so clients see the names they sent.
func NewValidator(v *validator.Validate) *CustomValidator {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate reports only the first violated constraint, not an aggregate.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return apperrors.Validation(FirstValidationMessage(errs))
		}
		return apperrors.Validation(err.Error())
	}
	return nil
}

func FirstValidationMessage(errs validator.ValidationErrors) string {
	return fieldMessage(errs[0])
}

func fieldMessage(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "hhmm":
		return fmt.Sprintf("%s must be a time in HH:MM format", field)
	case "dateonly":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
	default:
		return fmt.Sprintf("%s failed validation rule '%s'", field, e.Tag())
	}
}
