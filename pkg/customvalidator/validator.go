package customvalidator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations wires the domain-specific rules into the shared
// validator instance.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("hhmm", isTimeOfDay); err != nil {
		return err
	}
	if err := v.RegisterValidation("dateonly", isDateOnly); err != nil {
		return err
	}
	return nil
}

var hhmmRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func isTimeOfDay(fl validator.FieldLevel) bool {
	return hhmmRegex.MatchString(fl.Field().String())
}

func isDateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
