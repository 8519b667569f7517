package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	validate = &Validator{validate: validator.New()}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map.
// This prevents leaking internal struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			field := strings.ToLower(fieldErr.Field())
			switch fieldErr.Tag() {
			case "required":
				errs[field] = "is required"
			case "min":
				errs[field] = fmt.Sprintf("must be at least %s", fieldErr.Param())
			case "max":
				errs[field] = fmt.Sprintf("must be at most %s", fieldErr.Param())
			case "oneof":
				errs[field] = fmt.Sprintf("must be one of: %s", fieldErr.Param())
			default:
				errs[field] = fmt.Sprintf("failed %s validation", fieldErr.Tag())
			}
		}
		return errs
	}

	errs["request"] = err.Error()
	return errs
}
