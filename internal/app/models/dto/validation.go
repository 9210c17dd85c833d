package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// HandleValidationError translates a binding error into per-field validation
// errors. Non-validator errors (malformed body and the like) are reported as
// a single generic validation failure.
func HandleValidationError(err error) *ValidationErrors {
	result := NewValidationErrors()

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		result.AddError("", "Invalid form submission")
		return result
	}

	for _, fe := range verrs {
		result.AddError(strings.ToLower(fe.Field()), formatFieldError(fe))
	}

	return result
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + e.Param() + " characters"
	case "max":
		return field + " must be at most " + e.Param() + " characters"
	case "email":
		return field + " must be a valid email address"
	case "eqfield":
		return field + " must match " + strings.ToLower(e.Param())
	default:
		return field + " validation failed: " + e.Tag()
	}
}
