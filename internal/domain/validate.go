package domain

import "github.com/go-playground/validator/v10"

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks a struct against its validation tags.
func Validate(v interface{}) error {
	return validate.Struct(v)
}

// FieldError represents a single field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormatValidationErrors converts validator errors to a readable format
func FormatValidationErrors(err error) []FieldError {
	var errors []FieldError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			errors = append(errors, FieldError{
				Field:   e.Field(),
				Message: fieldErrorMessage(e),
			})
		}
	}

	return errors
}

func fieldErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	case "gte":
		return "Value must be greater than or equal to " + e.Param()
	case "gt":
		return "Value must be greater than " + e.Param()
	default:
		return "Invalid value"
	}
}
