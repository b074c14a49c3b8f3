package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/harborview/realestate/backend/shared/go-dtos"
)

// Validate is shared by every request DTO.
var Validate = validator.New()

// ValidateStruct runs the struct tags of v and converts failures into a
// 400 AppError whose details list each offending field.
func ValidateStruct(v any, message string) error {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return NewValidationError(message, nil)
	}
	details := make([]dtos.ValidationErrorDetail, 0, len(vErrs))
	for _, fe := range vErrs {
		details = append(details, dtos.ValidationErrorDetail{
			Field:   lowerFirst(fe.Field()),
			Message: describeFieldError(fe),
			Code:    fe.Tag(),
		})
	}
	return NewValidationError(message, details)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "e164":
		return "must be an E.164 phone number"
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
