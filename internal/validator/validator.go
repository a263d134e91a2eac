package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/multiplexhq/cinema-reservation-system/internal/domain"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seat_category", validateSeatCategory)

	return validator
}

func validateSeatCategory(fl validator.FieldLevel) bool {
	return domain.SeatCategory(fl.Field().String()).IsValid()
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "seat_category":
		return "must be one of ADULT, STUDENT, CHILD"
	default:
		return "is invalid"
	}
}
