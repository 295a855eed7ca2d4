package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/teampulse/team-pulse/internal/domain/entities"
)

// CustomValidator implements echo.Validator using go-playground/validator,
// extended with the entity-kind validations used across request DTOs.
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()

	// entitykind: any of the four directory kinds.
	v.RegisterValidation("entitykind", func(fl validator.FieldLevel) bool {
		return entities.EntityKind(fl.Field().String()).Valid()
	})
	// personkind: a kind that can own a meeting record or author a note.
	v.RegisterValidation("personkind", func(fl validator.FieldLevel) bool {
		return entities.EntityKind(fl.Field().String()).IsPerson()
	})

	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
