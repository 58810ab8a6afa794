package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AndrivA89/mindnotes/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("note_color", func(fl validator.FieldLevel) bool {
		return domain.Color(fl.Field().String()).Valid()
	})
	return v
}

// validationError folds validator output into a domain.ErrValidation.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "note_color":
		return fmt.Sprintf("%s must be one of %s", field, colorList())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func colorList() string {
	names := make([]string, len(domain.Colors))
	for i, c := range domain.Colors {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
