// Package validator plugs go-playground/validator into echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "garden/internal/domain/errors"
	"garden/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New returns an echo.Validator whose failures are itemized ValidationErrors.
func New() echo.Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &echoValidator{validate: v}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	items := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		items = append(items, message(fe))
	}

	return domainerrors.NewValidationError(items...)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "dive":
		return fmt.Sprintf("%s contains an invalid entry", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
