// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"dcars/internal/errors"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one failed rule in client terms.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ValidationError carries every failed rule of a request body.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+":"+f.Rule)
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

// EchoValidator implements echo.Validator.
type EchoValidator struct {
	validate *validator.Validate
}

// New builds a validator that reports fields by their JSON names.
func New() *EchoValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	// Registration only fails for empty tags.
	_ = validate.RegisterValidation("currency", currencyCode)

	return &EchoValidator{validate: validate}
}

// Validate checks i against its validate tags.
func (v *EchoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return out
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// currencyCode accepts three ASCII letters in either case.
func currencyCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}

	return true
}
