package domain

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance; struct tags are read once and cached.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs tag validation and translates the first failure into a
// ValidationError naming the offending field in snake_case.
func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return ErrValidation("request", "invalid request: %v", err)
	}

	fe := verrs[0]
	field := toSnakeCase(fe.Field())
	switch fe.Tag() {
	case "required":
		return ErrValidation(field, "%s is required", HumanFieldName(field))
	case "email":
		return ErrValidation(field, "Invalid email format")
	case "max":
		return ErrValidation(field, "%s cannot exceed %s characters", HumanFieldName(field), fe.Param())
	case "min":
		return ErrValidation(field, "%s must be at least %s characters", HumanFieldName(field), fe.Param())
	case "oneof":
		return ErrValidation(field, "%s must be one of: %s", HumanFieldName(field), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return ErrValidation(field, "%s failed validation rule %q", HumanFieldName(field), fe.Tag())
	}
}

// toSnakeCase converts an exported Go field name to its wire/column form.
func toSnakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				prev := rune(name[i-1])
				if prev < 'A' || prev > 'Z' {
					b.WriteByte('_')
				}
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	s := b.String()
	// Normalize common initialisms (ID, URL) that the rune walk splits oddly.
	s = strings.ReplaceAll(s, "i_d", "id")
	s = strings.ReplaceAll(s, "u_r_l", "url")
	return s
}
