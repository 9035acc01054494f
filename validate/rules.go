package validate

import (
	"errors"
	"fmt"
	"strings"
)

// Rule is a single deferred validation check.
type Rule func() error

// Rules evaluates every rule and joins the failures.
// Returns nil when all rules pass.
func Rules(rules ...Rule) error {
	var errs []error
	for _, r := range rules {
		if r == nil {
			continue
		}
		if err := r(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// FieldError describes a single field violation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
}

// Required fails when value is empty or whitespace.
func Required(field, value string) Rule {
	return func() error {
		if strings.TrimSpace(value) == "" {
			return &FieldError{Field: field, Reason: "is required"}
		}
		return nil
	}
}

// NonNil fails when v is nil.
func NonNil(field string, v any) Rule {
	return func() error {
		if v == nil {
			return &FieldError{Field: field, Reason: "must not be nil"}
		}
		return nil
	}
}

// Range fails when v is outside [min, max].
func Range(field string, v, min, max float64) Rule {
	return func() error {
		if v < min || v > max {
			return &FieldError{
				Field:  field,
				Reason: fmt.Sprintf("must be between %g and %g, got %g", min, max, v),
			}
		}
		return nil
	}
}

// Positive fails when v is not greater than zero.
func Positive(field string, v float64) Rule {
	return func() error {
		if v <= 0 {
			return &FieldError{
				Field:  field,
				Reason: fmt.Sprintf("must be positive, got %g", v),
			}
		}
		return nil
	}
}

// OneOf fails when value is not in the allowed set.
func OneOf(field, value string, allowed ...string) Rule {
	return func() error {
		for _, a := range allowed {
			if value == a {
				return nil
			}
		}
		return &FieldError{
			Field:  field,
			Reason: fmt.Sprintf("must be one of [%s], got %q", strings.Join(allowed, " "), value),
		}
	}
}
