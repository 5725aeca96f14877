package validator

import (
	"fmt"
	"slices"
	"strings"
)

// MinNum checks value >= min.
func MinNum[T Numeric](field string, value, min T) Rule {
	return Rule{
		Check: func() bool { return value >= min },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at least %v", min)},
	}
}

// MaxNum checks value <= max.
func MaxNum[T Numeric](field string, value, max T) Rule {
	return Rule{
		Check: func() bool { return value <= max },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at most %v", max)},
	}
}

// Between checks min <= value <= max.
func Between[T Numeric](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool { return value >= min && value <= max },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be between %v and %v", min, max)},
	}
}

// OneOf checks that value is in allowed.
func OneOf[T comparable](field string, value T, allowed ...T) Rule {
	return Rule{
		Check: func() bool { return slices.Contains(allowed, value) },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be one of: %v", allowed)},
	}
}

// OneOfFold is OneOf for strings, ignoring case and surrounding spaces.
func OneOfFold(field, value string, allowed ...string) Rule {
	return Rule{
		Check: func() bool {
			v := strings.TrimSpace(value)
			return slices.ContainsFunc(allowed, func(a string) bool {
				return strings.EqualFold(v, a)
			})
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be one of (case-insensitive): " + strings.Join(allowed, ", "),
		},
	}
}
