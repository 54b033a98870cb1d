package validator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}

func RequiredSlice[T any](field string, value []T) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain at least one item",
		},
	}
}

// NoControlChars validates that a string contains no control characters.
// Unlike free text, names must not contain tabs or line breaks either.
func NoControlChars(field, value string) Rule {
	return Rule{
		Check: func() bool {
			for _, char := range value {
				if unicode.IsControl(char) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "must not contain control characters",
		},
	}
}

// Name combines the rules every state, event or machine name must satisfy.
// An empty name passes unless required is set.
func Name(field, value string, required bool) []Rule {
	rules := []Rule{
		NoControlChars(field, value),
		MaxLenString(field, value, MaxNameLength),
	}
	if required {
		rules = append([]Rule{RequiredString(field, value)}, rules...)
	}
	return rules
}

// MaxNameLength bounds state, event and machine names.
const MaxNameLength = 128
