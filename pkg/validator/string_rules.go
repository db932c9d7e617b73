package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Required fails for absent values and for strings that are blank after trimming.
func Required[T any]() Rule[T] {
	return &valueRule[T]{
		key:         "validation.required",
		text:        "field is required",
		checkAbsent: true,
		check: func(v any) (bool, bool) {
			if v == nil {
				return false, true
			}
			if s, ok := asString(v); ok {
				return strings.TrimSpace(s) != "", true
			}
			return true, true
		},
	}
}

// MinLength fails when a string has fewer than min characters.
func MinLength[T any](min int) Rule[T] {
	return &valueRule[T]{
		key:    "validation.min_length",
		text:   fmt.Sprintf("must be at least %d characters long", min),
		params: map[string]any{"min": min},
		check: func(v any) (bool, bool) {
			s, ok := asString(v)
			if !ok {
				return false, false
			}
			return utf8.RuneCountInString(s) >= min, true
		},
	}
}

// MaxLength fails when a string has more than max characters.
func MaxLength[T any](max int) Rule[T] {
	return &valueRule[T]{
		key:    "validation.max_length",
		text:   fmt.Sprintf("must be at most %d characters long", max),
		params: map[string]any{"max": max},
		check: func(v any) (bool, bool) {
			s, ok := asString(v)
			if !ok {
				return false, false
			}
			return utf8.RuneCountInString(s) <= max, true
		},
	}
}

// Length fails when a string is shorter than min or longer than max characters.
func Length[T any](min, max int) Rule[T] {
	return &valueRule[T]{
		key:    "validation.length",
		text:   fmt.Sprintf("must be between %d and %d characters long", min, max),
		params: map[string]any{"min": min, "max": max},
		check: func(v any) (bool, bool) {
			s, ok := asString(v)
			if !ok {
				return false, false
			}
			n := utf8.RuneCountInString(s)
			return n >= min && n <= max, true
		},
	}
}
