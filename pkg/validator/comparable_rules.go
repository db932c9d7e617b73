package validator

import "fmt"

// Min fails when the value orders before bound. Values without an order
// relative to bound never pass.
func Min[T any](bound any) Rule[T] {
	return &valueRule[T]{
		key:    "validation.min",
		text:   fmt.Sprintf("must be greater than or equal to %v", bound),
		params: map[string]any{"min": bound},
		check: func(v any) (bool, bool) {
			c, ok := compareValues(v, bound)
			return ok && c >= 0, true
		},
	}
}

// Max fails when the value orders after bound.
func Max[T any](bound any) Rule[T] {
	return &valueRule[T]{
		key:    "validation.max",
		text:   fmt.Sprintf("must be less than or equal to %v", bound),
		params: map[string]any{"max": bound},
		check: func(v any) (bool, bool) {
			c, ok := compareValues(v, bound)
			return ok && c <= 0, true
		},
	}
}

// Between is the inclusive combination of Min and Max.
func Between[T any](lo, hi any) Rule[T] {
	return &valueRule[T]{
		key:    "validation.between",
		text:   fmt.Sprintf("must be between %v and %v", lo, hi),
		params: map[string]any{"min": lo, "max": hi},
		check: func(v any) (bool, bool) {
			lc, lok := compareValues(v, lo)
			hc, hok := compareValues(v, hi)
			return lok && hok && lc >= 0 && hc <= 0, true
		},
	}
}
