package validator

import (
	"fmt"
	"reflect"
	"strings"
)

// OneOf passes when the value equals one of allowed. Numbers compare by value
// across kinds, everything else with reflect.DeepEqual.
func OneOf[T any](allowed ...any) Rule[T] {
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = fmt.Sprint(a)
	}
	list := strings.Join(names, ", ")

	return &valueRule[T]{
		key:    "validation.one_of",
		text:   "must be one of: " + list,
		params: map[string]any{"values": list},
		check: func(v any) (bool, bool) {
			for _, a := range allowed {
				if c, ok := compareValues(v, a); ok && c == 0 {
					return true, true
				}
				if reflect.DeepEqual(v, a) {
					return true, true
				}
			}
			return false, true
		},
	}
}
