package validator

import (
	"github.com/google/uuid"
)

// UUID checks that a string is a canonical, hyphenated UUID. uuid.UUID values
// pass unless they equal uuid.Nil.
func UUID[T any]() Rule[T] {
	return &valueRule[T]{
		key:  "validation.uuid",
		text: "must be a valid UUID",
		check: func(v any) (bool, bool) {
			if id, ok := v.(uuid.UUID); ok {
				return id != uuid.Nil, true
			}
			s, ok := asString(v)
			if !ok {
				return false, false
			}
			// Fast rejection before parsing: uuid.Parse also accepts urn and braced forms
			if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
				return false, true
			}
			_, err := uuid.Parse(s)
			return err == nil, true
		},
	}
}
