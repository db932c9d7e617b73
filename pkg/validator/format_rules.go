package validator

import "regexp"

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9](?:[a-zA-Z0-9\-]*[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9\-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)

// Email checks the local@domain.tld shape of a string. Non-string values are ignored.
func Email[T any]() Rule[T] {
	return &valueRule[T]{
		key:  "validation.email",
		text: "must be a valid email address",
		check: func(v any) (bool, bool) {
			s, ok := asString(v)
			if !ok {
				return false, false
			}
			return emailRegex.MatchString(s), true
		},
	}
}
