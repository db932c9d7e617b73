package validator

import "regexp"

// Matches checks a string against pattern. It panics if pattern does not compile.
func Matches[T any](pattern string) Rule[T] {
	return MatchesRegexp[T](regexp.MustCompile(pattern))
}

// MatchesRegexp checks a string against a compiled expression.
func MatchesRegexp[T any](re *regexp.Regexp) Rule[T] {
	return &valueRule[T]{
		key:    "validation.pattern",
		text:   "must match the required format",
		params: map[string]any{"pattern": re.String()},
		check: func(v any) (bool, bool) {
			s, ok := asString(v)
			if !ok {
				return false, false
			}
			return re.MatchString(s), true
		},
	}
}
