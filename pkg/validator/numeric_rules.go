package validator

// PositiveInt passes only for integer kinds greater than zero.
func PositiveInt[T any]() Rule[T] {
	return &valueRule[T]{
		key:  "validation.positive_integer",
		text: "must be a positive integer",
		check: func(v any) (bool, bool) {
			n, ok := toNumber(v)
			if !ok || n.class == classFloat {
				return false, true
			}
			return n.sign() > 0, true
		},
	}
}

// Positive passes for any numeric kind greater than zero. Non-numeric values fail.
func Positive[T any]() Rule[T] {
	return &valueRule[T]{
		key:  "validation.positive",
		text: "must be a positive number",
		check: func(v any) (bool, bool) {
			n, ok := toNumber(v)
			if !ok {
				return false, true
			}
			return n.sign() > 0, true
		},
	}
}
