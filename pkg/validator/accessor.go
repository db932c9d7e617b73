package validator

import (
	"reflect"
	"unicode"
)

// Accessor binds a stable field name to a function reading that field from a record.
type Accessor[T any] struct {
	name string
	get  func(T) any
}

// NewField creates an accessor from an explicit name and getter.
func NewField[T any](name string, get func(T) any) (Accessor[T], error) {
	if name == "" {
		return Accessor[T]{}, &ExpressionError{Expression: name, Type: reflect.TypeFor[T](), Reason: "empty field name"}
	}
	if get == nil {
		return Accessor[T]{}, &ExpressionError{Expression: name, Type: reflect.TypeFor[T](), Reason: "nil getter"}
	}
	return Accessor[T]{name: name, get: get}, nil
}

// Field works like NewField but panics on an invalid name or getter.
func Field[T any](name string, get func(T) any) Accessor[T] {
	acc, err := NewField(name, get)
	if err != nil {
		panic(err)
	}
	return acc
}

// StructField resolves a direct exported field of the struct T (or *T) by name.
// Dotted paths, calls, promoted and unexported fields fail with ErrInvalidExpression.
func StructField[T any](name string) (Accessor[T], error) {
	t := reflect.TypeFor[T]()
	fail := func(reason string) (Accessor[T], error) {
		return Accessor[T]{}, &ExpressionError{Expression: name, Type: t, Reason: reason}
	}

	if !isIdentifier(name) {
		return fail("not a direct field read")
	}

	st := t
	if st.Kind() == reflect.Pointer {
		st = st.Elem()
	}
	if st.Kind() != reflect.Struct {
		return fail("record is not a struct")
	}

	sf, ok := st.FieldByName(name)
	switch {
	case !ok:
		return fail("no such field")
	case len(sf.Index) != 1:
		return fail("promoted field")
	case !sf.IsExported():
		return fail("unexported field")
	}

	index := sf.Index[0]
	return Accessor[T]{
		name: name,
		get: func(record T) any {
			rv := reflect.ValueOf(record)
			if rv.Kind() == reflect.Pointer {
				if rv.IsNil() {
					return nil
				}
				rv = rv.Elem()
			}
			return rv.Field(index).Interface()
		},
	}, nil
}

// MustStructField works like StructField but panics on error.
func MustStructField[T any](name string) Accessor[T] {
	acc, err := StructField[T](name)
	if err != nil {
		panic(err)
	}
	return acc
}

func (a Accessor[T]) Name() string {
	return a.name
}

// Value reads the field from record.
func (a Accessor[T]) Value(record T) any {
	return a.get(record)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}
