package lookup

import (
	"fmt"
	"reflect"
)

// subject dereferences v. ok is false when there is nothing to look up.
func subject(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.String && rv.Len() == 0 {
		return nil, false
	}
	return rv.Interface(), true
}

// member renders v the way it is stored in a Redis set.
func member(v any) (string, bool) {
	s, ok := subject(v)
	if !ok {
		return "", false
	}
	return fmt.Sprint(s), true
}
