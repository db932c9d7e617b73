package validator

import (
	"cmp"
	"reflect"
	"strings"
)

// indirect dereferences pointers. ok is false when the value is absent.
func indirect(v any) (any, bool) {
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
	if isAbsentValue(rv) {
		return nil, false
	}
	return rv.Interface(), true
}

func isAbsentValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// asString returns the text of string-kinded values, including named string types.
func asString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// isBlank reports an absent value or a string that is empty after trimming.
func isBlank(v any) bool {
	val, ok := indirect(v)
	if !ok {
		return true
	}
	if s, ok := asString(val); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

type numberClass uint8

const (
	classInt numberClass = iota
	classUint
	classFloat
)

type number struct {
	class numberClass
	i     int64
	u     uint64
	f     float64
}

func toNumber(v any) (number, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return number{}, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{class: classInt, i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{class: classUint, u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return number{class: classFloat, f: rv.Float()}, true
	}
	return number{}, false
}

func (n number) float() float64 {
	switch n.class {
	case classInt:
		return float64(n.i)
	case classUint:
		return float64(n.u)
	default:
		return n.f
	}
}

func (n number) sign() int {
	switch n.class {
	case classInt:
		return cmp.Compare(n.i, 0)
	case classUint:
		return cmp.Compare(n.u, 0)
	default:
		return cmp.Compare(n.f, 0)
	}
}

func (n number) compare(other number) int {
	switch {
	case n.class == classFloat || other.class == classFloat:
		return cmp.Compare(n.float(), other.float())
	case n.class == classInt && other.class == classInt:
		return cmp.Compare(n.i, other.i)
	case n.class == classUint && other.class == classUint:
		return cmp.Compare(n.u, other.u)
	case n.class == classInt:
		if n.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(n.i), other.u)
	default:
		if other.i < 0 {
			return 1
		}
		return cmp.Compare(n.u, uint64(other.i))
	}
}

var intType = reflect.TypeFor[int]()

// compareValues orders a against b. ok is false when the pair has no natural order.
func compareValues(a, b any) (int, bool) {
	if an, ok := toNumber(a); ok {
		if bn, ok := toNumber(b); ok {
			return an.compare(bn), true
		}
		return 0, false
	}

	if as, ok := asString(a); ok {
		if bs, ok := asString(b); ok {
			return strings.Compare(as, bs), true
		}
		return 0, false
	}

	return compareMethod(a, b)
}

// compareMethod uses a Compare(other) int method, as implemented by time.Time.
func compareMethod(a, b any) (int, bool) {
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if !av.IsValid() || !bv.IsValid() {
		return 0, false
	}

	m := av.MethodByName("Compare")
	if !m.IsValid() {
		return 0, false
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0) != intType {
		return 0, false
	}
	if !bv.Type().AssignableTo(mt.In(0)) {
		return 0, false
	}

	return int(m.Call([]reflect.Value{bv})[0].Int()), true
}
