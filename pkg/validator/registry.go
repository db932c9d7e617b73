package validator

import (
	"reflect"
	"sync"
)

// Registry maps record types to their validators. It is safe for concurrent
// use; readers never block and the last registration for a type wins.
type Registry struct {
	validators sync.Map // reflect.Type -> *ModelValidator[T]
}

func NewRegistry() *Registry {
	return &Registry{}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry. It is never torn down.
func Default() *Registry {
	return defaultRegistry
}

// Has reports whether a validator is registered for t.
func (r *Registry) Has(t reflect.Type) bool {
	_, ok := r.validators.Load(t)
	return ok
}

// Types returns the registered record types in no particular order.
func (r *Registry) Types() []reflect.Type {
	var types []reflect.Type
	r.validators.Range(func(key, _ any) bool {
		types = append(types, key.(reflect.Type))
		return true
	})
	return types
}

// Register stores v as the validator for T, replacing any previous one.
func Register[T any](r *Registry, v *ModelValidator[T]) error {
	if v == nil {
		return ErrNilValidator
	}
	r.validators.Store(reflect.TypeFor[T](), v)
	return nil
}

// Get returns the validator registered for T or a *NotFoundError naming T.
func Get[T any](r *Registry) (*ModelValidator[T], error) {
	t := reflect.TypeFor[T]()
	v, ok := r.validators.Load(t)
	if !ok {
		return nil, &NotFoundError{Type: t}
	}
	return v.(*ModelValidator[T]), nil
}

// MustGet works like Get but panics when no validator is registered.
func MustGet[T any](r *Registry) *ModelValidator[T] {
	v, err := Get[T](r)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether a validator is registered for T.
func Has[T any](r *Registry) bool {
	return r.Has(reflect.TypeFor[T]())
}

// ValidateWith looks up the validator for T in r and validates record with it.
func ValidateWith[T any](r *Registry, record T) (Outcome, error) {
	v, err := Get[T](r)
	if err != nil {
		return Outcome{}, err
	}
	return v.Validate(record), nil
}
