package validator

import (
	"context"

	"github.com/dmitrymomot/verdict/pkg/async"
)

type nestedRule[T, N any] struct {
	RuleOptions[T]
	inner *ModelValidator[N]
}

// Nested validates an N (or non-nil *N) field value with inner and reports
// its messages under "{field}.{inner field}". Other values are ignored.
func Nested[T, N any](inner *ModelValidator[N]) Rule[T] {
	return &nestedRule[T, N]{inner: inner}
}

func (r *nestedRule[T, N]) Mode() Mode {
	return ModeBoth
}

func (r *nestedRule[T, N]) Validate(_ T, field string, value any) Outcome {
	n, ok := asRecord[N](value)
	if !ok {
		return Outcome{}
	}
	return r.inner.validate(n).rehome(field)
}

func (r *nestedRule[T, N]) ValidateAsync(ctx context.Context, _ T, field string, value any) *async.Future[Outcome] {
	n, ok := asRecord[N](value)
	if !ok {
		return async.Resolved(Outcome{})
	}
	return async.Async(ctx, n, func(ctx context.Context, n N) (Outcome, error) {
		out, err := r.inner.validateAsync(ctx, n)
		return out.rehome(field), err
	})
}

// asRecord accepts N or a non-nil *N.
func asRecord[N any](value any) (N, bool) {
	switch v := value.(type) {
	case N:
		return v, true
	case *N:
		if v != nil {
			return *v, true
		}
	}
	var zero N
	return zero, false
}
