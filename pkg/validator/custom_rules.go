package validator

import (
	"context"

	"github.com/dmitrymomot/verdict/pkg/async"
)

const (
	predicateKey  = "validation.predicate"
	predicateText = "is invalid"
)

type predicateRule[T any] struct {
	RuleOptions[T]
	pred Predicate[T]
}

// Must checks the field value with pred. The value is passed as resolved,
// absent values included.
func Must[T any](pred Predicate[T]) Rule[T] {
	return &predicateRule[T]{pred: pred}
}

func (r *predicateRule[T]) Mode() Mode {
	return ModeSync
}

func (r *predicateRule[T]) Validate(record T, field string, value any) Outcome {
	if r.pred(record, value) {
		return Outcome{}
	}
	return r.Fail(record, field, value, predicateText, predicateKey, nil)
}

func (r *predicateRule[T]) ValidateAsync(_ context.Context, record T, field string, value any) *async.Future[Outcome] {
	return resolveSync[T](r, record, field, value)
}

type asyncPredicateRule[T any] struct {
	RuleOptions[T]
	pred AsyncPredicate[T]
}

// MustAsync checks the field value with a predicate that may suspend.
// The synchronous entry point of the returned rule is a no-op.
func MustAsync[T any](pred AsyncPredicate[T]) Rule[T] {
	return &asyncPredicateRule[T]{pred: pred}
}

func (r *asyncPredicateRule[T]) Mode() Mode {
	return ModeAsync
}

func (r *asyncPredicateRule[T]) Validate(T, string, any) Outcome {
	return Outcome{}
}

func (r *asyncPredicateRule[T]) ValidateAsync(ctx context.Context, record T, field string, value any) *async.Future[Outcome] {
	return async.Async(ctx, value, func(ctx context.Context, value any) (Outcome, error) {
		ok, err := r.pred(ctx, record, value)
		if err != nil {
			return Outcome{}, err
		}
		if ok {
			return Outcome{}, nil
		}
		return r.Fail(record, field, value, predicateText, predicateKey, nil), nil
	})
}
