package validator

import (
	"context"
	"fmt"
	"iter"
	"reflect"

	"github.com/dmitrymomot/verdict/pkg/async"
)

type eachRule[T, I any] struct {
	RuleOptions[T]
	item *ModelValidator[I]
}

// Each validates every element of a []I, []*I, array or iter.Seq[I] field
// value with item, in iteration order, reporting messages under
// "{field}[{index}].{inner field}". Nil elements and other values are ignored.
func Each[T, I any](item *ModelValidator[I]) Rule[T] {
	return &eachRule[T, I]{item: item}
}

func (r *eachRule[T, I]) Mode() Mode {
	return ModeBoth
}

func (r *eachRule[T, I]) Validate(_ T, field string, value any) Outcome {
	var outcomes []Outcome
	for i, item := range elements[I](value) {
		outcomes = append(outcomes, r.item.validate(item).rehome(indexPath(field, i)))
	}
	return Concat(outcomes...)
}

func (r *eachRule[T, I]) ValidateAsync(ctx context.Context, _ T, field string, value any) *async.Future[Outcome] {
	seq := elements[I](value)
	return async.Async(ctx, seq, func(ctx context.Context, seq iter.Seq2[int, I]) (Outcome, error) {
		var outcomes []Outcome
		for i, item := range seq {
			out, err := r.item.validateAsync(ctx, item)
			outcomes = append(outcomes, out.rehome(indexPath(field, i)))
			if err != nil {
				return Concat(outcomes...), err
			}
		}
		return Concat(outcomes...), nil
	})
}

func indexPath(field string, i int) string {
	return fmt.Sprintf("%s[%d]", field, i)
}

// elements yields the items of a homogeneous sequence of I with their
// zero-based positions. Positions of skipped nil elements are preserved.
func elements[I any](value any) iter.Seq2[int, I] {
	none := func(func(int, I) bool) {}

	switch v := value.(type) {
	case nil:
		return none
	case []I:
		return func(yield func(int, I) bool) {
			for i, item := range v {
				if !yield(i, item) {
					return
				}
			}
		}
	case []*I:
		return func(yield func(int, I) bool) {
			for i, item := range v {
				if item == nil {
					continue
				}
				if !yield(i, *item) {
					return
				}
			}
		}
	case iter.Seq[I]:
		return func(yield func(int, I) bool) {
			i := 0
			for item := range v {
				if !yield(i, item) {
					return
				}
				i++
			}
		}
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return none
	}
	itemType := reflect.TypeFor[I]()
	elemType := rv.Type().Elem()
	if elemType != itemType && elemType != reflect.PointerTo(itemType) {
		return none
	}

	return func(yield func(int, I) bool) {
		for i := range rv.Len() {
			item, ok := asRecord[I](rv.Index(i).Interface())
			if !ok {
				continue
			}
			if !yield(i, item) {
				return
			}
		}
	}
}
