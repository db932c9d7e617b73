package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrymomot/verdict/pkg/async"
)

const (
	modelKey  = "validation.model"
	modelText = "record is invalid"
)

// ModelRule configures a model-level rule after it has been attached.
// Failures are reported with an empty field path unless WithField sets a label.
type ModelRule[T any] struct {
	rule Rule[T]
}

func (b *ModelRule[T]) When(fn func(T) bool) *ModelRule[T] {
	b.rule.Options().SetWhen(fn)
	return b
}

func (b *ModelRule[T]) Unless(fn func(T) bool) *ModelRule[T] {
	b.rule.Options().SetUnless(fn)
	return b
}

func (b *ModelRule[T]) WithMessage(text string) *ModelRule[T] {
	b.rule.Options().SetMessage(text)
	return b
}

func (b *ModelRule[T]) WithMessageFunc(fn func(T) string) *ModelRule[T] {
	b.rule.Options().SetMessageFunc(fn)
	return b
}

func (b *ModelRule[T]) WithSeverity(s Severity) *ModelRule[T] {
	b.rule.Options().SetSeverity(s)
	return b
}

func (b *ModelRule[T]) AsWarning() *ModelRule[T] {
	return b.WithSeverity(SeverityWarning)
}

// WithField attributes failures to field instead of the empty model path.
func (b *ModelRule[T]) WithField(field string) *ModelRule[T] {
	b.rule.Options().SetLabel(field)
	return b
}

// Rule attaches a model-level predicate over the whole record.
func (v *ModelValidator[T]) Rule(pred func(T) bool) *ModelRule[T] {
	r := &modelPredicateRule[T]{pred: pred}
	v.addRule(r)
	return &ModelRule[T]{rule: r}
}

// RuleAsync attaches a model-level predicate that may suspend. It only runs
// through ValidateAsync.
func (v *ModelValidator[T]) RuleAsync(pred func(context.Context, T) (bool, error)) *ModelRule[T] {
	r := &modelAsyncPredicateRule[T]{pred: pred}
	v.addRule(r)
	return &ModelRule[T]{rule: r}
}

// Include appends a model-level rule that runs other against the same record.
// Messages keep the paths other produced; message and severity overrides on
// the returned builder are not applied to them.
//
// Include panics with ErrNilValidator for a nil other and with an error
// matching ErrIncludeCycle when other is v or already includes v.
func (v *ModelValidator[T]) Include(other *ModelValidator[T]) *ModelRule[T] {
	if other == nil {
		panic(ErrNilValidator)
	}
	if other.includes(v) {
		panic(fmt.Errorf("%w: %s includes %s", ErrIncludeCycle, other.opts.name, v.opts.name))
	}
	r := &includeRule[T]{other: other}
	v.addRule(r)
	return &ModelRule[T]{rule: r}
}

// AddRule attaches a custom model-level rule.
func (v *ModelValidator[T]) AddRule(r Rule[T]) *ModelRule[T] {
	v.addRule(r)
	return &ModelRule[T]{rule: r}
}

type modelPredicateRule[T any] struct {
	RuleOptions[T]
	pred func(T) bool
}

func (r *modelPredicateRule[T]) Mode() Mode {
	return ModeSync
}

func (r *modelPredicateRule[T]) Validate(record T, field string, _ any) Outcome {
	if r.pred(record) {
		return Outcome{}
	}
	return r.Fail(record, field, nil, modelText, modelKey, nil)
}

func (r *modelPredicateRule[T]) ValidateAsync(_ context.Context, record T, field string, value any) *async.Future[Outcome] {
	return resolveSync[T](r, record, field, value)
}

type modelAsyncPredicateRule[T any] struct {
	RuleOptions[T]
	pred func(context.Context, T) (bool, error)
}

func (r *modelAsyncPredicateRule[T]) Mode() Mode {
	return ModeAsync
}

func (r *modelAsyncPredicateRule[T]) Validate(T, string, any) Outcome {
	return Outcome{}
}

func (r *modelAsyncPredicateRule[T]) ValidateAsync(ctx context.Context, record T, field string, _ any) *async.Future[Outcome] {
	return async.Async(ctx, record, func(ctx context.Context, record T) (Outcome, error) {
		ok, err := r.pred(ctx, record)
		if err != nil {
			return Outcome{}, err
		}
		if ok {
			return Outcome{}, nil
		}
		return r.Fail(record, field, nil, modelText, modelKey, nil), nil
	})
}

type includeRule[T any] struct {
	RuleOptions[T]
	other *ModelValidator[T]
}

// includes reports whether v is target or reaches it through included validators.
func (v *ModelValidator[T]) includes(target *ModelValidator[T]) bool {
	if v == target {
		return true
	}
	for _, r := range v.rules {
		if inc, ok := r.(*includeRule[T]); ok && inc.other.includes(target) {
			return true
		}
	}
	return false
}

func (r *includeRule[T]) Mode() Mode {
	return ModeBoth
}

func (r *includeRule[T]) Validate(record T, _ string, _ any) Outcome {
	return r.other.validate(record)
}

func (r *includeRule[T]) ValidateAsync(ctx context.Context, record T, _ string, _ any) *async.Future[Outcome] {
	return async.Async(ctx, record, r.other.validateAsync)
}

// AtLeastOneOfRule passes when at least one referenced field is neither
// absent nor a blank string. Fields are checked in declaration order;
// names that cannot be resolved are skipped.
type AtLeastOneOfRule[T any] struct {
	RuleOptions[T]
	fields  []string
	resolve func(string) (func(T) any, bool)
}

// AtLeastOneOf creates and registers an empty at-least-one-of rule.
// Names are resolved through accessors known to v, then direct struct fields of T.
func (v *ModelValidator[T]) AtLeastOneOf() *AtLeastOneOfRule[T] {
	r := &AtLeastOneOfRule[T]{resolve: v.resolve}
	v.addRule(r)
	return r
}

// Field appends a field name reference.
func (r *AtLeastOneOfRule[T]) Field(name string) *AtLeastOneOfRule[T] {
	r.fields = append(r.fields, name)
	return r
}

// Fields returns the referenced names in declaration order.
func (r *AtLeastOneOfRule[T]) Fields() []string {
	return append([]string(nil), r.fields...)
}

func (r *AtLeastOneOfRule[T]) When(fn func(T) bool) *AtLeastOneOfRule[T] {
	r.SetWhen(fn)
	return r
}

func (r *AtLeastOneOfRule[T]) Unless(fn func(T) bool) *AtLeastOneOfRule[T] {
	r.SetUnless(fn)
	return r
}

func (r *AtLeastOneOfRule[T]) WithMessage(text string) *AtLeastOneOfRule[T] {
	r.SetMessage(text)
	return r
}

func (r *AtLeastOneOfRule[T]) WithMessageFunc(fn func(T) string) *AtLeastOneOfRule[T] {
	r.SetMessageFunc(fn)
	return r
}

func (r *AtLeastOneOfRule[T]) WithSeverity(s Severity) *AtLeastOneOfRule[T] {
	r.SetSeverity(s)
	return r
}

func (r *AtLeastOneOfRule[T]) AsWarning() *AtLeastOneOfRule[T] {
	return r.WithSeverity(SeverityWarning)
}

// WithField attributes failures to field instead of the empty model path.
func (r *AtLeastOneOfRule[T]) WithField(field string) *AtLeastOneOfRule[T] {
	r.SetLabel(field)
	return r
}

func (r *AtLeastOneOfRule[T]) Mode() Mode {
	return ModeSync
}

// Validate passes when no fields are referenced. Rules built outside
// AtLeastOneOf resolve names against direct struct fields of T only.
func (r *AtLeastOneOfRule[T]) Validate(record T, field string, _ any) Outcome {
	if len(r.fields) == 0 {
		return Outcome{}
	}
	resolve := r.resolve
	if resolve == nil {
		resolve = structFieldGetter[T]
	}
	for _, name := range r.fields {
		get, ok := resolve(name)
		if !ok {
			continue
		}
		if !isBlank(get(record)) {
			return Outcome{}
		}
	}

	list := strings.Join(r.fields, ", ")
	return r.Fail(record, field, nil,
		"at least one of the following fields is required: "+list,
		"validation.at_least_one_of",
		map[string]any{"fields": list},
	)
}

func (r *AtLeastOneOfRule[T]) ValidateAsync(_ context.Context, record T, field string, value any) *async.Future[Outcome] {
	return resolveSync[T](r, record, field, value)
}
