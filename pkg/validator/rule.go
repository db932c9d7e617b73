package validator

import (
	"context"

	"github.com/dmitrymomot/verdict/pkg/async"
)

// Mode tells which entry points of a rule do real work.
type Mode uint8

const (
	ModeSync Mode = 1 << iota
	ModeAsync

	ModeBoth = ModeSync | ModeAsync
)

func (m Mode) Sync() bool  { return m&ModeSync != 0 }
func (m Mode) Async() bool { return m&ModeAsync != 0 }

func (m Mode) String() string {
	switch m {
	case ModeSync:
		return "sync"
	case ModeAsync:
		return "async"
	case ModeBoth:
		return "both"
	default:
		return "none"
	}
}

// Predicate checks the value under test in the context of the whole record.
type Predicate[T any] func(record T, value any) bool

// AsyncPredicate is a Predicate that may suspend, e.g. for a remote lookup.
// A returned error aborts the asynchronous run.
type AsyncPredicate[T any] func(ctx context.Context, record T, value any) (bool, error)

// Rule is one unit of checking. Field rules receive the field path and value;
// model rules receive an empty field and a nil value.
//
// Gating is not evaluated by the rule: callers check Options().Applies first.
// Rules whose Mode lacks ModeSync return an empty Outcome from Validate, and
// sync-only rules answer ValidateAsync with an already resolved future.
type Rule[T any] interface {
	Validate(record T, field string, value any) Outcome
	ValidateAsync(ctx context.Context, record T, field string, value any) *async.Future[Outcome]
	Mode() Mode
	Options() *RuleOptions[T]
}

// RuleOptions holds the per-rule configuration shared by every rule variant.
// Custom rules embed it to satisfy the Options method of Rule.
type RuleOptions[T any] struct {
	when        func(T) bool
	message     string
	hasMessage  bool
	messageFn   func(T) string
	severity    Severity
	severitySet bool
	label       string
}

func (o *RuleOptions[T]) Options() *RuleOptions[T] {
	return o
}

// Applies reports whether the gating predicate allows the rule to run for record.
func (o *RuleOptions[T]) Applies(record T) bool {
	return o.when == nil || o.when(record)
}

func (o *RuleOptions[T]) Severity() Severity {
	return o.severity
}

// SetWhen replaces the gating predicate.
func (o *RuleOptions[T]) SetWhen(fn func(T) bool) {
	o.when = fn
}

// SetUnless gates the rule on the negation of fn.
func (o *RuleOptions[T]) SetUnless(fn func(T) bool) {
	if fn == nil {
		o.when = nil
		return
	}
	o.when = func(record T) bool { return !fn(record) }
}

func (o *RuleOptions[T]) SetMessage(text string) {
	o.message = text
	o.hasMessage = true
}

func (o *RuleOptions[T]) SetMessageFunc(fn func(T) string) {
	o.messageFn = fn
}

func (o *RuleOptions[T]) SetSeverity(s Severity) {
	o.severity = s
	o.severitySet = true
}

// SetLabel attributes model-level failures to an explicit field path.
func (o *RuleOptions[T]) SetLabel(field string) {
	o.label = field
}

// Fail builds the single-message outcome of a failed check.
// An override set with SetMessage wins over SetMessageFunc, which wins over text.
// The translation key and params are kept only for the built-in text.
func (o *RuleOptions[T]) Fail(record T, field string, value any, text, key string, params map[string]any) Outcome {
	if o.label != "" {
		field = o.label
	}

	msg := Message{
		Field:          field,
		Severity:       o.severity,
		AttemptedValue: value,
	}

	switch {
	case o.hasMessage:
		msg.Text = o.message
	case o.messageFn != nil:
		msg.Text = o.messageFn(record)
	default:
		msg.Text = text
		msg.Key = key
		msg.Params = withField(params, field)
	}

	return Outcome{messages: []Message{msg}}
}

// applyDefaults sets the severity configured for the owning validator unless
// the rule already has an explicit one.
func (o *RuleOptions[T]) applyDefaults(cfg Config) {
	if !o.severitySet {
		o.severity = cfg.DefaultSeverity
	}
}

func withField(params map[string]any, field string) map[string]any {
	out := make(map[string]any, len(params)+1)
	for k, v := range params {
		out[k] = v
	}
	out["field"] = field
	return out
}

// resolveSync supplies the asynchronous entry point of a synchronous rule.
func resolveSync[T any](r Rule[T], record T, field string, value any) *async.Future[Outcome] {
	return async.Resolved(r.Validate(record, field, value))
}

// valueRule is the shared implementation of the built-in leaf rules.
type valueRule[T any] struct {
	RuleOptions[T]
	key    string
	text   string
	params map[string]any
	// checkAbsent routes absent values to check instead of skipping them.
	checkAbsent bool
	// check reports applies=false for values of a shape the rule ignores.
	check func(value any) (ok, applies bool)
}

func (r *valueRule[T]) Mode() Mode {
	return ModeSync
}

func (r *valueRule[T]) Validate(record T, field string, value any) Outcome {
	v, present := indirect(value)
	if !present && !r.checkAbsent {
		return Outcome{}
	}
	if ok, applies := r.check(v); ok || !applies {
		return Outcome{}
	}
	return r.Fail(record, field, value, r.text, r.key, r.params)
}

func (r *valueRule[T]) ValidateAsync(_ context.Context, record T, field string, value any) *async.Future[Outcome] {
	return resolveSync[T](r, record, field, value)
}
