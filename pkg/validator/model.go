package validator

import (
	"context"
	"io"
	"log/slog"
	"reflect"
	"time"

	"github.com/dmitrymomot/verdict/pkg/async"
)

// Report describes one finished validation run for observers.
type Report struct {
	Validator string
	Mode      Mode
	Outcome   Outcome
	Duration  time.Duration
	// Err is set when an asynchronous run was aborted by a rule error.
	Err error
}

// Observer receives a Report after every top-level Validate or ValidateAsync call.
type Observer interface {
	ObserveValidation(ctx context.Context, report Report)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, report Report)

func (f ObserverFunc) ObserveValidation(ctx context.Context, report Report) {
	f(ctx, report)
}

// Option configures a ModelValidator.
type Option func(*options)

type options struct {
	name      string
	logger    *slog.Logger
	observers []Observer
	cfg       Config
}

// WithName sets the name used in logs and reports. Defaults to the record type name.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver adds an observer notified after every run. Nil observers are ignored.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// WithConfig sets the engine defaults applied to rules added through this validator.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if cfg.DateLayout == "" {
			cfg.DateLayout = DefaultDateLayout
		}
		o.cfg = cfg
	}
}

// ModelValidator validates records of type T with per-field rule chains and
// model-level rules.
//
// A validator is built once and then used read-only: builder calls (RuleFor,
// Property, Rule, RuleAsync, AtLeastOneOf, Include) must not race with
// validation. Validation itself is safe for concurrent use on different records.
type ModelValidator[T any] struct {
	opts      options
	order     []string
	chains    map[string]*FieldRuleChain[T]
	accessors map[string]func(T) any
	rules     []Rule[T]
}

// New creates an empty validator for T.
func New[T any](opts ...Option) *ModelValidator[T] {
	o := options{
		name:   reflect.TypeFor[T]().String(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		cfg:    DefaultConfig(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &ModelValidator[T]{
		opts:      o,
		chains:    make(map[string]*FieldRuleChain[T]),
		accessors: make(map[string]func(T) any),
	}
}

// Name returns the validator name used in logs and reports.
func (v *ModelValidator[T]) Name() string {
	return v.opts.name
}

// RuleFor returns the chain for acc's field, creating it on first reference.
// Later references to the same name return the existing chain and keep its
// original accessor.
func (v *ModelValidator[T]) RuleFor(acc Accessor[T]) *FieldRuleChain[T] {
	if chain, ok := v.chains[acc.name]; ok {
		return chain
	}
	if acc.get == nil {
		panic(&ExpressionError{Expression: acc.name, Type: reflect.TypeFor[T](), Reason: "zero accessor"})
	}

	chain := newFieldRuleChain(acc, v.opts.cfg)
	v.chains[acc.name] = chain
	v.order = append(v.order, acc.name)
	if _, ok := v.accessors[acc.name]; !ok {
		v.accessors[acc.name] = acc.get
	}
	return chain
}

// RuleForField is shorthand for RuleFor(Field(name, get)).
func (v *ModelValidator[T]) RuleForField(name string, get func(T) any) *FieldRuleChain[T] {
	if chain, ok := v.chains[name]; ok {
		return chain
	}
	return v.RuleFor(Field(name, get))
}

// Property makes acc resolvable by name for model-level rules without adding rules.
func (v *ModelValidator[T]) Property(acc Accessor[T]) *ModelValidator[T] {
	if acc.get != nil {
		v.accessors[acc.name] = acc.get
	}
	return v
}

// Fields returns the names of fields with a chain, in first-reference order.
func (v *ModelValidator[T]) Fields() []string {
	return append([]string(nil), v.order...)
}

// RequiresAsync reports whether some rule only does work on the asynchronous path.
func (v *ModelValidator[T]) RequiresAsync() bool {
	for _, name := range v.order {
		if v.chains[name].asyncOnly() {
			return true
		}
	}
	for _, r := range v.rules {
		if !r.Mode().Sync() {
			return true
		}
	}
	return false
}

// Validate runs every field chain in stable field order, then every
// model-level rule in declaration order. Asynchronous-only rules contribute
// nothing on this path.
func (v *ModelValidator[T]) Validate(record T) Outcome {
	start := time.Now()
	out := v.validate(record)
	v.observe(context.Background(), ModeSync, out, time.Since(start), nil)
	return out
}

// ValidateAsync performs the same passes as Validate through the asynchronous
// entry points, awaiting every chain and rule in sequence. The future fails
// with the first error returned by an asynchronous predicate.
func (v *ModelValidator[T]) ValidateAsync(ctx context.Context, record T) *async.Future[Outcome] {
	return async.Async(ctx, record, func(ctx context.Context, record T) (Outcome, error) {
		start := time.Now()
		out, err := v.validateAsync(ctx, record)
		v.observe(ctx, ModeAsync, out, time.Since(start), err)
		return out, err
	})
}

func (v *ModelValidator[T]) validate(record T) Outcome {
	var msgs []Message
	for _, name := range v.order {
		chain := v.chains[name]
		msgs = append(msgs, chain.Validate(record, chain.accessor.get(record)).messages...)
	}
	for _, r := range v.rules {
		if !r.Options().Applies(record) {
			continue
		}
		msgs = append(msgs, r.Validate(record, "", nil).messages...)
	}
	return Outcome{messages: msgs}
}

func (v *ModelValidator[T]) validateAsync(ctx context.Context, record T) (Outcome, error) {
	var msgs []Message
	for _, name := range v.order {
		chain := v.chains[name]
		out, err := chain.ValidateAsync(ctx, record, chain.accessor.get(record))
		msgs = append(msgs, out.messages...)
		if err != nil {
			return Outcome{messages: msgs}, err
		}
	}
	for _, r := range v.rules {
		if !r.Options().Applies(record) {
			continue
		}
		out, err := r.ValidateAsync(ctx, record, "", nil).Await()
		msgs = append(msgs, out.messages...)
		if err != nil {
			return Outcome{messages: msgs}, err
		}
	}
	return Outcome{messages: msgs}, nil
}

// resolve finds a getter for name among registered accessors, falling back to
// a direct struct field of T.
func (v *ModelValidator[T]) resolve(name string) (func(T) any, bool) {
	if get, ok := v.accessors[name]; ok {
		return get, true
	}
	return structFieldGetter[T](name)
}

func structFieldGetter[T any](name string) (func(T) any, bool) {
	acc, err := StructField[T](name)
	if err != nil {
		return nil, false
	}
	return acc.get, true
}

func (v *ModelValidator[T]) addRule(r Rule[T]) {
	r.Options().applyDefaults(v.opts.cfg)
	v.rules = append(v.rules, r)
}

func (v *ModelValidator[T]) observe(ctx context.Context, mode Mode, out Outcome, d time.Duration, err error) {
	if err != nil {
		v.opts.logger.WarnContext(ctx, "validation aborted",
			slog.String("validator", v.opts.name),
			slog.String("mode", mode.String()),
			slog.Int("messages", out.Len()),
			slog.Any("error", err),
		)
	} else {
		v.opts.logger.DebugContext(ctx, "validation completed",
			slog.String("validator", v.opts.name),
			slog.String("mode", mode.String()),
			slog.Bool("valid", out.IsValid()),
			slog.Int("errors", len(out.Errors())),
			slog.Int("warnings", len(out.Warnings())),
			slog.Duration("duration", d),
		)
	}

	if len(v.opts.observers) == 0 {
		return
	}
	report := Report{
		Validator: v.opts.name,
		Mode:      mode,
		Outcome:   out,
		Duration:  d,
		Err:       err,
	}
	for _, obs := range v.opts.observers {
		obs.ObserveValidation(ctx, report)
	}
}
