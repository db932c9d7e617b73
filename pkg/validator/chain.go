package validator

import (
	"context"
	"regexp"
)

// FieldRuleChain is the ordered list of rules bound to one field.
//
// Configuration methods (When, Unless, WithMessage, WithMessageFunc,
// WithSeverity, AsWarning) apply to the most recently added rule only and are
// no-ops before the first rule is added. Chain them right after the rule they
// configure:
//
//	v.RuleFor(validator.Field("Email", func(p Person) any { return p.Email })).
//	    Required().
//	    Email().When(func(p Person) bool { return p.IsActive })
type FieldRuleChain[T any] struct {
	accessor Accessor[T]
	cfg      Config
	rules    []Rule[T]
	last     Rule[T]
}

func newFieldRuleChain[T any](acc Accessor[T], cfg Config) *FieldRuleChain[T] {
	return &FieldRuleChain[T]{accessor: acc, cfg: cfg}
}

// Name returns the field name the chain is bound to.
func (c *FieldRuleChain[T]) Name() string {
	return c.accessor.name
}

// Len returns the number of rules in the chain.
func (c *FieldRuleChain[T]) Len() int {
	return len(c.rules)
}

// Validate runs every applicable rule in addition order against value.
// A failing rule does not stop later rules.
func (c *FieldRuleChain[T]) Validate(record T, value any) Outcome {
	var msgs []Message
	for _, r := range c.rules {
		if !r.Options().Applies(record) {
			continue
		}
		msgs = append(msgs, r.Validate(record, c.accessor.name, value).messages...)
	}
	return Outcome{messages: msgs}
}

// ValidateAsync is Validate over the asynchronous entry points, awaiting each
// rule before starting the next. It stops at the first rule error and returns
// the messages gathered so far.
func (c *FieldRuleChain[T]) ValidateAsync(ctx context.Context, record T, value any) (Outcome, error) {
	var msgs []Message
	for _, r := range c.rules {
		if !r.Options().Applies(record) {
			continue
		}
		out, err := r.ValidateAsync(ctx, record, c.accessor.name, value).Await()
		msgs = append(msgs, out.messages...)
		if err != nil {
			return Outcome{messages: msgs}, err
		}
	}
	return Outcome{messages: msgs}, nil
}

// Add appends r and makes it the target of subsequent configuration calls.
func (c *FieldRuleChain[T]) Add(r Rule[T]) *FieldRuleChain[T] {
	if r == nil {
		return c
	}
	r.Options().applyDefaults(c.cfg)
	c.rules = append(c.rules, r)
	c.last = r
	return c
}

func (c *FieldRuleChain[T]) Required() *FieldRuleChain[T] {
	return c.Add(Required[T]())
}

// NotEmpty is an alias for Required.
func (c *FieldRuleChain[T]) NotEmpty() *FieldRuleChain[T] {
	return c.Add(Required[T]())
}

func (c *FieldRuleChain[T]) PositiveInt() *FieldRuleChain[T] {
	return c.Add(PositiveInt[T]())
}

func (c *FieldRuleChain[T]) Positive() *FieldRuleChain[T] {
	return c.Add(Positive[T]())
}

func (c *FieldRuleChain[T]) MinLength(min int) *FieldRuleChain[T] {
	return c.Add(MinLength[T](min))
}

func (c *FieldRuleChain[T]) MaxLength(max int) *FieldRuleChain[T] {
	return c.Add(MaxLength[T](max))
}

func (c *FieldRuleChain[T]) Length(min, max int) *FieldRuleChain[T] {
	return c.Add(Length[T](min, max))
}

func (c *FieldRuleChain[T]) Min(bound any) *FieldRuleChain[T] {
	return c.Add(Min[T](bound))
}

func (c *FieldRuleChain[T]) Max(bound any) *FieldRuleChain[T] {
	return c.Add(Max[T](bound))
}

func (c *FieldRuleChain[T]) Between(lo, hi any) *FieldRuleChain[T] {
	return c.Add(Between[T](lo, hi))
}

func (c *FieldRuleChain[T]) Email() *FieldRuleChain[T] {
	return c.Add(Email[T]())
}

// Date adds a date-string rule. An empty layout uses the configured DateLayout.
func (c *FieldRuleChain[T]) Date(layout string) *FieldRuleChain[T] {
	if layout == "" {
		layout = c.cfg.DateLayout
	}
	return c.Add(Date[T](layout))
}

func (c *FieldRuleChain[T]) Matches(pattern string) *FieldRuleChain[T] {
	return c.Add(Matches[T](pattern))
}

func (c *FieldRuleChain[T]) MatchesRegexp(re *regexp.Regexp) *FieldRuleChain[T] {
	return c.Add(MatchesRegexp[T](re))
}

func (c *FieldRuleChain[T]) UUID() *FieldRuleChain[T] {
	return c.Add(UUID[T]())
}

func (c *FieldRuleChain[T]) OneOf(allowed ...any) *FieldRuleChain[T] {
	return c.Add(OneOf[T](allowed...))
}

func (c *FieldRuleChain[T]) Must(pred Predicate[T]) *FieldRuleChain[T] {
	return c.Add(Must(pred))
}

func (c *FieldRuleChain[T]) MustAsync(pred AsyncPredicate[T]) *FieldRuleChain[T] {
	return c.Add(MustAsync(pred))
}

// When gates the last added rule on fn(record).
func (c *FieldRuleChain[T]) When(fn func(T) bool) *FieldRuleChain[T] {
	if c.last != nil {
		c.last.Options().SetWhen(fn)
	}
	return c
}

// Unless gates the last added rule on !fn(record).
func (c *FieldRuleChain[T]) Unless(fn func(T) bool) *FieldRuleChain[T] {
	if c.last != nil {
		c.last.Options().SetUnless(fn)
	}
	return c
}

func (c *FieldRuleChain[T]) WithMessage(text string) *FieldRuleChain[T] {
	if c.last != nil {
		c.last.Options().SetMessage(text)
	}
	return c
}

func (c *FieldRuleChain[T]) WithMessageFunc(fn func(T) string) *FieldRuleChain[T] {
	if c.last != nil {
		c.last.Options().SetMessageFunc(fn)
	}
	return c
}

func (c *FieldRuleChain[T]) WithSeverity(s Severity) *FieldRuleChain[T] {
	if c.last != nil {
		c.last.Options().SetSeverity(s)
	}
	return c
}

func (c *FieldRuleChain[T]) AsWarning() *FieldRuleChain[T] {
	return c.WithSeverity(SeverityWarning)
}

// asyncOnly reports whether any rule in the chain only works asynchronously.
func (c *FieldRuleChain[T]) asyncOnly() bool {
	for _, r := range c.rules {
		if !r.Mode().Sync() {
			return true
		}
	}
	return false
}
