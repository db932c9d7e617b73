// Package validator is a declarative validation engine: a ModelValidator
// evaluates per-field rule chains and model-level rules against a record and
// returns an ordered Outcome of error and warning messages.
//
// # Architecture
//
// Building blocks, leaves first:
//   - Outcome          – ordered, immutable list of Message values; Merge and
//     Concat are the only aggregation operators
//   - Rule             – unit of checking; field rules get the field path and
//     value, model rules the whole record. Mode tells whether a rule works on
//     the sync path, the async path or both
//   - RuleOptions      – per-rule gating predicate, message override and
//     severity, embedded by every rule
//   - FieldRuleChain   – ordered rules bound to one field name
//   - ModelValidator   – field chains in first-reference order plus model
//     rules in declaration order
//   - Registry         – type-keyed store of validators for ambient lookup
//
// Gating is evaluated by the caller of a rule (chain or validator), never by
// the rule, so When/Unless behave the same for every rule variant. Chains
// never short-circuit: every applicable rule reports.
//
// Field names and values come from an Accessor. Field binds an explicit name
// to a getter; StructField resolves a direct exported struct field by name
// and rejects anything else with ErrInvalidExpression.
//
// # Usage
//
//	v := validator.New[Person]()
//	v.RuleForField("Name", func(p Person) any { return p.Name }).
//	    Required().
//	    MaxLength(64)
//	v.RuleForField("Email", func(p Person) any { return p.Email }).
//	    Email().When(func(p Person) bool { return p.IsActive })
//	v.RuleForField("Address", func(p Person) any { return p.Address }).
//	    Add(validator.Nested[Person](addressValidator))
//	v.AtLeastOneOf().Field("Email").Field("Phone")
//
//	out := v.Validate(person)
//	if !out.IsValid() {
//	    for _, m := range out.Errors() {
//	        fmt.Println(m.Field, m.Text)
//	    }
//	}
//
// Rules with asynchronous predicates (MustAsync, RuleAsync) only run through
// ValidateAsync, which awaits every chain and rule one at a time:
//
//	out, err := v.ValidateAsync(ctx, person).AwaitWithTimeout(2 * time.Second)
//
// # Error Handling
//
// Bad data never produces a Go error: it is reported as a Message. Errors are
// reserved for configuration problems (ErrInvalidExpression,
// ErrValidatorNotFound) and for asynchronous predicates that fail. Use
// Outcome.Err to turn an invalid outcome into a *ValidationError that matches
// ErrValidationFailed with errors.Is.
//
// Several cases are deliberate no-ops: gated-out rules, leaf rules given a
// value of a shape they do not check, delegating rules over absent values,
// unknown names in AtLeastOneOf, configuration calls on an empty chain, and
// the sync entry point of an async-only rule.
//
// # Localization
//
// Messages built from default texts carry a translation Key and Params;
// package messages rewrites their Text for a requested language.
package validator
