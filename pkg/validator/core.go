package validator

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

// Severity classifies a message. The zero value is SeverityError.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	default:
		return "error"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so Severity can be read from env vars.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity converts "error", "warning" or "warn" (case-insensitive) into a Severity.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error", "":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	default:
		return SeverityError, fmt.Errorf("%w: %q", ErrInvalidSeverity, name)
	}
}

// Message is a single validation failure. Messages are immutable once produced.
type Message struct {
	// Field is the path of the failing field, empty for model-level messages.
	Field    string
	Text     string
	Severity Severity
	// AttemptedValue is the value under test; nil for model-level messages.
	AttemptedValue any
	// Key is the translation key of the built-in text. Empty when the text was overridden.
	Key    string
	Params map[string]any
}

// Outcome is the ordered result of a validation run.
// The zero value is the empty, valid outcome.
type Outcome struct {
	messages []Message
}

// NewOutcome builds an outcome from messages in the given order.
func NewOutcome(messages ...Message) Outcome {
	if len(messages) == 0 {
		return Outcome{}
	}
	return Outcome{messages: Outcome{messages: messages}.Messages()}
}

// Concat combines outcomes left to right.
func Concat(outcomes ...Outcome) Outcome {
	n := 0
	for _, o := range outcomes {
		n += len(o.messages)
	}
	if n == 0 {
		return Outcome{}
	}

	merged := make([]Message, 0, n)
	for _, o := range outcomes {
		merged = append(merged, o.messages...)
	}
	return Outcome{messages: merged}
}

// Merge returns o followed by other. The empty outcome is an identity on both sides.
func (o Outcome) Merge(other Outcome) Outcome {
	switch {
	case len(other.messages) == 0:
		return o
	case len(o.messages) == 0:
		return other
	}
	return Concat(o, other)
}

// Messages returns a copy of the messages in emission order. Params maps are
// copied too, so callers cannot alter the outcome through the result.
func (o Outcome) Messages() []Message {
	if len(o.messages) == 0 {
		return nil
	}
	out := make([]Message, len(o.messages))
	for i, m := range o.messages {
		m.Params = maps.Clone(m.Params)
		out[i] = m
	}
	return out
}

func (o Outcome) Len() int {
	return len(o.messages)
}

// IsValid reports whether no message has SeverityError.
func (o Outcome) IsValid() bool {
	for _, m := range o.messages {
		if m.Severity == SeverityError {
			return false
		}
	}
	return true
}

func (o Outcome) HasWarnings() bool {
	for _, m := range o.messages {
		if m.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// Errors returns the messages with SeverityError.
func (o Outcome) Errors() []Message {
	return o.filter(func(m Message) bool { return m.Severity == SeverityError })
}

// Warnings returns the messages with SeverityWarning.
func (o Outcome) Warnings() []Message {
	return o.filter(func(m Message) bool { return m.Severity == SeverityWarning })
}

// ForField returns the messages attributed to the given field path.
func (o Outcome) ForField(field string) []Message {
	return o.filter(func(m Message) bool { return m.Field == field })
}

func (o Outcome) Has(field string) bool {
	for _, m := range o.messages {
		if m.Field == field {
			return true
		}
	}
	return false
}

// Get returns the texts of all messages for the field.
func (o Outcome) Get(field string) []string {
	var texts []string
	for _, m := range o.messages {
		if m.Field == field {
			texts = append(texts, m.Text)
		}
	}
	return texts
}

// Fields returns the distinct field paths in order of first appearance.
func (o Outcome) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, m := range o.messages {
		if !seen[m.Field] {
			fields = append(fields, m.Field)
			seen[m.Field] = true
		}
	}
	return fields
}

// Err returns a *ValidationError when the outcome is invalid, nil otherwise.
// Warnings alone never produce an error.
func (o Outcome) Err() error {
	if o.IsValid() {
		return nil
	}
	return &ValidationError{Outcome: o}
}

func (o Outcome) filter(keep func(Message) bool) []Message {
	var out []Message
	for _, m := range o.messages {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

// rehome prefixes every message path with prefix.
func (o Outcome) rehome(prefix string) Outcome {
	if len(o.messages) == 0 {
		return o
	}
	moved := make([]Message, len(o.messages))
	for i, m := range o.messages {
		m.Field = joinPath(prefix, m.Field)
		if m.Key != "" {
			// keep the %{field} param in step with the path
			m.Params = maps.Clone(m.Params)
			if m.Params == nil {
				m.Params = make(map[string]any, 1)
			}
			m.Params["field"] = m.Field
		}
		moved[i] = m
	}
	return Outcome{messages: moved}
}

func joinPath(prefix, field string) string {
	switch {
	case field == "":
		return prefix
	case prefix == "":
		return field
	case strings.HasPrefix(field, "["):
		return prefix + field
	default:
		return prefix + "." + field
	}
}

// ValidationError carries an invalid Outcome through error returns.
type ValidationError struct {
	Outcome Outcome
}

func (e *ValidationError) Error() string {
	errs := e.Outcome.Errors()
	if len(errs) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(errs))
	for _, m := range errs {
		if m.Field == "" {
			parts = append(parts, m.Text)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", m.Field, m.Text))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ExtractOutcome returns the Outcome carried by err, if any.
func ExtractOutcome(err error) (Outcome, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Outcome, true
	}
	return Outcome{}, false
}

func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
