package validator

import (
	"strings"
	"time"
)

// DefaultDateLayout is used by Date when no layout is configured.
const DefaultDateLayout = time.DateOnly

// fallbackDateLayouts are tried in order after the caller's layout. Numeric
// month, day and hour elements accept one or two digits, so "2024-1-5" and
// "2024-01-05" both match "2006-1-2". Slash dates are month first.
var fallbackDateLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-1-2",
	"2006-1-2 15:04:05",
	"2006-1-2 15:04",
	"2006-1-2T15:04:05",
	"2006-1-2T15:04",
	"2006/1/2",
	"2006/1/2 15:04:05",
	"2006/1/2 15:04",
	"1/2/2006",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"2-Jan-2006",
	"Monday, January 2, 2006",
	"Mon, 2 Jan 2006",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	time.RFC850,
	time.ANSIC,
}

// Date checks that a string parses as a date, first with layout and then with
// a fixed set of locale-independent layouts. time.Time values always pass.
func Date[T any](layout string) Rule[T] {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return &valueRule[T]{
		key:    "validation.date",
		text:   "must be a valid date",
		params: map[string]any{"layout": layout},
		check: func(v any) (bool, bool) {
			if _, ok := v.(time.Time); ok {
				return true, true
			}
			s, ok := asString(v)
			if !ok {
				return false, false
			}
			return parseDate(strings.TrimSpace(s), layout), true
		},
	}
}

func parseDate(s, layout string) bool {
	if s == "" {
		return false
	}
	if _, err := time.Parse(layout, s); err == nil {
		return true
	}
	for _, l := range fallbackDateLayouts {
		if _, err := time.Parse(l, s); err == nil {
			return true
		}
	}
	return false
}
