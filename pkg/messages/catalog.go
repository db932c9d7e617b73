package messages

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/verdict/pkg/validator"
)

// DefaultLanguage is used when no default language option is given.
const DefaultLanguage = "en"

//go:embed default.yaml
var defaultYAML []byte

// Catalog maps languages to message templates. It is read-only after
// construction and safe for concurrent use.
type Catalog struct {
	translations map[string]map[string]any
	defaultLang  string
	langs        []string
	matcher      language.Matcher
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the fallback language. It must be present in the catalog.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// Parse builds a Catalog from YAML content.
func Parse(data []byte, opts ...Option) (*Catalog, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	translations := make(map[string]map[string]any, len(raw))
	for lang, val := range raw {
		m, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidStructure, lang, val)
		}
		translations[lang] = m
	}

	return newCatalog(translations, opts...)
}

// Load reads YAML content from r and parses it.
func Load(r io.Reader, opts ...Option) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return Parse(data, opts...)
}

// DefaultCatalog returns a catalog with the built-in English texts.
func DefaultCatalog() *Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("messages: embedded catalog is invalid: %v", err))
	}
	return c
}

func newCatalog(translations map[string]map[string]any, opts ...Option) (*Catalog, error) {
	if len(translations) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		translations: translations,
		defaultLang:  DefaultLanguage,
	}
	for _, opt := range opts {
		opt(c)
	}

	if _, ok := translations[c.defaultLang]; !ok {
		if len(translations) > 1 {
			return nil, fmt.Errorf("%w: default language %q not in catalog", ErrInvalidStructure, c.defaultLang)
		}
		for lang := range translations {
			c.defaultLang = lang
		}
	}

	langs := make([]string, 0, len(translations))
	for lang := range translations {
		if lang != c.defaultLang {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	// The matcher falls back to its first tag
	c.langs = append([]string{c.defaultLang}, langs...)

	tags := make([]language.Tag, len(c.langs))
	for i, lang := range c.langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidLanguageTag, lang, err)
		}
		tags[i] = tag
	}
	c.matcher = language.NewMatcher(tags)

	return c, nil
}

// Languages returns the catalog languages, default first, the rest sorted.
func (c *Catalog) Languages() []string {
	return append([]string(nil), c.langs...)
}

// DefaultLanguage returns the fallback language.
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

// Match returns the catalog language that best serves lang. Besides a single
// tag, lang may be an Accept-Language header value.
func (c *Catalog) Match(lang string) string {
	if lang == "" {
		return c.defaultLang
	}
	if _, ok := c.translations[lang]; ok {
		return lang
	}

	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return c.defaultLang
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return c.defaultLang
	}
	return c.langs[idx]
}

// Translate renders the template for key in the language matched for lang.
// ok is false when neither that language nor the default has the key.
func (c *Catalog) Translate(lang, key string, params map[string]any) (string, bool) {
	matched := c.Match(lang)
	tmpl, ok := lookup(c.translations[matched], key)
	if !ok && matched != c.defaultLang {
		tmpl, ok = lookup(c.translations[c.defaultLang], key)
	}
	if !ok {
		return "", false
	}
	return render(tmpl, params), true
}

// Localize returns out with the text of every keyed message translated into lang.
func (c *Catalog) Localize(out validator.Outcome, lang string) validator.Outcome {
	msgs := out.Messages()
	for i, m := range msgs {
		if m.Key == "" {
			continue
		}
		if text, ok := c.Translate(lang, m.Key, m.Params); ok {
			msgs[i].Text = text
		}
	}
	return validator.NewOutcome(msgs...)
}

// lookup resolves a dotted key, preferring an exact flat key at each level.
func lookup(m map[string]any, key string) (string, bool) {
	if m == nil {
		return "", false
	}
	if v, ok := m[key]; ok {
		s, ok := v.(string)
		return s, ok
	}

	head, rest, found := strings.Cut(key, ".")
	if !found {
		return "", false
	}
	next, ok := m[head].(map[string]any)
	if !ok {
		return "", false
	}
	return lookup(next, rest)
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// render substitutes %{name} placeholders, keeping unknown ones verbatim.
func render(tmpl string, params map[string]any) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if v, ok := params[name]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}
