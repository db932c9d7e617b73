package messages_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/verdict/pkg/messages"
	"github.com/dmitrymomot/verdict/pkg/validator"
)

const catalogYAML = `
en:
  validation:
    required: "%{field} is required"
    min_length: "%{field} needs %{min}+ characters"
de:
  validation:
    required: "%{field} ist erforderlich"
    at_least_one_of: "Mindestens eines der Felder ist erforderlich: %{fields}"
  validation.email: "ungültige E-Mail-Adresse"
`

type signup struct {
	Name  string
	Email string
	Phone string
}

func signupValidator() *validator.ModelValidator[signup] {
	v := validator.New[signup]()
	v.RuleFor(validator.MustStructField[signup]("Name")).Required().MinLength(3)
	v.RuleFor(validator.MustStructField[signup]("Email")).Email().Required().WithMessage("custom text")
	v.AtLeastOneOf().Field("Email").Field("Phone")
	return v
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("orders languages with default first", func(t *testing.T) {
		cat, err := messages.Parse([]byte(catalogYAML), messages.WithDefaultLanguage("de"))
		require.NoError(t, err)
		assert.Equal(t, []string{"de", "en"}, cat.Languages())
		assert.Equal(t, "de", cat.DefaultLanguage())
	})

	t.Run("uses the only language as default", func(t *testing.T) {
		cat, err := messages.Parse([]byte("fr:\n  validation:\n    required: requis\n"))
		require.NoError(t, err)
		assert.Equal(t, "fr", cat.DefaultLanguage())
	})

	t.Run("rejects invalid documents", func(t *testing.T) {
		_, err := messages.Parse([]byte("en: [unclosed"))
		assert.ErrorIs(t, err, messages.ErrFailedToParseYAML)

		_, err = messages.Parse([]byte("en: just a string\n"))
		assert.ErrorIs(t, err, messages.ErrInvalidStructure)

		_, err = messages.Parse([]byte(""))
		assert.ErrorIs(t, err, messages.ErrEmptyCatalog)

		_, err = messages.Parse([]byte(catalogYAML), messages.WithDefaultLanguage("fr"))
		assert.ErrorIs(t, err, messages.ErrInvalidStructure)

		_, err = messages.Parse([]byte("en:\n  a: b\nnot a tag!:\n  a: b\n"))
		assert.ErrorIs(t, err, messages.ErrInvalidLanguageTag)
	})

	t.Run("loads from reader", func(t *testing.T) {
		cat, err := messages.Load(strings.NewReader(catalogYAML))
		require.NoError(t, err)
		assert.Equal(t, "en", cat.DefaultLanguage())
	})
}

func TestCatalog_Match(t *testing.T) {
	t.Parallel()

	cat, err := messages.Parse([]byte(catalogYAML))
	require.NoError(t, err)

	assert.Equal(t, "en", cat.Match(""))
	assert.Equal(t, "de", cat.Match("de"))
	assert.Equal(t, "de", cat.Match("de-AT"))
	assert.Equal(t, "de", cat.Match("fr-CH, de;q=0.8, en;q=0.5"))
	assert.Equal(t, "en", cat.Match("ja"))
	assert.Equal(t, "en", cat.Match("%%%"))
}

func TestCatalog_Translate(t *testing.T) {
	t.Parallel()

	cat, err := messages.Parse([]byte(catalogYAML))
	require.NoError(t, err)

	t.Run("renders named params", func(t *testing.T) {
		text, ok := cat.Translate("en", "validation.min_length", map[string]any{"field": "Name", "min": 3})
		require.True(t, ok)
		assert.Equal(t, "Name needs 3+ characters", text)
	})

	t.Run("resolves flat keys", func(t *testing.T) {
		text, ok := cat.Translate("de", "validation.email", nil)
		require.True(t, ok)
		assert.Equal(t, "ungültige E-Mail-Adresse", text)
	})

	t.Run("falls back to default language", func(t *testing.T) {
		text, ok := cat.Translate("de", "validation.min_length", map[string]any{"field": "Name", "min": 3})
		require.True(t, ok)
		assert.Equal(t, "Name needs 3+ characters", text)
	})

	t.Run("keeps unknown placeholders", func(t *testing.T) {
		text, ok := cat.Translate("en", "validation.required", map[string]any{"other": 1})
		require.True(t, ok)
		assert.Equal(t, "%{field} is required", text)
	})

	t.Run("reports missing keys", func(t *testing.T) {
		_, ok := cat.Translate("de", "validation.uuid", nil)
		assert.False(t, ok)
	})
}

func TestCatalog_Localize(t *testing.T) {
	t.Parallel()

	cat, err := messages.Parse([]byte(catalogYAML))
	require.NoError(t, err)

	out := signupValidator().Validate(signup{Name: "Al"})
	localized := cat.Localize(out, "de-DE")

	require.Equal(t, out.Len(), localized.Len())
	assert.Equal(t, []string{"Name needs 3+ characters"}, localized.Get("Name"))
	assert.Equal(t, []string{"ungültige E-Mail-Adresse", "custom text"}, localized.Get("Email"))
	assert.Equal(t, []string{"Mindestens eines der Felder ist erforderlich: Email, Phone"}, localized.Get(""))

	// the original outcome is untouched
	assert.Equal(t, []string{"must be at least 3 characters long"}, out.Get("Name"))
}

type address struct {
	City string
}

type order struct {
	Shipping *address
	Stops    []address
}

func TestCatalog_LocalizeDelegated(t *testing.T) {
	t.Parallel()

	cat, err := messages.Parse([]byte(catalogYAML))
	require.NoError(t, err)

	addr := validator.New[address]()
	addr.RuleFor(validator.MustStructField[address]("City")).Required()

	v := validator.New[order]()
	v.RuleFor(validator.MustStructField[order]("Shipping")).Add(validator.Nested[order](addr))
	v.RuleFor(validator.MustStructField[order]("Stops")).Add(validator.Each[order](addr))

	out := v.Validate(order{
		Shipping: &address{},
		Stops:    []address{{City: "Berlin"}, {}},
	})
	localized := cat.Localize(out, "de")

	assert.Equal(t, []string{"Shipping.City ist erforderlich"}, localized.Get("Shipping.City"))
	assert.Equal(t, []string{"Stops[1].City ist erforderlich"}, localized.Get("Stops[1].City"))
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	cat := messages.DefaultCatalog()
	assert.Equal(t, []string{"en"}, cat.Languages())

	out := signupValidator().Validate(signup{})
	assert.Equal(t, out.Messages(), cat.Localize(out, "").Messages())
}
