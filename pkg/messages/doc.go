// Package messages localizes validation outcomes.
//
// A Catalog holds message templates per language, loaded from YAML documents
// whose top-level keys are BCP 47 language tags and whose nested keys match
// the translation keys carried by validator messages:
//
//	en:
//	  validation:
//	    required: "%{field} is required"
//	de:
//	  validation:
//	    required: "%{field} ist erforderlich"
//
// Placeholders use the %{name} form and are filled from the message params;
// every message has a "field" param holding its path.
//
// Localize rewrites the text of each message that still carries a
// translation key. Messages whose text was overridden by the caller have no
// key and are left alone, as are keys missing from the catalog. The requested
// language is negotiated with golang.org/x/text/language, so "de-AT" is
// served by "de"; unknown languages fall back to the catalog default.
//
// # Usage
//
//	cat, err := messages.Parse(data, messages.WithDefaultLanguage(cfg.Language))
//	if err != nil {
//	    return err
//	}
//	out = cat.Localize(v.Validate(form), r.Header.Get("Accept-Language"))
//
// DefaultCatalog returns the built-in English texts.
package messages
