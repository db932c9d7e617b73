package messages

import "errors"

var (
	ErrFailedToParseYAML  = errors.New("failed to parse YAML message catalog")
	ErrEmptyCatalog       = errors.New("message catalog has no languages")
	ErrInvalidLanguageTag = errors.New("invalid language tag")
	ErrInvalidStructure   = errors.New("invalid message catalog structure")
)
