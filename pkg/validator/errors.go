package validator

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrValidationFailed is matched by every *ValidationError produced from an invalid Outcome.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidExpression is returned when a field accessor is not a direct field read.
	ErrInvalidExpression = errors.New("invalid field expression")

	// ErrValidatorNotFound is returned when a registry has no validator for the requested type.
	ErrValidatorNotFound = errors.New("validator not found")

	// ErrNilValidator is returned when registering or including a nil validator.
	ErrNilValidator = errors.New("nil validator")

	// ErrIncludeCycle is raised when Include would make a validator run itself.
	ErrIncludeCycle = errors.New("validator include cycle")

	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("failed to parse validation config")

	// ErrLoadingEnvFile is returned when an explicitly requested .env file cannot be loaded.
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrInvalidSeverity is returned when a severity name is not recognised.
	ErrInvalidSeverity = errors.New("invalid severity")
)

// ExpressionError describes a field expression that could not be resolved.
type ExpressionError struct {
	Expression string
	Type       reflect.Type
	Reason     string
}

func (e *ExpressionError) Error() string {
	return fmt.Sprintf("%s: %q on %v: %s", ErrInvalidExpression, e.Expression, e.Type, e.Reason)
}

func (e *ExpressionError) Unwrap() error {
	return ErrInvalidExpression
}

// NotFoundError names the record type that has no registered validator.
type NotFoundError struct {
	Type reflect.Type
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s for type %v", ErrValidatorNotFound, e.Type)
}

func (e *NotFoundError) Unwrap() error {
	return ErrValidatorNotFound
}
