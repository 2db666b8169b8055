package optsetter

import (
	"errors"

	"github.com/0xalexb/optsetter/registry"
)

// ErrDeclaration is wrapped by every DeclarationError.
var ErrDeclaration = registry.ErrDeclaration

// DeclarationError reports malformed arguments to a Setter or registry call.
type DeclarationError = registry.DeclarationError

// ErrValidation matches every ValidationError.
var ErrValidation = errors.New("option failed validation")

// ErrMissing matches ValidationErrors raised for required options without a value.
var ErrMissing = errors.New("option must be provided")

// ValidationError is the failure RaiseFailure returns for an option.
type ValidationError struct {
	Option   string
	Message  string
	Presence bool
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Option + " " + e.Message
}

// Is reports whether target is ErrValidation, or ErrMissing for presence failures.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation || (e.Presence && target == ErrMissing) //nolint:errorlint // sentinel identity
}

func declarationError(op, msg string) error {
	return &DeclarationError{Op: op, Msg: msg}
}
