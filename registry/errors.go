package registry

import "errors"

// ErrDeclaration is wrapped by every DeclarationError.
var ErrDeclaration = errors.New("declaration error")

// DeclarationError reports a malformed argument passed to a registry or engine entry point.
type DeclarationError struct {
	Op  string
	Msg string
}

// Error implements the error interface.
func (e *DeclarationError) Error() string {
	return e.Op + ": " + e.Msg
}

// Unwrap returns ErrDeclaration.
func (e *DeclarationError) Unwrap() error {
	return ErrDeclaration
}

func declarationError(op, msg string) error {
	return &DeclarationError{Op: op, Msg: msg}
}
