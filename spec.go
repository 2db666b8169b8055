package optsetter

import "github.com/0xalexb/optsetter/registry"

// Values is a flat map of option values. It is used both for raw options
// and for the reconciled target.
type Values map[string]any

// Schema maps declared option names to their specs. A value that is an
// OptionSpec, a *OptionSpec or a map[string]any is a structured spec;
// anything else is a literal default.
type Schema map[string]any

// CheckFunc validates a present option value. typeValidator is the validator
// of the spec's declared type, or one accepting everything when no type is
// declared, and may be delegated to.
type CheckFunc func(value any, typeValidator registry.ValidatorFunc) bool

// OptionSpec is a structured schema entry.
type OptionSpec struct {
	// Type names a registry type used to validate present values and, with
	// TypeDefault, to produce the default.
	Type string
	// Validator replaces the type validator when set.
	Validator CheckFunc
	// Default is used when the option is absent. Defaults are never validated.
	Default Default
	// SourceName is the raw option key to read. Defaults to the schema key.
	SourceName string
	// Optional suppresses the failure for an absent option without a default.
	Optional bool
	// FailMessage replaces the message reported when validation fails.
	FailMessage string
	// OnFailure replaces the Setter's failure handler for this option.
	OnFailure FailureHandler
}

type defaultKind int

const (
	noDefault defaultKind = iota
	literalDefault
	typeDefault
)

// Default is the default of an OptionSpec: either a literal value or the
// default of the spec's type. The zero Default means no default.
type Default struct {
	kind  defaultKind
	value any
}

// Literal returns a Default that resolves to value as is.
func Literal(value any) Default {
	return Default{kind: literalDefault, value: value}
}

// TypeDefault returns the Default that resolves to the default value of the
// spec's declared type.
func TypeDefault() Default {
	return Default{kind: typeDefault, value: nil}
}

// IsSet reports whether d is a literal or type default.
func (d Default) IsSet() bool {
	return d.kind != noDefault
}

// UsesType reports whether d is TypeDefault.
func (d Default) UsesType() bool {
	return d.kind == typeDefault
}
