package optsetter

import (
	"fmt"

	"github.com/0xalexb/optsetter/registry"

	"github.com/mitchellh/mapstructure"
)

// entry is the normalized form of a structured schema spec.
type entry struct {
	typeName    string
	check       func(value any, typeValidator registry.ValidatorFunc) any
	def         Default
	sourceName  any
	required    bool
	failMessage string
	onFailure   FailureHandler
}

// looseSpec is the decode target for map[string]any schema specs.
type looseSpec struct {
	Type        string `mapstructure:"type"`
	Validator   any    `mapstructure:"validator"`
	Default     any    `mapstructure:"default"`
	SourceName  any    `mapstructure:"sourceName"`
	Required    *bool  `mapstructure:"required"`
	FailMessage string `mapstructure:"failMessage"`
	OnFailure   any    `mapstructure:"failedValidationAction"`
}

// entryFor normalizes a schema value. structured is false for literal defaults.
func entryFor(name string, decl any) (entry, bool, error) {
	switch spec := decl.(type) {
	case OptionSpec:
		return entryFromSpec(spec), true, nil
	case *OptionSpec:
		if spec == nil {
			return entry{}, false, declarationError(opSetOptions, fmt.Sprintf("schema entry %q is a nil spec", name))
		}

		return entryFromSpec(*spec), true, nil
	case map[string]any:
		parsed, err := entryFromMap(name, spec)

		return parsed, true, err
	case Values:
		parsed, err := entryFromMap(name, spec)

		return parsed, true, err
	case Schema:
		parsed, err := entryFromMap(name, spec)

		return parsed, true, err
	case Default:
		return entryFromSpec(OptionSpec{Default: spec}), true, nil //nolint:exhaustruct // only the default is declared
	default:
		return entry{}, false, nil
	}
}

func entryFromSpec(spec OptionSpec) entry {
	parsed := entry{
		typeName:    spec.Type,
		check:       nil,
		def:         spec.Default,
		sourceName:  nil,
		required:    !spec.Optional,
		failMessage: spec.FailMessage,
		onFailure:   spec.OnFailure,
	}

	if spec.Validator != nil {
		check := spec.Validator
		parsed.check = func(value any, typeValidator registry.ValidatorFunc) any {
			return check(value, typeValidator)
		}
	}

	if spec.SourceName != "" {
		parsed.sourceName = spec.SourceName
	}

	return parsed
}

func entryFromMap(name string, spec map[string]any) (entry, error) {
	var loose looseSpec

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{ //nolint:exhaustruct // defaults are fine
		Result:    &loose,
		MatchName: func(mapKey, fieldName string) bool { return mapKey == fieldName },
	})
	if err != nil {
		return entry{}, fmt.Errorf("creating spec decoder: %w", err)
	}

	err = decoder.Decode(spec)
	if err != nil {
		return entry{}, declarationError(opSetOptions, fmt.Sprintf("schema entry %q: %v", name, err))
	}

	parsed := entry{
		typeName:    loose.Type,
		check:       nil,
		def:         Default{kind: noDefault, value: nil},
		sourceName:  loose.SourceName,
		required:    loose.Required == nil || *loose.Required,
		failMessage: loose.FailMessage,
		onFailure:   nil,
	}

	if _, declared := spec["default"]; declared {
		if def, isDefault := loose.Default.(Default); isDefault {
			parsed.def = def
		} else {
			parsed.def = Literal(loose.Default)
		}
	}

	if loose.Validator != nil {
		parsed.check = looseCheck(loose.Validator)
		if parsed.check == nil {
			return entry{}, declarationError(opSetOptions, fmt.Sprintf("schema entry %q: validator must be type function", name))
		}
	}

	if loose.OnFailure != nil {
		parsed.onFailure = looseHandler(loose.OnFailure)
		if parsed.onFailure == nil {
			return entry{}, declarationError(opSetOptions,
				fmt.Sprintf("schema entry %q: failedValidationAction must be type function", name))
		}
	}

	return parsed, nil
}

// looseCheck adapts the validator shapes accepted in map specs. Shapes
// returning any are checked for a bool result by the engine.
func looseCheck(validator any) func(any, registry.ValidatorFunc) any {
	switch check := validator.(type) {
	case CheckFunc:
		return func(value any, typeValidator registry.ValidatorFunc) any { return check(value, typeValidator) }
	case func(any, registry.ValidatorFunc) bool:
		return func(value any, typeValidator registry.ValidatorFunc) any { return check(value, typeValidator) }
	case func(any, registry.ValidatorFunc) any:
		return check
	case registry.ValidatorFunc:
		return func(value any, _ registry.ValidatorFunc) any { return check(value) }
	case func(any) bool:
		return func(value any, _ registry.ValidatorFunc) any { return check(value) }
	case func(any) any:
		return func(value any, _ registry.ValidatorFunc) any { return check(value) }
	default:
		return nil
	}
}

func looseHandler(handler any) FailureHandler {
	switch h := handler.(type) {
	case FailureHandler:
		return h
	case func(string, string, Values, bool) error:
		return FailureHandlerFunc(h)
	default:
		return nil
	}
}
