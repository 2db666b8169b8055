package optsetter

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/0xalexb/optsetter/logging"
	"github.com/0xalexb/optsetter/registry"
)

const opSetOptions = "optsetter.SetOptions"

// TypeRegistry is the type table a Setter resolves types against.
// *registry.Registry implements it.
type TypeRegistry interface {
	Register(desc registry.Descriptor) error
	RegisterAll(descs []registry.Descriptor) error
	Validator(name string) (registry.ValidatorFunc, error)
	Lookup(name string) (registry.Descriptor, bool)
}

// Setter reconciles raw options against schemas.
//
// A Setter is safe for concurrent SetOptions calls as long as its failure
// handler is not replaced at the same time.
type Setter struct {
	types  TypeRegistry
	onFail FailureHandler
	logger *slog.Logger
}

// New creates a Setter.
func New(opts ...Option) *Setter {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return configure(&options)
}

func configure(options *Options) *Setter {
	setter := &Setter{
		types:  options.Registry,
		onFail: options.FailureHandler,
		logger: options.Logger,
	}

	if setter.types == nil {
		setter.types = registry.New()
	}

	if setter.onFail == nil {
		setter.onFail = RaiseFailure
	}

	if setter.logger == nil {
		if options.LogLevel != "" {
			setter.logger = logging.NewLogger(logging.LoggerConfig{Level: options.LogLevel, Format: ""}, os.Stderr)
		} else {
			setter.logger = slog.Default()
		}
	}

	return setter
}

// RegisterType adds a type to the Setter's registry.
func (s *Setter) RegisterType(desc registry.Descriptor) error {
	return s.types.Register(desc) //nolint:wrapcheck // registry errors are DeclarationErrors already
}

// RegisterTypes adds types to the Setter's registry in order.
func (s *Setter) RegisterTypes(descs []registry.Descriptor) error {
	return s.types.RegisterAll(descs) //nolint:wrapcheck // registry errors are DeclarationErrors already
}

// Validator returns the validator of the named type.
func (s *Setter) Validator(name string) (registry.ValidatorFunc, error) {
	return s.types.Validator(name) //nolint:wrapcheck // registry errors are DeclarationErrors already
}

// SetFailureHandler replaces the default failure handler.
func (s *Setter) SetFailureHandler(handler FailureHandler) error {
	if handler == nil {
		return declarationError("optsetter.SetFailureHandler", "must provide failure handler")
	}

	s.onFail = handler

	return nil
}

// Default returns TypeDefault(). Use it as an OptionSpec default to take
// the default from the spec's type.
func (s *Setter) Default() Default {
	return TypeDefault()
}

// outcome is the result of resolving one schema entry.
type outcome struct {
	claim string
	value any
	ok    bool
}

// SetOptions writes one resolved value per schema entry into target, then
// copies every raw option no entry used as its source. It returns target.
//
// Entries are resolved in sorted key order, independently of each other.
// A failure is passed to the entry's OnFailure handler or the Setter's
// handler; if the handler returns an error SetOptions stops and returns it.
func (s *Setter) SetOptions(target Values, schema Schema, raw Values) (Values, error) {
	switch {
	case target == nil:
		return nil, declarationError(opSetOptions, "must provide target")
	case schema == nil:
		return nil, declarationError(opSetOptions, "must provide schema")
	case raw == nil:
		return nil, declarationError(opSetOptions, "must provide options")
	}

	claimed := make(map[string]bool, len(schema))

	for _, name := range slices.Sorted(maps.Keys(schema)) {
		result, err := s.resolve(name, schema[name], raw, target)

		claimed[result.claim] = true

		if err != nil {
			return nil, err
		}

		if result.ok {
			target[name] = result.value
		}
	}

	for _, key := range slices.Sorted(maps.Keys(raw)) {
		if claimed[key] {
			continue
		}

		target[key] = raw[key]

		s.logger.Debug("option passed through", slog.String("option", key))
	}

	return target, nil
}

func (s *Setter) resolve(name string, decl any, raw, target Values) (outcome, error) {
	spec, structured, err := entryFor(name, decl)
	if err != nil {
		return outcome{claim: name, value: nil, ok: false}, err
	}

	if !structured {
		value, present := raw[name]
		if !present {
			value = decl
		}

		return outcome{claim: name, value: value, ok: true}, nil
	}

	handler := spec.onFailure
	if handler == nil {
		handler = s.onFail
	}

	fail := func(message string, presence bool) error {
		return handler.HandleFailure(name, message, target, presence)
	}

	source := name

	if spec.sourceName != nil {
		sourceName, isString := spec.sourceName.(string)
		if !isString {
			return outcome{claim: fmt.Sprint(spec.sourceName), value: nil, ok: false},
				fail("has a non-string sourceName", false)
		}

		source = sourceName
	}

	result := outcome{claim: source, value: nil, ok: false}

	value, present := raw[source]

	if present && (spec.check != nil || spec.typeName != "") {
		valid, err := s.validate(value, spec, fail)
		if !valid {
			return result, err
		}

		result.value, result.ok = value, true

		return result, nil
	}

	if !present && spec.def.IsSet() {
		if spec.def.UsesType() {
			desc, found := s.types.Lookup(spec.typeName)
			if !found {
				return result, fail("uses Setter.Default() without an existing type", false)
			}

			value = desc.Default()
		} else {
			value = spec.def.value
		}

		present = true

		s.logger.Debug("option default applied", slog.String("option", name))
	}

	if !present {
		if spec.required {
			return result, fail("must be provided", true)
		}

		return result, nil
	}

	result.value, result.ok = value, true

	return result, nil
}

func acceptAll(any) bool {
	return true
}

// validate checks a present value. It returns false when the value was
// rejected, along with the failure handler's error.
func (s *Setter) validate(value any, spec entry, fail func(string, bool) error) (bool, error) {
	typeValidator := registry.ValidatorFunc(acceptAll)
	message := spec.failMessage

	if spec.typeName != "" {
		desc, found := s.types.Lookup(spec.typeName)
		if !found {
			return false, fail(fmt.Sprintf("refers to type %q which has not been defined", spec.typeName), false)
		}

		typeValidator = desc.Validator

		if message == "" {
			message = desc.FailMessage
		}
	}

	if message == "" {
		message = "failed validation"
	}

	var result any
	if spec.check != nil {
		result = spec.check(value, typeValidator)
	} else {
		result = typeValidator(value)
	}

	valid, isBool := result.(bool)
	if !isBool {
		return false, fail("has a validator that returns non-boolean", false)
	}

	if !valid {
		return false, fail(message, false)
	}

	return true, nil
}
