package registry

import (
	"slices"
	"sync"
)

// Registry is a table of option types keyed by name.
// Types can be added but never replaced or removed.
type Registry struct {
	mu    sync.RWMutex
	types map[string]Descriptor
}

// New returns a Registry seeded with the built-in types.
func New() *Registry {
	reg := &Registry{
		mu:    sync.RWMutex{},
		types: make(map[string]Descriptor),
	}

	for _, desc := range builtins() {
		desc.FailMessage = failMessageFor(desc.Name)
		reg.types[desc.Name] = desc
	}

	return reg
}

// Register adds a type to the registry. An empty FailMessage is replaced
// with "must be type <Name>". Registering an existing name fails.
func (r *Registry) Register(desc Descriptor) error {
	const op = "registry.Register"

	switch {
	case desc.Name == "":
		return declarationError(op, "must provide name")
	case desc.Default == nil:
		return declarationError(op, "must provide default")
	case desc.Validator == nil:
		return declarationError(op, "must provide validator")
	}

	if desc.FailMessage == "" {
		desc.FailMessage = failMessageFor(desc.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[desc.Name]; exists {
		return declarationError(op, "cannot overwrite type "+desc.Name)
	}

	r.types[desc.Name] = desc

	return nil
}

// RegisterAll registers descs in order. It stops at the first error;
// types registered before it stay registered.
func (r *Registry) RegisterAll(descs []Descriptor) error {
	if descs == nil {
		return declarationError("registry.RegisterAll", "must provide type definitions")
	}

	for _, desc := range descs {
		err := r.Register(desc)
		if err != nil {
			return err
		}
	}

	return nil
}

// Validator returns the validator of the named type.
func (r *Registry) Validator(name string) (ValidatorFunc, error) {
	const op = "registry.Validator"

	if name == "" {
		return nil, declarationError(op, "must provide type name")
	}

	desc, found := r.Lookup(name)
	if !found {
		return nil, declarationError(op, "type "+name+" not found")
	}

	return desc.Validator, nil
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	desc, found := r.types[name]

	return desc, found
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
