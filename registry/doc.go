// Package registry holds named option types for the optsetter engine.
//
// A type is a Descriptor: a name, a producer for the type's default value,
// a validator predicate and the message reported when validation fails.
// New returns a Registry seeded with the built-in types:
//
//	boolean, number, object, array, string, function, date
//
// Further types can be added at runtime with Register or RegisterAll. A name,
// once registered, can never be replaced.
//
// # Tag Types
//
// TagDescriptor builds a Descriptor from a go-playground/validator tag
// expression, so common formats don't need hand-written validators:
//
//	reg := registry.New()
//	err := reg.Register(registry.TagDescriptor("email", "email", func() any { return "" }))
package registry
