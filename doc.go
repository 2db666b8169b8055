// Package optsetter reconciles a flat map of raw option values against a
// schema, producing a target map of validated, defaulted and passed-through
// values.
//
// Each schema entry is either a literal default or a structured spec
// (OptionSpec, or a map[string]any with the same keys). For every entry the
// Setter looks up the raw option under the entry's source name, validates
// present values against the declared type and validator, substitutes
// defaults for absent ones and reports failures to a FailureHandler. Raw
// options no schema entry claimed are copied to the target unchanged.
//
//	setter := optsetter.New()
//
//	target, err := setter.SetOptions(optsetter.Values{}, optsetter.Schema{
//	    "host":    "localhost",
//	    "port":    optsetter.OptionSpec{Type: "number", Default: setter.Default()},
//	    "timeout": optsetter.OptionSpec{Type: "number", SourceName: "timeout_seconds", Optional: true},
//	}, raw)
//
// Types come from a registry.Registry, seeded with boolean, number, object,
// array, string, function and date and extensible at runtime.
package optsetter
