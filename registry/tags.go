package registry

import "github.com/go-playground/validator/v10"

//nolint:gochecknoglobals // validator.Validate caches struct metadata and is safe for concurrent use.
var tagValidate = validator.New(validator.WithRequiredStructEnabled())

// TagDescriptor returns a Descriptor whose validator checks values against
// a go-playground/validator tag expression such as "email" or "min=1,max=10".
// A value the tag cannot be applied to is rejected.
func TagDescriptor(name, tag string, def func() any) Descriptor {
	return Descriptor{
		Name:    name,
		Default: def,
		Validator: func(value any) (valid bool) {
			if value == nil {
				return false
			}

			defer func() {
				// validator panics on tags that don't apply to the value's kind.
				if recover() != nil {
					valid = false
				}
			}()

			return tagValidate.Var(value, tag) == nil
		},
		FailMessage: failMessageFor(name),
	}
}
