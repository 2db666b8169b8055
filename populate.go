package optsetter

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Populate reconciles raw against schema into a fresh Values and decodes the
// result into out, which must be a non-nil pointer. Struct fields are matched
// by their `mapstructure` tag, or case-insensitively by name. Values no field
// takes are ignored.
func (s *Setter) Populate(out any, schema Schema, raw Values) error {
	if out == nil {
		return declarationError("optsetter.Populate", "must provide output")
	}

	values, err := s.SetOptions(Values{}, schema, raw)
	if err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{ //nolint:exhaustruct // defaults are fine
		Result:     out,
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	err = decoder.Decode(map[string]any(values))
	if err != nil {
		return fmt.Errorf("decoding options: %w", err)
	}

	return nil
}
