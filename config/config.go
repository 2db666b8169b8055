package config

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/optsetter"
)

// Parser decodes raw configuration data into a flat option map.
//
// The path parameter specifies a navigation path within the configuration data
// using colon (:) as the separator for nested keys. For example:
//   - "api:permissions" selects config["api"]["permissions"]
//   - "" (empty path) selects the entire document
//
// The selected node must be a mapping.
// See config/parser/yaml for an implementation using goccy/go-yaml.
type Parser interface {
	Parse(data []byte, path string) (map[string]any, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating a populated configuration struct.
type Validator interface {
	Validate() error
}

// ValuesProvider returns a function that reads and parses configuration data
// and reconciles it against schema.
func ValuesProvider(schema optsetter.Schema, path string) func(Parser, DataFetcher, *optsetter.Setter) (optsetter.Values, error) {
	return func(parser Parser, fetcher DataFetcher, setter *optsetter.Setter) (optsetter.Values, error) {
		raw, err := load(parser, fetcher, path)
		if err != nil {
			return nil, err
		}

		values, err := setter.SetOptions(optsetter.Values{}, schema, raw)
		if err != nil {
			return nil, fmt.Errorf("reconciling error: %w", err)
		}

		slog.Info("options reconciled", slog.String("path", path), slog.Int("count", len(values)))

		return values, nil
	}
}

// Provider returns a function that reads and parses configuration data,
// reconciles it against schema, decodes the result into target and validates
// target when it implements Validator.
func Provider[T any](target *T, schema optsetter.Schema, path string) func(Parser, DataFetcher, *optsetter.Setter) (*T, error) {
	return func(parser Parser, fetcher DataFetcher, setter *optsetter.Setter) (*T, error) {
		raw, err := load(parser, fetcher, path)
		if err != nil {
			return nil, err
		}

		err = setter.Populate(target, schema, raw)
		if err != nil {
			return nil, fmt.Errorf("reconciling error: %w", err)
		}

		slog.Info("options reconciled", slog.String("path", path))

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}

func load(parser Parser, fetcher DataFetcher, path string) (optsetter.Values, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	raw, err := parser.Parse(data, path)
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	return optsetter.Values(raw), nil
}
