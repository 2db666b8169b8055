package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// ErrNotMapping is returned when the selected node is not a mapping.
var ErrNotMapping = errors.New("not a mapping")

// Parser implements config.Parser for YAML data. JSON input works too,
// since JSON documents are valid YAML.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes the mapping at path into a flat option map.
// The path parameter specifies a navigation path using colon (:) as separator.
// Empty path selects the entire document. Numbers are returned as float64
// and nested mappings as map[string]any.
func (p *Parser) Parse(data []byte, path string) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	var node any

	if path == "" {
		err := yaml.Unmarshal(data, &node)
		if err != nil {
			return nil, fmt.Errorf("unmarshal error: %w", err)
		}
	} else {
		pathObj, err := yaml.PathString(convertToYAMLPath(path))
		if err != nil {
			return nil, fmt.Errorf("invalid path %q: %w", path, err)
		}

		err = pathObj.Read(bytes.NewReader(data), &node)
		if err != nil {
			if yaml.IsNotFoundNodeError(err) {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
			}

			return nil, fmt.Errorf("reading path %q: %w", path, err)
		}
	}

	if node == nil {
		return map[string]any{}, nil
	}

	options, isMapping := normalize(node).(map[string]any)
	if !isMapping {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, node)
	}

	return options, nil
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "api:permissions" -> "$.api.permissions"
func convertToYAMLPath(path string) string {
	parts := strings.Split(path, ":")

	return "$." + strings.Join(parts, ".")
}

// normalize converts decoded YAML into the shapes optsetter types expect:
// integers become float64 and mapping keys become strings.
func normalize(node any) any {
	switch value := node.(type) {
	case map[string]any:
		for key, item := range value {
			value[key] = normalize(item)
		}

		return value
	case map[any]any:
		converted := make(map[string]any, len(value))
		for key, item := range value {
			converted[fmt.Sprint(key)] = normalize(item)
		}

		return converted
	case []any:
		for i, item := range value {
			value[i] = normalize(item)
		}

		return value
	case int:
		return float64(value)
	case int64:
		return float64(value)
	case uint64:
		return float64(value)
	case float32:
		return float64(value)
	default:
		return node
	}
}
