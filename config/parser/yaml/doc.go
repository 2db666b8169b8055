// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml for YAML parsing with native
// PathString support for path navigation. The parser converts colon-separated
// paths (e.g., "api:permissions") to YAML path format (e.g., "$.api.permissions")
// internally. The selected node must be a mapping; it is returned as a flat
// option map ready for optsetter reconciliation.
//
// Usage:
//
//	parser := yaml.NewParser()
//	raw, err := parser.Parse(data, "api:permissions")
//
// Path Conversion:
//   - Empty path "" -> entire document
//   - Single key "key" -> "$.key"
//   - Nested path "api:permissions" -> "$.api.permissions"
package yaml
