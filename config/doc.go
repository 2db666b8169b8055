// Package config loads raw options from configuration data and reconciles
// them with an optsetter.Setter.
//
// The package uses an interface-based design with three extension points:
//   - DataFetcher: retrieves raw config data (file, embedded bytes, etc.)
//   - Parser: decodes raw data into a flat option map, with path navigation support
//   - Validator: validates a populated struct after reconciliation
//
// ValuesProvider returns reconciled optsetter.Values; Provider decodes them
// into a struct. Both return Fx-friendly constructors taking the Parser,
// DataFetcher and *optsetter.Setter as parameters.
//
// # Path Navigation
//
// Paths select a section of the document, using colon (:) as the separator:
//
//	"api:permissions"           -> config["api"]["permissions"]
//	"database:connection"       -> config["database"]["connection"]
//	""                          -> entire document
//
// # Example
//
//	type APIConfig struct {
//	    Timeout int    `mapstructure:"timeout"`
//	    BaseURL string `mapstructure:"base_url"`
//	}
//
//	schema := optsetter.Schema{
//	    "timeout":  optsetter.OptionSpec{Type: "number", Default: optsetter.Literal(30)},
//	    "base_url": optsetter.OptionSpec{Type: "string"},
//	}
//
//	provider := config.Provider(&APIConfig{}, schema, "services:api")
//	cfg, err := provider(yamlparser.NewParser(), fetcher, optsetter.New())
package config
