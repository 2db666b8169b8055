// Package logging builds the log/slog loggers used by optsetter: JSON by
// default, or logfmt-style text, at a configurable level.
package logging
