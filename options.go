package optsetter

import (
	"log/slog"
)

// Options holds configuration settings for a Setter.
type Options struct {
	Registry       TypeRegistry
	FailureHandler FailureHandler
	Logger         *slog.Logger
	LogLevel       string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithRegistry sets the type registry. Defaults to a fresh registry.New().
func WithRegistry(types TypeRegistry) Option {
	return func(opts *Options) {
		opts.Registry = types
	}
}

// WithFailureHandler sets the default failure handler. Defaults to RaiseFailure.
func WithFailureHandler(handler FailureHandler) Option {
	return func(opts *Options) {
		opts.FailureHandler = handler
	}
}

// WithLogger sets the logger. It takes precedence over WithLogLevel.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithLogLevel makes the Setter log JSON to stderr at the given level.
// Valid levels are: "debug", "info", "warn", "error".
// Without WithLogger or WithLogLevel the Setter uses slog.Default().
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}
