package optsetter

import (
	"log/slog"

	"go.uber.org/multierr"
)

// FailureHandler receives option failures during SetOptions.
//
// presence is true when a required option had no value. A non-nil error
// halts SetOptions, which returns that error. Returning nil skips the failed
// option and continues with the next one.
type FailureHandler interface {
	HandleFailure(option, message string, target Values, presence bool) error
}

// FailureHandlerFunc adapts a function to FailureHandler.
type FailureHandlerFunc func(option, message string, target Values, presence bool) error

// HandleFailure calls f.
func (f FailureHandlerFunc) HandleFailure(option, message string, target Values, presence bool) error {
	return f(option, message, target, presence)
}

// RaiseFailure is the default FailureHandler. It halts on every failure
// with a *ValidationError.
//
//nolint:gochecknoglobals // stateless handler value.
var RaiseFailure FailureHandler = FailureHandlerFunc(
	func(option, message string, _ Values, presence bool) error {
		return &ValidationError{Option: option, Message: message, Presence: presence}
	},
)

// LogFailures returns a FailureHandler that logs each failure at warn level
// and lets SetOptions continue.
func LogFailures(logger *slog.Logger) FailureHandler {
	return FailureHandlerFunc(func(option, message string, _ Values, presence bool) error {
		logger.Warn("option failed",
			slog.String("option", option),
			slog.String("message", message),
			slog.Bool("presence", presence),
		)

		return nil
	})
}

// Collector is a FailureHandler that records failures and lets SetOptions
// continue. It is not safe for concurrent use.
type Collector struct {
	failures []*ValidationError
}

// HandleFailure records the failure.
func (c *Collector) HandleFailure(option, message string, _ Values, presence bool) error {
	c.failures = append(c.failures, &ValidationError{Option: option, Message: message, Presence: presence})

	return nil
}

// Failures returns the recorded failures in the order they happened.
func (c *Collector) Failures() []*ValidationError {
	return c.failures
}

// Err combines the recorded failures into one error, or returns nil.
func (c *Collector) Err() error {
	var err error

	for _, failure := range c.failures {
		err = multierr.Append(err, failure)
	}

	return err
}

// Reset drops the recorded failures.
func (c *Collector) Reset() {
	c.failures = nil
}
