package statemachine

import (
	"log/slog"
)

// Option configures a state machine during construction.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	name     string
	locking  bool
	isolated bool
}

// WithLogger sets the logger used to trace transitions.
// Records are emitted at debug level; nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithName attaches a machine name to every trace record.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLocking guards the current state and the listener list with a mutex,
// making the machine safe for concurrent use. Listeners are notified after the
// lock is released, so notifications from concurrent sends may interleave.
func WithLocking() Option {
	return func(o *options) {
		o.locking = true
	}
}

// WithIsolatedListeners notifies every listener even when one of them fails.
// All listener errors are joined into the error returned by SendEvent.
func WithIsolatedListeners() Option {
	return func(o *options) {
		o.isolated = true
	}
}
