package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTable     = errors.New("empty transition table")
	ErrNilTable       = errors.New("nil transition table")
	ErrListenerFailed = errors.New("state listener failed")
)

// ErrConfiguration indicates the machine can't be built from the given table.
// The caller has to rebuild the table; the error is never returned after construction.
type ErrConfiguration struct {
	Reason error
}

func (e *ErrConfiguration) Error() string {
	return fmt.Sprintf("invalid state machine configuration: %v", e.Reason)
}

func (e *ErrConfiguration) Unwrap() error {
	return e.Reason
}

func NewErrConfiguration(reason error) *ErrConfiguration {
	return &ErrConfiguration{Reason: reason}
}

// ErrInvalidTransition indicates no transition exists for the current state and the sent event.
// The machine state is left untouched, so the caller may retry with another event.
type ErrInvalidTransition struct {
	State any
	Event any
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid transition: cannot transition from state '%v' with event '%v'", e.State, e.Event)
}

func NewErrInvalidTransition(state, event any) *ErrInvalidTransition {
	return &ErrInvalidTransition{
		State: state,
		Event: event,
	}
}

func IsConfigurationError(err error) bool {
	var e *ErrConfiguration
	return errors.As(err, &e)
}

func IsInvalidTransitionError(err error) bool {
	var e *ErrInvalidTransition
	return errors.As(err, &e)
}

// IsListenerError reports whether err was produced by a failing listener.
func IsListenerError(err error) bool {
	return errors.Is(err, ErrListenerFailed)
}
