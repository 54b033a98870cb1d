package statemachine

// Transition is a single (state, event) -> state entry of a TransitionTable.
type Transition[S, E comparable] struct {
	From  S
	Event E
	To    S
}

// Key returns the lookup key of the transition.
func (t Transition[S, E]) Key() TransitionKey[S, E] {
	return TransitionKey[S, E]{State: t.From, Event: t.Event}
}

// Listener is notified synchronously after every successful transition.
// A non-nil error aborts the notification round and is returned from SendEvent
// unless the machine was built WithIsolatedListeners.
type Listener[S comparable] interface {
	OnStateChanged(newState S) error
}

// ListenerFunc adapts a plain function to the Listener interface.
// Function values are not comparable, so a ListenerFunc can't be removed with
// RemoveListener; register a pointer type when removal is needed.
type ListenerFunc[S comparable] func(newState S) error

func (f ListenerFunc[S]) OnStateChanged(newState S) error {
	return f(newState)
}

// StringState provides a simple string-based state implementation for basic use cases.
type StringState string

func (s StringState) Name() string {
	return string(s)
}

func (s StringState) String() string {
	return string(s)
}

// StringEvent provides a simple string-based event implementation for basic use cases.
type StringEvent string

func (e StringEvent) Name() string {
	return string(e)
}

func (e StringEvent) String() string {
	return string(e)
}
