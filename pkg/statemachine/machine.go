package statemachine

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/fsm/pkg/logger"
)

// Machine drives transitions over an immutable TransitionTable.
// Without WithLocking a Machine must not be used from several goroutines at once.
type Machine[S, E comparable] struct {
	current   S
	table     *TransitionTable[S, E]
	listeners listenerRegistry[S]
	logger    *slog.Logger
	isolated  bool
	mu        *sync.RWMutex
}

// New creates a state machine starting in initialState.
// It fails with *ErrConfiguration when the table is nil or has no transitions.
func New[S, E comparable](initialState S, table *TransitionTable[S, E], opts ...Option) (*Machine[S, E], error) {
	if table == nil {
		return nil, NewErrConfiguration(ErrNilTable)
	}
	if table.Len() == 0 {
		return nil, NewErrConfiguration(ErrEmptyTable)
	}

	o := &options{logger: logger.NewNop()}
	for _, opt := range opts {
		opt(o)
	}

	l := o.logger
	if o.name != "" {
		l = l.With(logger.Machine(o.name))
	}

	sm := &Machine[S, E]{
		current:  initialState,
		table:    table,
		logger:   l,
		isolated: o.isolated,
	}
	if o.locking {
		sm.mu = &sync.RWMutex{}
	}
	return sm, nil
}

// MustNew creates a new state machine and panics if the table is unusable.
func MustNew[S, E comparable](initialState S, table *TransitionTable[S, E], opts ...Option) *Machine[S, E] {
	sm, err := New(initialState, table, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return sm
}

// SendEvent moves the machine along the transition registered for the current
// state and event, then notifies listeners with the new state.
//
// When no transition matches, the state is left unchanged and an
// *ErrInvalidTransition is returned. A failing listener does not undo the
// transition: the new state is returned together with the listener error.
func (sm *Machine[S, E]) SendEvent(event E) (S, error) {
	sm.lock()
	from := sm.current
	to, ok := sm.table.Lookup(from, event)
	if !ok {
		sm.unlock()
		sm.logger.Debug("transition rejected", logger.State(from), logger.Event(event))
		var zero S
		return zero, NewErrInvalidTransition(from, event)
	}
	sm.current = to
	listeners := sm.listeners.snapshot()
	sm.unlock()

	sm.logger.Debug("state changed",
		logger.FromState(from),
		logger.Event(event),
		logger.State(to),
	)

	if err := notifyListeners(listeners, to, sm.isolated); err != nil {
		return to, err
	}
	return to, nil
}

// CurrentState returns the state the machine is in.
func (sm *Machine[S, E]) CurrentState() S {
	sm.rlock()
	defer sm.runlock()
	return sm.current
}

// CanSend reports whether SendEvent would succeed for the event in the current state.
func (sm *Machine[S, E]) CanSend(event E) bool {
	sm.rlock()
	defer sm.runlock()
	_, ok := sm.table.Lookup(sm.current, event)
	return ok
}

// PermittedEvents returns the events accepted in the current state.
func (sm *Machine[S, E]) PermittedEvents() []E {
	sm.rlock()
	defer sm.runlock()
	return sm.table.EventsFrom(sm.current)
}

// Table returns the transition table the machine was built with.
func (sm *Machine[S, E]) Table() *TransitionTable[S, E] {
	return sm.table
}

// AddListener registers a listener. The same listener may be added more than
// once and is then notified once per registration.
func (sm *Machine[S, E]) AddListener(l Listener[S]) {
	sm.lock()
	defer sm.unlock()
	sm.listeners.add(l)
}

// RemoveListener unregisters the first registration of l. Unknown listeners are ignored.
func (sm *Machine[S, E]) RemoveListener(l Listener[S]) {
	sm.lock()
	defer sm.unlock()
	sm.listeners.remove(l)
}

// ListenerCount returns the number of registered listeners.
func (sm *Machine[S, E]) ListenerCount() int {
	sm.rlock()
	defer sm.runlock()
	return sm.listeners.len()
}

func (sm *Machine[S, E]) lock() {
	if sm.mu != nil {
		sm.mu.Lock()
	}
}

func (sm *Machine[S, E]) unlock() {
	if sm.mu != nil {
		sm.mu.Unlock()
	}
}

func (sm *Machine[S, E]) rlock() {
	if sm.mu != nil {
		sm.mu.RLock()
	}
}

func (sm *Machine[S, E]) runlock() {
	if sm.mu != nil {
		sm.mu.RUnlock()
	}
}
