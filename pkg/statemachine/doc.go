// Package statemachine provides a generic, table-driven implementation of the
// finite-state-machine (FSM) pattern.
//
// A machine is defined by three things:
//  1. a state type S and an event type E, any comparable Go types;
//  2. an immutable TransitionTable mapping (state, event) pairs to a next state;
//  3. an initial state.
//
// The Machine looks up the (current state, event) pair on every SendEvent,
// moves to the target state and synchronously notifies registered Listeners.
// There are no guards, actions, hierarchies or timers: the table is the whole
// behaviour.
//
// Ready-made StringState and StringEvent types cover simple scenarios; closed
// variant sets are usually modelled as typed constants.
//
// # Usage
//
//	type AppState string
//	type AppEvent string
//
//	const (
//	    Idle    AppState = "idle"
//	    Loading AppState = "loading"
//	    Done    AppState = "done"
//
//	    Start   AppEvent = "start"
//	    Success AppEvent = "success"
//	)
//
//	table := statemachine.NewTransitionTable[AppState, AppEvent]().
//	    AddTransition(Idle, Start, Loading).
//	    AddTransition(Loading, Success, Done).
//	    Build()
//
//	sm, err := statemachine.New(Idle, table)
//	if err != nil {
//	    // the table was empty
//	}
//	next, err := sm.SendEvent(Start) // next == Loading
//
// # Transition Table
//
// TableBuilder collects entries without validating them. Adding the same
// (state, event) pair twice keeps the last target. Build returns a snapshot,
// so a table never changes once built and can be shared by many machines.
// States without outgoing transitions are sinks: every event sent while the
// machine is in one fails. SinkStates, Reachable and UnreachableSources report
// such shapes for tooling; New only rejects nil or empty tables.
//
// # Listeners
//
// Listeners are notified in registration order on the goroutine calling
// SendEvent. Duplicates are allowed and RemoveListener removes the first
// identical registration. By default the first listener error stops the round;
// WithIsolatedListeners notifies everyone and joins the errors. Either way
// the transition has already happened when listeners run.
//
// # Error Handling
//
//	if statemachine.IsConfigurationError(err)     { /* rebuild the table */ }
//	if statemachine.IsInvalidTransitionError(err) { /* state unchanged */ }
//	if statemachine.IsListenerError(err)          { /* state changed */ }
//
// # Concurrency
//
// A Machine is not safe for concurrent use unless it is created WithLocking.
// Tables are always safe to share.
package statemachine
