package statemachine

import (
	"fmt"
	"slices"
	"strings"
)

// TransitionKey is the (state, event) pair a transition is looked up by.
type TransitionKey[S, E comparable] struct {
	State S
	Event E
}

// TransitionTable is an immutable mapping from TransitionKey to a target state.
// It is safe to share a table between machines and goroutines. A nil table
// behaves as an empty one.
type TransitionTable[S, E comparable] struct {
	targets map[TransitionKey[S, E]]S
	// order keeps keys in first-insertion order for deterministic iteration.
	order []TransitionKey[S, E]
}

// TableFromMap builds a table from a map literal. Map iteration order is random,
// so entries are ordered by their printed representation.
func TableFromMap[S, E comparable](m map[TransitionKey[S, E]]S) *TransitionTable[S, E] {
	keys := make([]TransitionKey[S, E], 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b TransitionKey[S, E]) int {
		return strings.Compare(fmt.Sprintf("%v\x00%v", a.State, a.Event), fmt.Sprintf("%v\x00%v", b.State, b.Event))
	})

	b := NewTransitionTable[S, E]()
	for _, k := range keys {
		b.Transition(k, m[k])
	}
	return b.Build()
}

// Lookup returns the target state for the given state and event.
func (t *TransitionTable[S, E]) Lookup(state S, event E) (S, bool) {
	if t == nil {
		var zero S
		return zero, false
	}
	to, ok := t.targets[TransitionKey[S, E]{State: state, Event: event}]
	return to, ok
}

// Len returns the number of transitions in the table.
func (t *TransitionTable[S, E]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Transitions returns a copy of all entries in insertion order.
func (t *TransitionTable[S, E]) Transitions() []Transition[S, E] {
	if t == nil {
		return nil
	}
	out := make([]Transition[S, E], 0, len(t.order))
	for _, k := range t.order {
		out = append(out, Transition[S, E]{From: k.State, Event: k.Event, To: t.targets[k]})
	}
	return out
}

// States returns every distinct state mentioned by the table, sources first-seen order.
func (t *TransitionTable[S, E]) States() []S {
	if t == nil {
		return nil
	}
	seen := make(map[S]struct{}, len(t.order))
	var out []S
	add := func(s S) {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	for _, k := range t.order {
		add(k.State)
		add(t.targets[k])
	}
	return out
}

// Sources returns the distinct states that have at least one outgoing transition.
func (t *TransitionTable[S, E]) Sources() []S {
	if t == nil {
		return nil
	}
	seen := make(map[S]struct{}, len(t.order))
	var out []S
	for _, k := range t.order {
		if _, ok := seen[k.State]; !ok {
			seen[k.State] = struct{}{}
			out = append(out, k.State)
		}
	}
	return out
}

// Events returns the distinct events used by the table.
func (t *TransitionTable[S, E]) Events() []E {
	if t == nil {
		return nil
	}
	seen := make(map[E]struct{}, len(t.order))
	var out []E
	for _, k := range t.order {
		if _, ok := seen[k.Event]; !ok {
			seen[k.Event] = struct{}{}
			out = append(out, k.Event)
		}
	}
	return out
}

// EventsFrom returns the events accepted in the given state, in insertion order.
func (t *TransitionTable[S, E]) EventsFrom(state S) []E {
	if t == nil {
		return nil
	}
	var out []E
	for _, k := range t.order {
		if k.State == state {
			out = append(out, k.Event)
		}
	}
	return out
}

// HasOutgoing reports whether any transition leaves the given state.
func (t *TransitionTable[S, E]) HasOutgoing(state S) bool {
	if t == nil {
		return false
	}
	for _, k := range t.order {
		if k.State == state {
			return true
		}
	}
	return false
}

// SinkStates returns the states that are only ever targets.
// Any event sent while the machine sits in one of them fails.
func (t *TransitionTable[S, E]) SinkStates() []S {
	var out []S
	for _, s := range t.States() {
		if !t.HasOutgoing(s) {
			out = append(out, s)
		}
	}
	return out
}

// Reachable returns the states reachable from the given state (itself included), breadth first.
func (t *TransitionTable[S, E]) Reachable(from S) []S {
	if t == nil {
		return []S{from}
	}
	visited := map[S]struct{}{from: {}}
	out := []S{from}
	for i := 0; i < len(out); i++ {
		current := out[i]
		for _, k := range t.order {
			if k.State != current {
				continue
			}
			next := t.targets[k]
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			out = append(out, next)
		}
	}
	return out
}

// UnreachableSources returns the source states that can't be reached from the given state.
// It is a reporting helper; machines never reject a table because of it.
func (t *TransitionTable[S, E]) UnreachableSources(from S) []S {
	reachable := make(map[S]struct{})
	for _, s := range t.Reachable(from) {
		reachable[s] = struct{}{}
	}

	var out []S
	for _, s := range t.Sources() {
		if _, ok := reachable[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}
