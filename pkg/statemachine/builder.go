package statemachine

// TableBuilder accumulates transitions and produces an immutable TransitionTable.
// No validation happens while building; machines validate the table on construction.
type TableBuilder[S, E comparable] struct {
	targets map[TransitionKey[S, E]]S
	order   []TransitionKey[S, E]
}

// NewTransitionTable creates a new transition table builder.
func NewTransitionTable[S, E comparable]() *TableBuilder[S, E] {
	return &TableBuilder[S, E]{
		targets: make(map[TransitionKey[S, E]]S),
	}
}

// AddTransition maps (from, event) to the target state.
// A second call for the same pair silently replaces the target.
func (b *TableBuilder[S, E]) AddTransition(from S, event E, to S) *TableBuilder[S, E] {
	return b.Transition(TransitionKey[S, E]{State: from, Event: event}, to)
}

// Transition maps an existing key to the target state.
func (b *TableBuilder[S, E]) Transition(key TransitionKey[S, E], to S) *TableBuilder[S, E] {
	if _, exists := b.targets[key]; !exists {
		b.order = append(b.order, key)
	}
	b.targets[key] = to
	return b
}

// WithTransitions adds all given transitions in order.
func (b *TableBuilder[S, E]) WithTransitions(transitions ...Transition[S, E]) *TableBuilder[S, E] {
	for _, t := range transitions {
		b.Transition(t.Key(), t.To)
	}
	return b
}

// Build returns a snapshot of the accumulated transitions.
// The builder may keep being used; the returned table never changes.
func (b *TableBuilder[S, E]) Build() *TransitionTable[S, E] {
	targets := make(map[TransitionKey[S, E]]S, len(b.targets))
	for k, v := range b.targets {
		targets[k] = v
	}
	order := make([]TransitionKey[S, E], len(b.order))
	copy(order, b.order)

	return &TransitionTable[S, E]{
		targets: targets,
		order:   order,
	}
}
