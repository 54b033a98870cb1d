package graph

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dmitrymomot/fsm/pkg/statemachine"
)

// Direction specifies the layout direction of a rendered graph.
type Direction int

const (
	// TopToBottom flows from top to bottom.
	TopToBottom Direction = iota
	// LeftToRight flows from left to right.
	LeftToRight
	// BottomToTop flows from bottom to top.
	BottomToTop
	// RightToLeft flows from right to left.
	RightToLeft
)

func (d Direction) code() string {
	switch d {
	case LeftToRight:
		return "LR"
	case BottomToTop:
		return "BT"
	case RightToLeft:
		return "RL"
	default:
		return "TB"
	}
}

// Option configures rendering.
type Option func(*options)

type options struct {
	direction  Direction
	initial    any
	hasInitial bool
	current    any
	hasCurrent bool
}

// WithDirection sets the layout direction.
func WithDirection(d Direction) Option {
	return func(o *options) {
		o.direction = d
	}
}

// WithInitial marks the initial state with an entry arrow.
func WithInitial(state any) Option {
	return func(o *options) {
		o.initial = state
		o.hasInitial = true
	}
}

// WithCurrent highlights the state a machine is in.
func WithCurrent(state any) Option {
	return func(o *options) {
		o.current = state
		o.hasCurrent = true
	}
}

// FromMachine returns options marking the machine's current state.
func FromMachine[S, E comparable](sm *statemachine.Machine[S, E]) Option {
	return WithCurrent(sm.CurrentState())
}

func newOptions(opts []Option) *options {
	o := &options{direction: TopToBottom}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// node is a state prepared for rendering.
type node struct {
	name string
	id   string
}

// nodeSet assigns every state a unique identifier safe for the output format.
type nodeSet[S comparable] struct {
	order    []S
	nodes    map[S]node
	used     map[string]bool
	sanitize func(string) string
}

func newNodeSet[S, E comparable](table *statemachine.TransitionTable[S, E], o *options, sanitize func(string) string) *nodeSet[S] {
	ns := &nodeSet[S]{
		nodes:    make(map[S]node),
		used:     make(map[string]bool),
		sanitize: sanitize,
	}
	if s, ok := o.initial.(S); ok && o.hasInitial {
		ns.add(s)
	}
	for _, s := range table.States() {
		ns.add(s)
	}
	if s, ok := o.current.(S); ok && o.hasCurrent {
		ns.add(s)
	}
	return ns
}

func (ns *nodeSet[S]) add(s S) {
	if _, ok := ns.nodes[s]; ok {
		return
	}
	name := fmt.Sprint(s)
	id := ns.sanitize(name)
	if id == "" {
		id = "state"
	}
	candidate := id
	for i := 1; ns.used[candidate]; i++ {
		candidate = fmt.Sprintf("%s_%d", id, i)
	}
	ns.used[candidate] = true

	ns.order = append(ns.order, s)
	ns.nodes[s] = node{name: name, id: candidate}
}

func (ns *nodeSet[S]) get(s S) node {
	return ns.nodes[s]
}

// lookup resolves an option value to a known node.
func (ns *nodeSet[S]) lookup(v any, set bool) (node, bool) {
	if !set {
		return node{}, false
	}
	s, ok := v.(S)
	if !ok {
		return node{}, false
	}
	n, ok := ns.nodes[s]
	return n, ok
}

// mermaidID keeps letters, digits and underscores.
func mermaidID(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			sb.WriteRune(r)
		case unicode.IsSpace(r), r == '-', r == '.', r == '/', r == ':':
			sb.WriteRune('_')
		}
	}
	return sb.String()
}

// EscapeLabel escapes a string for use inside a double-quoted DOT label.
func EscapeLabel(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
