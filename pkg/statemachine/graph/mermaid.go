package graph

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/fsm/pkg/statemachine"
)

// Mermaid renders the table as a Mermaid stateDiagram-v2.
// Sink states get an arrow to the final pseudo-state.
func Mermaid[S, E comparable](table *statemachine.TransitionTable[S, E], opts ...Option) string {
	if table == nil {
		table = statemachine.NewTransitionTable[S, E]().Build()
	}
	o := newOptions(opts)
	ns := newNodeSet(table, o, mermaidID)

	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	if o.direction != TopToBottom {
		fmt.Fprintf(&sb, "\tdirection %s\n", o.direction.code())
	}

	for _, s := range ns.order {
		n := ns.get(s)
		if n.id != n.name {
			fmt.Fprintf(&sb, "\t%s : %s\n", n.id, n.name)
		}
	}

	if n, ok := ns.lookup(o.initial, o.hasInitial); ok {
		fmt.Fprintf(&sb, "\t[*] --> %s\n", n.id)
	}

	for _, t := range table.Transitions() {
		fmt.Fprintf(&sb, "\t%s --> %s : %s\n", ns.get(t.From).id, ns.get(t.To).id, mermaidLabel(fmt.Sprint(t.Event)))
	}

	for _, s := range table.SinkStates() {
		fmt.Fprintf(&sb, "\t%s --> [*]\n", ns.get(s).id)
	}

	if n, ok := ns.lookup(o.current, o.hasCurrent); ok {
		sb.WriteString("\tclassDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000\n")
		fmt.Fprintf(&sb, "\tclass %s current\n", n.id)
	}

	return sb.String()
}

// mermaidLabel strips characters that end a transition label early.
func mermaidLabel(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, ":", " ")
}
