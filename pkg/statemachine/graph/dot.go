package graph

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/fsm/pkg/statemachine"
)

// Dot renders the table as a Graphviz digraph in basic UML style.
func Dot[S, E comparable](table *statemachine.TransitionTable[S, E], opts ...Option) string {
	if table == nil {
		table = statemachine.NewTransitionTable[S, E]().Build()
	}
	o := newOptions(opts)
	ns := newNodeSet(table, o, func(name string) string { return name })

	var sb strings.Builder
	sb.WriteString("digraph {\n")
	sb.WriteString("compound=true;\n")
	sb.WriteString("node [shape=Mrecord]\n")
	fmt.Fprintf(&sb, "rankdir=%q\n", o.direction.code())

	current, hasCurrent := ns.lookup(o.current, o.hasCurrent)
	for _, s := range ns.order {
		n := ns.get(s)
		id := EscapeLabel(n.id)
		if hasCurrent && n.id == current.id {
			fmt.Fprintf(&sb, "\"%s\" [label=\"%s\", style=filled, fillcolor=yellow];\n", id, EscapeLabel(n.name))
			continue
		}
		fmt.Fprintf(&sb, "\"%s\" [label=\"%s\"];\n", id, EscapeLabel(n.name))
	}

	sb.WriteString("\n")
	for _, t := range table.Transitions() {
		fmt.Fprintf(&sb, "\"%s\" -> \"%s\" [style=\"solid\", label=\"%s\"];\n",
			EscapeLabel(ns.get(t.From).id),
			EscapeLabel(ns.get(t.To).id),
			EscapeLabel(fmt.Sprint(t.Event)),
		)
	}

	if n, ok := ns.lookup(o.initial, o.hasInitial); ok {
		sb.WriteString(" init [label=\"\", shape=point];\n")
		fmt.Fprintf(&sb, " init -> \"%s\"[style = \"solid\"]\n", EscapeLabel(n.id))
	}

	sb.WriteString("}\n")
	return sb.String()
}
