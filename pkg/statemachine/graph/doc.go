// Package graph renders a statemachine.TransitionTable as a diagram.
//
// Two formats are supported: Mermaid stateDiagram-v2 and Graphviz DOT.
// Rendering is deterministic: states appear in the order the table first
// mentions them and transitions in table insertion order.
//
//	fmt.Print(graph.Mermaid(table,
//		graph.WithInitial(Idle),
//		graph.FromMachine(sm),
//	))
//
// Options taking a state accept any value; a value of the wrong type or one
// the table does not know about is ignored.
package graph
