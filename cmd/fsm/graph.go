package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fsm/pkg/statemachine/graph"
	"github.com/dmitrymomot/fsm/pkg/tabledef"
)

func newGraphCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph <file>",
		Short: "Export the state diagram",
		Long:  `Renders the definition as a Mermaid stateDiagram-v2 (default) or a Graphviz digraph.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			direction, _ := cmd.Flags().GetString("direction")
			current, _ := cmd.Flags().GetString("current")

			def, err := tabledef.Load(args[0])
			if err != nil {
				return err
			}

			dir, err := parseDirection(direction)
			if err != nil {
				return err
			}
			opts := []graph.Option{
				graph.WithInitial(def.InitialState()),
				graph.WithDirection(dir),
			}
			if current != "" {
				opts = append(opts, graph.WithCurrent(tabledef.State(current)))
			}

			var out string
			switch strings.ToLower(format) {
			case "mermaid", "":
				out = graph.Mermaid(def.Table(), opts...)
			case "dot":
				out = graph.Dot(def.Table(), opts...)
			default:
				return fmt.Errorf("unknown graph format %q: must be mermaid or dot", format)
			}

			a.log.DebugContext(cmd.Context(), "graph rendered", "format", format)
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringP("format", "f", "mermaid", "output format: mermaid or dot")
	cmd.Flags().String("direction", "TB", "layout direction: TB, LR, BT or RL")
	cmd.Flags().String("current", "", "highlight this state")
	return cmd
}

func parseDirection(s string) (graph.Direction, error) {
	switch strings.ToUpper(s) {
	case "TB", "TD", "":
		return graph.TopToBottom, nil
	case "LR":
		return graph.LeftToRight, nil
	case "BT":
		return graph.BottomToTop, nil
	case "RL":
		return graph.RightToLeft, nil
	default:
		return 0, fmt.Errorf("unknown direction %q: must be TB, LR, BT or RL", s)
	}
}
