package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fsm/pkg/logger"
	"github.com/dmitrymomot/fsm/pkg/statemachine"
	"github.com/dmitrymomot/fsm/pkg/tabledef"
)

// ErrWarnings is returned by validate --strict when the definition has warnings.
var ErrWarnings = errors.New("definition has warnings")

func newValidateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a definition for consistency",
		Long: `Loads the definition, builds a machine from it and reports rows that
overwrite earlier ones, sink states and source states that can't be reached
from the initial state. Warnings never fail the command unless --strict is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strict, _ := cmd.Flags().GetBool("strict")

			def, err := tabledef.Load(args[0])
			if err != nil {
				return err
			}
			sm, err := def.NewMachine(statemachine.WithLogger(a.log))
			if err != nil {
				return err
			}

			warnings := lint(def)
			out := cmd.OutOrStdout()
			for _, w := range warnings {
				fmt.Fprintf(out, "warning: %s\n", w)
			}

			table := sm.Table()
			fmt.Fprintf(out, "%s is valid: %d transitions, %d states, %d events\n",
				args[0], table.Len(), len(table.States()), len(table.Events()))
			a.log.DebugContext(cmd.Context(), "definition validated",
				logger.Machine(def.Name),
				"warnings", len(warnings),
			)

			if strict && len(warnings) > 0 {
				return fmt.Errorf("%w: %d found", ErrWarnings, len(warnings))
			}
			return nil
		},
	}
	cmd.Flags().Bool("strict", false, "treat warnings as errors")
	return cmd
}

func lint(def *tabledef.Definition) []string {
	var out []string
	table := def.Table()
	initial := def.InitialState()

	for _, t := range def.Duplicates() {
		out = append(out, fmt.Sprintf("transition %s --%s--> %s overwrites an earlier row", t.From, t.Event, t.To))
	}
	if !table.HasOutgoing(initial) {
		out = append(out, fmt.Sprintf("initial state %q accepts no events", initial))
	}
	for _, s := range table.SinkStates() {
		if s == initial {
			continue
		}
		out = append(out, fmt.Sprintf("state %q is a sink", s))
	}
	for _, s := range table.UnreachableSources(initial) {
		out = append(out, fmt.Sprintf("state %q is unreachable from %q", s, initial))
	}
	return out
}
