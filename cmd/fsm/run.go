package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fsm/pkg/logger"
	"github.com/dmitrymomot/fsm/pkg/statemachine"
	"github.com/dmitrymomot/fsm/pkg/statemachine/metrics"
	"github.com/dmitrymomot/fsm/pkg/tabledef"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <file> <event>...",
		Short: "Replay events through a machine",
		Long: `Builds a machine from the definition and sends each event in order,
printing every state the machine enters. Stops with a non-zero exit code at
the first event the current state does not accept.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			withMetrics, _ := cmd.Flags().GetBool("metrics")

			def, err := tabledef.Load(args[0])
			if err != nil {
				return err
			}

			runID := uuid.New().String()
			ctx := context.WithValue(cmd.Context(), runIDKey{}, runID)

			// Machine records carry no context, so the run id is bound to its logger.
			sm, err := def.NewMachine(statemachine.WithLogger(a.log.With(logger.RunID(runID))))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			sm.AddListener(statemachine.ListenerFunc[tabledef.State](func(s tabledef.State) error {
				_, err := fmt.Fprintln(out, s)
				return err
			}))

			var reg *prometheus.Registry
			if withMetrics {
				reg = prometheus.NewRegistry()
				l, err := metrics.NewListener[tabledef.State](reg, def.Name)
				if err != nil {
					return err
				}
				sm.AddListener(l)
			}

			start := time.Now()
			a.log.InfoContext(ctx, "run started",
				logger.Machine(def.Name),
				logger.State(sm.CurrentState()),
			)

			runErr := replay(sm, args[1:])

			a.log.InfoContext(ctx, "run finished",
				logger.State(sm.CurrentState()),
				logger.Duration(time.Since(start)),
				logger.Error(runErr),
			)

			if reg != nil {
				if err := writeMetrics(out, reg); err != nil {
					return err
				}
			}
			return runErr
		},
	}
	cmd.Flags().Bool("metrics", false, "print Prometheus metrics of the run")
	return cmd
}

func replay(sm *statemachine.Machine[tabledef.State, tabledef.Event], events []string) error {
	for i, e := range events {
		if _, err := sm.SendEvent(tabledef.Event(e)); err != nil {
			return fmt.Errorf("event #%d: %w", i+1, err)
		}
	}
	return nil
}

func writeMetrics(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
