package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Option configures a Listener.
type Option func(*options)

type options struct {
	namespace string
	now       func() time.Time
}

// WithNamespace overrides the metric namespace. Defaults to "fsm".
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

// WithClock sets the time source used for the state-entered gauge.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// Listener records state changes of a single machine as Prometheus metrics.
// It implements statemachine.Listener.
type Listener[S comparable] struct {
	machine     string
	transitions *prometheus.CounterVec
	entered     *prometheus.GaugeVec
	now         func() time.Time
}

// NewListener creates a Listener and registers its collectors with reg.
// A nil reg uses prometheus.DefaultRegisterer. Listeners for several machines
// may share one registry; they are told apart by the "machine" label.
func NewListener[S comparable](reg prometheus.Registerer, machine string, opts ...Option) (*Listener[S], error) {
	o := &options{namespace: "fsm", now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	transitions, err := register(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "transitions_total",
			Help:      "Number of transitions into each state.",
		},
		[]string{"machine", "state"},
	))
	if err != nil {
		return nil, err
	}

	entered, err := register(reg, prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: o.namespace,
			Name:      "state_entered_timestamp_seconds",
			Help:      "Unix time of the last state change.",
		},
		[]string{"machine"},
	))
	if err != nil {
		return nil, err
	}

	return &Listener[S]{
		machine:     machine,
		transitions: transitions,
		entered:     entered,
		now:         o.now,
	}, nil
}

// OnStateChanged counts the transition into newState. It never fails.
func (l *Listener[S]) OnStateChanged(newState S) error {
	l.transitions.WithLabelValues(l.machine, fmt.Sprint(newState)).Inc()
	l.entered.WithLabelValues(l.machine).Set(float64(l.now().UnixNano()) / float64(time.Second))
	return nil
}

// Transitions returns how many times the machine has entered state.
// Asking about an unseen state creates its series at zero.
func (l *Listener[S]) Transitions(state S) float64 {
	return counterValue(l.transitions.WithLabelValues(l.machine, fmt.Sprint(state)))
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("register metrics collector: %w", err)
	}
	return c, nil
}

func counterValue(c prometheus.Counter) float64 {
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}
