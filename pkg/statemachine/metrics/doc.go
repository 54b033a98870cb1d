// Package metrics exports state machine transitions to Prometheus.
//
// A Listener is registered on a machine like any other listener:
//
//	l, err := metrics.NewListener[OrderState](prometheus.DefaultRegisterer, "orders")
//	if err != nil {
//		return err
//	}
//	sm.AddListener(l)
//
// Collected series:
//
//	fsm_transitions_total{machine, state}          counter
//	fsm_state_entered_timestamp_seconds{machine}   gauge
package metrics
