package statemachine_test

import (
	"fmt"
	"testing"

	"github.com/dmitrymomot/fsm/pkg/statemachine"
)

func BenchmarkMachine_SendEvent(b *testing.B) {
	idle := statemachine.StringState("idle")
	running := statemachine.StringState("running")
	stopped := statemachine.StringState("stopped")

	start := statemachine.StringEvent("start")
	stop := statemachine.StringEvent("stop")

	sm := statemachine.MustNew(idle,
		statemachine.NewTransitionTable[statemachine.StringState, statemachine.StringEvent]().
			AddTransition(idle, start, running).
			AddTransition(running, stop, stopped).
			AddTransition(stopped, start, running).
			Build(),
	)

	b.ResetTimer()
	for b.Loop() {
		_, _ = sm.SendEvent(start)
		_, _ = sm.SendEvent(stop)
	}
}

func BenchmarkMachine_SendEventWithListeners(b *testing.B) {
	idle := statemachine.StringState("idle")
	running := statemachine.StringState("running")
	toggle := statemachine.StringEvent("toggle")

	sm := statemachine.MustNew(idle,
		statemachine.NewTransitionTable[statemachine.StringState, statemachine.StringEvent]().
			AddTransition(idle, toggle, running).
			AddTransition(running, toggle, idle).
			Build(),
	)
	for range 5 {
		sm.AddListener(statemachine.ListenerFunc[statemachine.StringState](func(statemachine.StringState) error {
			return nil
		}))
	}

	b.ResetTimer()
	for b.Loop() {
		_, _ = sm.SendEvent(toggle)
	}
}

func BenchmarkMachine_SendEventLocked(b *testing.B) {
	idle := statemachine.StringState("idle")
	running := statemachine.StringState("running")
	toggle := statemachine.StringEvent("toggle")

	sm := statemachine.MustNew(idle,
		statemachine.NewTransitionTable[statemachine.StringState, statemachine.StringEvent]().
			AddTransition(idle, toggle, running).
			AddTransition(running, toggle, idle).
			Build(),
		statemachine.WithLocking(),
	)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = sm.SendEvent(toggle)
			_ = sm.CurrentState()
		}
	})
}

func BenchmarkMachine_InvalidTransition(b *testing.B) {
	idle := statemachine.StringState("idle")
	running := statemachine.StringState("running")
	start := statemachine.StringEvent("start")
	pause := statemachine.StringEvent("pause")

	sm := statemachine.MustNew(idle,
		statemachine.NewTransitionTable[statemachine.StringState, statemachine.StringEvent]().
			AddTransition(idle, start, running).
			Build(),
	)

	b.ResetTimer()
	for b.Loop() {
		_, _ = sm.SendEvent(pause)
	}
}

func BenchmarkTableBuilder_Build(b *testing.B) {
	states := make([]statemachine.StringState, 10)
	for i := range 10 {
		states[i] = statemachine.StringState(fmt.Sprintf("state%d", i))
	}
	events := make([]statemachine.StringEvent, 5)
	for i := range 5 {
		events[i] = statemachine.StringEvent(fmt.Sprintf("event%d", i))
	}

	for b.Loop() {
		builder := statemachine.NewTransitionTable[statemachine.StringState, statemachine.StringEvent]()
		for i := range 9 {
			for j := range 5 {
				builder.AddTransition(states[i], events[j], states[(i+j+1)%10])
			}
		}
		_ = builder.Build()
	}
}

func BenchmarkMachine_LargeTransitionTable(b *testing.B) {
	states := make([]statemachine.StringState, 10)
	for i := range 10 {
		states[i] = statemachine.StringState(fmt.Sprintf("state%d", i))
	}
	events := make([]statemachine.StringEvent, 5)
	for i := range 5 {
		events[i] = statemachine.StringEvent(fmt.Sprintf("event%d", i))
	}

	builder := statemachine.NewTransitionTable[statemachine.StringState, statemachine.StringEvent]()
	for i := range 10 {
		for j := range 5 {
			builder.AddTransition(states[i], events[j], states[(i+j+1)%10])
		}
	}
	sm := statemachine.MustNew(states[0], builder.Build())

	b.ResetTimer()
	eventIndex := 0
	for b.Loop() {
		_, _ = sm.SendEvent(events[eventIndex%5])
		eventIndex++
	}
}
