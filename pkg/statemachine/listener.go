package statemachine

import (
	"errors"
	"fmt"
	"reflect"
)

// listenerRegistry keeps listeners in registration order. Duplicates are allowed.
type listenerRegistry[S comparable] struct {
	listeners []Listener[S]
}

func (r *listenerRegistry[S]) add(l Listener[S]) {
	if l == nil {
		return
	}
	r.listeners = append(r.listeners, l)
}

// remove drops the first listener identical to l. Missing listeners are a no-op.
func (r *listenerRegistry[S]) remove(l Listener[S]) bool {
	for i, existing := range r.listeners {
		if sameListener(existing, l) {
			r.listeners = append(r.listeners[:i:i], r.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// snapshot lets listeners (un)register others while a notification round is in flight.
func (r *listenerRegistry[S]) snapshot() []Listener[S] {
	if len(r.listeners) == 0 {
		return nil
	}
	out := make([]Listener[S], len(r.listeners))
	copy(out, r.listeners)
	return out
}

func (r *listenerRegistry[S]) len() int {
	return len(r.listeners)
}

// notifyListeners calls every listener in order. Unless isolated, the first
// failure stops the round.
func notifyListeners[S comparable](listeners []Listener[S], newState S, isolated bool) error {
	var errs []error
	for i, l := range listeners {
		if err := l.OnStateChanged(newState); err != nil {
			err = fmt.Errorf("%w: listener %d: %w", ErrListenerFailed, i, err)
			if !isolated {
				return err
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// sameListener compares listeners by identity. Listeners with non-comparable
// dynamic types (funcs, maps, slices) never match instead of panicking. The
// same holds for comparable structs whose interface fields hold such values.
func sameListener[S comparable](a, b Listener[S]) (same bool) {
	if a == nil || b == nil {
		return false
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
