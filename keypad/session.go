package keypad

import (
	"context"
	"fmt"

	"github.com/zephyrtronium/calculator/store"
)

// Session is a calculator whose display is saved to a store slot after every
// key press that changes it. It is not safe for concurrent use.
type Session struct {
	calc  Calculator
	slots store.Store
	slot  string
	state State
}

// Open restores a session from a slot. An empty slot name means
// store.DefaultSlot. A slot that has never been saved starts with an empty
// display.
func Open(ctx context.Context, calc Calculator, slots store.Store, slot string) (*Session, error) {
	if slot == "" {
		slot = store.DefaultSlot
	}
	s := &Session{calc: calc, slots: slots, slot: slot}
	v, ok, err := slots.Load(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("restoring display from slot %q: %w", slot, err)
	}
	if ok {
		s.state = Restore(v)
	}
	return s, nil
}

// Restore rebuilds a state from a saved display. A saved failure marker is
// restored as a failure, so the next key clears it.
func Restore(display string) State {
	return State{Display: display, Err: display == ErrorMarker || display == LimitMarker}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Press applies keys in order, saving the display after each one that
// changes the state.
func (s *Session) Press(ctx context.Context, keys ...Key) error {
	for _, k := range keys {
		next := s.calc.Press(s.state, k)
		if next == s.state {
			continue
		}
		s.state = next
		if err := s.slots.Save(ctx, s.slot, next.Display); err != nil {
			return fmt.Errorf("saving display after %v: %w", k, err)
		}
	}
	return nil
}
