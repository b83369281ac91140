// Package store persists calculator displays in named slots.
package store

import (
	"context"
	"sync"
)

// DefaultSlot is the slot name the calculator saves its display under.
const DefaultSlot = "calculatorValue"

// Store is a key/value store of named string slots.
type Store interface {
	// Load returns the value saved in a slot. ok is false if nothing has
	// been saved there.
	Load(ctx context.Context, slot string) (value string, ok bool, err error)
	// Save replaces the value in a slot.
	Save(ctx context.Context, slot, value string) error
	// Close releases the store's resources.
	Close() error
}

// Memory is a Store that keeps slots in memory. It is safe for concurrent
// use.
type Memory struct {
	mu    sync.Mutex
	slots map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string]string)}
}

func (m *Memory) Load(ctx context.Context, slot string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.slots[slot]
	return v, ok, nil
}

func (m *Memory) Save(ctx context.Context, slot, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[slot] = value
	return nil
}

// Close is a no-op; the slots remain readable.
func (m *Memory) Close() error {
	return nil
}

var (
	_ Store = (*Memory)(nil)
	_ Store = (*SQLite)(nil)
)
