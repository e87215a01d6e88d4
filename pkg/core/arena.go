package core

import (
	"errors"
	"sync/atomic"
)

// ErrArenaFrozen is returned when adding to an arena after it has been frozen for rendering
var ErrArenaFrozen = errors.New("core: arena is frozen")

// Arena is a growable indexed store addressed by small integer handles.
// Handle 0 is reserved for "none"; the first stored item gets handle 1.
// Once frozen, an arena is read-only and may be shared between goroutines.
type Arena[ID ~uint32, T any] struct {
	items  []T
	frozen atomic.Bool
}

// Add stores item and returns its handle
func (a *Arena[ID, T]) Add(item T) (ID, error) {
	if a.frozen.Load() {
		return 0, ErrArenaFrozen
	}
	a.items = append(a.items, item)
	return ID(len(a.items)), nil
}

// Get returns the item stored under id. The zero handle and unknown handles report false.
func (a *Arena[ID, T]) Get(id ID) (T, bool) {
	if id == 0 || int(id) > len(a.items) {
		var zero T
		return zero, false
	}
	return a.items[id-1], true
}

// Len returns the number of stored items
func (a *Arena[ID, T]) Len() int {
	return len(a.items)
}

// Each calls fn for every stored item in handle order
func (a *Arena[ID, T]) Each(fn func(id ID, item T)) {
	for i, item := range a.items {
		fn(ID(i+1), item)
	}
}

// Freeze makes the arena read-only
func (a *Arena[ID, T]) Freeze() {
	a.frozen.Store(true)
}

// Frozen reports whether the arena is read-only
func (a *Arena[ID, T]) Frozen() bool {
	return a.frozen.Load()
}
