package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-cpu-pathtracer/pkg/core"
)

var (
	ErrAlreadyRegistered = errors.New("geometry: hitable already registered")
	ErrMissingHitable    = errors.New("geometry: hitable handle not registered")
)

// Registry maps hitable handles to primitives and collections. Each hitable is
// assigned its handle exactly once, when it is added.
type Registry struct {
	arena core.Arena[core.HitableID, Hitable]
}

// NewRegistry creates an empty hitable registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers h, stamps it with its handle and returns the handle
func (r *Registry) Add(h Hitable) (core.HitableID, error) {
	if h.ID() != core.NoHitable {
		return core.NoHitable, fmt.Errorf("%w: handle %d", ErrAlreadyRegistered, h.ID())
	}
	id, err := r.arena.Add(h)
	if err != nil {
		return core.NoHitable, err
	}
	h.SetID(id)
	return id, nil
}

// MustAdd registers h and panics on failure. Intended for scene builders.
func (r *Registry) MustAdd(h Hitable) core.HitableID {
	id, err := r.Add(h)
	if err != nil {
		panic(err)
	}
	return id
}

// Get returns the hitable for id
func (r *Registry) Get(id core.HitableID) (Hitable, bool) {
	return r.arena.Get(id)
}

// Len returns the number of registered hitables
func (r *Registry) Len() int {
	return r.arena.Len()
}

// Each visits every registered hitable in handle order
func (r *Registry) Each(fn func(id core.HitableID, h Hitable)) {
	r.arena.Each(fn)
}

// Freeze makes the registry read-only
func (r *Registry) Freeze() {
	r.arena.Freeze()
}

// Frozen reports whether the registry is read-only
func (r *Registry) Frozen() bool {
	return r.arena.Frozen()
}
