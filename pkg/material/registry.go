package material

import (
	"github.com/df07/go-cpu-pathtracer/pkg/core"
)

// Registry maps material handles to materials. It is populated once before
// rendering and frozen while workers read from it.
type Registry struct {
	arena core.Arena[core.MaterialID, Material]
}

// NewRegistry creates an empty material registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a material and returns its handle
func (r *Registry) Add(m Material) (core.MaterialID, error) {
	return r.arena.Add(m)
}

// MustAdd registers a material and panics on failure. Intended for scene builders.
func (r *Registry) MustAdd(m Material) core.MaterialID {
	id, err := r.Add(m)
	if err != nil {
		panic(err)
	}
	return id
}

// Get returns the material for id
func (r *Registry) Get(id core.MaterialID) (Material, bool) {
	return r.arena.Get(id)
}

// Lookup returns the material for id or a *MissingMaterialError naming the hitable that referenced it
func (r *Registry) Lookup(id core.MaterialID, hitable core.HitableID) (Material, error) {
	m, ok := r.arena.Get(id)
	if !ok {
		return nil, &MissingMaterialError{Material: id, Hitable: hitable}
	}
	return m, nil
}

// Len returns the number of registered materials
func (r *Registry) Len() int {
	return r.arena.Len()
}

// Freeze makes the registry read-only
func (r *Registry) Freeze() {
	r.arena.Freeze()
}

// Frozen reports whether the registry is read-only
func (r *Registry) Frozen() bool {
	return r.arena.Frozen()
}
