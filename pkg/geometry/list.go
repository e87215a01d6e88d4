package geometry

import (
	"github.com/df07/go-cpu-pathtracer/pkg/core"
)

// List is a composite hitable over registry handles. It intersects every member
// with a linear scan and keeps the globally nearest hit.
type List struct {
	Members  []core.HitableID
	registry *Registry
	id       core.HitableID
}

// NewList creates a list whose members are resolved through registry
func NewList(registry *Registry, members ...core.HitableID) *List {
	return &List{
		Members:  members,
		registry: registry,
	}
}

// Append adds members to the list. A list whose registry is frozen is part of
// a scene being rendered and rejects new members with core.ErrArenaFrozen.
func (l *List) Append(members ...core.HitableID) error {
	if l.registry != nil && l.registry.Frozen() {
		return core.ErrArenaFrozen
	}
	l.Members = append(l.Members, members...)
	return nil
}

// Hit returns the nearest hit among all members. tMax shrinks to each accepted
// hit so later members can only replace it with something closer.
func (l *List) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	var closest core.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, id := range l.Members {
		object, ok := l.registry.Get(id)
		if !ok {
			// Dangling handles are rejected by scene validation before rendering
			continue
		}
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}

// QuickHit reports whether any member's QuickHit succeeds
func (l *List) QuickHit(ray core.Ray) bool {
	for _, id := range l.Members {
		if object, ok := l.registry.Get(id); ok && object.QuickHit(ray) {
			return true
		}
	}
	return false
}

// ID returns the list's registry handle
func (l *List) ID() core.HitableID { return l.id }

// SetID assigns the list's registry handle
func (l *List) SetID(id core.HitableID) { l.id = id }
