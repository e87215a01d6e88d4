package geometry

import (
	"github.com/df07/go-cpu-pathtracer/pkg/core"
)

// Hitable interface for primitives and collections that can be hit by rays
type Hitable interface {
	// Hit reports the nearest intersection with t strictly inside (tMin, tMax)
	Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool)
	// QuickHit is a cheap occlusion probe that skips record population and t bounds
	QuickHit(ray core.Ray) bool
	// ID returns the registry handle, or core.NoHitable before registration
	ID() core.HitableID
	// SetID is called once by the registry that owns the hitable
	SetID(id core.HitableID)
}

// Textured is implemented by primitives that carry a material handle
type Textured interface {
	MaterialID() core.MaterialID
}
