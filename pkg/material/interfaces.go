package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-cpu-pathtracer/pkg/core"
)

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter decides whether and how rayIn continues after striking the surface.
	// A false return means the ray was absorbed; the result is then unused.
	Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// Surface exposes the shape parameters of the primitive that produced a hit
type Surface interface {
	Centroid() core.Vec3
}

// SurfaceMaterial is implemented by materials whose response depends on where
// on the hit primitive the ray landed. The integrator resolves the primitive
// from HitRecord.Hitable and calls ScatterSurface instead of Scatter.
type SurfaceMaterial interface {
	Material
	ScatterSurface(rayIn core.Ray, hit core.HitRecord, surface Surface, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// ErrMissingMaterial is the sentinel every *MissingMaterialError unwraps to
var ErrMissingMaterial = errors.New("material: handle not registered")

// MissingMaterialError reports a hit record naming a material handle that is not registered.
// It is a scene construction fault, never a per-pixel condition.
type MissingMaterialError struct {
	Material core.MaterialID
	Hitable  core.HitableID
}

func (e *MissingMaterialError) Error() string {
	return fmt.Sprintf("material: handle %d referenced by hitable %d is not registered", e.Material, e.Hitable)
}

func (e *MissingMaterialError) Unwrap() error {
	return ErrMissingMaterial
}
