package integrator

import (
	"math"

	"github.com/df07/go-cpu-pathtracer/pkg/core"
	"github.com/df07/go-cpu-pathtracer/pkg/material"
	"github.com/df07/go-cpu-pathtracer/pkg/scene"
)

const (
	DefaultMaxDepth = 50
	DefaultTMin     = 0.001
)

// PathTracingIntegrator implements recursive unidirectional path tracing.
// It holds no per-ray state and may be shared by every worker.
type PathTracingIntegrator struct {
	MaxDepth int     // Bounce depth at which a path returns black
	TMin     float64 // Lower intersection bound, keeps scattered rays off their origin surface
}

// NewPathTracingIntegrator creates a path tracer. Non-positive arguments select the defaults.
func NewPathTracingIntegrator(maxDepth int, tMin float64) *PathTracingIntegrator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if !(tMin > 0) {
		tMin = DefaultTMin
	}
	return &PathTracingIntegrator{MaxDepth: maxDepth, TMin: tMin}
}

// RayColor traces a primary ray from depth 0
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler) (core.Vec3, error) {
	return pt.Trace(ray, sc, 0, sampler)
}

// Trace returns the color carried back along ray after depth bounces
func (pt *PathTracingIntegrator) Trace(ray core.Ray, sc *scene.Scene, depth int, sampler core.Sampler) (core.Vec3, error) {
	// Bounce limit reached, no more light is gathered
	if depth >= pt.MaxDepth {
		return core.Vec3{}, nil
	}

	hit, isHit := sc.Hit(ray, pt.TMin, math.Inf(1))
	if !isHit {
		return sc.Background.Color(ray.Direction), nil
	}

	m, err := sc.Materials.Lookup(hit.Material, hit.Hitable)
	if err != nil {
		return core.Vec3{}, err
	}

	scatter, didScatter := pt.scatter(m, ray, hit, sc, sampler)
	if !didScatter {
		return core.Vec3{}, nil
	}

	incoming, err := pt.Trace(scatter.Scattered, sc, depth+1, sampler)
	if err != nil {
		return core.Vec3{}, err
	}
	return scatter.Attenuation.MultiplyVec(incoming), nil
}

// scatter dispatches to ScatterSurface when the material needs the primitive it landed on
func (pt *PathTracingIntegrator) scatter(m material.Material, ray core.Ray, hit core.HitRecord, sc *scene.Scene, sampler core.Sampler) (material.ScatterResult, bool) {
	if surfaceMaterial, ok := m.(material.SurfaceMaterial); ok {
		if h, exists := sc.Hitables.Get(hit.Hitable); exists {
			if surface, isSurface := h.(material.Surface); isSurface {
				return surfaceMaterial.ScatterSurface(ray, hit, surface, sampler)
			}
		}
	}
	return m.Scatter(ray, hit, sampler)
}
