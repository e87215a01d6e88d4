package integrator

import (
	"github.com/df07/go-cpu-pathtracer/pkg/core"
	"github.com/df07/go-cpu-pathtracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along a primary ray.
	// A non-nil error is a scene configuration fault and invalidates the frame.
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) (core.Vec3, error)
}
