package material

import (
	"github.com/df07/go-cpu-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// Lambertian surfaces always scatter.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, diffuseDirection(hit.Normal, sampler)),
		Attenuation: l.Albedo,
	}, true
}

// diffuseDirection offsets the normal by a random point in the unit sphere,
// approximating cosine-weighted reflection
func diffuseDirection(normal core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := normal.Add(core.RandomInUnitSphere(sampler))
	// Catch degenerate scatter direction
	if direction.NearZero() {
		return normal
	}
	return direction
}
