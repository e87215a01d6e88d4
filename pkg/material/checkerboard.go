package material

import (
	"math"

	"github.com/df07/go-cpu-pathtracer/pkg/core"
)

// Checkerboard is a diffuse material whose albedo alternates between two colors
// on a latitude/longitude grid around the hit primitive's center
type Checkerboard struct {
	Even      core.Vec3 // Color of cells whose indices sum to an even number
	Odd       core.Vec3
	Divisions int // Cells per unit of u and v
}

// NewCheckerboard creates a checkerboard with the given cell count per axis
func NewCheckerboard(even, odd core.Vec3, divisions int) *Checkerboard {
	if divisions < 1 {
		divisions = 1
	}
	return &Checkerboard{Even: even, Odd: odd, Divisions: divisions}
}

// Scatter implements the Material interface. Without a surface the even color is used.
func (c *Checkerboard) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, diffuseDirection(hit.Normal, sampler)),
		Attenuation: c.Even,
	}, true
}

// ScatterSurface implements SurfaceMaterial
func (c *Checkerboard) ScatterSurface(rayIn core.Ray, hit core.HitRecord, surface Surface, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, diffuseDirection(hit.Normal, sampler)),
		Attenuation: c.Albedo(hit.Point, surface.Centroid()),
	}, true
}

// Albedo returns the cell color at point on a surface centered at center
func (c *Checkerboard) Albedo(point, center core.Vec3) core.Vec3 {
	u, v := SphericalUV(center.Subtract(point).Normalize())
	cu := int(math.Floor(u * float64(c.Divisions)))
	cv := int(math.Floor(v * float64(c.Divisions)))
	if (cu+cv)%2 == 0 {
		return c.Even
	}
	return c.Odd
}

// SphericalUV maps a unit direction to [0,1]x[0,1] longitude/latitude coordinates
func SphericalUV(d core.Vec3) (u, v float64) {
	u = 0.5 + math.Atan2(d.Z, d.X)/(2*math.Pi)
	v = 0.5 + math.Asin(max(-1, min(1, d.Y)))/math.Pi
	return u, v
}
