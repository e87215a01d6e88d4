package geometry

import (
	"math"

	"github.com/df07/go-cpu-pathtracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3 // A point on the plane
	Normal   core.Vec3 // Unit normal
	Material core.MaterialID
	id       core.HitableID
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material core.MaterialID) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel rays and degenerate directions never intersect
	if math.Abs(denominator) < 1e-8 {
		return core.HitRecord{}, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= tMin || t >= tMax {
		return core.HitRecord{}, false
	}

	return core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   p.Normal,
		Material: p.Material,
		Hitable:  p.id,
	}, true
}

// QuickHit reports whether the ray's line crosses the plane
func (p *Plane) QuickHit(ray core.Ray) bool {
	return math.Abs(ray.Direction.Dot(p.Normal)) >= 1e-8
}

// ID returns the plane's registry handle
func (p *Plane) ID() core.HitableID { return p.id }

// SetID assigns the plane's registry handle
func (p *Plane) SetID(id core.HitableID) { p.id = id }

// MaterialID returns the material handle bound to the plane
func (p *Plane) MaterialID() core.MaterialID { return p.Material }

// Centroid returns the plane's anchor point
func (p *Plane) Centroid() core.Vec3 { return p.Point }
