package geometry

import (
	"math"

	"github.com/df07/go-cpu-pathtracer/pkg/core"
)

// Sphere represents a sphere shape. A negative radius keeps the same surface
// but flips the normals inward, which makes hollow glass shells possible.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.MaterialID
	id       core.HitableID
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.MaterialID) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// discriminant returns the quarter discriminant and the halved quadratic coefficients
func (s *Sphere) discriminant(ray core.Ray) (a, halfB, d float64) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2*halfB*t + c = 0
	a = ray.Direction.Dot(ray.Direction)
	halfB = oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	return a, halfB, halfB*halfB - a*c
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	a, halfB, discriminant := s.discriminant(ray)

	// No real roots, a tangent ray, or a zero-length direction all count as a miss.
	// The NaN check rejects non-finite inputs before they reach Sqrt.
	if !(discriminant > 0) || a == 0 {
		return core.HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		// Try the farther intersection point
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return core.HitRecord{}, false
		}
	}

	point := ray.At(root)
	return core.HitRecord{
		T:        root,
		Point:    point,
		Normal:   point.Subtract(s.Center).Multiply(1.0 / s.Radius),
		Material: s.Material,
		Hitable:  s.id,
	}, true
}

// QuickHit reports whether the ray's line crosses the sphere
func (s *Sphere) QuickHit(ray core.Ray) bool {
	_, _, discriminant := s.discriminant(ray)
	return discriminant > 0
}

// ID returns the sphere's registry handle
func (s *Sphere) ID() core.HitableID { return s.id }

// SetID assigns the sphere's registry handle
func (s *Sphere) SetID(id core.HitableID) { s.id = id }

// MaterialID returns the material handle bound to the sphere
func (s *Sphere) MaterialID() core.MaterialID { return s.Material }

// Centroid returns the sphere center, used by position-dependent materials
func (s *Sphere) Centroid() core.Vec3 { return s.Center }
