package core

// Logger is the leveled logger the renderer writes to.
// *logging.Logger from github.com/op/go-logging satisfies it.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Noticef(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// MaterialID is a stable handle into a material registry. NoMaterial (0) means absent.
type MaterialID uint32

// HitableID is a stable handle into a hitable registry. NoHitable (0) means absent.
type HitableID uint32

const (
	NoMaterial MaterialID = 0
	NoHitable  HitableID  = 0
)

// HitRecord contains information about a ray-object intersection.
// It is only meaningful when the intersection routine that produced it reported a hit.
type HitRecord struct {
	T        float64    // Parameter t along the ray
	Point    Vec3       // Point of intersection
	Normal   Vec3       // Outward surface normal (inward for negative-radius spheres)
	Material MaterialID // Material of the hit object
	Hitable  HitableID  // Object that produced the hit
}
