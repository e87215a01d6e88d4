package material

import (
	"github.com/df07/go-cpu-pathtracer/pkg/core"
)

// Background is the sky seen by rays that miss every object.
// As a surface material it never scatters.
type Background struct {
	Bottom core.Vec3 // Color looking straight down
	Top    core.Vec3 // Color looking straight up
}

// NewBackground creates a vertical gradient background
func NewBackground(bottom, top core.Vec3) *Background {
	return &Background{Bottom: bottom, Top: top}
}

// NewSkyBackground creates the default white-to-sky-blue gradient
func NewSkyBackground() *Background {
	return NewBackground(core.NewVec3(1.0, 1.0, 1.0), core.NewVec3(0.5, 0.7, 1.0))
}

// Scatter implements the Material interface. Background surfaces absorb every ray.
func (b *Background) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Color returns the gradient for a ray direction: (1-t)*Bottom + t*Top with t = 0.5*(y+1)
func (b *Background) Color(direction core.Vec3) core.Vec3 {
	t := 0.5 * (direction.Normalize().Y + 1.0)
	return b.Bottom.Lerp(b.Top, t)
}
