package scene

import (
	"math"

	"github.com/df07/go-cpu-pathtracer/pkg/core"
	"github.com/df07/go-cpu-pathtracer/pkg/geometry"
	"github.com/df07/go-cpu-pathtracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to linear RGB clamped to [0, 1].
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to cubed LMS
	lc := cube(l + 0.3963377774*a + 0.2158037573*b)
	mc := cube(l - 0.1055613458*a - 0.0638541728*b)
	sc := cube(l - 0.0894841775*a - 1.2914855480*b)

	return core.NewVec3(
		+4.0767416621*lc-3.3077115913*mc+0.2309699292*sc,
		-1.2684380046*lc+2.6097574011*mc-0.3413193965*sc,
		-0.0041960863*lc-0.7034186147*mc+1.7076147010*sc,
	).Clamp(0, 1)
}

func cube(v float64) float64 {
	return v * v * v
}

// NewSphereGridScene creates a grid of metal spheres on a plane. Hue varies
// along X and chroma along Z; each row of the grid is a nested list.
func NewSphereGridScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := NewScene()
	s.CameraConfig = applyCameraOverrides(geometry.CameraConfig{
		Center:      core.NewVec3(0, 5, 9),
		LookAt:      core.NewVec3(0, 0.3, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 2.0,
	}, cameraOverrides)

	ground := s.MustAddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	s.MustAdd(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground))

	const (
		gridSize      = 8
		extent        = 6.0
		baseLightness = 0.65
		minChroma     = 0.05
		maxChroma     = 0.25
	)
	spacing := extent / float64(gridSize-1)
	radius := spacing * 0.35

	for i := 0; i < gridSize; i++ {
		row := geometry.NewList(s.Hitables)
		for j := 0; j < gridSize; j++ {
			hue := float64(i) / float64(gridSize-1) * 360.0
			chroma := minChroma + float64(j)/float64(gridSize-1)*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)
			fuzz := 0.05 + 0.05*float64((i+j)%3)

			metal := s.MustAddMaterial(material.NewMetal(oklchToRGB(lightness, chroma, hue), fuzz))
			center := core.NewVec3(float64(i)*spacing-extent/2, radius, float64(j)*spacing-extent/2)
			id, err := s.Register(geometry.NewSphere(center, radius, metal))
			if err != nil {
				panic(err)
			}
			if err := row.Append(id); err != nil {
				panic(err)
			}
		}
		s.MustAdd(row)
	}

	return s
}
