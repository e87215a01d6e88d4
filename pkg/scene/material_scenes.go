package scene

import (
	"github.com/df07/go-cpu-pathtracer/pkg/core"
	"github.com/df07/go-cpu-pathtracer/pkg/geometry"
	"github.com/df07/go-cpu-pathtracer/pkg/material"
)

// NewMaterialsScene places one sphere of each material kind side by side:
// hollow glass on the left, matte in the middle, brushed gold on the right.
func NewMaterialsScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := NewScene()
	s.CameraConfig = applyCameraOverrides(geometry.CameraConfig{
		Center:      core.NewVec3(-2, 2, 1),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        30,
		AspectRatio: 2.0,
	}, cameraOverrides)

	ground := s.MustAddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))
	matte := s.MustAddMaterial(material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	glass := s.MustAddMaterial(material.NewDielectric(1.5))
	gold := s.MustAddMaterial(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3))

	s.MustAdd(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground))
	s.MustAdd(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, matte))
	s.MustAdd(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass))
	// Negative radius flips the normals inward, turning the pair into a thin glass shell
	s.MustAdd(geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass))
	s.MustAdd(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold))

	return s
}

// NewGlassScene shows refraction and total internal reflection: a solid glass
// sphere, a hollow glass sphere with a matte core, and a water droplet.
func NewGlassScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := NewScene()
	s.CameraConfig = applyCameraOverrides(geometry.CameraConfig{
		Center:      core.NewVec3(0, 0.75, 2),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 2.0,
	}, cameraOverrides)

	ground := s.MustAddMaterial(material.NewLambertian(core.NewVec3(0.48, 0.48, 0.48)))
	glass := s.MustAddMaterial(material.NewDielectric(1.5))
	water := s.MustAddMaterial(material.NewDielectric(1.33))
	inner := s.MustAddMaterial(material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2)))

	s.MustAdd(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground))
	s.MustAdd(geometry.NewSphere(core.NewVec3(-0.8, 0, -1), 0.5, glass))

	s.MustAdd(geometry.NewSphere(core.NewVec3(0.4, 0, -1.2), 0.5, glass))
	s.MustAdd(geometry.NewSphere(core.NewVec3(0.4, 0, -1.2), -0.47, glass))
	s.MustAdd(geometry.NewSphere(core.NewVec3(0.4, 0, -1.2), 0.3, inner))

	s.MustAdd(geometry.NewSphere(core.NewVec3(0.2, -0.35, -0.4), 0.15, water))

	return s
}

// NewCheckerScene puts a checkerboard sphere on a flat plane between two mirrors
func NewCheckerScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := NewScene()
	s.CameraConfig = applyCameraOverrides(geometry.CameraConfig{
		Center:      core.NewVec3(0, 1, 2.5),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        35,
		AspectRatio: 2.0,
	}, cameraOverrides)

	floor := s.MustAddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	checker := s.MustAddMaterial(material.NewCheckerboard(
		core.NewVec3(0.9, 0.9, 0.9),
		core.NewVec3(0.2, 0.3, 0.1),
		10,
	))
	mirror := s.MustAddMaterial(material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0))

	s.MustAdd(geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), floor))
	s.MustAdd(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, checker))
	s.MustAdd(geometry.NewSphere(core.NewVec3(-1.2, 0, -1.5), 0.5, mirror))
	s.MustAdd(geometry.NewSphere(core.NewVec3(1.2, 0, -1.5), 0.5, mirror))

	return s
}

// NewMirrorsScene arranges metal spheres of increasing roughness in a nested
// list, exercising composite hitables inside the world.
func NewMirrorsScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := NewScene()
	s.CameraConfig = applyCameraOverrides(geometry.CameraConfig{
		Center:      core.NewVec3(0, 1.5, 3),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        45,
		AspectRatio: 2.0,
	}, cameraOverrides)

	ground := s.MustAddMaterial(material.NewLambertian(core.NewVec3(0.4, 0.5, 0.4)))
	s.MustAdd(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground))

	row := geometry.NewList(s.Hitables)
	const count = 5
	for i := 0; i < count; i++ {
		fuzz := float64(i) / float64(count-1)
		tint := core.NewVec3(0.9, 0.9-0.1*float64(i), 0.5+0.1*float64(i))
		id := s.MustAddMaterial(material.NewMetal(tint, fuzz))
		x := -2.0 + float64(i)
		member, err := s.Register(geometry.NewSphere(core.NewVec3(x, 0, -1.5), 0.45, id))
		if err != nil {
			panic(err)
		}
		if err := row.Append(member); err != nil {
			panic(err)
		}
	}
	s.MustAdd(row)

	return s
}
