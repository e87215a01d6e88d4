package scene

import (
	"github.com/df07/go-cpu-pathtracer/pkg/core"
	"github.com/df07/go-cpu-pathtracer/pkg/geometry"
	"github.com/df07/go-cpu-pathtracer/pkg/material"
)

// NewDefaultScene creates the reference scene: a matte red sphere resting on a
// large ground sphere, viewed through the fixed frustum camera.
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := NewScene()
	s.CameraConfig = applyCameraOverrides(geometry.DefaultCameraConfig(), cameraOverrides)

	red := s.MustAddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3)))
	ground := s.MustAddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))

	s.MustAdd(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, red))
	s.MustAdd(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground))

	return s
}

// applyCameraOverrides merges the first override, if any, into defaults
func applyCameraOverrides(defaults geometry.CameraConfig, overrides []geometry.CameraConfig) geometry.CameraConfig {
	if len(overrides) > 0 {
		return geometry.MergeCameraConfig(defaults, overrides[0])
	}
	return defaults
}
