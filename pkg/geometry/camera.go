package geometry

import (
	"errors"
	"math"

	"github.com/df07/go-cpu-pathtracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrDegenerateCamera is returned when a camera configuration cannot span an image plane
var ErrDegenerateCamera = errors.New("geometry: degenerate camera configuration")

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center      core.Vec3 // Camera position
	LookAt      core.Vec3 // Point the camera is looking at
	Up          core.Vec3 // Up direction (usually 0,1,0)
	VFov        float64   // Vertical field of view in degrees
	AspectRatio float64   // Viewport width / height
}

// DefaultCameraConfig returns a look-at configuration that frames the same view
// as the fixed camera: origin at 0, looking down -Z, 90 degree vertical FOV, 2:1 aspect.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 2.0,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	zero := core.Vec3{}
	if override.Center != zero {
		result.Center = override.Center
	}
	if override.LookAt != zero {
		result.LookAt = override.LookAt
	}
	if override.Up != zero {
		result.Up = override.Up
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	return result
}

// Camera generates primary rays through a rectangular image plane
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates the fixed frustum camera: origin at 0, lower-left image corner
// at (-2,-1,-1), horizontal extent 4 and vertical extent 2.
func NewCamera() *Camera {
	return &Camera{
		origin:          core.NewVec3(0, 0, 0),
		lowerLeftCorner: core.NewVec3(-2, -1, -1),
		horizontal:      core.NewVec3(4, 0, 0),
		vertical:        core.NewVec3(0, 2, 0),
	}
}

// NewLookAtCamera creates a camera at config.Center aimed at config.LookAt
func NewLookAtCamera(config CameraConfig) (*Camera, error) {
	if !(config.VFov > 0 && config.VFov < 180) || !(config.AspectRatio > 0) {
		return nil, ErrDegenerateCamera
	}
	eye := toMgl(config.Center)
	target := toMgl(config.LookAt)
	up := toMgl(config.Up)
	forward := target.Sub(eye)
	if forward.Len() == 0 || up.Len() == 0 || forward.Cross(up).Len() == 0 {
		return nil, ErrDegenerateCamera
	}

	// Rows of the view matrix are the camera basis: right, up, and backward
	view := mgl64.LookAtV(eye, target, up)
	u := fromMgl(view.Row(0).Vec3())
	v := fromMgl(view.Row(1).Vec3())
	w := fromMgl(view.Row(2).Vec3())

	halfHeight := math.Tan(mgl64.DegToRad(config.VFov) / 2)
	viewportHeight := 2.0 * halfHeight
	viewportWidth := config.AspectRatio * viewportHeight

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}, nil
}

// GetRay generates a ray for image plane coordinates (s, t), where (0,0) is the
// lower-left corner and (1,1) the upper-right. The direction is not normalized.
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
