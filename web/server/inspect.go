package server

import (
	"math"
	"net/http"

	"github.com/df07/go-cpu-pathtracer/pkg/core"
	"github.com/df07/go-cpu-pathtracer/pkg/geometry"
	"github.com/df07/go-cpu-pathtracer/pkg/integrator"
	"github.com/df07/go-cpu-pathtracer/pkg/material"
	"github.com/df07/go-cpu-pathtracer/pkg/scene"
	"github.com/labstack/echo/v4"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	HitableID    uint32                 `json:"hitableId,omitempty"`
	MaterialID   uint32                 `json:"materialId,omitempty"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// handleInspect reports what the unjittered ray through a pixel center hits
func (s *Server) handleInspect(c echo.Context) error {
	req, err := parseFrameRequest(c)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}
	pixelX, err := parseIntParam(c, "x", 0, 0, req.Width-1)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}
	pixelY, err := parseIntParam(c, "y", 0, 0, req.Height-1)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}

	sceneObj, err := scene.NewSceneByName(req.Scene)
	if err != nil {
		return errorJSON(c, http.StatusNotFound, err)
	}
	camera := geometry.NewCamera()
	if !req.Fixed {
		if camera, err = sceneObj.NewCamera(req.Width, req.Height); err != nil {
			return errorJSON(c, http.StatusBadRequest, err)
		}
	}

	return c.JSON(http.StatusOK, inspectPixel(sceneObj, camera, req.Width, req.Height, pixelX, pixelY))
}

// inspectPixel casts the center ray of pixel (x, y); row 0 is the top of the image
func inspectPixel(sceneObj *scene.Scene, camera *geometry.Camera, width, height, x, y int) InspectResponse {
	u := (float64(x) + 0.5) / float64(width)
	v := (float64(height-1-y) + 0.5) / float64(height)
	ray := camera.GetRay(u, v)

	hit, isHit := sceneObj.Hit(ray, integrator.DefaultTMin, math.Inf(1))
	if !isHit {
		return InspectResponse{Hit: false}
	}

	response := InspectResponse{
		Hit:        true,
		HitableID:  uint32(hit.Hitable),
		MaterialID: uint32(hit.Material),
		Point:      [3]float64{hit.Point.X, hit.Point.Y, hit.Point.Z},
		Normal:     [3]float64{hit.Normal.X, hit.Normal.Y, hit.Normal.Z},
		Distance:   hit.T * ray.Direction.Length(),
		Properties: make(map[string]interface{}),
	}

	if m, ok := sceneObj.Materials.Get(hit.Material); ok {
		response.MaterialType = describeMaterial(m, response.Properties)
	}
	if h, ok := sceneObj.Hitables.Get(hit.Hitable); ok {
		response.GeometryType = describeGeometry(h, response.Properties)
	}
	return response
}

// describeMaterial names a material and records its parameters
func describeMaterial(m material.Material, properties map[string]interface{}) string {
	switch mat := m.(type) {
	case *material.Lambertian:
		properties["albedo"] = vecArray(mat.Albedo)
		return "lambertian"
	case *material.Metal:
		properties["albedo"] = vecArray(mat.Albedo)
		properties["fuzz"] = mat.Fuzz
		return "metal"
	case *material.Dielectric:
		properties["refractiveIndex"] = mat.RefractiveIndex
		return "dielectric"
	case *material.Checkerboard:
		properties["even"] = vecArray(mat.Even)
		properties["odd"] = vecArray(mat.Odd)
		properties["divisions"] = mat.Divisions
		return "checkerboard"
	case *material.Background:
		return "background"
	default:
		return "unknown"
	}
}

// describeGeometry names a primitive and records its parameters
func describeGeometry(h geometry.Hitable, properties map[string]interface{}) string {
	switch geom := h.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere"
	case *geometry.Plane:
		properties["point"] = vecArray(geom.Point)
		properties["planeNormal"] = vecArray(geom.Normal)
		return "plane"
	default:
		return "unknown"
	}
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
