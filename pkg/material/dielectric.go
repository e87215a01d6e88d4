package material

import (
	"math"

	"github.com/df07/go-cpu-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering.
// Glass never absorbs and never tints.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)
	unitDirection := rayIn.Direction.Normalize()

	// Matched indices mean there is no optical interface
	if d.RefractiveIndex == 1.0 {
		return ScatterResult{
			Scattered:   core.NewRay(hit.Point, unitDirection),
			Attenuation: attenuation,
		}, true
	}

	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	if unitDirection.Dot(hit.Normal) > 0 {
		// Exiting the material
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = unitDirection.Dot(hit.Normal)
	} else {
		// Entering the material
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -unitDirection.Dot(hit.Normal)
	}

	refracted, canRefract := core.Refract(unitDirection, outwardNormal, niOverNt)

	var direction core.Vec3
	if !canRefract {
		// Total internal reflection
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		if niOverNt > 1.0 {
			cosine = transmittedCosine(cosine, niOverNt)
		}
		if Reflectance(cosine, d.RefractiveIndex) > sampler.Get1D() {
			direction = core.Reflect(unitDirection, hit.Normal)
		} else {
			direction = refracted
		}
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}

// transmittedCosine returns the cosine of the refracted angle for a ray leaving
// the material. Schlick's approximation takes the angle on the less dense side,
// which is the transmitted ray when exiting. The index-scaled incident cosine
// can exceed 1, which pushes the reflectance below its normal-incidence value.
func transmittedCosine(cosine, niOverNt float64) float64 {
	return math.Sqrt(1.0 - niOverNt*niOverNt*(1.0-cosine*cosine))
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
