package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-cpu-pathtracer/pkg/core"
)

func TestDielectric_BasicBehavior(t *testing.T) {
	glass := NewDielectric(1.5)

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0)) // 45-degree angle
	hit := core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
		T:      1.0,
	}

	hasReflection := false
	hasRefraction := false
	for seed := int64(0); seed < 1000; seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		result, scattered := glass.Scatter(ray, hit, sampler)
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		if !result.Attenuation.Equals(core.NewVec3(1, 1, 1)) {
			t.Fatalf("Expected white attenuation, got %v", result.Attenuation)
		}

		if result.Scattered.Direction.Y > 0 {
			hasReflection = true
		} else {
			hasRefraction = true
		}
	}

	if !hasRefraction {
		t.Error("Expected to see refraction in at least some cases")
	}
	// Reflection probability at 45 degrees is ~5%, 1000 draws make a miss vanishingly unlikely
	if !hasReflection {
		t.Error("Expected to see reflection in at least some cases")
	}
}

func TestDielectric_TotalInternalReflectionAlwaysReflects(t *testing.T) {
	glass := NewDielectric(1.5)

	// Ray inside the glass heading out at a shallow angle; the outward normal points up
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0.1, 0))
	hit := core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
	}

	sinTheta := math.Sqrt(1 - math.Pow(ray.Direction.Normalize().Y, 2))
	if 1.5*sinTheta <= 1.0 {
		t.Fatal("Test setup should produce total internal reflection")
	}

	expected := core.Reflect(ray.Direction.Normalize(), hit.Normal)
	for seed := int64(0); seed < 100; seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		result, scattered := glass.Scatter(ray, hit, sampler)
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		if result.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
			t.Fatalf("Seed %d: expected reflection %v, got %v", seed, expected, result.Scattered.Direction)
		}
	}
}

func TestDielectric_MatchedIndexKeepsDirection(t *testing.T) {
	medium := NewDielectric(1.0)

	directions := []core.Vec3{
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0.99, -0.01, 0.1), // grazing
		core.NewVec3(0.3, 0.7, -0.2),   // exiting
	}
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}

	for _, direction := range directions {
		for seed := int64(0); seed < 50; seed++ {
			sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
			result, _ := medium.Scatter(core.NewRay(core.NewVec3(0, 1, 0), direction), hit, sampler)
			got := result.Scattered.Direction.Normalize()
			if got.Subtract(direction.Normalize()).Length() > 1e-12 {
				t.Fatalf("Direction %v changed to %v", direction.Normalize(), got)
			}
		}
	}
}

func TestReflectance(t *testing.T) {
	// Normal incidence on glass reflects ((1-1.5)/(1+1.5))^2 = 4%
	if r := Reflectance(1.0, 1.5); math.Abs(r-0.04) > 1e-12 {
		t.Errorf("Expected 0.04 at normal incidence, got %f", r)
	}
	// Grazing incidence reflects everything
	if r := Reflectance(0.0, 1.5); math.Abs(r-1.0) > 1e-12 {
		t.Errorf("Expected 1.0 at grazing incidence, got %f", r)
	}
}

func TestDielectric_ExitUsesTransmittedCosine(t *testing.T) {
	const index = 1.5
	incident := 0.9

	got := transmittedCosine(incident, index)
	want := math.Sqrt(1.0 - index*index*(1.0-incident*incident))
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("transmittedCosine(%v, %v) = %v, want %v", incident, index, got, want)
	}
	if got < 0 || got > 1 {
		t.Errorf("Transmitted cosine %v is outside [0, 1]", got)
	}

	// The index-scaled incident cosine overshoots 1 and drives reflectance below r0
	scaled := index * incident
	r0 := Reflectance(1, index)
	if Reflectance(scaled, index) >= r0 {
		t.Fatalf("Expected the scaled cosine %v to undershoot r0", scaled)
	}
	if Reflectance(got, index) < r0 {
		t.Errorf("Exit reflectance %v should not drop below r0 %v", Reflectance(got, index), r0)
	}
}
