package core

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{"Unit X", NewVec3(3, 0, 0), NewVec3(1, 0, 0)},
		{"Diagonal", NewVec3(1, 1, 0), NewVec3(1/math.Sqrt2, 1/math.Sqrt2, 0)},
		{"Zero vector stays zero", NewVec3(0, 0, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()
			if !result.IsFinite() {
				t.Fatalf("Normalize produced non-finite vector %v", result)
			}
			const tolerance = 1e-12
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestReflect(t *testing.T) {
	// 45 degree incidence onto a floor reflects upward
	incoming := NewVec3(1, -1, 0)
	normal := NewVec3(0, 1, 0)

	reflected := Reflect(incoming, normal)
	expected := NewVec3(1, 1, 0)
	if !reflected.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, reflected)
	}
}

func TestRefract_MatchedIndexPassesThrough(t *testing.T) {
	incoming := NewVec3(0.3, -1, 0.2)
	normal := NewVec3(0, 1, 0)

	refracted, ok := Refract(incoming, normal, 1.0)
	if !ok {
		t.Fatal("Expected refraction with matched indices")
	}

	const tolerance = 1e-12
	if refracted.Subtract(incoming.Normalize()).Length() > tolerance {
		t.Errorf("Expected direction %v to be unchanged, got %v", incoming.Normalize(), refracted)
	}
}

func TestRefract_TotalInternalReflection(t *testing.T) {
	// Grazing ray leaving glass (n=1.5) into air cannot refract
	incoming := NewVec3(1, -0.1, 0)
	normal := NewVec3(0, 1, 0)

	if _, ok := Refract(incoming, normal, 1.5); ok {
		t.Error("Expected total internal reflection")
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))
	point := ray.At(1.5)
	if !point.Equals(NewVec3(1, 2, 0)) {
		t.Errorf("Expected (1,2,0), got %v", point)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	if !v.Equals(NewVec3(0, 0.5, 1)) {
		t.Errorf("Expected (0,0.5,1), got %v", v)
	}
}
