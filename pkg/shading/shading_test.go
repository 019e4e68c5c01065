package shading

import (
	"math"
	"testing"

	"grinder/pkg/color"
	gmath "grinder/pkg/math"
)

func approxColor(a, b color.Color) bool {
	const eps = 1e-4
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps && math.Abs(a.B-b.B) < eps
}

func TestLightingEyeBetweenLightAndSurface(t *testing.T) {
	m := DefaultMaterial()
	point := gmath.Point3D{X: 0, Y: 0, Z: 0}
	eye := gmath.Vector3D{X: 0, Y: 0, Z: -1}
	normal := gmath.Vector3D{X: 0, Y: 0, Z: -1}
	light := NewPointLight(gmath.Point3D{X: 0, Y: 0, Z: -10}, color.White, AttenuationNone)
	rng := gmath.NewXorShift32(1)

	samples := light.SamplesFrom(point, rng)
	result := Lighting(m, point, eye, normal, samples[0], 1.0)

	want := color.Color{R: 1.9, G: 1.9, B: 1.9}
	if !approxColor(result, want) {
		t.Errorf("Lighting = %v, want %v", result, want)
	}
}

func TestLightingSurfaceInShadow(t *testing.T) {
	m := DefaultMaterial()
	point := gmath.Point3D{X: 0, Y: 0, Z: 0}
	eye := gmath.Vector3D{X: 0, Y: 0, Z: -1}
	normal := gmath.Vector3D{X: 0, Y: 0, Z: -1}
	light := NewPointLight(gmath.Point3D{X: 0, Y: 0, Z: -10}, color.White, AttenuationNone)
	rng := gmath.NewXorShift32(1)

	samples := light.SamplesFrom(point, rng)
	result := Lighting(m, point, eye, normal, samples[0], 0.0)

	want := color.Color{R: 0.1, G: 0.1, B: 0.1}
	if !approxColor(result, want) {
		t.Errorf("Lighting in shadow = %v, want %v", result, want)
	}
}

func TestSchlickAtNormalIncidenceVacuumToGlass(t *testing.T) {
	r := Schlick(1.0, 1.0, 1.5)
	if math.Abs(r-0.04) > 0.005 {
		t.Errorf("Schlick at normal incidence = %v, want ~0.04", r)
	}
}

func TestSchlickTotalInternalReflection(t *testing.T) {
	r := Schlick(0.0, 1.5, 1.0)
	if r != 1.0 {
		t.Errorf("Schlick at grazing dense->sparse = %v, want 1.0 (TIR)", r)
	}
}

func TestDirectionalLightIsUnattenuated(t *testing.T) {
	light := NewDirectionalLight(gmath.Vector3D{X: 0, Y: -1, Z: 0}, color.White)
	samples := light.SamplesFrom(gmath.Point3D{X: 0, Y: 0, Z: 0}, gmath.NewXorShift32(1))
	if len(samples) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(samples))
	}
	if samples[0].Intensity != color.White {
		t.Errorf("directional attenuation should be a no-op, got %v", samples[0].Intensity)
	}
	if !math.IsInf(samples[0].Distance, 1) {
		t.Errorf("directional light distance should be +Inf, got %v", samples[0].Distance)
	}
}

func TestAreaLightSampleCountAndIntensitySum(t *testing.T) {
	light := NewAreaLight(
		gmath.Point3D{X: -0.5, Y: 1, Z: -0.5},
		gmath.Vector3D{X: 1, Y: 0, Z: 0},
		gmath.Vector3D{X: 0, Y: 0, Z: 1},
		2, 2, 1, color.White, AttenuationNone,
	)
	samples := light.SamplesFrom(gmath.Point3D{X: 0, Y: 0, Z: 0}, gmath.NewXorShift32(1))
	if len(samples) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(samples))
	}
	var sum float64
	for _, s := range samples {
		sum += s.Intensity.R
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("area light sample intensities should sum to base intensity, got %v", sum)
	}
}
