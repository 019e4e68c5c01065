package world

import (
	"math"
	"testing"

	"grinder/pkg/color"
	"grinder/pkg/geometry"
	gmath "grinder/pkg/math"
	"grinder/pkg/pattern"
	"grinder/pkg/shading"
)

func defaultWorld() *World {
	w := New()
	outer := geometry.NewSphere(gmath.Identity(), shading.DefaultMaterial())
	outerMat := outer.ShapeMaterial()
	outerMat.Color = pattern.NewUniform(color.New(0.8, 1.0, 0.6))
	outerMat.Diffuse = pattern.NewUniform(color.New(0.7, 0.7, 0.7))
	outerMat.Specular = pattern.NewUniform(color.New(0.2, 0.2, 0.2))
	outer.SetShapeMaterial(outerMat)

	inner := geometry.NewSphere(gmath.Scaling(0.5, 0.5, 0.5), shading.DefaultMaterial())

	w.AddObject(outer)
	w.AddObject(inner)
	w.AddLight(shading.NewPointLight(gmath.Point3D{X: -10, Y: 10, Z: -10}, color.White, shading.AttenuationNone))
	return w
}

func TestIntersectFindsNearestHitAcrossObjects(t *testing.T) {
	w := defaultWorld()
	r := gmath.Ray{Origin: gmath.Point3D{X: 0, Y: 0, Z: -5}, Direction: gmath.Vector3D{X: 0, Y: 0, Z: 1}}
	hit, ok := w.Intersect(r)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("T = %v, want 4.0 (the outer sphere's near face)", hit.T)
	}
}

func TestShadeHitOnOuterSphereFromOutside(t *testing.T) {
	w := defaultWorld()
	r := gmath.Ray{Origin: gmath.Point3D{X: 0, Y: 0, Z: -5}, Direction: gmath.Vector3D{X: 0, Y: 0, Z: 1}}
	intersection, ok := w.Intersect(r)
	if !ok {
		t.Fatal("expected a hit")
	}
	hit := geometry.PrepareHit(r, intersection)
	rng := gmath.NewXorShift32(1)
	c := ShadeHit(w, hit, MaxRecursionDepth, rng)

	want := color.Color{R: 0.38066, G: 0.47583, B: 0.2855}
	if math.Abs(c.R-want.R) > 1e-3 || math.Abs(c.G-want.G) > 1e-3 || math.Abs(c.B-want.B) > 1e-3 {
		t.Errorf("shaded color = %v, want approximately %v", c, want)
	}
}

func TestColorAtRayMisses(t *testing.T) {
	w := defaultWorld()
	r := gmath.Ray{Origin: gmath.Point3D{X: 0, Y: 0, Z: -5}, Direction: gmath.Vector3D{X: 0, Y: 1, Z: 0}}
	c := ColorAt(w, r, MaxRecursionDepth, gmath.NewXorShift32(1))
	if c != color.Black {
		t.Errorf("expected black for a ray that escapes the scene, got %v", c)
	}
}

func TestShadowedPointHasNoDiffuseOrSpecular(t *testing.T) {
	w := New()
	w.AddLight(shading.NewPointLight(gmath.Point3D{X: 0, Y: 0, Z: -10}, color.White, shading.AttenuationNone))
	s1 := geometry.NewSphere(gmath.Identity(), shading.DefaultMaterial())
	s2 := geometry.NewSphere(gmath.Translate(0, 0, 10), shading.DefaultMaterial())
	w.AddObject(s1)
	w.AddObject(s2)

	r := gmath.Ray{Origin: gmath.Point3D{X: 0, Y: 0, Z: 5}, Direction: gmath.Vector3D{X: 0, Y: 0, Z: 1}}
	intersection := geometry.Intersection{T: 4, Object: s2}
	hit := geometry.PrepareHit(r, intersection)

	c := ShadeHit(w, hit, MaxRecursionDepth, gmath.NewXorShift32(1))
	want := color.Color{R: 0.1, G: 0.1, B: 0.1}
	if math.Abs(c.R-want.R) > 1e-4 {
		t.Errorf("shaded color in shadow = %v, want %v (ambient only)", c, want)
	}
}

func TestReflectedColorForNonReflectiveMaterialIsBlack(t *testing.T) {
	w := defaultWorld()
	r := gmath.Ray{Origin: gmath.Point3D{X: 0, Y: 0, Z: 0}, Direction: gmath.Vector3D{X: 0, Y: 0, Z: 1}}
	intersection := geometry.Intersection{T: 1, Object: w.Objects()[1]}
	hit := geometry.PrepareHit(r, intersection)

	c := ReflectedColor(w, hit, MaxRecursionDepth, gmath.NewXorShift32(1))
	if c != color.Black {
		t.Errorf("expected black reflected color for a matte surface, got %v", c)
	}
}

func TestRefractedColorAtMaxDepthIsBlack(t *testing.T) {
	w := defaultWorld()
	outer := w.Objects()[0]
	m := outer.ShapeMaterial()
	m.Transparency = pattern.NewUniform(color.New(1, 1, 1))
	m.RefractiveIndex = 1.5
	outer.SetShapeMaterial(m)

	r := gmath.Ray{Origin: gmath.Point3D{X: 0, Y: 0, Z: -5}, Direction: gmath.Vector3D{X: 0, Y: 0, Z: 1}}
	intersection := geometry.Intersection{T: 4, Object: outer}
	hit := geometry.PrepareHit(r, intersection)

	c := RefractedColor(w, hit, 0, gmath.NewXorShift32(1))
	if c != color.Black {
		t.Errorf("expected black refracted color at remaining=0, got %v", c)
	}
}
