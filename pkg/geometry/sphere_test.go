package geometry

import (
	"math"
	"testing"

	gmath "grinder/pkg/math"
	"grinder/pkg/shading"
)

func TestSphereIntersectThroughCenter(t *testing.T) {
	s := NewSphere(gmath.Identity(), shading.DefaultMaterial())
	r := gmath.Ray{Origin: gmath.Point3D{X: 0, Y: 0, Z: -5}, Direction: gmath.Vector3D{X: 0, Y: 0, Z: 1}}
	hit, ok := s.LocalIntersect(r)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("T = %v, want 4.0", hit.T)
	}
}

func TestSphereIntersectFromInside(t *testing.T) {
	s := NewSphere(gmath.Identity(), shading.DefaultMaterial())
	r := gmath.Ray{Origin: gmath.Point3D{X: 0, Y: 0, Z: 0}, Direction: gmath.Vector3D{X: 0, Y: 0, Z: 1}}
	hit, ok := s.LocalIntersect(r)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("T = %v, want 1.0 (the farther root)", hit.T)
	}
}

func TestSphereMiss(t *testing.T) {
	s := NewSphere(gmath.Identity(), shading.DefaultMaterial())
	r := gmath.Ray{Origin: gmath.Point3D{X: 0, Y: 2, Z: -5}, Direction: gmath.Vector3D{X: 0, Y: 0, Z: 1}}
	if _, ok := s.LocalIntersect(r); ok {
		t.Error("expected a miss")
	}
}

func TestSphereNormalAtAxisPoint(t *testing.T) {
	s := NewSphere(gmath.Identity(), shading.DefaultMaterial())
	n := s.LocalNormal(gmath.Point3D{X: 1, Y: 0, Z: 0}, Intersection{})
	want := gmath.Vector3D{X: 1, Y: 0, Z: 0}
	if n != want {
		t.Errorf("normal = %v, want %v", n, want)
	}
}

func TestWorldNormalOnTransformedSphere(t *testing.T) {
	s := NewSphere(gmath.Translate(0, 1, 0), shading.DefaultMaterial())
	n := WorldNormal(s, gmath.Point3D{X: 0, Y: 1.70711, Z: -0.70711}, Intersection{Object: s})
	if math.Abs(n.X) > 1e-4 || math.Abs(n.Y-0.70711) > 1e-4 || math.Abs(n.Z+0.70711) > 1e-4 {
		t.Errorf("world normal = %v", n)
	}
}
