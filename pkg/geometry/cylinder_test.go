package geometry

import (
	"math"
	"testing"

	gmath "grinder/pkg/math"
	"grinder/pkg/shading"
)

func normalizeV(x, y, z float64) gmath.Vector3D {
	return gmath.Vector3D{X: x, Y: y, Z: z}.Normalize()
}

func TestCylinderRayMissesSide(t *testing.T) {
	c := NewCylinder(gmath.Identity(), shading.DefaultMaterial(), false)
	cases := []gmath.Ray{
		{Origin: gmath.Point3D{X: 1, Y: 0, Z: 0}, Direction: normalizeV(0, 1, 0)},
		{Origin: gmath.Point3D{X: 0, Y: 0, Z: 0}, Direction: normalizeV(0, 1, 0)},
		{Origin: gmath.Point3D{X: 0, Y: 0, Z: -5}, Direction: normalizeV(1, 1, 1)},
	}
	for _, r := range cases {
		if _, ok := c.LocalIntersect(r); ok {
			t.Errorf("ray %v should miss the open cylinder", r)
		}
	}
}

func TestCylinderRayHitsSide(t *testing.T) {
	c := NewCylinder(gmath.Identity(), shading.DefaultMaterial(), false)
	r := gmath.Ray{Origin: gmath.Point3D{X: 1, Y: 0, Z: -5}, Direction: normalizeV(0, 0, 1)}
	hit, ok := c.LocalIntersect(r)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(hit.T-5.0) > 1e-4 {
		t.Errorf("T = %v, want 5.0", hit.T)
	}
}

func TestCylinderOpenHasNoCaps(t *testing.T) {
	c := NewCylinder(gmath.Identity(), shading.DefaultMaterial(), false)
	r := gmath.Ray{Origin: gmath.Point3D{X: 0, Y: 3, Z: 0}, Direction: normalizeV(0, -1, 0)}
	if _, ok := c.LocalIntersect(r); ok {
		t.Error("open cylinder should not intersect through its caps")
	}
}

func TestCylinderClosedIntersectsCaps(t *testing.T) {
	c := NewCylinder(gmath.Identity(), shading.DefaultMaterial(), true)
	r := gmath.Ray{Origin: gmath.Point3D{X: 0, Y: 3, Z: 0}, Direction: normalizeV(0, -1, 0)}
	hit, ok := c.LocalIntersect(r)
	if !ok {
		t.Fatal("closed cylinder should intersect its top cap")
	}
	if math.Abs(hit.T-2.0) > 1e-4 {
		t.Errorf("T = %v, want 2.0", hit.T)
	}
}

func TestCylinderCapNormal(t *testing.T) {
	c := NewCylinder(gmath.Identity(), shading.DefaultMaterial(), true)
	n := c.LocalNormal(gmath.Point3D{X: 0, Y: 1, Z: 0}, Intersection{})
	if n != (gmath.Vector3D{X: 0, Y: 1, Z: 0}) {
		t.Errorf("top cap normal = %v, want (0,1,0)", n)
	}
}
