package geometry

import (
	"testing"

	gmath "grinder/pkg/math"
	"grinder/pkg/shading"
)

func TestCubeIntersectFaces(t *testing.T) {
	c := NewCube(gmath.Identity(), shading.DefaultMaterial())
	cases := []struct {
		origin, dir gmath.Point3D
		t1          float64
	}{
		{gmath.Point3D{X: 5, Y: 0.5, Z: 0}, gmath.Point3D{X: -1, Y: 0, Z: 0}, 4},
		{gmath.Point3D{X: -5, Y: 0.5, Z: 0}, gmath.Point3D{X: 1, Y: 0, Z: 0}, 4},
		{gmath.Point3D{X: 0.5, Y: 5, Z: 0}, gmath.Point3D{X: 0, Y: -1, Z: 0}, 4},
		{gmath.Point3D{X: 0, Y: 0.5, Z: 5}, gmath.Point3D{X: 0, Y: 0, Z: -1}, 4},
		{gmath.Point3D{X: 0, Y: 0.5, Z: 0}, gmath.Point3D{X: 0, Y: 0, Z: 1}, 1},
	}
	for _, c2 := range cases {
		r := gmath.Ray{Origin: c2.origin, Direction: gmath.Vector3D{X: c2.dir.X, Y: c2.dir.Y, Z: c2.dir.Z}}
		hit, ok := c.LocalIntersect(r)
		if !ok {
			t.Errorf("expected a hit from origin %v", c2.origin)
			continue
		}
		if hit.T != c2.t1 {
			t.Errorf("from %v: t = %v, want %v", c2.origin, hit.T, c2.t1)
		}
	}
}

func TestCubeRayMisses(t *testing.T) {
	c := NewCube(gmath.Identity(), shading.DefaultMaterial())
	r := gmath.Ray{
		Origin:    gmath.Point3D{X: -2, Y: 0, Z: 0},
		Direction: gmath.Vector3D{X: 0.2673, Y: 0.5345, Z: 0.8018},
	}
	if _, ok := c.LocalIntersect(r); ok {
		t.Error("expected a miss")
	}
}

func TestCubeNormalAtFace(t *testing.T) {
	c := NewCube(gmath.Identity(), shading.DefaultMaterial())
	n := c.LocalNormal(gmath.Point3D{X: 1, Y: 0.5, Z: -0.8}, Intersection{})
	if n != (gmath.Vector3D{X: 1, Y: 0, Z: 0}) {
		t.Errorf("normal = %v, want (1,0,0)", n)
	}
}
