package camera

import (
	"math"
	"testing"

	gmath "grinder/pkg/math"
)

func TestPixelSizeForHorizontalCanvas(t *testing.T) {
	c := NewCamera(200, 125, math.Pi/2, gmath.Identity())
	if math.Abs(c.pixelSize-0.01) > 1e-5 {
		t.Errorf("pixelSize = %v, want 0.01", c.pixelSize)
	}
}

func TestPixelSizeForVerticalCanvas(t *testing.T) {
	c := NewCamera(125, 200, math.Pi/2, gmath.Identity())
	if math.Abs(c.pixelSize-0.01) > 1e-5 {
		t.Errorf("pixelSize = %v, want 0.01", c.pixelSize)
	}
}

func TestRayThroughCenterOfCanvas(t *testing.T) {
	c := NewCamera(201, 101, math.Pi/2, gmath.Identity())
	r := c.RayForPixel(100, 50)
	if r.Origin != (gmath.Point3D{X: 0, Y: 0, Z: 0}) {
		t.Errorf("origin = %v, want (0,0,0)", r.Origin)
	}
	want := gmath.Vector3D{X: 0, Y: 0, Z: -1}
	if math.Abs(r.Direction.X-want.X) > 1e-5 || math.Abs(r.Direction.Y-want.Y) > 1e-5 || math.Abs(r.Direction.Z-want.Z) > 1e-5 {
		t.Errorf("direction = %v, want %v", r.Direction, want)
	}
}

func TestRayThroughCornerOfCanvas(t *testing.T) {
	c := NewCamera(201, 101, math.Pi/2, gmath.Identity())
	r := c.RayForPixel(0, 0)
	want := gmath.Vector3D{X: 0.66519, Y: 0.33259, Z: -0.66851}
	if math.Abs(r.Direction.X-want.X) > 1e-4 || math.Abs(r.Direction.Y-want.Y) > 1e-4 || math.Abs(r.Direction.Z-want.Z) > 1e-4 {
		t.Errorf("direction = %v, want %v", r.Direction, want)
	}
}

func TestRayWhenCameraIsTransformed(t *testing.T) {
	transform := gmath.Translate(0, -2, 5).Then(gmath.RotateY(math.Pi / 4))
	c := NewCamera(201, 101, math.Pi/2, transform)
	r := c.RayForPixel(100, 50)

	wantOrigin := gmath.Point3D{X: 0, Y: 2, Z: -5}
	if math.Abs(r.Origin.X-wantOrigin.X) > 1e-4 || math.Abs(r.Origin.Y-wantOrigin.Y) > 1e-4 || math.Abs(r.Origin.Z-wantOrigin.Z) > 1e-4 {
		t.Errorf("origin = %v, want %v", r.Origin, wantOrigin)
	}
	half := math.Sqrt2 / 2
	wantDir := gmath.Vector3D{X: half, Y: 0, Z: -half}
	if math.Abs(r.Direction.X-wantDir.X) > 1e-4 || math.Abs(r.Direction.Y-wantDir.Y) > 1e-4 || math.Abs(r.Direction.Z-wantDir.Z) > 1e-4 {
		t.Errorf("direction = %v, want %v", r.Direction, wantDir)
	}
}

func TestLookAtCameraBuildsViewTransform(t *testing.T) {
	eye := gmath.Point3D{X: 0, Y: 0, Z: 0}
	target := gmath.Point3D{X: 0, Y: 0, Z: -1}
	up := gmath.Vector3D{X: 0, Y: 1, Z: 0}
	c := NewLookAtCamera(100, 100, math.Pi/2, eye, target, up)
	r := c.RayForPixel(50, 50)
	if math.Abs(r.Origin.X) > 1e-9 || math.Abs(r.Origin.Y) > 1e-9 || math.Abs(r.Origin.Z) > 1e-9 {
		t.Errorf("origin = %v, want (0,0,0)", r.Origin)
	}
}
