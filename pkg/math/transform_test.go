package math

import (
	"math"
	"testing"
)

func TestTransform_ThenAppliesReceiverFirst(t *testing.T) {
	translate := Translate(5, 0, 0)
	scale := Scaling(2, 2, 2)

	// translate.Then(scale) should scale the already-translated point:
	// (1,0,0) -> translate -> (6,0,0) -> scale -> (12,0,0)
	combined := translate.Then(scale)
	p := Point3D{X: 1, Y: 0, Z: 0}
	got := combined.ApplyPoint(p)
	want := Point3D{X: 12, Y: 0, Z: 0}
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 || math.Abs(got.Z-want.Z) > 1e-9 {
		t.Errorf("Then composition order wrong: got %v, want %v", got, want)
	}
}

func TestTransform_RotateXQuarterTurn(t *testing.T) {
	half := RotateX(math.Pi / 4)
	full := RotateX(math.Pi / 2)
	p := Point3D{X: 0, Y: 1, Z: 0}

	gotHalf := half.ApplyPoint(p)
	wantHalf := Point3D{X: 0, Y: math.Sqrt2 / 2, Z: math.Sqrt2 / 2}
	if math.Abs(gotHalf.Y-wantHalf.Y) > 1e-9 || math.Abs(gotHalf.Z-wantHalf.Z) > 1e-9 {
		t.Errorf("RotateX(pi/4) = %v, want %v", gotHalf, wantHalf)
	}

	gotFull := full.ApplyPoint(p)
	wantFull := Point3D{X: 0, Y: 0, Z: 1}
	if math.Abs(gotFull.Y-wantFull.Y) > 1e-9 || math.Abs(gotFull.Z-wantFull.Z) > 1e-9 {
		t.Errorf("RotateX(pi/2) = %v, want %v", gotFull, wantFull)
	}
}

func TestTransform_ShearMovesXInProportionToY(t *testing.T) {
	tr := Shear(1, 0, 0, 0, 0, 0)
	got := tr.ApplyPoint(Point3D{X: 2, Y: 3, Z: 4})
	want := Point3D{X: 5, Y: 3, Z: 4}
	if got != want {
		t.Errorf("Shear(xy=1) = %v, want %v", got, want)
	}
}

func TestViewTransform_LookingDownNegativeZIsIdentity(t *testing.T) {
	eye := Point3D{X: 0, Y: 0, Z: 0}
	target := Point3D{X: 0, Y: 0, Z: -1}
	up := Vector3D{X: 0, Y: 1, Z: 0}

	tr := ViewTransform(eye, target, up)
	if tr.Matrix() != Identity4() {
		t.Errorf("ViewTransform looking down -z from origin should be identity, got %v", tr.Matrix())
	}
}

func TestViewTransform_MovesTheWorld(t *testing.T) {
	eye := Point3D{X: 0, Y: 0, Z: 8}
	target := Point3D{X: 0, Y: 0, Z: 0}
	up := Vector3D{X: 0, Y: 1, Z: 0}

	tr := ViewTransform(eye, target, up)
	want := Translate(0, 0, -8).Matrix()
	if tr.Matrix() != want {
		t.Errorf("ViewTransform from (0,0,8) looking at origin = %v, want %v", tr.Matrix(), want)
	}
}

func TestCompose_AppliesFirstArgumentFirst(t *testing.T) {
	rotate := RotateX(math.Pi / 2)
	scale := Scaling(5, 5, 5)
	translate := Translate(10, 5, 7)

	tr := Compose(rotate, scale, translate)
	p := Point3D{X: 1, Y: 0, Z: 1}
	got := tr.ApplyPoint(p)
	want := Point3D{X: 15, Y: 0, Z: 7}
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 || math.Abs(got.Z-want.Z) > 1e-9 {
		t.Errorf("Compose(rotate, scale, translate) = %v, want %v", got, want)
	}
}
