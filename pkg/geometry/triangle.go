package geometry

import (
	"math"

	gmath "grinder/pkg/math"
	"grinder/pkg/shading"
)

// Triangle bypasses BaseShape entirely: it has no transform of its
// own (identity) and inherits its material from its parent group.
// Setting either directly is a programmer error.
type Triangle struct {
	P1, P2, P3 gmath.Point3D
	N1, N2, N3 gmath.UnitVector
	Smooth     bool
	FaceNormal gmath.UnitVector

	parent *Group
}

func NewTriangle(p1, p2, p3 gmath.Point3D) *Triangle {
	e1 := p2.Sub(p1)
	e2 := p3.Sub(p1)
	return &Triangle{
		P1: p1, P2: p2, P3: p3,
		FaceNormal: e1.Cross(e2).Normalize(),
	}
}

// NewSmoothTriangle additionally carries per-vertex normals used for
// barycentric-interpolated shading normals.
func NewSmoothTriangle(p1, p2, p3 gmath.Point3D, n1, n2, n3 gmath.UnitVector) *Triangle {
	t := NewTriangle(p1, p2, p3)
	t.N1, t.N2, t.N3 = n1, n2, n3
	t.Smooth = true
	return t
}

func (t *Triangle) Bounds() gmath.AABB3D {
	min := gmath.Point3D{
		X: math.Min(t.P1.X, math.Min(t.P2.X, t.P3.X)),
		Y: math.Min(t.P1.Y, math.Min(t.P2.Y, t.P3.Y)),
		Z: math.Min(t.P1.Z, math.Min(t.P2.Z, t.P3.Z)),
	}
	max := gmath.Point3D{
		X: math.Max(t.P1.X, math.Max(t.P2.X, t.P3.X)),
		Y: math.Max(t.P1.Y, math.Max(t.P2.Y, t.P3.Y)),
		Z: math.Max(t.P1.Z, math.Max(t.P2.Z, t.P3.Z)),
	}
	return gmath.AABB3D{Min: min, Max: max}
}

func (t *Triangle) LocalIntersect(ray gmath.Ray) (Intersection, bool) {
	e1 := t.P2.Sub(t.P1)
	e2 := t.P3.Sub(t.P1)
	dirCrossE2 := ray.Direction.Cross(e2)
	det := e1.Dot(dirCrossE2)
	if math.Abs(det) < gmath.Epsilon {
		return Intersection{}, false
	}

	f := 1.0 / det
	p1ToOrigin := ray.Origin.Sub(t.P1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return Intersection{}, false
	}

	originCrossE1 := p1ToOrigin.Cross(e1)
	v := f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return Intersection{}, false
	}

	tt := f * e2.Dot(originCrossE1)
	if tt <= gmath.Epsilon {
		return Intersection{}, false
	}
	return Intersection{T: tt, Object: t, U: u, V: v, HasUV: true}, true
}

func (t *Triangle) LocalNormal(_ gmath.Point3D, hit Intersection) gmath.UnitVector {
	if !t.Smooth {
		return t.FaceNormal
	}
	return t.N2.Scale(hit.U).Add(t.N3.Scale(hit.V)).Add(t.N1.Scale(1 - hit.U - hit.V)).Normalize()
}

func (t *Triangle) ShapeTransform() gmath.Transform { return gmath.Identity() }

func (t *Triangle) ShapeMaterial() shading.Material {
	if t.parent == nil {
		panic("geometry: orphan triangle has no parent group to inherit material from")
	}
	return t.parent.ShapeMaterial()
}

func (t *Triangle) SetShapeMaterial(shading.Material) {
	panic("geometry: cannot set material directly on a Triangle; it inherits from its parent group")
}

func (t *Triangle) ParentGroup() *Group     { return t.parent }
func (t *Triangle) SetParentGroup(g *Group) { t.parent = g }
