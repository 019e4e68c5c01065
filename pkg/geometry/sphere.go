package geometry

import (
	"math"

	gmath "grinder/pkg/math"
	"grinder/pkg/shading"
)

// Sphere is a unit sphere centered at the object-space origin.
type Sphere struct {
	BaseShape
}

func NewSphere(transform gmath.Transform, material shading.Material) *Sphere {
	return &Sphere{BaseShape: NewBaseShape(transform, material)}
}

func (s *Sphere) Bounds() gmath.AABB3D {
	return gmath.AABB3D{Min: gmath.Point3D{X: -1, Y: -1, Z: -1}, Max: gmath.Point3D{X: 1, Y: 1, Z: 1}}
}

func (s *Sphere) LocalIntersect(ray gmath.Ray) (Intersection, bool) {
	o := ray.Origin.AsVector()
	d := ray.Direction

	a := d.Dot(d)
	b := 2 * o.Dot(d)
	c := o.Dot(o) - 1

	disc := b*b - 4*a*c
	if disc < 0 {
		return Intersection{}, false
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	if t1 > gmath.Epsilon {
		return Intersection{T: t1, Object: s}, true
	}
	if t2 > gmath.Epsilon {
		return Intersection{T: t2, Object: s}, true
	}
	return Intersection{}, false
}

func (s *Sphere) LocalNormal(p gmath.Point3D, _ Intersection) gmath.UnitVector {
	return p.AsVector().Normalize()
}
