package geometry

import (
	"math"

	gmath "grinder/pkg/math"
	"grinder/pkg/shading"
)

// Cylinder is a unit-radius cylinder, y in [-1,1] in object space,
// optionally capped at both ends.
type Cylinder struct {
	BaseShape
	Closed bool
}

func NewCylinder(transform gmath.Transform, material shading.Material, closed bool) *Cylinder {
	return &Cylinder{BaseShape: NewBaseShape(transform, material), Closed: closed}
}

func (c *Cylinder) Bounds() gmath.AABB3D {
	return gmath.AABB3D{Min: gmath.Point3D{X: -1, Y: -1, Z: -1}, Max: gmath.Point3D{X: 1, Y: 1, Z: 1}}
}

func cylinderCapAt(ray gmath.Ray, t float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= 1
}

func (c *Cylinder) LocalIntersect(ray gmath.Ray) (Intersection, bool) {
	best := math.Inf(1)
	found := false

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if a > gmath.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1
		disc := b*b - 4*a*cc
		if disc >= 0 {
			sq := math.Sqrt(disc)
			t0 := (-b - sq) / (2 * a)
			t1 := (-b + sq) / (2 * a)
			if t0 > t1 {
				t0, t1 = t1, t0
			}
			for _, t := range []float64{t0, t1} {
				if t <= gmath.Epsilon {
					continue
				}
				y := ray.Origin.Y + t*ray.Direction.Y
				if y > -1 && y < 1 && t < best {
					best = t
					found = true
				}
			}
		}
	}

	if c.Closed && math.Abs(ray.Direction.Y) > gmath.Epsilon {
		for _, yPlane := range []float64{-1, 1} {
			t := (yPlane - ray.Origin.Y) / ray.Direction.Y
			if t > gmath.Epsilon && t < best && cylinderCapAt(ray, t) {
				best = t
				found = true
			}
		}
	}

	if !found {
		return Intersection{}, false
	}
	return Intersection{T: best, Object: c}, true
}

func (c *Cylinder) LocalNormal(p gmath.Point3D, _ Intersection) gmath.UnitVector {
	dist := p.X*p.X + p.Z*p.Z
	if c.Closed && dist < 1 {
		if p.Y >= 1-gmath.Epsilon {
			return gmath.Vector3D{X: 0, Y: 1, Z: 0}
		}
		if p.Y <= -1+gmath.Epsilon {
			return gmath.Vector3D{X: 0, Y: -1, Z: 0}
		}
	}
	return gmath.Vector3D{X: p.X, Y: 0, Z: p.Z}.Normalize()
}
