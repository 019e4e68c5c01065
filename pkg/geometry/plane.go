package geometry

import (
	"math"

	gmath "grinder/pkg/math"
	"grinder/pkg/shading"
)

// Plane is the XZ plane at y=0 in object space.
type Plane struct {
	BaseShape
}

func NewPlane(transform gmath.Transform, material shading.Material) *Plane {
	return &Plane{BaseShape: NewBaseShape(transform, material)}
}

// planeExtent is the inflated finite slab the BVH needs; a plane is
// conceptually infinite but bounding volumes require finite bounds.
const planeExtent = 1e10

func (p *Plane) Bounds() gmath.AABB3D {
	return gmath.AABB3D{
		Min: gmath.Point3D{X: -planeExtent, Y: -gmath.Epsilon, Z: -planeExtent},
		Max: gmath.Point3D{X: planeExtent, Y: gmath.Epsilon, Z: planeExtent},
	}
}

func (p *Plane) LocalIntersect(ray gmath.Ray) (Intersection, bool) {
	if math.Abs(ray.Direction.Y) < gmath.Epsilon {
		return Intersection{}, false
	}
	t := -ray.Origin.Y / ray.Direction.Y
	if t <= gmath.Epsilon {
		return Intersection{}, false
	}
	return Intersection{T: t, Object: p}, true
}

func (p *Plane) LocalNormal(_ gmath.Point3D, _ Intersection) gmath.UnitVector {
	return gmath.Vector3D{X: 0, Y: 1, Z: 0}
}
