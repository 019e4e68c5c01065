package geometry

import (
	"math"

	gmath "grinder/pkg/math"
	"grinder/pkg/shading"
)

// Cube is the axis-aligned box [-1,1]^3 in object space.
type Cube struct {
	BaseShape
}

func NewCube(transform gmath.Transform, material shading.Material) *Cube {
	return &Cube{BaseShape: NewBaseShape(transform, material)}
}

func (c *Cube) Bounds() gmath.AABB3D {
	return gmath.AABB3D{Min: gmath.Point3D{X: -1, Y: -1, Z: -1}, Max: gmath.Point3D{X: 1, Y: 1, Z: 1}}
}

func cubeAxisSlab(origin, direction float64) (min, max float64) {
	tMinNum := -1 - origin
	tMaxNum := 1 - origin

	if math.Abs(direction) < gmath.Epsilon {
		// Axis-parallel ray: contributes [-inf,+inf] (no restriction)
		// when the origin lies inside the slab, otherwise collapses
		// to a single signed infinity that forces a miss overall.
		min = signedInf(tMinNum)
		max = signedInf(tMaxNum)
	} else {
		min = tMinNum / direction
		max = tMaxNum / direction
	}
	if min > max {
		min, max = max, min
	}
	return
}

func signedInf(numerator float64) float64 {
	switch {
	case numerator < 0:
		return math.Inf(-1)
	case numerator > 0:
		return math.Inf(1)
	default:
		return 0
	}
}

func (c *Cube) LocalIntersect(ray gmath.Ray) (Intersection, bool) {
	xMin, xMax := cubeAxisSlab(ray.Origin.X, ray.Direction.X)
	yMin, yMax := cubeAxisSlab(ray.Origin.Y, ray.Direction.Y)
	zMin, zMax := cubeAxisSlab(ray.Origin.Z, ray.Direction.Z)

	tMin := math.Max(xMin, math.Max(yMin, zMin))
	tMax := math.Min(xMax, math.Min(yMax, zMax))

	if tMin > tMax {
		return Intersection{}, false
	}

	t := tMin
	if t <= gmath.Epsilon {
		t = tMax
	}
	if t <= gmath.Epsilon {
		return Intersection{}, false
	}
	return Intersection{T: t, Object: c}, true
}

func (c *Cube) LocalNormal(p gmath.Point3D, _ Intersection) gmath.UnitVector {
	absX, absY, absZ := math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z)
	maxC := math.Max(absX, math.Max(absY, absZ))

	switch {
	case maxC == absX:
		return gmath.Vector3D{X: p.X, Y: 0, Z: 0}.Normalize()
	case maxC == absY:
		return gmath.Vector3D{X: 0, Y: p.Y, Z: 0}.Normalize()
	default:
		return gmath.Vector3D{X: 0, Y: 0, Z: p.Z}.Normalize()
	}
}
