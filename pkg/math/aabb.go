package math

import "math"

// AABB3D is an axis-aligned bounding box.
type AABB3D struct{ Min, Max Point3D }

// Contains reports whether p lies within the box.
func (a AABB3D) Contains(p Point3D) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// Center returns the midpoint of the AABB.
func (a AABB3D) Center() Point3D {
	return Point3D{
		X: (a.Min.X + a.Max.X) * 0.5,
		Y: (a.Min.Y + a.Max.Y) * 0.5,
		Z: (a.Min.Z + a.Max.Z) * 0.5,
	}
}

// Expand returns a new AABB that also contains p.
func (a AABB3D) Expand(p Point3D) AABB3D {
	return AABB3D{
		Min: Point3D{math.Min(a.Min.X, p.X), math.Min(a.Min.Y, p.Y), math.Min(a.Min.Z, p.Z)},
		Max: Point3D{math.Max(a.Max.X, p.X), math.Max(a.Max.Y, p.Y), math.Max(a.Max.Z, p.Z)},
	}
}

// Union returns the smallest AABB containing both a and b.
func (a AABB3D) Union(b AABB3D) AABB3D {
	return a.Expand(b.Min).Expand(b.Max)
}

// Intersects reports whether two AABBs overlap (touching counts).
func (a AABB3D) Intersects(b AABB3D) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// IntersectRay performs a slab-method ray-AABB test, returning the
// entry/exit parametric distances and whether the ray hits the box at
// all ahead of the origin.
func (a AABB3D) IntersectRay(r Ray) (tmin, tmax float64, hit bool) {
	tmin = -math.MaxFloat64
	tmax = math.MaxFloat64

	const epsilon = 1e-6

	if math.Abs(r.Direction.X) < epsilon {
		if r.Origin.X < a.Min.X || r.Origin.X > a.Max.X {
			return 0, 0, false
		}
	} else {
		tx1 := (a.Min.X - r.Origin.X) / r.Direction.X
		tx2 := (a.Max.X - r.Origin.X) / r.Direction.X
		if tx1 > tx2 {
			tx1, tx2 = tx2, tx1
		}
		tmin = math.Max(tmin, tx1)
		tmax = math.Min(tmax, tx2)
	}

	if math.Abs(r.Direction.Y) < epsilon {
		if r.Origin.Y < a.Min.Y || r.Origin.Y > a.Max.Y {
			return 0, 0, false
		}
	} else {
		ty1 := (a.Min.Y - r.Origin.Y) / r.Direction.Y
		ty2 := (a.Max.Y - r.Origin.Y) / r.Direction.Y
		if ty1 > ty2 {
			ty1, ty2 = ty2, ty1
		}
		tmin = math.Max(tmin, ty1)
		tmax = math.Min(tmax, ty2)
	}

	if math.Abs(r.Direction.Z) < epsilon {
		if r.Origin.Z < a.Min.Z || r.Origin.Z > a.Max.Z {
			return 0, 0, false
		}
	} else {
		tz1 := (a.Min.Z - r.Origin.Z) / r.Direction.Z
		tz2 := (a.Max.Z - r.Origin.Z) / r.Direction.Z
		if tz1 > tz2 {
			tz1, tz2 = tz2, tz1
		}
		tmin = math.Max(tmin, tz1)
		tmax = math.Min(tmax, tz2)
	}

	return tmin, tmax, tmax >= tmin && tmax > 0
}

// Corners returns the eight corner points of the box.
func (a AABB3D) Corners() [8]Point3D {
	return [8]Point3D{
		{a.Min.X, a.Min.Y, a.Min.Z}, {a.Max.X, a.Min.Y, a.Min.Z},
		{a.Min.X, a.Max.Y, a.Min.Z}, {a.Max.X, a.Max.Y, a.Min.Z},
		{a.Min.X, a.Min.Y, a.Max.Z}, {a.Max.X, a.Min.Y, a.Max.Z},
		{a.Min.X, a.Max.Y, a.Max.Z}, {a.Max.X, a.Max.Y, a.Max.Z},
	}
}

// TransformAABB computes the AABB-of-transformed-AABB: transform all
// eight corners and take their componentwise min/max.
func TransformAABB(m Matrix4, a AABB3D) AABB3D {
	corners := a.Corners()
	out := AABB3D{Min: m.MulPoint(corners[0]), Max: m.MulPoint(corners[0])}
	for _, c := range corners[1:] {
		out = out.Expand(m.MulPoint(c))
	}
	return out
}
