package math

import "math"

// Epsilon is the tolerance used throughout the package for float
// comparisons, self-hit offsets, and boundary tests.
const Epsilon = 1e-5

// Vector3D is a displacement in 3-space: it has no fixed location.
// Vectors add to vectors, scale freely, and transform with w=0.
type Vector3D struct{ X, Y, Z float64 }

// UnitVector is a Vector3D with the additional (unenforced, by
// convention) invariant that its length is 1.
type UnitVector = Vector3D

// Point3D is a location in 3-space. Points subtract to vectors and
// transform with w=1.
type Point3D struct{ X, Y, Z float64 }

func (v Vector3D) Add(o Vector3D) Vector3D {
	return Vector3D{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector3D) Sub(o Vector3D) Vector3D {
	return Vector3D{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector3D) Scale(s float64) Vector3D {
	return Vector3D{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3D) Negate() Vector3D {
	return Vector3D{-v.X, -v.Y, -v.Z}
}

func (v Vector3D) Dot(o Vector3D) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vector3D) Cross(o Vector3D) Vector3D {
	return Vector3D{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3D) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vector3D) Normalize() UnitVector {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector3D{v.X / l, v.Y / l, v.Z / l}
}

// Reflect mirrors v about a surface with normal n: v - 2*(v.n)*n.
func (v Vector3D) Reflect(n UnitVector) Vector3D {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

func (p Point3D) Add(v Vector3D) Point3D {
	return Point3D{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the vector pointing from o to p.
func (p Point3D) Sub(o Point3D) Vector3D {
	return Vector3D{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}

// SubVector offsets a point backwards along a vector.
func (p Point3D) SubVector(v Vector3D) Point3D {
	return Point3D{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

func (p Point3D) AsVector() Vector3D {
	return Vector3D{p.X, p.Y, p.Z}
}

func VectorFromTuple(x, y, z float64) Vector3D { return Vector3D{x, y, z} }
func PointFromTuple(x, y, z float64) Point3D   { return Point3D{x, y, z} }
