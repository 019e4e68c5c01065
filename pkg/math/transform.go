package math

import gomath "math"

// Transform is an invertible projective 3D map. The inverse is
// precomputed at construction time so that shape-local queries (which
// need the inverse far more often than the forward matrix) never pay
// for it twice.
type Transform struct {
	matrix  Matrix4
	inverse Matrix4
}

// NewTransform wraps a matrix, computing and caching its inverse.
// Panics if the matrix is singular — a non-invertible transform is an
// invalid-input construction error, not a renderable scene.
func NewTransform(m Matrix4) Transform {
	inv, ok := m.Inverse()
	if !ok {
		panic("math: non-invertible transform")
	}
	return Transform{matrix: m, inverse: inv}
}

// Identity is the no-op transform.
func Identity() Transform {
	return Transform{matrix: Identity4(), inverse: Identity4()}
}

func (t Transform) Matrix() Matrix4  { return t.matrix }
func (t Transform) Inverse() Matrix4 { return t.inverse }

// Then composes t followed by next: the result applies t's effect
// first, so a chain built left to right with repeated Then calls
// reads in the order the transforms actually apply to a point.
func (t Transform) Then(next Transform) Transform {
	return Transform{
		matrix:  next.matrix.Mul(t.matrix),
		inverse: t.inverse.Mul(next.inverse),
	}
}

func (t Transform) ApplyPoint(p Point3D) Point3D   { return t.matrix.MulPoint(p) }
func (t Transform) ApplyVector(v Vector3D) Vector3D { return t.matrix.MulVector(v) }

// Compose builds T = transforms[n-1] * ... * transforms[0], i.e. the
// first element in the slice is applied first to a point.
func Compose(transforms ...Transform) Transform {
	result := Identity()
	for _, tr := range transforms {
		result = result.Then(tr)
	}
	return result
}

func Translate(x, y, z float64) Transform {
	m := Identity4()
	m[0][3], m[1][3], m[2][3] = x, y, z
	return NewTransform(m)
}

func Scaling(x, y, z float64) Transform {
	m := Identity4()
	m[0][0], m[1][1], m[2][2] = x, y, z
	return NewTransform(m)
}

func RotateX(r float64) Transform {
	m := Identity4()
	c, s := gomath.Cos(r), gomath.Sin(r)
	m[1][1], m[1][2] = c, -s
	m[2][1], m[2][2] = s, c
	return NewTransform(m)
}

func RotateY(r float64) Transform {
	m := Identity4()
	c, s := gomath.Cos(r), gomath.Sin(r)
	m[0][0], m[0][2] = c, s
	m[2][0], m[2][2] = -s, c
	return NewTransform(m)
}

func RotateZ(r float64) Transform {
	m := Identity4()
	c, s := gomath.Cos(r), gomath.Sin(r)
	m[0][0], m[0][1] = c, -s
	m[1][0], m[1][1] = s, c
	return NewTransform(m)
}

func Shear(xy, xz, yx, yz, zx, zy float64) Transform {
	m := Identity4()
	m[0][1], m[0][2] = xy, xz
	m[1][0], m[1][2] = yx, yz
	m[2][0], m[2][1] = zx, zy
	return NewTransform(m)
}

// ViewTransform builds the world-to-camera transform for an eye point
// looking at target with the given up hint.
func ViewTransform(eye, target Point3D, up Vector3D) Transform {
	forward := target.Sub(eye).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := Matrix4{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return Translate(-eye.X, -eye.Y, -eye.Z).Then(NewTransform(orientation))
}
