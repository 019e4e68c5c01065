package math

// Matrix4 is a 4x4 matrix in row-major order, used for homogeneous
// projective transforms.
type Matrix4 [4][4]float64

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul multiplies m by o, returning m*o (o is applied first to a point).
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var r Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[i][k] * o[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// MulPoint applies m to a point (w=1), dividing through by the
// resulting w if it differs from 1 (true projective transforms).
func (m Matrix4) MulPoint(p Point3D) Point3D {
	x := m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3]
	y := m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3]
	z := m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3]
	w := m[3][0]*p.X + m[3][1]*p.Y + m[3][2]*p.Z + m[3][3]
	if w != 0 && w != 1 {
		return Point3D{x / w, y / w, z / w}
	}
	return Point3D{x, y, z}
}

// MulVector applies m to a vector (w=0); translation has no effect.
func (m Matrix4) MulVector(v Vector3D) Vector3D {
	return Vector3D{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose returns the matrix transpose.
func (m Matrix4) Transpose() Matrix4 {
	var r Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[j][i] = m[i][j]
		}
	}
	return r
}

// Inverse computes the matrix inverse via Gauss-Jordan elimination
// with partial pivoting. Reports ok=false for singular matrices.
func (m Matrix4) Inverse() (Matrix4, bool) {
	var a [4][8]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			a[i][j] = m[i][j]
		}
		a[i][4+i] = 1
	}

	for col := 0; col < 4; col++ {
		pivot := col
		best := absF(a[col][col])
		for row := col + 1; row < 4; row++ {
			if v := absF(a[row][col]); v > best {
				best = v
				pivot = row
			}
		}
		if best < 1e-12 {
			return Matrix4{}, false
		}
		a[col], a[pivot] = a[pivot], a[col]

		inv := 1.0 / a[col][col]
		for j := 0; j < 8; j++ {
			a[col][j] *= inv
		}
		for row := 0; row < 4; row++ {
			if row == col {
				continue
			}
			factor := a[row][col]
			if factor == 0 {
				continue
			}
			for j := 0; j < 8; j++ {
				a[row][j] -= factor * a[col][j]
			}
		}
	}

	var out Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = a[i][4+j]
		}
	}
	return out, true
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
