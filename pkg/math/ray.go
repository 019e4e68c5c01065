package math

// Ray is a parametric ray: position(t) = origin + t*direction.
type Ray struct {
	Origin    Point3D
	Direction Vector3D
}

// At evaluates the ray's position at parameter t.
func (r Ray) At(t float64) Point3D {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform applies m to the ray's origin and direction. The direction
// is not renormalized, matching the ray-transform contract used by
// shape-local intersection.
func (r Ray) Transform(m Matrix4) Ray {
	return Ray{
		Origin:    m.MulPoint(r.Origin),
		Direction: m.MulVector(r.Direction),
	}
}
