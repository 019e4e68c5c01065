package geometry

import gmath "grinder/pkg/math"

// Intersection is the record produced by a shape-local test: the
// parametric distance along the (world-space) ray, the shape hit, and
// optional barycentric coordinates set only by Triangle.
type Intersection struct {
	T      float64
	Object Shape
	U, V   float64
	HasUV  bool
}

// SelfHitEpsilon is the offset applied to shadow, reflection, and
// refraction ray origins to avoid a ray immediately re-hitting its own
// surface.
const SelfHitEpsilon = 100 * gmath.Epsilon

// Hit is the eager pre-computation bundle derived from a ray and its
// nearest Intersection, ready for shading.
type Hit struct {
	T           float64
	Object      Shape
	Point       gmath.Point3D
	ObjectPoint gmath.Point3D
	Eye         gmath.Vector3D
	Normal      gmath.UnitVector
	Inside      bool
	Reflect     gmath.Vector3D
	N1, N2      float64
}

// PrepareHit builds the Hit bundle for a ray and its nearest
// Intersection.
func PrepareHit(ray gmath.Ray, hit Intersection) Hit {
	point := ray.At(hit.T)
	eye := ray.Direction.Negate().Normalize()
	normal := WorldNormal(hit.Object, point, hit)

	inside := false
	if normal.Dot(eye) < 0 {
		inside = true
		normal = normal.Negate()
	}

	reflect := ray.Direction.Reflect(normal)
	objectPoint := WorldToObject(hit.Object, point)

	material := hit.Object.ShapeMaterial()
	n1, n2 := 1.0, 1.0
	if material.IsTransparent(objectPoint) {
		if !inside {
			n1, n2 = 1.0, material.RefractiveIndex
		} else {
			n1, n2 = material.RefractiveIndex, 1.0
		}
	}

	return Hit{
		T:           hit.T,
		Object:      hit.Object,
		Point:       point,
		ObjectPoint: objectPoint,
		Eye:         eye,
		Normal:      normal,
		Inside:      inside,
		Reflect:     reflect,
		N1:          n1,
		N2:          n2,
	}
}
