// Package geometry implements the shape family (sphere, plane, cube,
// cylinder, triangle, group), the intersection/hit pipeline, and the
// bounding-volume hierarchy used to accelerate ray-scene queries.
package geometry

import (
	gmath "grinder/pkg/math"
	"grinder/pkg/shading"
)

// Shape is the capability set every shape variant implements. The set
// is fixed and closed (six variants); dispatch goes through this
// interface rather than a tagged sum, one implementation per
// geometry kind.
type Shape interface {
	LocalIntersect(ray gmath.Ray) (Intersection, bool)
	LocalNormal(localPoint gmath.Point3D, hit Intersection) gmath.UnitVector
	Bounds() gmath.AABB3D

	ShapeTransform() gmath.Transform
	ShapeMaterial() shading.Material
	SetShapeMaterial(m shading.Material)

	ParentGroup() *Group
	SetParentGroup(g *Group)
}

// BaseShape is the common state every non-Triangle shape owns
// exclusively: its transform, its material, and a non-owning
// back-reference to the group it was added to (nil for a root shape).
type BaseShape struct {
	transform gmath.Transform
	material  shading.Material
	parent    *Group
}

func NewBaseShape(transform gmath.Transform, material shading.Material) BaseShape {
	return BaseShape{transform: transform, material: material}
}

func (b *BaseShape) ShapeTransform() gmath.Transform     { return b.transform }
func (b *BaseShape) ShapeMaterial() shading.Material     { return b.material }
func (b *BaseShape) SetShapeMaterial(m shading.Material) { b.material = m }
func (b *BaseShape) ParentGroup() *Group                 { return b.parent }
func (b *BaseShape) SetParentGroup(g *Group)             { b.parent = g }

// WorldToObject walks up the parent chain, applying the parent's
// world_to_object first and this shape's own transform-inverse last.
func WorldToObject(s Shape, p gmath.Point3D) gmath.Point3D {
	if parent := s.ParentGroup(); parent != nil {
		p = WorldToObject(parent, p)
	}
	return s.ShapeTransform().Inverse().MulPoint(p)
}

// NormalToWorld transforms a local-space normal by the inverse
// transpose of this shape's transform, then recurses into the parent.
func NormalToWorld(s Shape, localNormal gmath.UnitVector) gmath.UnitVector {
	invTranspose := s.ShapeTransform().Inverse().Transpose()
	n := invTranspose.MulVector(localNormal).Normalize()
	if parent := s.ParentGroup(); parent != nil {
		n = NormalToWorld(parent, n)
	}
	return n
}

// Intersect transforms ray into s's object space and runs its local
// intersection test.
func Intersect(s Shape, ray gmath.Ray) (Intersection, bool) {
	localRay := ray.Transform(s.ShapeTransform().Inverse())
	return s.LocalIntersect(localRay)
}

// WorldNormal computes the world-space surface normal at worldPoint
// for a confirmed intersection with s.
func WorldNormal(s Shape, worldPoint gmath.Point3D, hit Intersection) gmath.UnitVector {
	localPoint := WorldToObject(s, worldPoint)
	localNormal := s.LocalNormal(localPoint, hit)
	return NormalToWorld(s, localNormal)
}

// WorldBounds returns s's object-space bounds transformed into the
// space of whatever contains s (world space for a root shape, the
// parent group's local space for a nested one).
func WorldBounds(s Shape) gmath.AABB3D {
	return gmath.TransformAABB(s.ShapeTransform().Matrix(), s.Bounds())
}
