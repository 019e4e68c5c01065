package geometry

import (
	gmath "grinder/pkg/math"
	"grinder/pkg/shading"
)

// Group is a container shape: it owns a sequence of children plus a
// BVH built over them, and aggregates their bounds. Triangles in
// particular rely on a Group to supply identity transform + material.
type Group struct {
	BaseShape

	children []Shape
	bounded  []BoundedShape
	bvh      *BVHNode
	bounds   gmath.AABB3D
	built    bool
}

func NewGroup(transform gmath.Transform, material shading.Material) *Group {
	g := &Group{BaseShape: NewBaseShape(transform, material)}
	g.bounds = gmath.AABB3D{} // degenerate until a child is added
	return g
}

// AddChild sets the child's parent back-reference and folds its
// (transformed) bounds into the group's own bounds. Call Build once
// after all children are added.
func (g *Group) AddChild(s Shape) {
	s.SetParentGroup(g)
	childBounds := WorldBounds(s)
	if len(g.children) == 0 {
		g.bounds = childBounds
	} else {
		g.bounds = g.bounds.Union(childBounds)
	}
	g.children = append(g.children, s)
	g.bounded = append(g.bounded, BoundedShape{Shape: s, LocalAABB: childBounds})
	g.built = false
}

// Build constructs the BVH over the group's children. Must be called
// after the last AddChild and before the group is used for rendering.
func (g *Group) Build() {
	g.bvh = BuildBVH(g.bounded)
	g.built = true
}

func (g *Group) Children() []Shape { return g.children }

func (g *Group) Bounds() gmath.AABB3D { return g.bounds }

func (g *Group) LocalIntersect(ray gmath.Ray) (Intersection, bool) {
	if !g.built {
		g.Build()
	}
	best := Intersection{}
	found := false

	it := NewBVHIterator(g.bvh, g.bounded, ray)
	for {
		shape, ok := it.Next()
		if !ok {
			break
		}
		candidate, hit := Intersect(shape, ray)
		if hit && (!found || candidate.T < best.T) {
			best = candidate
			found = true
		}
	}
	return best, found
}

func (g *Group) LocalNormal(gmath.Point3D, Intersection) gmath.UnitVector {
	panic("geometry: local_normal is never called directly on a Group")
}
