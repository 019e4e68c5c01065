package geometry

import (
	"sort"

	gmath "grinder/pkg/math"
)

// BoundedShape pairs a shape with its pre-computed bounds (in the
// coordinate space of whatever owns it) and, once built, the BVH leaf
// that indexes it.
type BoundedShape struct {
	Shape     Shape
	LocalAABB gmath.AABB3D
	BVHLeaf   *BVHNode
}

// BVHNode is a binary BVH node. Internal nodes carry Parent back-
// pointers so traversal can be driven without an explicit stack;
// leaves store the index of exactly one bounded shape.
type BVHNode struct {
	AABB       gmath.AABB3D
	Left, Right *BVHNode
	Parent     *BVHNode
	IsLeaf     bool
	ShapeIndex int
}

// BuildBVH constructs a BVH over bounded using a Morton-code spatial
// sort followed by a balanced recursive split over the sorted shapes —
// a cheaper alternative to a top-down surface-area split.
func BuildBVH(bounded []BoundedShape) *BVHNode {
	if len(bounded) == 0 {
		return nil
	}

	sceneBounds := bounded[0].LocalAABB
	for _, b := range bounded[1:] {
		sceneBounds = sceneBounds.Union(b.LocalAABB)
	}

	type keyed struct {
		index int
		code  uint32
	}
	keys := make([]keyed, len(bounded))
	extent := gmath.Point3D{
		X: maxF(sceneBounds.Max.X-sceneBounds.Min.X, 1e-9),
		Y: maxF(sceneBounds.Max.Y-sceneBounds.Min.Y, 1e-9),
		Z: maxF(sceneBounds.Max.Z-sceneBounds.Min.Z, 1e-9),
	}
	for i, b := range bounded {
		c := b.LocalAABB.Center()
		nx := (c.X - sceneBounds.Min.X) / extent.X
		ny := (c.Y - sceneBounds.Min.Y) / extent.Y
		nz := (c.Z - sceneBounds.Min.Z) / extent.Z
		keys[i] = keyed{index: i, code: gmath.Morton3D(clamp01(nx), clamp01(ny), clamp01(nz))}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].code < keys[j].code })

	order := make([]int, len(keys))
	for i, k := range keys {
		order[i] = k.index
	}

	root := buildBVHRange(bounded, order)
	return root
}

func buildBVHRange(bounded []BoundedShape, order []int) *BVHNode {
	if len(order) == 1 {
		idx := order[0]
		leaf := &BVHNode{AABB: bounded[idx].LocalAABB, IsLeaf: true, ShapeIndex: idx}
		bounded[idx].BVHLeaf = leaf
		return leaf
	}

	mid := len(order) / 2
	left := buildBVHRange(bounded, order[:mid])
	right := buildBVHRange(bounded, order[mid:])
	node := &BVHNode{AABB: left.AABB.Union(right.AABB), Left: left, Right: right}
	left.Parent = node
	right.Parent = node
	return node
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// travState is the arrival direction of the stackless traversal
// automaton: either descending fresh from the parent, or returning
// from a child that has already been fully explored.
type travState int

const (
	fromParent travState = iota
	fromBottom
)

// BVHIterator is a lazy, stackless FromParent/FromBottom automaton:
// each call to Next yields one candidate shape whose AABB the ray
// could plausibly hit, preserving O(1) local state between calls
// instead of maintaining an explicit work stack.
type BVHIterator struct {
	ray      gmath.Ray
	bounded  []BoundedShape
	root     *BVHNode
	current  *BVHNode
	state    travState
	cameFrom *BVHNode
	done     bool
}

func NewBVHIterator(root *BVHNode, bounded []BoundedShape, ray gmath.Ray) *BVHIterator {
	return &BVHIterator{ray: ray, bounded: bounded, root: root, current: root, state: fromParent, done: root == nil}
}

func (it *BVHIterator) ascend() {
	parent := it.current.Parent
	it.cameFrom = it.current
	it.current = parent
	it.state = fromBottom
	if parent == nil {
		it.done = true
	}
}

func (it *BVHIterator) hits(n *BVHNode) bool {
	_, _, ok := n.AABB.IntersectRay(it.ray)
	return ok
}

// Next returns the next candidate shape, or ok=false once traversal
// is exhausted.
func (it *BVHIterator) Next() (Shape, bool) {
	for !it.done {
		if it.current.IsLeaf {
			shape := it.bounded[it.current.ShapeIndex].Shape
			if it.current == it.root {
				it.done = true
			} else {
				it.ascend()
			}
			return shape, true
		}

		switch it.state {
		case fromParent:
			left, right := it.current.Left, it.current.Right
			switch {
			case it.hits(left):
				it.current = left
				it.state = fromParent
			case it.hits(right):
				it.current = right
				it.state = fromParent
			default:
				it.ascend()
			}
		case fromBottom:
			cameFromLeft := it.cameFrom == it.current.Left
			if cameFromLeft && it.hits(it.current.Right) {
				it.current = it.current.Right
				it.state = fromParent
			} else if it.current == it.root {
				it.done = true
			} else {
				it.ascend()
			}
		}
	}
	return nil, false
}
