// Package quadtree implements an in-memory point-region quadtree: a
// two-dimensional spatial index storing items keyed by position and answering
// rectangle queries without a full scan.
//
// Each node holds up to Capacity items directly. The insert that would exceed
// the bound splits the node into four quadrants exactly once; items already
// present stay where they were inserted and are never redistributed. There is
// no deletion and no rebalancing.
//
// The tree is not safe for concurrent use. Multiple queries or iterators may
// run at the same time, but no insert may happen while any of them is
// outstanding; use LockedQuadTree when writes and reads interleave.
package quadtree

// QuadTree is a point-region quadtree over coordinate type C storing items of
// type T, with per-node capacity policy P.
type QuadTree[C Coordinate, T any, P Capacity] struct {
	boundary Boundary[C]
	capacity P
	items    []entry[C, T]
	children *[4]QuadTree[C, T, P]
	length   int
}

// New returns a tree covering boundary where each node holds up to capacity
// items before splitting. A capacity below 1 is treated as 1.
func New[C Coordinate, T any](boundary Boundary[C], capacity int) *QuadTree[C, T, DynCap] {
	if capacity < 1 {
		capacity = 1
	}
	return NewWithPolicy[C, T](boundary, DynCap(capacity))
}

// NewWithPolicy returns a tree covering boundary with a custom capacity
// policy. The policy must report a capacity of at least 1.
func NewWithPolicy[C Coordinate, T any, P Capacity](boundary Boundary[C], policy P) *QuadTree[C, T, P] {
	return &QuadTree[C, T, P]{
		boundary: boundary,
		capacity: policy,
	}
}

// Boundary returns the area covered by the tree.
func (t *QuadTree[C, T, P]) Boundary() Boundary[C] {
	return t.boundary
}

// Capacity returns the per-node item bound.
func (t *QuadTree[C, T, P]) Capacity() int {
	return t.capacity.Capacity()
}

// Len returns the number of items stored in the tree.
func (t *QuadTree[C, T, P]) Len() int {
	return t.length
}

// InsertAt stores item at point. It returns an *OutOfBoundsError and leaves
// the tree unchanged if point lies outside the tree's boundary.
func (t *QuadTree[C, T, P]) InsertAt(point Point[C], item T) error {
	if !t.boundary.Contains(point) {
		return &OutOfBoundsError[C]{Boundary: t.boundary, Point: point}
	}
	t.InsertAtUnchecked(point, item)
	return nil
}

// InsertAtUnchecked stores item at point without a bounds check.
// The point must lie inside the tree's boundary.
func (t *QuadTree[C, T, P]) InsertAtUnchecked(point Point[C], item T) {
	t.length++
	n := t
	for {
		if len(n.items) < n.capacity.Capacity() {
			if n.items == nil {
				n.items = make([]entry[C, T], 0, n.capacity.Capacity())
			}
			n.items = append(n.items, entry[C, T]{point: point, item: item})
			return
		}
		if n.children == nil {
			q := n.boundary.Split()
			n.children = &[4]QuadTree[C, T, P]{
				{boundary: q[NW], capacity: n.capacity},
				{boundary: q[NE], capacity: n.capacity},
				{boundary: q[SW], capacity: n.capacity},
				{boundary: q[SE], capacity: n.capacity},
			}
		}

		// The containing quadrant in constant time: compare against NW's far
		// corner, bit 0 = east of the vertical midline, bit 1 = south of the
		// horizontal one. Points on a midline stay north/west.
		far := n.children[NW].boundary.p2
		idx := 0
		if point.X > far.X {
			idx |= 1
		}
		if point.Y > far.Y {
			idx |= 2
		}
		n = &n.children[idx]
	}
}

// Insert stores an item that reports its own position.
// It returns an *OutOfBoundsError if that position is outside the tree.
func Insert[C Coordinate, T AsPoint[C], P Capacity](t *QuadTree[C, T, P], item T) error {
	return t.InsertAt(item.AsPoint(), item)
}

// InsertUnchecked is Insert without the bounds check.
func InsertUnchecked[C Coordinate, T AsPoint[C], P Capacity](t *QuadTree[C, T, P], item T) {
	t.InsertAtUnchecked(item.AsPoint(), item)
}

// Query returns a lazy sequence of the items whose point lies inside area.
// No insert may happen before the sequence is exhausted or abandoned.
func (t *QuadTree[C, T, P]) Query(area Boundary[C]) *Query[C, T, P] {
	return &Query[C, T, P]{w: newWalker(t, area, false)}
}

// QueryPoints is Query paired with each item's position.
func (t *QuadTree[C, T, P]) QueryPoints(area Boundary[C]) *PointQuery[C, T, P] {
	return &PointQuery[C, T, P]{w: newWalker(t, area, false)}
}

// Iter returns a lazy sequence of every item in the tree.
// No insert may happen before the sequence is exhausted or abandoned.
func (t *QuadTree[C, T, P]) Iter() *Iter[C, T, P] {
	return &Iter[C, T, P]{w: newWalker(t, Boundary[C]{}, true)}
}

// IterPoints is Iter paired with each item's position.
func (t *QuadTree[C, T, P]) IterPoints() *PointIter[C, T, P] {
	return &PointIter[C, T, P]{w: newWalker(t, Boundary[C]{}, true)}
}
