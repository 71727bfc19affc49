package quadtree

// frame is one level of the traversal stack: a cursor over a node's own
// items, a cursor over its children, and whether the query area is already
// known to enclose the node's whole boundary.
type frame[C Coordinate, T any, P Capacity] struct {
	node     *QuadTree[C, T, P]
	itemIdx  int
	childIdx int
	enclosed bool
}

// walker is the traversal engine shared by Query and Iter. It produces one
// entry per pull, depth-first: a node's own items in insertion order, then
// each intersecting child's subtree in NW, NE, SW, SE order.
//
// Once a node's boundary is fully enclosed by the area the flag propagates
// down the subtree and every remaining item and descendant is drained without
// further geometric tests. Children whose boundary does not intersect the
// area are skipped entirely. With all set, every node is treated as enclosed
// and the area is never consulted.
type walker[C Coordinate, T any, P Capacity] struct {
	area  Boundary[C]
	all   bool
	stack []frame[C, T, P]
}

func newWalker[C Coordinate, T any, P Capacity](t *QuadTree[C, T, P], area Boundary[C], all bool) walker[C, T, P] {
	w := walker[C, T, P]{area: area, all: all}
	switch {
	case all:
		w.stack = append(w.stack, frame[C, T, P]{node: t, enclosed: true})
	case area.Intersects(t.boundary):
		w.stack = append(w.stack, frame[C, T, P]{node: t, enclosed: area.Encloses(t.boundary)})
	}
	return w
}

func (w *walker[C, T, P]) next() *entry[C, T] {
	for len(w.stack) > 0 {
		f := &w.stack[len(w.stack)-1]

		for f.itemIdx < len(f.node.items) {
			e := &f.node.items[f.itemIdx]
			f.itemIdx++
			if f.enclosed || w.area.Contains(e.point) {
				return e
			}
		}

		if f.node.children != nil && f.childIdx < len(f.node.children) {
			var pushed bool
			for f.childIdx < len(f.node.children) {
				child := &f.node.children[f.childIdx]
				f.childIdx++
				switch {
				case f.enclosed:
					w.stack = append(w.stack, frame[C, T, P]{node: child, enclosed: true})
					pushed = true
				case w.area.Intersects(child.boundary):
					w.stack = append(w.stack, frame[C, T, P]{node: child, enclosed: w.area.Encloses(child.boundary)})
					pushed = true
				}
				if pushed {
					break
				}
			}
			if pushed {
				continue
			}
		}

		w.stack = w.stack[:len(w.stack)-1]
	}
	return nil
}

// Query is a lazy sequence of items inside an area. It is single-pass; build
// a new one to traverse again. The returned references point into the tree's
// storage and stay valid as long as the tree is not mutated.
type Query[C Coordinate, T any, P Capacity] struct {
	w walker[C, T, P]
}

// Next returns the next matching item, or false when the sequence is done.
func (q *Query[C, T, P]) Next() (*T, bool) {
	if e := q.w.next(); e != nil {
		return &e.item, true
	}
	return nil, false
}

// PointQuery is Query paired with each item's position.
type PointQuery[C Coordinate, T any, P Capacity] struct {
	w walker[C, T, P]
}

// Next returns the next matching position and item, or false when done.
func (q *PointQuery[C, T, P]) Next() (Point[C], *T, bool) {
	if e := q.w.next(); e != nil {
		return e.point, &e.item, true
	}
	return Point[C]{}, nil, false
}

// Iter is a lazy sequence over every item in the tree. It is the enclosed
// special case of Query: no geometric tests are performed.
type Iter[C Coordinate, T any, P Capacity] struct {
	w walker[C, T, P]
}

// Next returns the next item, or false when the sequence is done.
func (it *Iter[C, T, P]) Next() (*T, bool) {
	if e := it.w.next(); e != nil {
		return &e.item, true
	}
	return nil, false
}

// PointIter is Iter paired with each item's position.
type PointIter[C Coordinate, T any, P Capacity] struct {
	w walker[C, T, P]
}

// Next returns the next position and item, or false when done.
func (it *PointIter[C, T, P]) Next() (Point[C], *T, bool) {
	if e := it.w.next(); e != nil {
		return e.point, &e.item, true
	}
	return Point[C]{}, nil, false
}
