package quadtree

import "sync"

// PointItem is a materialized (position, item) pair returned by
// LockedQuadTree queries.
type PointItem[C Coordinate, T any] struct {
	Point Point[C]
	Item  T
}

// LockedQuadTree wraps a QuadTree with a read-write lock so inserts may
// interleave with reads. Queries materialize their results under the read
// lock and return copies, since handing out references into the tree after
// the lock is released would break the traversal-stability contract.
type LockedQuadTree[C Coordinate, T any, P Capacity] struct {
	mu   sync.RWMutex
	tree *QuadTree[C, T, P]
}

// NewLocked returns a lock-guarded tree covering boundary where each node
// holds up to capacity items before splitting.
func NewLocked[C Coordinate, T any](boundary Boundary[C], capacity int) *LockedQuadTree[C, T, DynCap] {
	return &LockedQuadTree[C, T, DynCap]{tree: New[C, T](boundary, capacity)}
}

// NewLockedWithPolicy returns a lock-guarded tree with a custom capacity
// policy.
func NewLockedWithPolicy[C Coordinate, T any, P Capacity](boundary Boundary[C], policy P) *LockedQuadTree[C, T, P] {
	return &LockedQuadTree[C, T, P]{tree: NewWithPolicy[C, T](boundary, policy)}
}

// Boundary returns the area covered by the tree.
func (l *LockedQuadTree[C, T, P]) Boundary() Boundary[C] {
	return l.tree.Boundary()
}

// Capacity returns the per-node item bound.
func (l *LockedQuadTree[C, T, P]) Capacity() int {
	return l.tree.Capacity()
}

// Len returns the number of items stored in the tree.
func (l *LockedQuadTree[C, T, P]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Len()
}

// InsertAt stores item at point under the write lock. It returns an
// *OutOfBoundsError if point lies outside the tree's boundary.
func (l *LockedQuadTree[C, T, P]) InsertAt(point Point[C], item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.InsertAt(point, item)
}

// Query returns copies of the items whose point lies inside area.
func (l *LockedQuadTree[C, T, P]) Query(area Boundary[C]) []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []T
	q := l.tree.Query(area)
	for item, ok := q.Next(); ok; item, ok = q.Next() {
		out = append(out, *item)
	}
	return out
}

// QueryPoints returns copies of the (position, item) pairs inside area.
func (l *LockedQuadTree[C, T, P]) QueryPoints(area Boundary[C]) []PointItem[C, T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []PointItem[C, T]
	q := l.tree.QueryPoints(area)
	for p, item, ok := q.Next(); ok; p, item, ok = q.Next() {
		out = append(out, PointItem[C, T]{Point: p, Item: *item})
	}
	return out
}

// Items returns a copy of every item in the tree.
func (l *LockedQuadTree[C, T, P]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]T, 0, l.tree.Len())
	it := l.tree.Iter()
	for item, ok := it.Next(); ok; item, ok = it.Next() {
		out = append(out, *item)
	}
	return out
}
