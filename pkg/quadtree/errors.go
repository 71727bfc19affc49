package quadtree

import "fmt"

// OutOfBoundsError is returned by checked inserts when the target point lies
// outside the tree's boundary. The tree is left unchanged.
type OutOfBoundsError[C Coordinate] struct {
	Boundary Boundary[C]
	Point    Point[C]
}

func (e *OutOfBoundsError[C]) Error() string {
	return fmt.Sprintf("point %s is outside of area %s", e.Point, e.Boundary)
}
