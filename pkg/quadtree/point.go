package quadtree

import "fmt"

// Coordinate is the set of numeric types usable as tree coordinates.
type Coordinate interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Point is a position in two dimensional space.
type Point[C Coordinate] struct {
	X C
	Y C
}

// Pt is shorthand for Point[C]{X: x, Y: y}.
func Pt[C Coordinate](x, y C) Point[C] {
	return Point[C]{X: x, Y: y}
}

func (p Point[C]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// AsPoint is implemented by items that can report their own position,
// allowing them to be inserted with Insert/InsertUnchecked.
type AsPoint[C Coordinate] interface {
	AsPoint() Point[C]
}

// entry is a stored (position, item) pair.
type entry[C Coordinate, T any] struct {
	point Point[C]
	item  T
}
