package quadtree

import "fmt"

// Quadrant indices as produced by Boundary.Split and stored in a node's
// child array. Bit 0 selects the east half, bit 1 the south half.
const (
	NW = iota
	NE
	SW
	SE
)

// Boundary is an axis-aligned rectangle with inclusive borders. The corners
// are normalized on construction so that p1 <= p2 componentwise. Boundary is
// comparable: two boundaries are equal iff their corners are equal, and a
// Boundary can be used as a map key.
type Boundary[C Coordinate] struct {
	p1 Point[C]
	p2 Point[C]
}

// NewBoundary returns the rectangle spanning origin to origin+(width,height).
// Width and height are assumed to be non-negative.
func NewBoundary[C Coordinate](origin Point[C], width, height C) Boundary[C] {
	return Boundary[C]{
		p1: origin,
		p2: Point[C]{X: origin.X + width, Y: origin.Y + height},
	}
}

// Between returns the rectangle spanning two arbitrary corner points,
// swapping coordinates as needed so p1 <= p2 componentwise.
func Between[C Coordinate](p1, p2 Point[C]) Boundary[C] {
	if p1.X > p2.X {
		p1.X, p2.X = p2.X, p1.X
	}
	if p1.Y > p2.Y {
		p1.Y, p2.Y = p2.Y, p1.Y
	}
	return Boundary[C]{p1: p1, p2: p2}
}

// Min returns the min-x/min-y corner.
func (b Boundary[C]) Min() Point[C] { return b.p1 }

// Max returns the max-x/max-y corner.
func (b Boundary[C]) Max() Point[C] { return b.p2 }

// Width returns the horizontal extent.
func (b Boundary[C]) Width() C { return b.p2.X - b.p1.X }

// Height returns the vertical extent.
func (b Boundary[C]) Height() C { return b.p2.Y - b.p1.Y }

// Contains reports whether p lies inside b. Borders are inclusive.
func (b Boundary[C]) Contains(p Point[C]) bool {
	return !(p.X < b.p1.X || p.X > b.p2.X || p.Y < b.p1.Y || p.Y > b.p2.Y)
}

// Intersects reports whether b and o share at least one point.
// Touching edges count as an intersection.
func (b Boundary[C]) Intersects(o Boundary[C]) bool {
	return !(o.p2.X < b.p1.X || o.p1.X > b.p2.X || o.p2.Y < b.p1.Y || o.p1.Y > b.p2.Y)
}

// Encloses reports whether o lies fully inside b.
func (b Boundary[C]) Encloses(o Boundary[C]) bool {
	return b.Contains(o.p1) && b.Contains(o.p2)
}

// Split partitions b into its four quadrants, indexed NW, NE, SW, SE.
// The quadrants tile b exactly: the east and south quadrants extend to the
// true far corner, so any truncation remainder from halving an odd integer
// extent is absorbed there instead of leaving a gap.
func (b Boundary[C]) Split() [4]Boundary[C] {
	mid := Point[C]{
		X: b.p1.X + (b.p2.X-b.p1.X)/2,
		Y: b.p1.Y + (b.p2.Y-b.p1.Y)/2,
	}
	return [4]Boundary[C]{
		NW: {p1: b.p1, p2: mid},
		NE: {p1: Point[C]{X: mid.X, Y: b.p1.Y}, p2: Point[C]{X: b.p2.X, Y: mid.Y}},
		SW: {p1: Point[C]{X: b.p1.X, Y: mid.Y}, p2: Point[C]{X: mid.X, Y: b.p2.Y}},
		SE: {p1: mid, p2: b.p2},
	}
}

func (b Boundary[C]) String() string {
	return fmt.Sprintf("%s,%s", b.p1, b.p2)
}
