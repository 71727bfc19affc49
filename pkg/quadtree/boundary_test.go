package quadtree

import (
	"testing"
)

// =============================================================================
// Construction
// =============================================================================

func TestBetween(t *testing.T) {
	tests := []struct {
		name string
		p1   Point[int]
		p2   Point[int]
		want Boundary[int]
	}{
		{"already_ordered", Pt(1, 1), Pt(2, 2), NewBoundary(Pt(1, 1), 1, 1)},
		{"swap_x", Pt(2, 1), Pt(1, 2), NewBoundary(Pt(1, 1), 1, 1)},
		{"swap_y", Pt(1, 2), Pt(2, 1), NewBoundary(Pt(1, 1), 1, 1)},
		{"swap_both", Pt(2, 2), Pt(1, 1), NewBoundary(Pt(1, 1), 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Between(tt.p1, tt.p2)
			if got != tt.want {
				t.Errorf("Between(%v, %v) = %v, want %v", tt.p1, tt.p2, got, tt.want)
			}
		})
	}
}

func TestNewBoundary(t *testing.T) {
	b := NewBoundary(Pt(-10, -10), 20, 20)
	if b.Min() != Pt(-10, -10) || b.Max() != Pt(10, 10) {
		t.Errorf("got corners %v, %v", b.Min(), b.Max())
	}
	if b.Width() != 20 || b.Height() != 20 {
		t.Errorf("got extents %v x %v", b.Width(), b.Height())
	}
}

// =============================================================================
// Containment
// =============================================================================

func TestContains(t *testing.T) {
	b := NewBoundary(Pt(2, 2), 2, 2)

	tests := []struct {
		name string
		p    Point[int]
		want bool
	}{
		{"center", Pt(3, 3), true},
		{"min_corner", Pt(2, 2), true},
		{"max_corner", Pt(4, 4), true},
		{"on_left_border", Pt(2, 3), true},
		{"on_right_border", Pt(4, 3), true},
		{"left_of", Pt(1, 3), false},
		{"right_of", Pt(5, 3), false},
		{"above", Pt(3, 1), false},
		{"below", Pt(3, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

// =============================================================================
// Intersection
// =============================================================================

func TestIntersects(t *testing.T) {
	a := NewBoundary(Pt(1, 1), 4, 4)

	tests := []struct {
		name          string
		x, y, w, h    int
		want          bool
	}{
		{"b_inside_a", 2, 2, 1, 1, true},
		{"a_inside_b", 0, 0, 6, 6, true},
		{"left_overlap", 0, 2, 3, 1, true},
		{"right_overlap", 4, 2, 3, 1, true},
		{"top_overlap", 2, 0, 1, 3, true},
		{"bottom_overlap", 2, 4, 1, 3, true},
		{"b_left_of_a", -1, 2, 1, 1, false},
		{"b_right_of_a", 6, 2, 1, 1, false},
		{"b_above_a", 2, -1, 1, 1, false},
		{"b_below_a", 2, 6, 1, 1, false},
		{"touching_left_border", 0, 2, 1, 1, true},
		{"touching_right_border", 5, 2, 1, 1, true},
		{"touching_top_border", 2, 0, 1, 1, true},
		{"touching_bottom_border", 2, 5, 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoundary(Pt(tt.x, tt.y), tt.w, tt.h)
			if got := a.Intersects(b); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", b, got, tt.want)
			}
			if got := b.Intersects(a); got != tt.want {
				t.Errorf("Intersects is not symmetric for %v", b)
			}
		})
	}
}

func TestEncloses(t *testing.T) {
	a := NewBoundary(Pt(0, 0), 10, 10)

	tests := []struct {
		name string
		b    Boundary[int]
		want bool
	}{
		{"strictly_inside", NewBoundary(Pt(2, 2), 3, 3), true},
		{"equal", NewBoundary(Pt(0, 0), 10, 10), true},
		{"shared_border", NewBoundary(Pt(0, 0), 5, 5), true},
		{"partial_overlap", NewBoundary(Pt(8, 8), 4, 4), false},
		{"disjoint", NewBoundary(Pt(20, 20), 2, 2), false},
		{"larger", NewBoundary(Pt(-1, -1), 12, 12), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Encloses(tt.b); got != tt.want {
				t.Errorf("Encloses(%v) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

// =============================================================================
// Split
// =============================================================================

func TestSplitEven(t *testing.T) {
	b := NewBoundary(Pt(0, 0), 10, 10)
	q := b.Split()

	want := [4]Boundary[int]{
		NW: NewBoundary(Pt(0, 0), 5, 5),
		NE: NewBoundary(Pt(5, 0), 5, 5),
		SW: NewBoundary(Pt(0, 5), 5, 5),
		SE: NewBoundary(Pt(5, 5), 5, 5),
	}
	if q != want {
		t.Errorf("Split() = %v, want %v", q, want)
	}
}

func TestSplitOddExtent(t *testing.T) {
	// 7/2 truncates to 3; the remainder must land in the east/south quadrants.
	b := NewBoundary(Pt(0, 0), 7, 7)
	q := b.Split()

	want := [4]Boundary[int]{
		NW: Between(Pt(0, 0), Pt(3, 3)),
		NE: Between(Pt(3, 0), Pt(7, 3)),
		SW: Between(Pt(0, 3), Pt(3, 7)),
		SE: Between(Pt(3, 3), Pt(7, 7)),
	}
	if q != want {
		t.Errorf("Split() = %v, want %v", q, want)
	}
}

func TestSplitFloat(t *testing.T) {
	b := NewBoundary(Pt(0.0, 0.0), 1.0, 1.0)
	q := b.Split()
	if q[NW].Max() != Pt(0.5, 0.5) || q[SE].Min() != Pt(0.5, 0.5) {
		t.Errorf("Split() midpoint = %v / %v, want (0.5,0.5)", q[NW].Max(), q[SE].Min())
	}
}

func TestSplitTilesParent(t *testing.T) {
	tests := []struct {
		name string
		b    Boundary[int]
	}{
		{"even", NewBoundary(Pt(0, 0), 10, 10)},
		{"odd", NewBoundary(Pt(0, 0), 7, 9)},
		{"negative_origin", NewBoundary(Pt(-10, -10), 20, 20)},
		{"unit", NewBoundary(Pt(3, 3), 1, 1)},
		{"degenerate", NewBoundary(Pt(5, 5), 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.b.Split()

			// Outer corners are preserved.
			if q[NW].Min() != tt.b.Min() || q[SE].Max() != tt.b.Max() {
				t.Errorf("outer corners %v, %v, want %v, %v",
					q[NW].Min(), q[SE].Max(), tt.b.Min(), tt.b.Max())
			}
			// The four halves meet at a single midpoint with no gap.
			mid := q[NW].Max()
			if q[NE].Min() != Pt(mid.X, tt.b.Min().Y) || q[NE].Max() != Pt(tt.b.Max().X, mid.Y) {
				t.Errorf("NE = %v, mid %v", q[NE], mid)
			}
			if q[SW].Min() != Pt(tt.b.Min().X, mid.Y) || q[SW].Max() != Pt(mid.X, tt.b.Max().Y) {
				t.Errorf("SW = %v, mid %v", q[SW], mid)
			}
			if q[SE].Min() != mid {
				t.Errorf("SE = %v, mid %v", q[SE], mid)
			}
		})
	}
}

// =============================================================================
// Rendering and comparability
// =============================================================================

func TestBoundaryString(t *testing.T) {
	b := Between(Pt(1, 2), Pt(2, 3))
	if got := b.String(); got != "(1,2),(2,3)" {
		t.Errorf("String() = %q", got)
	}
}

func TestBoundaryAsMapKey(t *testing.T) {
	seen := map[Boundary[int]]int{}
	seen[NewBoundary(Pt(0, 0), 10, 10)]++
	seen[Between(Pt(10, 10), Pt(0, 0))]++
	if len(seen) != 1 || seen[NewBoundary(Pt(0, 0), 10, 10)] != 2 {
		t.Errorf("equal boundaries hash to different keys: %v", seen)
	}
}
