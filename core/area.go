package core

// Point represents a 2D coordinate
type Point struct {
	X, Y int
}

// Add returns the component-wise sum
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Area represents a rectangular screen region
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int
}

// Right returns the x coordinate of the right edge (X + Width)
func (a Area) Right() int { return a.X + a.Width }

// Bottom returns the y coordinate of the bottom edge (Y + Height)
func (a Area) Bottom() int { return a.Y + a.Height }

// Contains reports whether p lies in the half-open area [X, Right) x [Y, Bottom),
// i.e. on one of the cells the area covers
func (a Area) Contains(p Point) bool {
	return a.X <= p.X && p.X < a.Right() && a.Y <= p.Y && p.Y < a.Bottom()
}

// ContainsClosed reports whether p lies inside the area, edges included
func (a Area) ContainsClosed(p Point) bool {
	return a.X <= p.X && p.X <= a.Right() && a.Y <= p.Y && p.Y <= a.Bottom()
}

// Overlaps reports closed-interval overlap on both axes
func (a Area) Overlaps(b Area) bool {
	return SpanOverlaps(a.X, a.Right(), b.X, b.Right()) &&
		SpanOverlaps(a.Y, a.Bottom(), b.Y, b.Bottom())
}

// SpanOverlaps reports whether closed intervals [lo1,hi1] and [lo2,hi2] intersect
func SpanOverlaps(lo1, hi1, lo2, hi2 int) bool {
	return lo1 <= hi2 && lo2 <= hi1
}
