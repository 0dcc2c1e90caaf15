package vocab

import (
	"fmt"
)

// Grid is a bounded signed integer coordinate on the editing grid.
// GridMin/GridMax bound the representable range; arithmetic that would
// leave this range is reported through AddGrid and Point.Translate below
// rather than silently wrapping.
type Grid int32

// GridMin and GridMax bound every representable grid coordinate. The
// range is deliberately narrower than int32's own range so that a line's
// length, and the sum of two coordinates, both still fit in a Grid without
// overflowing.
const (
	GridMin Grid = -(1 << 23)
	GridMax Grid = (1 << 23) - 1
)

// IsRepresentable reports whether g lies within [GridMin, GridMax].
func (g Grid) IsRepresentable() bool { return g >= GridMin && g <= GridMax }

// AddGrid adds two grid coordinates, reporting whether the result is still
// representable.
func AddGrid(a, b Grid) (Grid, bool) {
	sum := int64(a) + int64(b)
	if sum < int64(GridMin) || sum > int64(GridMax) {
		return 0, false
	}
	return Grid(sum), true
}

// Point is a 2D point on the editing grid.
type Point struct {
	X, Y Grid
}

// IsRepresentable reports whether both coordinates are representable.
func (p Point) IsRepresentable() bool { return p.X.IsRepresentable() && p.Y.IsRepresentable() }

// Less implements the lexicographic order used to canonicalize lines.
func (p Point) Less(o Point) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// Translate adds (dx, dy) to p, reporting whether the result is
// representable.
func (p Point) Translate(dx, dy Grid) (Point, bool) {
	x, ok := AddGrid(p.X, dx)
	if !ok {
		return Point{}, false
	}
	y, ok := AddGrid(p.Y, dy)
	if !ok {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

// IsOrthogonal reports whether p0->p1 is a horizontal or vertical,
// non-zero-length segment.
func IsOrthogonal(p0, p1 Point) bool {
	if p0 == p1 {
		return false
	}
	return p0.X == p1.X || p0.Y == p1.Y
}

// Line is a horizontal or vertical segment between two distinct points.
// Unlike OrderedLine its endpoints are not canonically ordered.
type Line struct {
	P0, P1 Point
}

// NewLine validates and constructs a Line. It returns an error if the two
// points do not form an orthogonal, non-zero-length segment.
func NewLine(p0, p1 Point) (Line, error) {
	if !IsOrthogonal(p0, p1) {
		return Line{}, fmt.Errorf("%w: %s -> %s", ErrNotOrthogonal, p0, p1)
	}
	return Line{P0: p0, P1: p1}, nil
}

// IsHorizontal reports whether the line runs along the x axis.
func (l Line) IsHorizontal() bool { return l.P0.Y == l.P1.Y }

// IsVertical reports whether the line runs along the y axis.
func (l Line) IsVertical() bool { return l.P0.X == l.P1.X }

// Length returns the (always positive) length of the line in grid units.
func (l Line) Length() Grid {
	if l.IsHorizontal() {
		return absGrid(l.P1.X - l.P0.X)
	}
	return absGrid(l.P1.Y - l.P0.Y)
}

func absGrid(g Grid) Grid {
	if g < 0 {
		return -g
	}
	return g
}

func (l Line) String() string { return fmt.Sprintf("Line{%s -> %s}", l.P0, l.P1) }

// OrderedLine is a Line whose endpoints are in canonical (lexicographically
// increasing) order: P0 < P1.
type OrderedLine struct {
	P0, P1 Point
}

// NewOrderedLine validates p0 < p1 and that the segment is orthogonal.
func NewOrderedLine(p0, p1 Point) (OrderedLine, error) {
	if !IsOrthogonal(p0, p1) {
		return OrderedLine{}, fmt.Errorf("%w: %s -> %s", ErrNotOrthogonal, p0, p1)
	}
	if !p0.Less(p1) {
		return OrderedLine{}, fmt.Errorf("%w: %s -> %s", ErrLineNotOrdered, p0, p1)
	}
	return OrderedLine{P0: p0, P1: p1}, nil
}

// OrderLine builds the canonical OrderedLine for an arbitrary (possibly
// reversed) Line, swapping endpoints as needed.
func OrderLine(l Line) OrderedLine {
	if l.P0.Less(l.P1) {
		return OrderedLine{P0: l.P0, P1: l.P1}
	}
	return OrderedLine{P0: l.P1, P1: l.P0}
}

// Line converts back to the unordered representation.
func (l OrderedLine) Line() Line { return Line{P0: l.P0, P1: l.P1} }

// IsHorizontal reports whether the line runs along the x axis.
func (l OrderedLine) IsHorizontal() bool { return l.P0.Y == l.P1.Y }

// IsVertical reports whether the line runs along the y axis.
func (l OrderedLine) IsVertical() bool { return l.P0.X == l.P1.X }

// Length returns the line's length in grid units.
func (l OrderedLine) Length() Grid { return l.Line().Length() }

// Less gives OrderedLine a total order: first by P0, then by P1. Used to
// canonicalize a segment tree's segment order (see segment.Normalize).
func (l OrderedLine) Less(o OrderedLine) bool {
	if l.P0 != o.P0 {
		return l.P0.Less(o.P0)
	}
	return l.P1.Less(o.P1)
}

func (l OrderedLine) String() string { return fmt.Sprintf("OrderedLine{%s -> %s}", l.P0, l.P1) }

// Offset is a non-negative position along a line, 0 at the P0 end.
type Offset int32

// Part is a [Begin, End) sub-interval along some implicit line length, with
// Begin < End.
type Part struct {
	Begin, End Offset
}

// NewPart validates Begin < End and Begin >= 0.
func NewPart(begin, end Offset) (Part, error) {
	if begin < 0 {
		return Part{}, fmt.Errorf("%w: begin=%d", ErrNegativeOffset, begin)
	}
	if begin >= end {
		return Part{}, fmt.Errorf("%w: [%d, %d)", ErrEmptyPart, begin, end)
	}
	return Part{Begin: begin, End: end}, nil
}

// Length returns End - Begin.
func (p Part) Length() Offset { return p.End - p.Begin }

// Overlaps reports whether p and o share any offset.
func (p Part) Overlaps(o Part) bool { return p.Begin < o.End && o.Begin < p.End }

// Touches reports whether p and o are adjacent or overlapping (used by the
// coalescing rule in package parts).
func (p Part) Touches(o Part) bool { return p.Begin <= o.End && o.Begin <= p.End }

// Contains reports whether o lies entirely within p.
func (p Part) Contains(o Part) bool { return p.Begin <= o.Begin && o.End <= p.End }

// Intersect returns the overlapping sub-interval of p and o, and whether one
// exists.
func (p Part) Intersect(o Part) (Part, bool) {
	begin := p.Begin
	if o.Begin > begin {
		begin = o.Begin
	}
	end := p.End
	if o.End < end {
		end = o.End
	}
	if begin >= end {
		return Part{}, false
	}
	return Part{Begin: begin, End: end}, true
}

// Translate shifts both endpoints by delta.
func (p Part) Translate(delta Offset) Part {
	return Part{Begin: p.Begin + delta, End: p.End + delta}
}

func (p Part) String() string { return fmt.Sprintf("Part[%d, %d)", p.Begin, p.End) }

// ToPart returns the full-line part [0, line.Length()) for an ordered line.
func ToPart(line OrderedLine) Part { return Part{Begin: 0, End: Offset(line.Length())} }

// ToLine returns the sub-segment of the full line corresponding to part.
func ToLine(full OrderedLine, part Part) OrderedLine {
	if full.IsHorizontal() {
		p0 := Point{X: full.P0.X + Grid(part.Begin), Y: full.P0.Y}
		p1 := Point{X: full.P0.X + Grid(part.End), Y: full.P0.Y}
		return OrderedLine{P0: p0, P1: p1}
	}
	p0 := Point{X: full.P0.X, Y: full.P0.Y + Grid(part.Begin)}
	p1 := Point{X: full.P0.X, Y: full.P0.Y + Grid(part.End)}
	return OrderedLine{P0: p0, P1: p1}
}

// Rect is an axis-aligned rectangle with P0 <= P1 componentwise.
type Rect struct {
	P0, P1 Point
}

// NewRect validates P0 <= P1 componentwise.
func NewRect(p0, p1 Point) (Rect, error) {
	if p0.X > p1.X || p0.Y > p1.Y {
		return Rect{}, fmt.Errorf("%w: %s, %s", ErrRectNotOrdered, p0, p1)
	}
	return Rect{P0: p0, P1: p1}, nil
}

// Contains reports whether the point lies within the rect, inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.P0.X && p.X <= r.P1.X && p.Y >= r.P0.Y && p.Y <= r.P1.Y
}

// Overlaps reports whether r and o share any point.
func (r Rect) Overlaps(o Rect) bool {
	return r.P0.X <= o.P1.X && o.P0.X <= r.P1.X &&
		r.P0.Y <= o.P1.Y && o.P0.Y <= r.P1.Y
}

// Union returns the smallest rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	min := func(a, b Grid) Grid {
		if a < b {
			return a
		}
		return b
	}
	max := func(a, b Grid) Grid {
		if a > b {
			return a
		}
		return b
	}
	return Rect{
		P0: Point{X: min(r.P0.X, o.P0.X), Y: min(r.P0.Y, o.P0.Y)},
		P1: Point{X: max(r.P1.X, o.P1.X), Y: max(r.P1.Y, o.P1.Y)},
	}
}

func (r Rect) String() string { return fmt.Sprintf("Rect{%s, %s}", r.P0, r.P1) }

// PointFine is a floating point scene-space point, used for hit-testing
// against the pixel/device space the GUI works in.
type PointFine struct {
	X, Y float64
}

// RectFine is the floating point analogue of Rect, used where callers
// (render / hit-testing) operate in continuous device space.
type RectFine struct {
	P0, P1 PointFine
}

// Contains reports whether the point lies within the rect, inclusive.
func (r RectFine) Contains(p PointFine) bool {
	return p.X >= r.P0.X && p.X <= r.P1.X && p.Y >= r.P0.Y && p.Y <= r.P1.Y
}

// ToRectFine widens an integer Rect into scene-space, inclusive of both
// boundary grid lines (matches the original's "element_selection_rect"
// rounding: integer grid cells are 1.0 scene unit wide).
func ToRectFine(r Rect) RectFine {
	return RectFine{
		P0: PointFine{X: float64(r.P0.X), Y: float64(r.P0.Y)},
		P1: PointFine{X: float64(r.P1.X), Y: float64(r.P1.Y)},
	}
}

// ToGrid rounds a scene-space point to the nearest grid point, reporting
// false if either rounded coordinate falls outside the representable
// range — the mouse-driven analogue of the original's to_grid(point_fine_t).
func ToGrid(p PointFine) (Point, bool) {
	x := Grid(int64(p.X + 0.5))
	if p.X < 0 {
		x = Grid(int64(p.X - 0.5))
	}
	y := Grid(int64(p.Y + 0.5))
	if p.Y < 0 {
		y = Grid(int64(p.Y - 0.5))
	}
	g := Point{X: x, Y: y}
	if !g.IsRepresentable() {
		return Point{}, false
	}
	return g, true
}
