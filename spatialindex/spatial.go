// Package spatialindex implements the two collaborating structures of
// spec.md §4.4: a bounding-box spatial index over inserted elements, and
// four point→connection maps used to detect collisions and reclassify wire
// endpoints. Both are message.Subscribers; they never read the layout
// directly except when seeded from an existing one at construction time.
//
// No example repo or other_examples/ file in the retrieval pack carries an
// R-tree (or any spatial-indexing) dependency, so the bounding-box index is
// a from-scratch bucket grid, grounded on the teacher's plain bidirectional
// map style (confignew/idbinding.go) rather than on any third-party
// library — see DESIGN.md's spatialindex entry.
package spatialindex

import "github.com/logiksim/circuitcore/vocab"

// cellSize is the edge length, in grid units, of one spatial bucket. It
// trades bucket occupancy against the number of buckets a large element
// spans; it is not a spec-mandated constant.
const cellSize = vocab.Grid(16)

type cellKey struct{ X, Y int32 }

func cellOf(p vocab.Point) cellKey {
	return cellKey{X: int32(floorDiv(p.X, cellSize)), Y: int32(floorDiv(p.Y, cellSize))}
}

func floorDiv(a, b vocab.Grid) vocab.Grid {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func cellsOf(r vocab.Rect) []cellKey {
	x0, y0 := cellOf(r.P0).X, cellOf(r.P0).Y
	x1, y1 := cellOf(r.P1).X, cellOf(r.P1).Y
	cells := make([]cellKey, 0, int(x1-x0+1)*int(y1-y0+1))
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			cells = append(cells, cellKey{X: x, Y: y})
		}
	}
	return cells
}

// ElementKind discriminates the payload carried by one spatial-index entry.
type ElementKind int

const (
	ElementLogicItem ElementKind = iota
	ElementDecoration
	ElementSegment
)

// ElementRef names one inserted element; only the field matching Kind is
// meaningful.
type ElementRef struct {
	Kind       ElementKind
	LogicItem  vocab.LogicItemID
	Decoration vocab.DecorationID
	Segment    vocab.Segment
}

// SpatialIndex is the bounding-box index of part (a) of spec.md §4.4.
type SpatialIndex struct {
	rects   map[ElementRef]vocab.Rect
	buckets map[cellKey]map[ElementRef]struct{}
}

// NewSpatialIndex returns an empty SpatialIndex.
func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{
		rects:   make(map[ElementRef]vocab.Rect),
		buckets: make(map[cellKey]map[ElementRef]struct{}),
	}
}

func (idx *SpatialIndex) insert(ref ElementRef, rect vocab.Rect) {
	idx.rects[ref] = rect
	for _, c := range cellsOf(rect) {
		b, ok := idx.buckets[c]
		if !ok {
			b = make(map[ElementRef]struct{})
			idx.buckets[c] = b
		}
		b[ref] = struct{}{}
	}
}

func (idx *SpatialIndex) remove(ref ElementRef) {
	rect, ok := idx.rects[ref]
	if !ok {
		return
	}
	delete(idx.rects, ref)
	for _, c := range cellsOf(rect) {
		b := idx.buckets[c]
		delete(b, ref)
		if len(b) == 0 {
			delete(idx.buckets, c)
		}
	}
}

func (idx *SpatialIndex) rename(oldRef, newRef ElementRef) {
	rect, ok := idx.rects[oldRef]
	if !ok {
		return
	}
	idx.remove(oldRef)
	idx.insert(newRef, rect)
}

// Len returns the number of elements currently indexed.
func (idx *SpatialIndex) Len() int {
	return len(idx.rects)
}

// HasElement reports whether some inserted element's bounding rect contains
// point.
func (idx *SpatialIndex) HasElement(point vocab.Point) bool {
	for ref := range idx.candidates(vocab.Rect{P0: point, P1: point}) {
		if idx.rects[ref].Contains(point) {
			return true
		}
	}
	return false
}

// QuerySelection returns every element whose bounding rect overlaps rect.
func (idx *SpatialIndex) QuerySelection(rect vocab.Rect) []ElementRef {
	var out []ElementRef
	for ref := range idx.candidates(rect) {
		if idx.rects[ref].Overlaps(rect) {
			out = append(out, ref)
		}
	}
	return out
}

// candidates returns every element sharing at least one bucket with rect,
// a superset of the elements that actually overlap rect.
func (idx *SpatialIndex) candidates(rect vocab.Rect) map[ElementRef]struct{} {
	seen := make(map[ElementRef]struct{})
	for _, c := range cellsOf(rect) {
		for ref := range idx.buckets[c] {
			seen[ref] = struct{}{}
		}
	}
	return seen
}
