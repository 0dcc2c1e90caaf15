// Package segment implements the per-wire segment tree (spec.md §4.2): the
// set of orthogonal line segments belonging to one wire, their endpoint
// classification, and a valid_parts overlay reusing package parts's
// interval algebra.
package segment

import (
	"errors"
	"sort"

	"github.com/logiksim/circuitcore/parts"
	"github.com/logiksim/circuitcore/vocab"
)

// ErrIndexOutOfRange is returned by any accessor given a SegmentIndex the
// tree does not currently hold.
var ErrIndexOutOfRange = errors.New("segment: index out of range")

// Info is one segment's geometry and endpoint classification.
type Info struct {
	Line      vocab.OrderedLine
	P0Type    vocab.EndpointType
	P1Type    vocab.EndpointType
}

// EndpointType returns the classification of the given end (0 for P0, 1 for
// P1).
func (i Info) EndpointType(end int) vocab.EndpointType {
	if end == 0 {
		return i.P0Type
	}
	return i.P1Type
}

type entry struct {
	info       Info
	validParts parts.PartSelection
}

// Tree is the dense, swap-and-delete-keyed set of segments making up one
// wire's segment tree, plus each segment's valid_parts overlay.
type Tree struct {
	entries []entry
}

// New returns an empty segment tree.
func New() *Tree { return &Tree{} }

// Len returns the number of segments currently stored.
func (t *Tree) Len() int { return len(t.entries) }

// Indices returns every currently-valid SegmentIndex, in storage order.
func (t *Tree) Indices() []vocab.SegmentIndex {
	out := make([]vocab.SegmentIndex, len(t.entries))
	for i := range t.entries {
		out[i] = vocab.SegmentIndex(i)
	}
	return out
}

func (t *Tree) bounds(idx vocab.SegmentIndex) error {
	if idx < 0 || int(idx) >= len(t.entries) {
		return ErrIndexOutOfRange
	}
	return nil
}

// Info returns the geometry/endpoint-classification of a segment.
func (t *Tree) Info(idx vocab.SegmentIndex) (Info, error) {
	if err := t.bounds(idx); err != nil {
		return Info{}, err
	}
	return t.entries[idx].info, nil
}

// Line returns a segment's ordered line.
func (t *Tree) Line(idx vocab.SegmentIndex) (vocab.OrderedLine, error) {
	info, err := t.Info(idx)
	return info.Line, err
}

// ValidParts returns the valid_parts overlay for idx. The returned pointer
// aliases the tree's own storage; callers must not retain it across
// mutating calls.
func (t *Tree) ValidParts(idx vocab.SegmentIndex) (*parts.PartSelection, error) {
	if err := t.bounds(idx); err != nil {
		return nil, err
	}
	return &t.entries[idx].validParts, nil
}

// AddSegment appends a new segment with no valid parts and returns its
// index.
func (t *Tree) AddSegment(info Info) vocab.SegmentIndex {
	t.entries = append(t.entries, entry{info: info})
	return vocab.SegmentIndex(len(t.entries) - 1)
}

// UpdateSegment replaces the geometry of an existing segment. Per spec.md
// §4.2: if newLine's full extent is a superset of the old line's extent,
// valid_parts survive as-is (translated into the new line's own coordinate
// space, since offsets are always relative to P0). If the new line is not a
// superset, valid_parts are clipped to whatever remains representable and
// any part that falls fully outside the new line is dropped.
func (t *Tree) UpdateSegment(idx vocab.SegmentIndex, newLine vocab.OrderedLine) error {
	if err := t.bounds(idx); err != nil {
		return err
	}
	e := &t.entries[idx]
	oldLine := e.info.Line

	oldP0InNew := offsetWithin(newLine, oldLine.P0)
	superset := oldLine.IsHorizontal() == newLine.IsHorizontal() &&
		withinLine(newLine, oldLine.P0) && withinLine(newLine, oldLine.P1)

	if superset {
		remapped := parts.New()
		for _, p := range e.validParts.Parts() {
			remapped.Add(p.Translate(oldP0InNew))
		}
		e.validParts = remapped
	} else {
		fullNew := vocab.ToPart(newLine)
		remapped := parts.New()
		for _, p := range e.validParts.Parts() {
			shifted := p.Translate(oldP0InNew)
			if clipped, ok := shifted.Intersect(fullNew); ok {
				remapped.Add(clipped)
			}
		}
		e.validParts = remapped
	}

	e.info.Line = newLine
	return nil
}

// withinLine reports whether p lies on the (infinite extension aside) given
// line's own axis and within its bounding box.
func withinLine(line vocab.OrderedLine, p vocab.Point) bool {
	if line.IsHorizontal() {
		return p.Y == line.P0.Y && p.X >= line.P0.X && p.X <= line.P1.X
	}
	return p.X == line.P0.X && p.Y >= line.P0.Y && p.Y <= line.P1.Y
}

// offsetWithin returns how far along line the point p lies, assuming it is
// on the line's axis (not necessarily within its bounds — used to translate
// an old P0 into a new line's coordinate space even when the old segment
// partially falls outside the new one).
func offsetWithin(line vocab.OrderedLine, p vocab.Point) vocab.Offset {
	if line.IsHorizontal() {
		return vocab.Offset(p.X - line.P0.X)
	}
	return vocab.Offset(p.Y - line.P0.Y)
}

// SetEndpointType updates the classification of one end of a segment.
func (t *Tree) SetEndpointType(idx vocab.SegmentIndex, end int, typ vocab.EndpointType) error {
	if err := t.bounds(idx); err != nil {
		return err
	}
	if end == 0 {
		t.entries[idx].info.P0Type = typ
	} else {
		t.entries[idx].info.P1Type = typ
	}
	return nil
}

// SwapAndDelete removes the segment at idx, moving the last segment into
// its place (if idx was not already last). It returns the index the moved
// segment used to have, and whether a move actually happened — callers use
// this to emit SegmentIdUpdated(old=lastIndex, new=idx).
func (t *Tree) SwapAndDelete(idx vocab.SegmentIndex) (movedFrom vocab.SegmentIndex, moved bool, err error) {
	if err = t.bounds(idx); err != nil {
		return 0, false, err
	}
	last := vocab.SegmentIndex(len(t.entries) - 1)
	if idx != last {
		t.entries[idx] = t.entries[last]
		moved = true
		movedFrom = last
	}
	t.entries = t.entries[:last]
	return movedFrom, moved, nil
}

// MarkValid adds part to idx's valid_parts overlay.
func (t *Tree) MarkValid(idx vocab.SegmentIndex, part vocab.Part) error {
	vp, err := t.ValidParts(idx)
	if err != nil {
		return err
	}
	vp.Add(part)
	return nil
}

// UnmarkValid removes part from idx's valid_parts overlay.
func (t *Tree) UnmarkValid(idx vocab.SegmentIndex, part vocab.Part) error {
	vp, err := t.ValidParts(idx)
	if err != nil {
		return err
	}
	vp.Remove(part)
	return nil
}

// HasInput reports whether any segment in the tree has an input endpoint.
func (t *Tree) HasInput() bool {
	for _, e := range t.entries {
		if e.info.P0Type == vocab.EndpointInput || e.info.P1Type == vocab.EndpointInput {
			return true
		}
	}
	return false
}

// BoundingRect returns the smallest Rect containing every segment, and
// whether the tree is non-empty.
func (t *Tree) BoundingRect() (vocab.Rect, bool) {
	if len(t.entries) == 0 {
		return vocab.Rect{}, false
	}
	first := t.entries[0].info.Line
	rect := vocab.Rect{P0: first.P0, P1: first.P1}
	for _, e := range t.entries[1:] {
		rect = rect.Union(vocab.Rect{P0: e.info.Line.P0, P1: e.info.Line.P1})
	}
	return rect, true
}

// Normalize reorders the entries into a canonical order (by OrderedLine,
// then endpoint types), used so two segment trees that represent the same
// set of segments compare equal regardless of insertion history (spec.md
// §8 "normalize(layout_a) == normalize(layout_b)").
func (t *Tree) Normalize() {
	sort.Slice(t.entries, func(i, j int) bool {
		a, b := t.entries[i].info, t.entries[j].info
		if a.Line != b.Line {
			return a.Line.Less(b.Line)
		}
		if a.P0Type != b.P0Type {
			return a.P0Type < b.P0Type
		}
		return a.P1Type < b.P1Type
	})
}

// Clone returns a deep copy of the tree.
func (t *Tree) Clone() *Tree {
	out := &Tree{entries: make([]entry, len(t.entries))}
	for i, e := range t.entries {
		out.entries[i] = entry{info: e.info, validParts: e.validParts.Clone()}
	}
	return out
}

// Equal reports whether two normalized trees hold the same segments and
// endpoint classifications (it does not normalize its receivers; callers
// call Normalize first, matching the original's normalize-then-compare
// idiom).
func (t *Tree) Equal(o *Tree) bool {
	if len(t.entries) != len(o.entries) {
		return false
	}
	for i := range t.entries {
		if t.entries[i].info != o.entries[i].info {
			return false
		}
	}
	return true
}
