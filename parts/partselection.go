// Package parts implements the part-selection algebra (spec.md §4.1): a
// canonical sorted list of disjoint, non-touching vocab.Part intervals, with
// add/remove/coalesce and the move_parts cross-segment copy operation.
package parts

import (
	"sort"

	"github.com/logiksim/circuitcore/vocab"
)

// PartSelection is a canonical sorted list of disjoint, non-touching parts.
// The zero value is an empty selection, ready to use.
type PartSelection struct {
	items []vocab.Part
}

// New builds a PartSelection from zero or more parts, merging and sorting
// them exactly as repeated calls to Add would.
func New(ps ...vocab.Part) PartSelection {
	var s PartSelection
	for _, p := range ps {
		s.Add(p)
	}
	return s
}

// Empty reports whether the selection holds no parts.
func (s *PartSelection) Empty() bool { return len(s.items) == 0 }

// Len returns the number of disjoint stored intervals.
func (s *PartSelection) Len() int { return len(s.items) }

// Parts returns the stored intervals in ascending order. The returned slice
// must not be mutated by the caller.
func (s *PartSelection) Parts() []vocab.Part { return s.items }

// MaxOffset returns the largest End among the stored parts, or 0 if empty.
func (s *PartSelection) MaxOffset() vocab.Offset {
	if len(s.items) == 0 {
		return 0
	}
	return s.items[len(s.items)-1].End
}

// Add inserts part into the selection, coalescing it with any touching or
// overlapping neighbors so the disjoint-and-non-touching invariant holds
// afterwards.
func (s *PartSelection) Add(part vocab.Part) {
	lo := sort.Search(len(s.items), func(i int) bool { return s.items[i].End >= part.Begin })
	hi := lo
	merged := part
	for hi < len(s.items) && s.items[hi].Begin <= merged.End {
		if s.items[hi].Begin < merged.Begin {
			merged.Begin = s.items[hi].Begin
		}
		if s.items[hi].End > merged.End {
			merged.End = s.items[hi].End
		}
		hi++
	}

	s.items = append(s.items[:lo], append([]vocab.Part{merged}, s.items[hi:]...)...)
}

// Remove deletes part from the selection, splitting any stored interval
// that straddles it.
func (s *PartSelection) Remove(part vocab.Part) {
	out := s.items[:0:0]
	for _, existing := range s.items {
		if !existing.Overlaps(part) {
			out = append(out, existing)
			continue
		}
		if existing.Begin < part.Begin {
			out = append(out, vocab.Part{Begin: existing.Begin, End: part.Begin})
		}
		if existing.End > part.End {
			out = append(out, vocab.Part{Begin: part.End, End: existing.End})
		}
	}
	s.items = out
}

// Contains reports whether part lies entirely within one of the stored
// intervals.
func (s *PartSelection) Contains(part vocab.Part) bool {
	for _, existing := range s.items {
		if existing.Contains(part) {
			return true
		}
	}
	return false
}

// OverlapsAny reports whether part overlaps any stored interval.
func (s *PartSelection) OverlapsAny(part vocab.Part) bool {
	for _, existing := range s.items {
		if existing.Overlaps(part) {
			return true
		}
	}
	return false
}

// AOverlapsAnyOfB reports whether a overlaps any part in b, grounded on the
// original's geometry/part_selections.h free function of the same name.
func AOverlapsAnyOfB(a vocab.Part, b *PartSelection) bool { return b.OverlapsAny(a) }

// SelectionsOverlap reports whether any part of a overlaps any part of b.
func SelectionsOverlap(a, b *PartSelection) bool {
	for _, pa := range a.items {
		if b.OverlapsAny(pa) {
			return true
		}
	}
	return false
}

// Disjoint reports whether no part of a overlaps any part of b.
func Disjoint(a, b *PartSelection) bool { return !SelectionsOverlap(a, b) }

// Clone returns an independent copy of the selection.
func (s *PartSelection) Clone() PartSelection {
	out := PartSelection{items: make([]vocab.Part, len(s.items))}
	copy(out.items, s.items)
	return out
}

// IterFunc is called once per maximal sub-interval of full, in ascending
// order, with selected reporting whether that sub-interval lies in parts.
type IterFunc func(part vocab.Part, selected bool)

// IterParts walks full, split at every boundary of parts, calling fn once
// per resulting piece with whether it is selected. Grounded on the
// original's iter_parts helper used by Selection's point-based toggles.
func IterParts(full vocab.Part, parts *PartSelection, fn IterFunc) {
	cursor := full.Begin
	for _, p := range parts.items {
		piece, ok := p.Intersect(full)
		if !ok {
			continue
		}
		if piece.Begin > cursor {
			fn(vocab.Part{Begin: cursor, End: piece.Begin}, false)
		}
		fn(piece, true)
		cursor = piece.End
	}
	if cursor < full.End {
		fn(vocab.Part{Begin: cursor, End: full.End}, false)
	}
}

// CopyDefinition names the source and destination sub-intervals of a
// MoveParts call (spec.md §4.1 move_parts).
type CopyDefinition struct {
	Source      vocab.Part
	Destination vocab.Part
}

// MoveParts copies the intersection of def.Source with src, translates it
// into the destination coordinate space (def.Destination.Begin -
// def.Source.Begin), and inserts it into dst. It does not remove anything
// from src; callers that need a true move call Remove on the source
// themselves (this mirrors the original, where move_parts is a copy and the
// caller separately erases the source entries, see selection.cpp's
// handle_move_*_segment).
func MoveParts(dst, src *PartSelection, def CopyDefinition) {
	delta := def.Destination.Begin - def.Source.Begin

	for _, p := range src.items {
		piece, ok := p.Intersect(def.Source)
		if !ok {
			continue
		}
		dst.Add(piece.Translate(delta))
	}
}
