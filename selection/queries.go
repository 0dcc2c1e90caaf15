package selection

import (
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/parts"
	"github.com/logiksim/circuitcore/vocab"
)

// elementOverdraw is the fixed scene-space padding added around a
// logic-item's or decoration's bounding rect when hit-testing a selection,
// grounded on original_source/src/layout_info.cpp's element_selection_rect
// for layout_calculation_data_t.
const elementOverdraw = 0.5

// segmentSelectionPadding is the perpendicular padding added around a wire
// segment's line when hit-testing a selection, grounded on the same file's
// defaults::line_selection_padding.
const segmentSelectionPadding = 0.3

// elementSelectionRect returns the scene-space hit-test rect for a
// logic-item's or decoration's bounding rect.
func elementSelectionRect(rect vocab.Rect) vocab.RectFine {
	fine := vocab.ToRectFine(rect)
	return vocab.RectFine{
		P0: vocab.PointFine{X: fine.P0.X - elementOverdraw, Y: fine.P0.Y - elementOverdraw},
		P1: vocab.PointFine{X: fine.P1.X + elementOverdraw, Y: fine.P1.Y + elementOverdraw},
	}
}

// segmentSelectionRect returns the scene-space hit-test rect for one wire
// line, padded perpendicular to its run so that a click near (not just on)
// the line still hits it.
func segmentSelectionRect(line vocab.OrderedLine) vocab.RectFine {
	p0 := vocab.PointFine{X: float64(line.P0.X), Y: float64(line.P0.Y)}
	p1 := vocab.PointFine{X: float64(line.P1.X), Y: float64(line.P1.Y)}
	if line.IsHorizontal() {
		return vocab.RectFine{
			P0: vocab.PointFine{X: p0.X, Y: p0.Y - segmentSelectionPadding},
			P1: vocab.PointFine{X: p1.X, Y: p1.Y + segmentSelectionPadding},
		}
	}
	return vocab.RectFine{
		P0: vocab.PointFine{X: p0.X - segmentSelectionPadding, Y: p0.Y},
		P1: vocab.PointFine{X: p1.X + segmentSelectionPadding, Y: p1.Y},
	}
}

func getLine(l *layout.Layout, segment vocab.Segment) (vocab.OrderedLine, error) {
	tree, err := l.Wires.Tree(segment.Wire)
	if err != nil {
		return vocab.OrderedLine{}, err
	}
	return tree.Line(segment.Index)
}

// HasLogicItems reports whether the selection holds any logic-item.
func HasLogicItems(s *Selection) bool { return len(s.logicItems) > 0 }

// GetLines returns the concrete OrderedLine for every selected segment part.
func GetLines(s *Selection, l *layout.Layout) []vocab.OrderedLine {
	var out []vocab.OrderedLine
	for seg, ps := range s.segments {
		full, err := getLine(l, seg)
		if err != nil {
			continue
		}
		for _, p := range ps.Parts() {
			out = append(out, vocab.ToLine(full, p))
		}
	}
	return out
}

// AnythingColliding reports whether any selected element is currently in
// the colliding display state.
func AnythingColliding(s *Selection, l *layout.Layout) bool {
	for seg := range s.segments {
		if seg.Wire == vocab.CollidingWireID {
			return true
		}
	}
	for id := range s.logicItems {
		if def, err := l.LogicItems.Get(id); err == nil && def.Display == vocab.DisplayColliding {
			return true
		}
	}
	return false
}

// AnythingTemporary reports whether any selected element is currently in
// the temporary display state.
func AnythingTemporary(s *Selection, l *layout.Layout) bool {
	for seg := range s.segments {
		if seg.Wire == vocab.TemporaryWireID {
			return true
		}
	}
	for id := range s.logicItems {
		if def, err := l.LogicItems.Get(id); err == nil && def.Display == vocab.DisplayTemporary {
			return true
		}
	}
	return false
}

// AnythingValid reports whether any selected element overlaps a valid_parts
// entry (wires) or is itself in the valid display state (logic-items).
func AnythingValid(s *Selection, l *layout.Layout) bool {
	for seg, ps := range s.segments {
		tree, err := l.Wires.Tree(seg.Wire)
		if err != nil {
			continue
		}
		validParts, err := tree.ValidParts(seg.Index)
		if err != nil {
			continue
		}
		if parts.SelectionsOverlap(ps, validParts) {
			return true
		}
	}
	for id := range s.logicItems {
		if def, err := l.LogicItems.Get(id); err == nil && def.Display == vocab.DisplayValid {
			return true
		}
	}
	return false
}

// DisplayStates returns the set of display states touched by the selection,
// grounded on the original's display_states: a wire segment contributes
// "valid" when it overlaps the tree's valid_parts, and "normal" when any
// selected part falls outside valid_parts (or the tree has no valid_parts
// overlay at all for those parts).
func DisplayStates(s *Selection, l *layout.Layout) vocab.DisplayStateMap {
	var result vocab.DisplayStateMap

	for id := range s.logicItems {
		if def, err := l.LogicItems.Get(id); err == nil {
			result.Set(def.Display)
		}
	}

	for seg, ps := range s.segments {
		switch seg.Wire {
		case vocab.TemporaryWireID:
			result.Set(vocab.DisplayTemporary)
			continue
		case vocab.CollidingWireID:
			result.Set(vocab.DisplayColliding)
			continue
		}

		if result.Get(vocab.DisplayValid) && result.Get(vocab.DisplayNormal) {
			continue
		}

		tree, err := l.Wires.Tree(seg.Wire)
		if err != nil {
			continue
		}
		validParts, err := tree.ValidParts(seg.Index)
		if err != nil {
			continue
		}

		anyValid := false
		for _, p := range ps.Parts() {
			if validParts.OverlapsAny(p) {
				anyValid = true
			}
			if !validParts.Contains(p) {
				result.Set(vocab.DisplayNormal)
			}
		}
		if anyValid {
			result.Set(vocab.DisplayValid)
		}
		if ps.Len() > 0 && validParts.Empty() {
			result.Set(vocab.DisplayNormal)
		}
	}

	return result
}

// IsSelected reports whether point hits any selected part of segment.
func IsSelected(s *Selection, l *layout.Layout, segment vocab.Segment, point vocab.PointFine) bool {
	full, err := getLine(l, segment)
	if err != nil {
		return false
	}
	for _, p := range s.SegmentParts(segment).Parts() {
		line := vocab.ToLine(full, p)
		if segmentSelectionRect(line).Contains(point) {
			return true
		}
	}
	return false
}

//
// Segment-level selection edits driven by the whole segment or a
// hit-tested point, grounded on the original's free functions of the same
// names.
//

// AddSegment selects the whole of segment.
func AddSegment(s *Selection, l *layout.Layout, segment vocab.Segment) {
	line, err := getLine(l, segment)
	if err != nil {
		return
	}
	s.AddSegment(vocab.SegmentPart{Segment: segment, Part: vocab.ToPart(line)})
}

// AddSegmentTree selects every segment of wireID's tree.
func AddSegmentTree(s *Selection, l *layout.Layout, wireID vocab.WireID) {
	tree, err := l.Wires.Tree(wireID)
	if err != nil {
		return
	}
	for _, idx := range tree.Indices() {
		AddSegment(s, l, vocab.Segment{Wire: wireID, Index: idx})
	}
}

// RemoveSegment deselects the whole of segment.
func RemoveSegment(s *Selection, l *layout.Layout, segment vocab.Segment) {
	line, err := getLine(l, segment)
	if err != nil {
		return
	}
	s.RemoveSegment(vocab.SegmentPart{Segment: segment, Part: vocab.ToPart(line)})
}

// RemoveSegmentTree deselects every segment of wireID's tree.
func RemoveSegmentTree(s *Selection, l *layout.Layout, wireID vocab.WireID) {
	tree, err := l.Wires.Tree(wireID)
	if err != nil {
		return
	}
	for _, idx := range tree.Indices() {
		RemoveSegment(s, l, vocab.Segment{Wire: wireID, Index: idx})
	}
}

// AddSegmentPart selects whichever sub-part of segment's currently
// unselected span is hit by point.
func AddSegmentPart(s *Selection, l *layout.Layout, segment vocab.Segment, point vocab.PointFine) {
	full, err := getLine(l, segment)
	if err != nil {
		return
	}
	selected := s.SegmentParts(segment).Clone()
	parts.IterParts(vocab.ToPart(full), &selected, func(part vocab.Part, _ bool) {
		line := vocab.ToLine(full, part)
		if segmentSelectionRect(line).Contains(point) {
			s.AddSegment(vocab.SegmentPart{Segment: segment, Part: part})
		}
	})
}

// RemoveSegmentPart deselects whichever currently-selected sub-part of
// segment is hit by point.
func RemoveSegmentPart(s *Selection, l *layout.Layout, segment vocab.Segment, point vocab.PointFine) {
	full, err := getLine(l, segment)
	if err != nil {
		return
	}
	for _, part := range s.SegmentParts(segment).Parts() {
		line := vocab.ToLine(full, part)
		if segmentSelectionRect(line).Contains(point) {
			s.RemoveSegment(vocab.SegmentPart{Segment: segment, Part: part})
		}
	}
}

// ToggleSegmentPart flips the selection state of whichever sub-part of
// segment is hit by point.
func ToggleSegmentPart(s *Selection, l *layout.Layout, segment vocab.Segment, point vocab.PointFine) {
	full, err := getLine(l, segment)
	if err != nil {
		return
	}
	selected := s.SegmentParts(segment).Clone()
	parts.IterParts(vocab.ToPart(full), &selected, func(part vocab.Part, wasSelected bool) {
		line := vocab.ToLine(full, part)
		if !segmentSelectionRect(line).Contains(point) {
			return
		}
		if wasSelected {
			s.RemoveSegment(vocab.SegmentPart{Segment: segment, Part: part})
		} else {
			s.AddSegment(vocab.SegmentPart{Segment: segment, Part: part})
		}
	})
}
