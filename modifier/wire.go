package modifier

import (
	"github.com/logiksim/circuitcore/editing"
	"github.com/logiksim/circuitcore/history"
	"github.com/logiksim/circuitcore/keyindex"
	"github.com/logiksim/circuitcore/vocab"
)

func (m *Modifier) lineOf(seg vocab.Segment) vocab.OrderedLine {
	tree, err := m.circuit.Layout.Wires.Tree(seg.Wire)
	if err != nil {
		stateViolation("wire segment's tree is missing")
	}
	line, err := tree.Line(seg.Index)
	if err != nil {
		stateViolation("wire segment index is invalid")
	}
	return line
}

// AddWireSegment inserts line in mode and returns the key identifying the
// new segment.
func (m *Modifier) AddWireSegment(line vocab.OrderedLine, mode vocab.InsertionMode) keyindex.SegmentKey {
	seg := editing.AddWireSegment(m.circuit, line, mode)
	if !seg.IsValid() {
		return keyindex.SegmentKey{}
	}
	key := m.segmentKey(seg)
	m.history.Push(history.DeleteWireSegment{Key: key, Line: line, Mode: mode})
	return key
}

// ChangeWireInsertionMode transitions the segment identified by key to
// newMode, returning the key the segment now has (segment keys are
// re-derived after every transition since the segment moves to a
// different wire tree) and whether it survived.
func (m *Modifier) ChangeWireInsertionMode(key keyindex.SegmentKey, newMode vocab.InsertionMode) (keyindex.SegmentKey, bool) {
	seg := m.segmentOf(key)
	oldMode := m.currentWireMode(seg)
	if oldMode == newMode {
		return key, true
	}
	line := m.lineOf(seg)

	editing.ChangeWireInsertionMode(m.circuit, &seg, newMode)
	if !seg.IsValid() {
		m.history.Push(history.AddWireSegment{Key: key, Line: line, Mode: oldMode})
		return keyindex.SegmentKey{}, false
	}
	newKey := m.segmentKey(seg)
	m.history.Push(history.ChangeWireInsertionMode{Key: newKey, OldMode: newMode, NewMode: oldMode})
	return newKey, true
}

// currentWireMode mirrors editing's wireSegmentMode: a segment in an
// actually inserted wire tree is still "collisions"-bucketed while its
// valid_parts overlay is non-empty, and only reports insert_or_discard once
// that mark has been dropped.
func (m *Modifier) currentWireMode(seg vocab.Segment) vocab.InsertionMode {
	switch seg.Wire {
	case vocab.TemporaryWireID:
		return vocab.ModeTemporary
	case vocab.CollidingWireID:
		return vocab.ModeCollisions
	default:
		tree, err := m.circuit.Layout.Wires.Tree(seg.Wire)
		if err != nil {
			return vocab.ModeInsertOrDiscard
		}
		vp, err := tree.ValidParts(seg.Index)
		if err != nil || vp.Empty() {
			return vocab.ModeInsertOrDiscard
		}
		return vocab.ModeCollisions
	}
}

// MoveOrDeleteTemporaryWire translates the temporary segment identified by
// key by (dx, dy), deleting it instead if the destination is not
// representable.
func (m *Modifier) MoveOrDeleteTemporaryWire(key keyindex.SegmentKey, dx, dy vocab.Grid) {
	seg := m.segmentOf(key)
	if dx == 0 && dy == 0 {
		return
	}
	if editing.IsWirePositionRepresentable(m.circuit.Layout, seg, dx, dy) {
		editing.MoveOrDeleteTemporaryWire(m.circuit, seg, dx, dy)
		m.history.Push(history.MoveWireSegment{Key: key, DX: -dx, DY: -dy})
		return
	}

	line := m.lineOf(seg)
	editing.MoveOrDeleteTemporaryWire(m.circuit, seg, dx, dy)
	m.history.Push(history.AddWireSegment{Key: key, Line: line, Mode: vocab.ModeTemporary})
}

// DeleteWireSegment removes the segment identified by key regardless of its
// current insertion mode, the wire-segment analog of DeleteLogicItem.
func (m *Modifier) DeleteWireSegment(key keyindex.SegmentKey) {
	m.deleteWireSegmentByKey(key)
}

// deleteWireSegmentByKey transitions the segment identified by key back to
// temporary (if it isn't already) and deletes it, the wire-segment analog
// of deleteLogicItemByKey.
func (m *Modifier) deleteWireSegmentByKey(key keyindex.SegmentKey) {
	seg := m.segmentOf(key)
	if seg.Wire != vocab.TemporaryWireID {
		newKey, ok := m.ChangeWireInsertionMode(key, vocab.ModeTemporary)
		if !ok {
			return
		}
		key = newKey
		seg = m.segmentOf(key)
	}
	line := m.lineOf(seg)
	editing.DeleteTemporaryWireSegment(m.circuit, seg)
	m.history.Push(history.AddWireSegment{Key: key, Line: line, Mode: vocab.ModeTemporary})
}

// SplitTemporaryBeforeInsert isolates every temporary segment's crossing
// points into their own whole segments (spec.md §4.9.2), a prerequisite
// step change_insertion_mode callers run before transitioning a sub-part.
func (m *Modifier) SplitTemporaryBeforeInsert() {
	editing.SplitTemporaryBeforeInsert(m.circuit)
}

// RegularizeTemporarySelection merges collinear runs and re-splits at
// T-junctions across the whole temporary tree, returning the cross points
// found.
func (m *Modifier) RegularizeTemporarySelection() []vocab.Point {
	return editing.RegularizeTemporarySelection(m.circuit)
}
