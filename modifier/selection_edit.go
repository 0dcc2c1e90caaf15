package modifier

import (
	"github.com/logiksim/circuitcore/vocab"
)

// DeleteAll deletes every logic-item, decoration, and whole selected wire
// segment in the selection identified by id, as one undo group (spec.md
// §6's delete_all).
func (m *Modifier) DeleteAll(id vocab.SelectionID) error {
	sel, err := m.Selection(id)
	if err != nil {
		return err
	}

	m.BeginGroup()
	defer m.EndGroup()

	for _, liID := range sel.LogicItems() {
		key, ok := m.circuit.Keys.LogicItemKey(liID)
		if !ok {
			continue
		}
		m.deleteLogicItemByKey(key)
	}
	for _, decID := range sel.Decorations() {
		key, ok := m.circuit.Keys.DecorationKey(decID)
		if !ok {
			continue
		}
		m.DeleteDecoration(key)
	}
	for _, seg := range sel.SelectedSegments() {
		key := m.segmentKey(seg)
		m.deleteWireSegmentByKey(key)
	}
	return nil
}

// ChangeSelectionInsertionMode transitions every logic-item and whole wire
// segment in the selection identified by id to mode, as one undo group —
// the whole-selection analog of ChangeLogicItemInsertionMode/
// ChangeWireInsertionMode that SelectionMoveLogic uses to promote a dragged
// selection between temporary, collisions, and insert_or_discard.
func (m *Modifier) ChangeSelectionInsertionMode(id vocab.SelectionID, mode vocab.InsertionMode) error {
	sel, err := m.Selection(id)
	if err != nil {
		return err
	}

	m.BeginGroup()
	defer m.EndGroup()

	for _, liID := range sel.LogicItems() {
		key, ok := m.circuit.Keys.LogicItemKey(liID)
		if !ok {
			continue
		}
		m.ChangeLogicItemInsertionMode(key, mode, vocab.HintNone)
	}
	for _, seg := range sel.SelectedSegments() {
		m.ChangeWireInsertionMode(m.segmentKey(seg), mode)
	}
	return nil
}

// MoveOrDeleteTemporarySelection applies MoveOrDeleteTemporaryLogicItem /
// MoveOrDeleteTemporaryWire to every temporary element in the selection
// identified by id, as one undo group.
func (m *Modifier) MoveOrDeleteTemporarySelection(id vocab.SelectionID, dx, dy vocab.Grid) error {
	sel, err := m.Selection(id)
	if err != nil {
		return err
	}

	m.BeginGroup()
	defer m.EndGroup()

	for _, liID := range sel.LogicItems() {
		key, ok := m.circuit.Keys.LogicItemKey(liID)
		if !ok {
			continue
		}
		m.MoveOrDeleteTemporaryLogicItem(key, dx, dy)
	}
	for _, seg := range sel.SelectedSegments() {
		if seg.Wire != vocab.TemporaryWireID {
			continue
		}
		m.MoveOrDeleteTemporaryWire(m.segmentKey(seg), dx, dy)
	}
	return nil
}
