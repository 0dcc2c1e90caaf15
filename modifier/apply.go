package modifier

import (
	"github.com/logiksim/circuitcore/editing"
	"github.com/logiksim/circuitcore/history"
	"github.com/logiksim/circuitcore/vocab"
)

// applyRecord interprets one history.Record against the live circuit; it is
// the callback handed to history.Stack.Undo/Redo. Keys resolved through
// m.resolveKey/m.resolveSegmentKey so a record that re-targets an entity
// recreated earlier in the same undo/redo pass follows its fresh key
// rather than the one it was originally pushed with.
func (m *Modifier) applyRecord(r history.Record) {
	switch rec := r.(type) {

	case history.MoveLogicItem:
		key := m.resolveKey(rec.Key)
		id, ok := m.circuit.Keys.LogicItemID(key)
		if !ok {
			stateViolation("undo/redo: logic-item key does not resolve")
		}
		editing.MoveOrDeleteTemporaryLogicItem(m.circuit, id, rec.DX, rec.DY)

	case history.ChangeLogicItemInsertionMode:
		key := m.resolveKey(rec.Key)
		id, ok := m.circuit.Keys.LogicItemID(key)
		if !ok {
			stateViolation("undo/redo: logic-item key does not resolve")
		}
		editing.ChangeLogicItemInsertionMode(m.circuit, &id, rec.NewMode, vocab.HintNone)

	case history.AddLogicItem:
		id := editing.AddLogicItem(m.circuit, cloneLogicItemDefinition(rec.Def), rec.Position, rec.Mode)
		if id.IsValid() {
			newKey, _ := m.circuit.Keys.LogicItemKey(id)
			m.keyRemap[rec.Key] = newKey
		}

	case history.DeleteLogicItem:
		key := m.resolveKey(rec.Key)
		id, ok := m.circuit.Keys.LogicItemID(key)
		if !ok {
			stateViolation("undo/redo: logic-item key does not resolve")
		}
		if mode := currentLogicItemModeByID(m, id); mode != vocab.ModeTemporary {
			editing.ChangeLogicItemInsertionMode(m.circuit, &id, vocab.ModeTemporary, vocab.HintNone)
		}
		if id.IsValid() {
			editing.DeleteTemporaryLogicItem(m.circuit, id)
		}

	case history.ToggleLogicItemInverter:
		key := m.resolveKey(rec.Key)
		id, ok := m.circuit.Keys.LogicItemID(key)
		if !ok {
			stateViolation("undo/redo: logic-item key does not resolve")
		}
		def, err := m.circuit.Layout.LogicItems.Get(id)
		if err != nil {
			stateViolation("undo/redo: logic-item id is invalid")
		}
		bits := def.InputInverters
		if !rec.Input {
			bits = def.OutputInverters
		}
		bits[rec.Index] = !bits[rec.Index]

	case history.SetClockGeneratorAttrs:
		key := m.resolveKey(rec.Key)
		id, ok := m.circuit.Keys.LogicItemID(key)
		if !ok {
			stateViolation("undo/redo: logic-item key does not resolve")
		}
		def, err := m.circuit.Layout.LogicItems.Get(id)
		if err != nil {
			stateViolation("undo/redo: logic-item id is invalid")
		}
		*def.ClockGenerator = rec.New

	case history.AddDecoration:
		id := editing.AddDecoration(m.circuit, cloneDecorationDefinition(rec.Def), rec.Position)
		if id.IsValid() {
			newKey, _ := m.circuit.Keys.DecorationKey(id)
			m.keyRemap[rec.Key] = newKey
		}

	case history.DeleteDecoration:
		key := m.resolveKey(rec.Key)
		id, ok := m.circuit.Keys.DecorationID(key)
		if !ok {
			stateViolation("undo/redo: decoration key does not resolve")
		}
		editing.DeleteDecoration(m.circuit, id)

	case history.SetTextElementAttrs:
		key := m.resolveKey(rec.Key)
		id, ok := m.circuit.Keys.DecorationID(key)
		if !ok {
			stateViolation("undo/redo: decoration key does not resolve")
		}
		def, err := m.circuit.Layout.Decorations.Get(id)
		if err != nil {
			stateViolation("undo/redo: decoration id is invalid")
		}
		*def.TextElement = rec.New

	case history.MoveWireSegment:
		seg := m.segmentOf(m.resolveSegmentKey(rec.Key))
		editing.MoveOrDeleteTemporaryWire(m.circuit, seg, rec.DX, rec.DY)

	case history.ChangeWireInsertionMode:
		seg := m.segmentOf(m.resolveSegmentKey(rec.Key))
		editing.ChangeWireInsertionMode(m.circuit, &seg, rec.NewMode)

	case history.AddWireSegment:
		seg := editing.AddWireSegment(m.circuit, rec.Line, rec.Mode)
		if seg.IsValid() {
			m.keyRemap[rec.Key.WireKey] = m.segmentKey(seg).WireKey
		}

	case history.DeleteWireSegment:
		seg := m.segmentOf(m.resolveSegmentKey(rec.Key))
		if seg.Wire != vocab.TemporaryWireID {
			editing.ChangeWireInsertionMode(m.circuit, &seg, vocab.ModeTemporary)
		}
		if seg.IsValid() {
			editing.DeleteTemporaryWireSegment(m.circuit, seg)
		}

	default:
		stateViolation("unhandled record type %T", r)
	}
}

func currentLogicItemModeByID(m *Modifier, id vocab.LogicItemID) vocab.InsertionMode {
	def, err := m.circuit.Layout.LogicItems.Get(id)
	if err != nil {
		stateViolation("undo/redo: logic-item id is invalid")
	}
	return currentLogicItemMode(def.Display)
}
