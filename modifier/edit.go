package modifier

import (
	"github.com/logiksim/circuitcore/editing"
	"github.com/logiksim/circuitcore/history"
	"github.com/logiksim/circuitcore/keyindex"
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/vocab"
)

func cloneLogicItemDefinition(def *layout.LogicItemDefinition) *layout.LogicItemDefinition {
	out := *def
	if def.InputInverters != nil {
		out.InputInverters = append([]bool(nil), def.InputInverters...)
	}
	if def.OutputInverters != nil {
		out.OutputInverters = append([]bool(nil), def.OutputInverters...)
	}
	if def.ClockGenerator != nil {
		cg := *def.ClockGenerator
		out.ClockGenerator = &cg
	}
	return &out
}

func cloneDecorationDefinition(def *layout.DecorationDefinition) *layout.DecorationDefinition {
	out := *def
	if def.TextElement != nil {
		te := *def.TextElement
		out.TextElement = &te
	}
	return &out
}

//
// Logic-items (spec.md §6 add_logicitem / change_insertion_mode /
// move_or_delete_temporary).
//

// AddLogicItem inserts def at position in mode and returns the stable key
// bound to the new item, or a zero Key if the position is not
// representable (spec.md §4.9 representability: not fatal, the operation
// is silently canceled).
func (m *Modifier) AddLogicItem(def *layout.LogicItemDefinition, position vocab.Point, mode vocab.InsertionMode) keyindex.Key {
	id := editing.AddLogicItem(m.circuit, def, position, mode)
	if !id.IsValid() {
		return keyindex.Key{}
	}
	key, _ := m.circuit.Keys.LogicItemKey(id)
	m.history.Push(history.DeleteLogicItem{
		Key:      key,
		Def:      cloneLogicItemDefinition(def),
		Position: position,
		Mode:     mode,
	})
	return key
}

// ChangeLogicItemInsertionMode transitions the item identified by key to
// newMode. It returns false if the transition deleted the item along the
// way (spec.md §4.9.1's colliding-to-insert discard case), in which case
// key no longer names anything.
func (m *Modifier) ChangeLogicItemInsertionMode(key keyindex.Key, newMode vocab.InsertionMode, hint vocab.InsertionModeHint) bool {
	id, ok := m.circuit.Keys.LogicItemID(key)
	if !ok {
		stateViolation("logic-item key does not resolve to a live id")
	}
	def, err := m.circuit.Layout.LogicItems.Get(id)
	if err != nil {
		stateViolation("logic-item id is invalid")
	}
	oldMode := currentLogicItemMode(def.Display)
	if oldMode == newMode {
		return true
	}

	editing.ChangeLogicItemInsertionMode(m.circuit, &id, newMode, hint)
	survived := id.IsValid()
	if survived {
		m.history.Push(history.ChangeLogicItemInsertionMode{Key: key, OldMode: newMode, NewMode: oldMode})
	} else {
		// The item was discarded while transitioning: record its full
		// recreation instead of a transition, since key no longer binds to
		// anything the insertion-mode transition could reapply to.
		m.history.Push(history.AddLogicItem{Key: key, Def: cloneLogicItemDefinition(def), Position: def.Position, Mode: oldMode})
	}
	return survived
}

func currentLogicItemMode(d vocab.DisplayState) vocab.InsertionMode {
	switch d {
	case vocab.DisplayTemporary:
		return vocab.ModeTemporary
	case vocab.DisplayColliding, vocab.DisplayValid:
		return vocab.ModeCollisions
	default: // normal
		return vocab.ModeInsertOrDiscard
	}
}

// MoveOrDeleteTemporaryLogicItem translates the temporary item identified
// by key by (dx, dy), deleting it instead if the destination is not
// representable.
func (m *Modifier) MoveOrDeleteTemporaryLogicItem(key keyindex.Key, dx, dy vocab.Grid) {
	id, ok := m.circuit.Keys.LogicItemID(key)
	if !ok {
		stateViolation("logic-item key does not resolve to a live id")
	}
	if dx == 0 && dy == 0 {
		return
	}
	if editing.IsLogicItemPositionRepresentable(m.circuit.Layout, id, dx, dy) {
		editing.MoveOrDeleteTemporaryLogicItem(m.circuit, id, dx, dy)
		m.history.Push(history.MoveLogicItem{Key: key, DX: -dx, DY: -dy})
		return
	}

	def, err := m.circuit.Layout.LogicItems.Get(id)
	if err != nil {
		stateViolation("logic-item id is invalid")
	}
	snapshot := cloneLogicItemDefinition(def)
	pos := def.Position
	editing.MoveOrDeleteTemporaryLogicItem(m.circuit, id, dx, dy)
	m.history.Push(history.AddLogicItem{Key: key, Def: snapshot, Position: pos, Mode: vocab.ModeTemporary})
}

// ToggleInverter flips the inverter bit at index on key's input (if input)
// or output pin vector.
func (m *Modifier) ToggleInverter(key keyindex.Key, input bool, index int) {
	id, ok := m.circuit.Keys.LogicItemID(key)
	if !ok {
		stateViolation("logic-item key does not resolve to a live id")
	}
	def, err := m.circuit.Layout.LogicItems.Get(id)
	if err != nil {
		stateViolation("logic-item id is invalid")
	}
	bits := def.InputInverters
	if !input {
		bits = def.OutputInverters
	}
	if len(bits) == 0 {
		stateViolation("cannot toggle an inverter on an empty inverter vector")
	}
	bits[index] = !bits[index]
	m.history.Push(history.ToggleLogicItemInverter{Key: key, Input: input, Index: index})
}

// SetClockGeneratorAttrs replaces key's clock-generator attributes.
func (m *Modifier) SetClockGeneratorAttrs(key keyindex.Key, attrs layout.ClockGeneratorAttrs) {
	id, ok := m.circuit.Keys.LogicItemID(key)
	if !ok {
		stateViolation("logic-item key does not resolve to a live id")
	}
	def, err := m.circuit.Layout.LogicItems.Get(id)
	if err != nil {
		stateViolation("logic-item id is invalid")
	}
	if def.ClockGenerator == nil {
		stateViolation("logic-item is not a clock generator")
	}
	old := *def.ClockGenerator
	*def.ClockGenerator = attrs
	m.history.Push(history.SetClockGeneratorAttrs{Key: key, Old: attrs, New: old})
}

// DeleteLogicItem removes the item identified by key regardless of its
// current insertion mode, transitioning it back to temporary first if
// needed — the entry point mouse-logic tools use to discard an item they
// placed themselves mid-drag (spec.md §4.12's InsertLogicItemLogic).
func (m *Modifier) DeleteLogicItem(key keyindex.Key) {
	m.deleteLogicItemByKey(key)
}

// deleteLogicItemByKey transitions the item identified by key back to
// temporary (if it isn't already) and deletes it, pushing the matching
// history records — the key-addressed analog of regularize-before-delete
// that DeleteAll needs for an arbitrarily-inserted selection.
func (m *Modifier) deleteLogicItemByKey(key keyindex.Key) {
	id, ok := m.circuit.Keys.LogicItemID(key)
	if !ok {
		return
	}
	def, err := m.circuit.Layout.LogicItems.Get(id)
	if err != nil {
		return
	}
	if currentLogicItemMode(def.Display) != vocab.ModeTemporary {
		if !m.ChangeLogicItemInsertionMode(key, vocab.ModeTemporary, vocab.HintNone) {
			return
		}
		id, ok = m.circuit.Keys.LogicItemID(key)
		if !ok {
			return
		}
	}
	def, err = m.circuit.Layout.LogicItems.Get(id)
	if err != nil {
		return
	}
	snapshot := cloneLogicItemDefinition(def)
	position := def.Position
	editing.DeleteTemporaryLogicItem(m.circuit, id)
	m.history.Push(history.AddLogicItem{Key: key, Def: snapshot, Position: position, Mode: vocab.ModeTemporary})
}
