package mouselogic

import (
	"github.com/logiksim/circuitcore/keyindex"
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/modifier"
	"github.com/logiksim/circuitcore/vocab"
)

// InsertLogicItemLogic places one copy of a definition under the cursor,
// grounded on original_source's InsertLogicItemLogic: every press or move
// deletes whatever was placed before and re-adds at collisions, so the
// item always tracks the pointer; release upgrades it to
// insert_or_discard (which silently discards it if still colliding).
type InsertLogicItemLogic struct {
	def  *layout.LogicItemDefinition
	size vocab.Point // BoundingRect.P1 - BoundingRect.P0, fixed across placements

	key   keyindex.Key
	group group
}

// NewInsertLogicItemLogic starts a tool that places copies of def. def's
// own Position/BoundingRect only fix the item's size; every placement
// recomputes both relative to the cursor.
func NewInsertLogicItemLogic(def *layout.LogicItemDefinition) *InsertLogicItemLogic {
	return &InsertLogicItemLogic{
		def: def,
		size: vocab.Point{
			X: def.BoundingRect.P1.X - def.BoundingRect.P0.X,
			Y: def.BoundingRect.P1.Y - def.BoundingRect.P0.Y,
		},
	}
}

// MousePress (re)places the item at position, in collisions mode.
func (l *InsertLogicItemLogic) MousePress(m *modifier.Modifier, position vocab.PointFine) {
	l.group.begin(m)
	l.replace(m, position, vocab.ModeCollisions)
}

// MouseMove (re)places the item at position, in collisions mode.
func (l *InsertLogicItemLogic) MouseMove(m *modifier.Modifier, position vocab.PointFine) {
	l.replace(m, position, vocab.ModeCollisions)
}

// MouseRelease places the item at position in insert_or_discard — the
// final, possibly-discarded placement — and closes the tool's undo group.
func (l *InsertLogicItemLogic) MouseRelease(m *modifier.Modifier, position vocab.PointFine) {
	l.replace(m, position, vocab.ModeInsertOrDiscard)
	l.group.end(m)
}

// Finalize removes whatever is still placed and closes any open group,
// regardless of which callback last ran.
func (l *InsertLogicItemLogic) Finalize(m *modifier.Modifier) {
	deleteLogicItem(m, l.key)
	l.key = keyindex.Key{}
	l.group.end(m)
}

func (l *InsertLogicItemLogic) replace(m *modifier.Modifier, position vocab.PointFine, mode vocab.InsertionMode) {
	deleteLogicItem(m, l.key)
	l.key = keyindex.Key{}

	grid, ok := vocab.ToGrid(position)
	if !ok {
		return
	}
	l.def.BoundingRect = vocab.Rect{
		P0: grid,
		P1: vocab.Point{X: grid.X + l.size.X, Y: grid.Y + l.size.Y},
	}
	l.key = m.AddLogicItem(l.def, grid, mode)
}
