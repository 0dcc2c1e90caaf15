package mouselogic

import (
	"testing"

	"github.com/logiksim/circuitcore/circuit"
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/modifier"
	"github.com/logiksim/circuitcore/vocab"
)

func andGate(pos vocab.Point) *layout.LogicItemDefinition {
	return &layout.LogicItemDefinition{
		Type:        vocab.LogicItemAnd,
		InputCount:  2,
		OutputCount: 1,
		Orientation: vocab.OrientationRight,
		Position:    pos,
		BoundingRect: vocab.Rect{
			P0: vocab.Point{X: pos.X, Y: pos.Y},
			P1: vocab.Point{X: pos.X + 2, Y: pos.Y + 2},
		},
	}
}

func newModifier() *modifier.Modifier {
	return modifier.NewBuilder(circuit.New()).Build()
}

func fine(x, y int32) vocab.PointFine {
	return vocab.PointFine{X: float64(x), Y: float64(y)}
}

func TestInsertLogicItemLogicTracksCursorAndDiscardsOnFinalize(t *testing.T) {
	m := newModifier()
	tool := NewInsertLogicItemLogic(andGate(vocab.Point{}))

	tool.MousePress(m, fine(0, 0))
	if m.Layout().LogicItems.Len() != 1 {
		t.Fatalf("expected one placed item, got %d", m.Layout().LogicItems.Len())
	}

	tool.MouseMove(m, fine(5, 5))
	if m.Layout().LogicItems.Len() != 1 {
		t.Fatalf("expected the moved preview to still be a single item, got %d", m.Layout().LogicItems.Len())
	}

	tool.Finalize(m)
	if m.Layout().LogicItems.Len() != 0 {
		t.Fatalf("expected Finalize to remove the unreleased preview, got %d", m.Layout().LogicItems.Len())
	}
	if m.CanUndo() {
		t.Fatalf("expected no undo entries to survive a fully-canceled placement")
	}
}

func TestInsertLogicItemLogicReleaseInsertsAndUndoes(t *testing.T) {
	m := newModifier()
	tool := NewInsertLogicItemLogic(andGate(vocab.Point{}))

	tool.MousePress(m, fine(0, 0))
	tool.MouseRelease(m, fine(0, 0))
	if m.Layout().LogicItems.Len() != 1 {
		t.Fatalf("expected one inserted item after release, got %d", m.Layout().LogicItems.Len())
	}

	m.UndoGroup()
	if m.Layout().LogicItems.Len() != 0 {
		t.Fatalf("expected undo to remove the whole placement group, got %d", m.Layout().LogicItems.Len())
	}
}

func TestInsertWireLogicDrawsTwoLegsAndCommitsOnRelease(t *testing.T) {
	m := newModifier()
	tool := NewInsertWireLogic()

	tool.MousePress(m, fine(0, 0))
	tool.MouseMove(m, fine(4, 3))

	tree, err := m.Layout().Wires.Tree(vocab.CollidingWireID)
	if err != nil {
		t.Fatalf("Tree(colliding): %v", err)
	}
	_ = tree // in collisions mode a colliding leg stays in the colliding tree and any other leg moves into an inserted wire; just check totals below

	total := 0
	for _, id := range m.Layout().Wires.Ids() {
		tr, err := m.Layout().Wires.Tree(id)
		if err != nil {
			continue
		}
		total += tr.Len()
	}
	if total != 2 {
		t.Fatalf("expected two drawn legs mid-drag, got %d", total)
	}

	tool.MouseRelease(m, fine(4, 3))
	if !m.CanUndo() {
		t.Fatalf("expected the wire insertion to be undoable")
	}
}

func TestInsertWireLogicFinalizeWithoutReleaseLeavesNoArtifacts(t *testing.T) {
	m := newModifier()
	tool := NewInsertWireLogic()

	tool.MousePress(m, fine(0, 0))
	tool.MouseMove(m, fine(4, 0))
	tool.Finalize(m)

	for _, id := range []vocab.WireID{vocab.TemporaryWireID, vocab.CollidingWireID} {
		tr, err := m.Layout().Wires.Tree(id)
		if err != nil {
			continue
		}
		if tr.Len() != 0 {
			t.Fatalf("expected Finalize to clear every leg, tree %d has %d segments", id, tr.Len())
		}
	}
}

func TestSelectionMoveLogicCommitsWithoutCollision(t *testing.T) {
	m := newModifier()
	key := m.AddLogicItem(andGate(vocab.Point{X: 0, Y: 0}), vocab.Point{X: 0, Y: 0}, vocab.ModeInsertOrDiscard)
	id, _ := m.Circuit().Keys.LogicItemID(key)

	selID := m.CreateSelection()
	sel, _ := m.Selection(selID)
	sel.AddLogicItem(id)

	tool := NewSelectionMoveLogic(selID, SelectionMoveArgs{})
	tool.MousePress(m, fine(0, 0))
	tool.MouseMove(m, fine(10, 10))
	tool.MouseRelease(m, fine(10, 10))

	if !tool.IsFinished() {
		t.Fatalf("expected the move to finish without requiring confirmation, state=%v", tool.State())
	}

	id, ok := m.Circuit().Keys.LogicItemID(key)
	if !ok {
		t.Fatalf("expected the key to still resolve after the committed move")
	}
	def, _ := m.Layout().LogicItems.Get(id)
	if def.Position != (vocab.Point{X: 10, Y: 10}) {
		t.Fatalf("expected the item to have moved to (10, 10), got %v", def.Position)
	}

	tool.Finalize(m)
}

func TestSelectionMoveLogicFinalizeWithoutReleaseRestoresPosition(t *testing.T) {
	m := newModifier()
	key := m.AddLogicItem(andGate(vocab.Point{X: 0, Y: 0}), vocab.Point{X: 0, Y: 0}, vocab.ModeInsertOrDiscard)
	id, _ := m.Circuit().Keys.LogicItemID(key)

	selID := m.CreateSelection()
	sel, _ := m.Selection(selID)
	sel.AddLogicItem(id)

	tool := NewSelectionMoveLogic(selID, SelectionMoveArgs{})
	tool.MousePress(m, fine(0, 0))
	tool.MouseMove(m, fine(7, 2))
	tool.Finalize(m)

	id, ok := m.Circuit().Keys.LogicItemID(key)
	if !ok {
		t.Fatalf("expected the key to still resolve after a canceled move")
	}
	def, _ := m.Layout().LogicItems.Get(id)
	if def.Position != (vocab.Point{X: 0, Y: 0}) {
		t.Fatalf("expected Finalize to restore the original position, got %v", def.Position)
	}
}

func TestSelectionSingleLogicTogglesUnderCursor(t *testing.T) {
	m := newModifier()
	key := m.AddLogicItem(andGate(vocab.Point{X: 0, Y: 0}), vocab.Point{X: 0, Y: 0}, vocab.ModeInsertOrDiscard)
	id, _ := m.Circuit().Keys.LogicItemID(key)

	m.SetVisibleSelection(m.NewVisibleSelection(nil, m.Circuit().Spatial))
	tool := NewSelectionSingleLogic()

	tool.MousePress(m, fine(1, 1), false)
	if !m.VisibleSelection().Selection().IsLogicItemSelected(id) {
		t.Fatalf("expected the click to select the logic-item under the cursor")
	}

	tool.Finalize(m)
}
