package visibleselection

import (
	"testing"

	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/selection"
	"github.com/logiksim/circuitcore/spatialindex"
	"github.com/logiksim/circuitcore/vocab"
)

func rect(x0, y0, x1, y1 vocab.Grid) vocab.Rect {
	return vocab.Rect{P0: vocab.Point{X: x0, Y: y0}, P1: vocab.Point{X: x1, Y: y1}}
}

func logicItemData(boundingRect vocab.Rect) message.ElementCalculationData {
	return message.ElementCalculationData{
		Position:     boundingRect.P0,
		Orientation:  vocab.OrientationRight,
		InputCount:   1,
		OutputCount:  1,
		BoundingRect: boundingRect,
	}
}

func TestAddRectSelectsOverlappingLogicItem(t *testing.T) {
	idx := spatialindex.New()
	idx.HandleMessage(message.LogicItemInserted{ID: 1, Data: logicItemData(rect(0, 0, 2, 2))})
	idx.HandleMessage(message.LogicItemInserted{ID: 2, Data: logicItemData(rect(100, 100, 102, 102))})

	l := layout.New()
	v := New(selection.New(), idx, l)
	v.AddRect(rect(-1, -1, 5, 5))

	sel := v.Selection()
	if !sel.IsLogicItemSelected(1) {
		t.Fatalf("expected logic-item 1 to be selected")
	}
	if sel.IsLogicItemSelected(2) {
		t.Fatalf("did not expect logic-item 2 (far outside the rect) to be selected")
	}
}

func TestSubtractRectDeselects(t *testing.T) {
	idx := spatialindex.New()
	idx.HandleMessage(message.LogicItemInserted{ID: 1, Data: logicItemData(rect(0, 0, 2, 2))})

	l := layout.New()
	v := New(selection.New(), idx, l)
	v.AddRect(rect(-1, -1, 5, 5))
	v.SubtractRect(rect(-1, -1, 5, 5))

	if v.Selection().IsLogicItemSelected(1) {
		t.Fatalf("expected subtract_rect to deselect what add_rect selected")
	}
}

func TestTogglePointFlipsState(t *testing.T) {
	idx := spatialindex.New()
	idx.HandleMessage(message.LogicItemInserted{ID: 1, Data: logicItemData(rect(0, 0, 2, 2))})

	l := layout.New()
	v := New(selection.New(), idx, l)
	v.TogglePoint(vocab.Point{X: 1, Y: 1})
	if !v.Selection().IsLogicItemSelected(1) {
		t.Fatalf("expected toggle_point to select an unselected element")
	}

	v.TogglePoint(vocab.Point{X: 1, Y: 1})
	if v.Selection().IsLogicItemSelected(1) {
		t.Fatalf("expected a second toggle_point to deselect it again")
	}
}

func TestCacheInvalidatedByOperationsAndMessages(t *testing.T) {
	idx := spatialindex.New()
	l := layout.New()
	v := New(selection.New(), idx, l)

	first := v.Selection()
	if first != v.Selection() {
		t.Fatalf("expected repeated calls with no new operations to reuse the cache")
	}

	v.AddRect(rect(0, 0, 1, 1))
	if v.Selection() == first {
		t.Fatalf("expected AddRect to invalidate the cache")
	}

	cached := v.Selection()
	v.HandleMessage(message.LogicItemDeleted{ID: 1})
	if v.Selection() == cached {
		t.Fatalf("expected HandleMessage to invalidate the cache")
	}
}

func TestClearRevertsToInitialSelection(t *testing.T) {
	idx := spatialindex.New()
	idx.HandleMessage(message.LogicItemInserted{ID: 1, Data: logicItemData(rect(0, 0, 2, 2))})

	l := layout.New()
	initial := selection.New()
	_ = initial.AddLogicItem(7)
	v := New(initial, idx, l)
	v.AddRect(rect(-1, -1, 5, 5))

	v.Clear()
	sel := v.Selection()
	if !sel.IsLogicItemSelected(7) {
		t.Fatalf("expected Clear to keep the initial selection")
	}
	if sel.IsLogicItemSelected(1) {
		t.Fatalf("expected Clear to drop the add_rect operation")
	}
}
