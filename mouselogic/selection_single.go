package mouselogic

import (
	"github.com/logiksim/circuitcore/modifier"
	"github.com/logiksim/circuitcore/vocab"
)

// SelectionSingleLogic is a click-to-select tool, grounded on
// original_source's SelectionSingleLogic: it has no drag state of its own,
// only a press. A plain click replaces the modifier's visible selection
// with whatever single element sits under the cursor; a double click
// extends it instead — original_source's header carries the double_click
// flag with no surviving .cpp to fix its exact meaning, so this additive
// reading is recorded as a deliberate interpretation (see DESIGN.md's
// "M. mouselogic" entry).
type SelectionSingleLogic struct{}

// NewSelectionSingleLogic returns a SelectionSingleLogic. It carries no
// state between presses, so the zero value is equally usable.
func NewSelectionSingleLogic() *SelectionSingleLogic {
	return &SelectionSingleLogic{}
}

// MousePress toggles the element at point in m's visible selection,
// clearing it first unless doubleClick requests an additive toggle.
func (SelectionSingleLogic) MousePress(m *modifier.Modifier, point vocab.PointFine, doubleClick bool) {
	v := m.VisibleSelection()
	if v == nil {
		return
	}
	grid, ok := vocab.ToGrid(point)
	if !ok {
		return
	}
	if !doubleClick {
		v.Clear()
	}
	v.TogglePoint(grid)
}

// Finalize is a no-op: the tool holds no temporary artifacts of its own.
func (SelectionSingleLogic) Finalize(*modifier.Modifier) {}
