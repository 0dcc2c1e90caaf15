// Package mouselogic implements the per-tool mouse-driven editing state
// machines spec.md §4.12 describes: InsertLogicItemLogic, InsertWireLogic,
// SelectionMoveLogic, and SelectionSingleLogic. Each tool drives a
// *modifier.Modifier through nothing but its public API — the same
// boundary original_source's circuit_widget/mouse_logic classes keep
// against EditableCircuit — so a tool can never reach past the facade into
// package editing or package history directly.
//
// Every tool is grounded on the matching original_source header under
// component/circuit_widget/mouse_logic/ (see DESIGN.md's "M. mouselogic"
// entry); only declarations survive there, so the state machines below are
// built from spec.md §4.12's prose plus the shape those headers impose.
package mouselogic

import (
	"github.com/logiksim/circuitcore/keyindex"
	"github.com/logiksim/circuitcore/modifier"
)

// Logic is the interface every tool implements, matching
// original_source's EditingLogicInterface: the one method common to every
// tool regardless of its own mouse-callback shape. finalize is required to
// leave the layout free of temporary artifacts and tracked selections no
// matter which callback fired last (spec.md §5 "Cancellation").
type Logic interface {
	Finalize(m *modifier.Modifier)
}

// deleteLogicItem discards the logic-item key names, tolerating a key that
// no longer resolves (already cleaned up, or never successfully placed).
func deleteLogicItem(m *modifier.Modifier, key keyindex.Key) {
	if key.IsZero() {
		return
	}
	if _, ok := m.Circuit().Keys.LogicItemID(key); !ok {
		return
	}
	m.DeleteLogicItem(key)
}

// deleteWireSegment discards the wire segment key names, tolerating a key
// that no longer resolves.
func deleteWireSegment(m *modifier.Modifier, key keyindex.SegmentKey) {
	if key.WireKey.IsZero() {
		return
	}
	if _, ok := m.Circuit().Keys.SegmentOf(key); !ok {
		return
	}
	m.DeleteWireSegment(key)
}

// group opens an undo group the first time it is used and closes it
// exactly once, regardless of how many of press/move/release/Finalize
// actually fire — the same "whole gesture is one user action" grouping
// spec.md §4.11 asks every mouse-logic tool to provide.
type group struct {
	open bool
}

func (g *group) begin(m *modifier.Modifier) {
	if !g.open {
		m.BeginGroup()
		g.open = true
	}
}

func (g *group) end(m *modifier.Modifier) {
	if g.open {
		m.EndGroup()
		g.open = false
	}
}
