package selection

import (
	"errors"
	"fmt"

	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/vocab"
)

// ErrDanglingElement is returned by Validate when the selection still
// references a logic-item, decoration, or segment the layout no longer has.
var ErrDanglingElement = errors.New("selection: references an element that no longer exists")

// Validate checks that every element s references still exists in l,
// grounded on the original's Selection::validate (there: a throwing
// postcondition check; here, an explicit error since this is not a "state
// violation" of the kind the rest of this module panics on, but a
// caller-observable staleness check deliberately exposed as an API).
func Validate(s *Selection, l *layout.Layout) error {
	remainingLogicItems := make(map[vocab.LogicItemID]struct{}, len(s.logicItems))
	for id := range s.logicItems {
		remainingLogicItems[id] = struct{}{}
	}
	for _, id := range l.LogicItems.Ids() {
		delete(remainingLogicItems, id)
	}
	if len(remainingLogicItems) != 0 {
		return fmt.Errorf("%w: %d logic-item(s)", ErrDanglingElement, len(remainingLogicItems))
	}

	remainingDecorations := make(map[vocab.DecorationID]struct{}, len(s.decorations))
	for id := range s.decorations {
		remainingDecorations[id] = struct{}{}
	}
	for _, id := range l.Decorations.Ids() {
		delete(remainingDecorations, id)
	}
	if len(remainingDecorations) != 0 {
		return fmt.Errorf("%w: %d decoration(s)", ErrDanglingElement, len(remainingDecorations))
	}

	remainingSegments := make(map[vocab.Segment]struct{}, len(s.segments))
	for seg := range s.segments {
		remainingSegments[seg] = struct{}{}
	}
	for _, wireID := range l.Wires.Ids() {
		tree, err := l.Wires.Tree(wireID)
		if err != nil {
			continue
		}
		for _, idx := range tree.Indices() {
			seg := vocab.Segment{Wire: wireID, Index: idx}
			ps, ok := s.segments[seg]
			if !ok {
				continue
			}
			line, err := tree.Line(idx)
			if err != nil {
				continue
			}
			if ps.MaxOffset() > vocab.ToPart(line).End {
				return fmt.Errorf("%w: part exceeds line length on %s", ErrDanglingElement, seg)
			}
			delete(remainingSegments, seg)
		}
	}
	if len(remainingSegments) != 0 {
		return fmt.Errorf("%w: %d segment(s)", ErrDanglingElement, len(remainingSegments))
	}

	return nil
}

// Summary reports the number of selected logic-items, decorations, and
// segments with at least one selected part.
func (s *Selection) Summary() string {
	return fmt.Sprintf("logic_items=%d decorations=%d segments=%d",
		len(s.logicItems), len(s.decorations), len(s.segments))
}

func (s *Selection) String() string {
	return fmt.Sprintf("Selection{%s}", s.Summary())
}
