package editing

import (
	"github.com/logiksim/circuitcore/circuit"
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/vocab"
)

// AddDecoration adds def at position and inserts it immediately: unlike a
// logic-item or wire segment, a decoration (text label, comment box) has no
// electrical connections and never collides or needs a temporary/colliding
// staging state in spec.md §4.9 — it goes straight to normal display.
// Non-representable positions return vocab.NullDecorationID without
// mutating anything, matching AddLogicItem's representability check.
func AddDecoration(c *circuit.Data, def *layout.DecorationDefinition, position vocab.Point) vocab.DecorationID {
	def.Position = position
	def.Display = vocab.DisplayNormal
	if !def.BoundingRect.P0.IsRepresentable() || !def.BoundingRect.P1.IsRepresentable() {
		return vocab.NullDecorationID
	}

	id := c.Layout.Decorations.Add(def)
	c.Submit(message.DecorationCreated{ID: id})
	c.Submit(message.DecorationInserted{
		ID: id,
		Data: message.ElementCalculationData{
			Position:     def.Position,
			BoundingRect: def.BoundingRect,
		},
	})
	return id
}

// DeleteDecoration removes id, the decoration analog of
// DeleteTemporaryLogicItem without the "must be temporary" precondition,
// since decorations have no other display state to be in.
func DeleteDecoration(c *circuit.Data, id vocab.DecorationID) {
	def, err := c.Layout.Decorations.Get(id)
	if err != nil {
		stateViolation("invalid decoration id")
	}
	c.Submit(message.DecorationUninserted{
		ID: id,
		Data: message.ElementCalculationData{
			Position:     def.Position,
			BoundingRect: def.BoundingRect,
		},
	})

	evicted, movedFrom, moved, err := c.Layout.Decorations.SwapAndDelete(id)
	if err != nil {
		stateViolation("invalid decoration id")
	}
	_ = evicted
	c.Submit(message.DecorationDeleted{ID: id})
	if moved {
		c.Submit(message.DecorationIDUpdated{OldID: movedFrom, NewID: id})
	}
}
