package selection

import (
	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/parts"
)

// HandleMessage implements message.Subscriber, absorbing the subset of
// layout messages a Selection needs to stay consistent (spec.md §4.7):
// logic-item/decoration deletion and renumbering, and the three segment
// messages that can split, merge, or relocate previously-selected parts.
func (s *Selection) HandleMessage(m message.Message) {
	switch msg := m.(type) {
	case message.LogicItemDeleted:
		delete(s.logicItems, msg.ID)
	case message.LogicItemIDUpdated:
		if _, ok := s.logicItems[msg.OldID]; ok {
			delete(s.logicItems, msg.OldID)
			s.logicItems[msg.NewID] = struct{}{}
		}

	case message.DecorationDeleted:
		delete(s.decorations, msg.ID)
	case message.DecorationIDUpdated:
		if _, ok := s.decorations[msg.OldID]; ok {
			delete(s.decorations, msg.OldID)
			s.decorations[msg.NewID] = struct{}{}
		}

	case message.SegmentIDUpdated:
		if ps, ok := s.segments[msg.OldSegment]; ok {
			delete(s.segments, msg.OldSegment)
			s.segments[msg.NewSegment] = ps
		}

	case message.SegmentPartMoved:
		s.handleSegmentPartMoved(msg)

	case message.SegmentPartDeleted:
		s.RemoveSegment(msg.SegmentPart)
	}
}

// handleSegmentPartMoved mirrors original_source's handle_move_same_segment
// / handle_move_different_segment split: moving within one segment mutates
// its PartSelection in place, moving across segments copies the
// intersection into the destination and leaves the source's remainder
// behind (parts.MoveParts never mutates src itself).
func (s *Selection) handleSegmentPartMoved(msg message.SegmentPartMoved) {
	def := parts.CopyDefinition{
		Source:      msg.Source.Part,
		Destination: msg.Destination.Part,
	}

	if msg.Source.Segment == msg.Destination.Segment {
		ps, ok := s.segments[msg.Source.Segment]
		if !ok {
			return
		}
		// MoveParts ranges over src.items while appending into dst; calling
		// it with dst == src risks Add's in-place splice overwriting the
		// slice the range loop is still reading. Build the result against a
		// clone instead, then swap it in.
		moved := ps.Clone()
		parts.MoveParts(&moved, ps, def)
		moved.Remove(def.Source)
		*ps = moved
		if ps.Empty() {
			delete(s.segments, msg.Source.Segment)
		}
		return
	}

	src, ok := s.segments[msg.Source.Segment]
	if !ok {
		return
	}

	dst, ok := s.segments[msg.Destination.Segment]
	if !ok {
		fresh := parts.New()
		dst = &fresh
	}
	parts.MoveParts(dst, src, def)

	src.Remove(def.Source)
	if src.Empty() {
		delete(s.segments, msg.Source.Segment)
	}
	if !dst.Empty() {
		s.segments[msg.Destination.Segment] = dst
	}
}
