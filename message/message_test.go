package message

import (
	"testing"

	"github.com/logiksim/circuitcore/segment"
	"github.com/logiksim/circuitcore/vocab"
)

// TestExhaustiveSwitch documents, with a type switch run over one value of
// each variant, the full set
// of variants a conforming subscriber must switch over (spec.md §4.6).
func TestExhaustiveSwitch(t *testing.T) {
	msgs := []Message{
		LogicItemCreated{},
		LogicItemIDUpdated{},
		LogicItemDeleted{},
		LogicItemInserted{},
		LogicItemInsertedIDUpdated{},
		LogicItemUninserted{},

		DecorationCreated{},
		DecorationIDUpdated{},
		DecorationDeleted{},
		DecorationInserted{},
		DecorationInsertedIDUpdated{},
		DecorationUninserted{},

		WireCreated{},
		WireIDUpdated{},
		WireDeleted{},

		SegmentCreated{},
		SegmentIDUpdated{},
		SegmentPartMoved{},
		SegmentPartDeleted{},
		SegmentInserted{},
		SegmentInsertedIDUpdated{},
		SegmentEndPointsUpdated{},
		SegmentUninserted{},
	}

	seen := 0
	for _, m := range msgs {
		switch m.(type) {
		case LogicItemCreated, LogicItemIDUpdated, LogicItemDeleted,
			LogicItemInserted, LogicItemInsertedIDUpdated, LogicItemUninserted,
			DecorationCreated, DecorationIDUpdated, DecorationDeleted,
			DecorationInserted, DecorationInsertedIDUpdated, DecorationUninserted,
			WireCreated, WireIDUpdated, WireDeleted,
			SegmentCreated, SegmentIDUpdated, SegmentPartMoved, SegmentPartDeleted,
			SegmentInserted, SegmentInsertedIDUpdated, SegmentEndPointsUpdated, SegmentUninserted:
			seen++
		default:
			t.Fatalf("unhandled message variant %T", m)
		}
	}
	if seen != len(msgs) {
		t.Fatalf("expected to recognise all %d variants, recognised %d", len(msgs), seen)
	}
}

func TestSegmentMessagesCarryEndpointInfo(t *testing.T) {
	line, err := vocab.NewLine(vocab.Point{X: 0, Y: 0}, vocab.Point{X: 5, Y: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ordered := vocab.OrderLine(line)
	info := segment.Info{Line: ordered, P0Type: vocab.EndpointInput, P1Type: vocab.EndpointOutput}

	m := SegmentInserted{Segment: vocab.Segment{Wire: 2, Index: 0}, Info: info}
	if m.Info.EndpointType(0) != vocab.EndpointInput {
		t.Fatalf("expected P0 to be an input endpoint")
	}
}
