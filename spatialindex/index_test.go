package spatialindex

import (
	"testing"

	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/segment"
	"github.com/logiksim/circuitcore/vocab"
)

func TestIndexTracksLogicItemLifecycle(t *testing.T) {
	idx := New()
	data := message.ElementCalculationData{
		Position:     vocab.Point{X: 0, Y: 0},
		Orientation:  vocab.OrientationRight,
		InputCount:   2,
		OutputCount:  1,
		BoundingRect: rect(0, 0, 2, 2),
	}

	idx.HandleMessage(message.LogicItemInserted{ID: 7, Data: data})
	if idx.Spatial.Len() != 1 {
		t.Fatalf("expected 1 indexed element, got %d", idx.Spatial.Len())
	}
	if conn, ok := idx.Connections.LogicItemInputAt(vocab.Point{X: 0, Y: 0}); !ok || conn.LogicItem != 7 {
		t.Fatalf("expected an input connection at (0,0) owned by logic-item 7, got %v (ok=%v)", conn, ok)
	}

	idx.HandleMessage(message.LogicItemInsertedIDUpdated{OldID: 7, NewID: 3, Data: data})
	if conn, ok := idx.Connections.LogicItemInputAt(vocab.Point{X: 0, Y: 0}); !ok || conn.LogicItem != 3 {
		t.Fatalf("expected the connection to follow the renumbered id, got %v (ok=%v)", conn, ok)
	}

	idx.HandleMessage(message.LogicItemUninserted{ID: 3, Data: data})
	if idx.Spatial.Len() != 0 {
		t.Fatalf("expected index to be empty after uninsert, got %d", idx.Spatial.Len())
	}
	if _, ok := idx.Connections.LogicItemInputAt(vocab.Point{X: 0, Y: 0}); ok {
		t.Fatalf("expected connection to be removed after uninsert")
	}
}

func TestIndexTracksWireEndpointsAndQueryLineSegments(t *testing.T) {
	idx := New()
	line, err := vocab.NewLine(vocab.Point{X: 0, Y: 0}, vocab.Point{X: 5, Y: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ordered := vocab.OrderLine(line)
	info := segment.Info{Line: ordered, P0Type: vocab.EndpointOutput, P1Type: vocab.EndpointInput}
	seg := vocab.Segment{Wire: 2, Index: 0}

	idx.HandleMessage(message.SegmentInserted{Segment: seg, Info: info})

	if conn, ok := idx.Connections.WireOutputAt(vocab.Point{X: 0, Y: 0}); !ok || conn.Wire != 2 {
		t.Fatalf("expected wire output at (0,0), got %v (ok=%v)", conn, ok)
	}
	if conn, ok := idx.Connections.WireInputAt(vocab.Point{X: 5, Y: 0}); !ok || conn.Wire != 2 {
		t.Fatalf("expected wire input at (5,0), got %v (ok=%v)", conn, ok)
	}

	segs := idx.QueryLineSegments(vocab.Point{X: 0, Y: 0})
	if len(segs) != 1 || segs[0] != seg {
		t.Fatalf("expected QueryLineSegments to find the segment at its endpoint, got %v", segs)
	}

	newInfo := segment.Info{Line: ordered, P0Type: vocab.EndpointCornerPoint, P1Type: vocab.EndpointInput}
	idx.HandleMessage(message.SegmentEndPointsUpdated{Segment: seg, OldInfo: info, NewInfo: newInfo})
	if _, ok := idx.Connections.WireOutputAt(vocab.Point{X: 0, Y: 0}); ok {
		t.Fatalf("expected wire output classification to be cleared after endpoint reclassification")
	}

	idx.HandleMessage(message.SegmentUninserted{Segment: seg, Info: newInfo})
	if len(idx.QueryLineSegments(vocab.Point{X: 5, Y: 0})) != 0 {
		t.Fatalf("expected QueryLineSegments to find nothing after uninsert")
	}
}
