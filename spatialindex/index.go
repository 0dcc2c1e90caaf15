package spatialindex

import (
	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/vocab"
)

// Index is the aggregate of spec.md §4.4's two collaborating structures,
// kept in sync purely by observing the message stream (spec.md §4.4: "they
// never read the layout directly except at construction").
type Index struct {
	Spatial     *SpatialIndex
	Connections *ConnectionIndex

	segmentEndpointPoints map[vocab.Segment][]vocab.Point
	endpoints             *endpointIndex
}

// New returns an empty Index.
func New() *Index {
	return &Index{
		Spatial:               NewSpatialIndex(),
		Connections:           NewConnectionIndex(),
		segmentEndpointPoints: make(map[vocab.Segment][]vocab.Point),
		endpoints:             newEndpointIndex(),
	}
}

// QueryLineSegments returns every segment with an endpoint exactly at p
// (up to 4, at a point where wires cross or meet).
func (idx *Index) QueryLineSegments(p vocab.Point) []vocab.Segment {
	return idx.endpoints.at(p)
}

// HandleMessage implements message.Subscriber.
func (idx *Index) HandleMessage(m message.Message) {
	switch msg := m.(type) {
	case message.LogicItemInserted:
		idx.Spatial.insert(ElementRef{Kind: ElementLogicItem, LogicItem: msg.ID}, msg.Data.BoundingRect)
		idx.Connections.addLogicItem(msg.ID, msg.Data)
	case message.LogicItemInsertedIDUpdated:
		idx.Spatial.rename(
			ElementRef{Kind: ElementLogicItem, LogicItem: msg.OldID},
			ElementRef{Kind: ElementLogicItem, LogicItem: msg.NewID},
		)
		idx.Connections.renameLogicItem(msg.OldID, msg.NewID)
	case message.LogicItemUninserted:
		idx.Spatial.remove(ElementRef{Kind: ElementLogicItem, LogicItem: msg.ID})
		idx.Connections.removeLogicItem(msg.ID)

	case message.DecorationInserted:
		idx.Spatial.insert(ElementRef{Kind: ElementDecoration, Decoration: msg.ID}, msg.Data.BoundingRect)
	case message.DecorationInsertedIDUpdated:
		idx.Spatial.rename(
			ElementRef{Kind: ElementDecoration, Decoration: msg.OldID},
			ElementRef{Kind: ElementDecoration, Decoration: msg.NewID},
		)
	case message.DecorationUninserted:
		idx.Spatial.remove(ElementRef{Kind: ElementDecoration, Decoration: msg.ID})

	case message.SegmentInserted:
		rect, ok := lineRect(msg.Info.Line)
		if ok {
			idx.Spatial.insert(ElementRef{Kind: ElementSegment, Segment: msg.Segment}, rect)
		}
		idx.Connections.addSegment(msg.Segment, msg.Info)
		points := []vocab.Point{msg.Info.Line.P0, msg.Info.Line.P1}
		idx.segmentEndpointPoints[msg.Segment] = points
		idx.endpoints.add(msg.Segment, points[0])
		idx.endpoints.add(msg.Segment, points[1])

	case message.SegmentInsertedIDUpdated:
		idx.Spatial.rename(
			ElementRef{Kind: ElementSegment, Segment: msg.OldSegment},
			ElementRef{Kind: ElementSegment, Segment: msg.NewSegment},
		)
		idx.Connections.renameSegment(msg.OldSegment, msg.NewSegment)
		points := idx.segmentEndpointPoints[msg.OldSegment]
		idx.endpoints.rename(msg.OldSegment, msg.NewSegment, points)
		delete(idx.segmentEndpointPoints, msg.OldSegment)
		idx.segmentEndpointPoints[msg.NewSegment] = points

	case message.SegmentEndPointsUpdated:
		idx.Connections.removeSegment(msg.Segment)
		idx.Connections.addSegment(msg.Segment, msg.NewInfo)

	case message.SegmentUninserted:
		idx.Spatial.remove(ElementRef{Kind: ElementSegment, Segment: msg.Segment})
		idx.Connections.removeSegment(msg.Segment)
		for _, p := range idx.segmentEndpointPoints[msg.Segment] {
			idx.endpoints.remove(msg.Segment, p)
		}
		delete(idx.segmentEndpointPoints, msg.Segment)
	}
}

func lineRect(line vocab.OrderedLine) (vocab.Rect, bool) {
	rect, err := vocab.NewRect(line.P0, line.P1)
	if err != nil {
		return vocab.Rect{}, false
	}
	return rect, true
}
