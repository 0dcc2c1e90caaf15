package spatialindex

import (
	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/segment"
	"github.com/logiksim/circuitcore/vocab"
)

// ConnectionKind discriminates which of the four point→connection maps an
// entry belongs to (spec.md §4.4(b)).
type ConnectionKind int

const (
	LogicItemInputConnection ConnectionKind = iota
	LogicItemOutputConnection
	WireInputConnection
	WireOutputConnection
)

// Connection is one entry of a connection map: the id that owns the
// connection point, a local connection-id (pin number for logic-items, 0
// for wire endpoints), and the orientation the connection faces.
type Connection struct {
	Kind         ConnectionKind
	LogicItem    vocab.LogicItemID
	Wire         vocab.WireID
	ConnectionID vocab.ConnectionID
	Orientation  vocab.Orientation
}

// ConnectionIndex implements part (b) of spec.md §4.4: four maps from grid
// point to the logic-item/wire connection located there, used to detect
// collisions and to reclassify a wire endpoint between input and output
// when a logic-item is inserted or uninserted over it.
type ConnectionIndex struct {
	logicItemInputs  map[vocab.Point]Connection
	logicItemOutputs map[vocab.Point]Connection
	wireInputs       map[vocab.Point]Connection
	wireOutputs      map[vocab.Point]Connection

	logicItemPoints map[vocab.LogicItemID][]vocab.Point
	segmentPoints   map[vocab.Segment][]vocab.Point
}

// NewConnectionIndex returns an empty ConnectionIndex.
func NewConnectionIndex() *ConnectionIndex {
	return &ConnectionIndex{
		logicItemInputs:  make(map[vocab.Point]Connection),
		logicItemOutputs: make(map[vocab.Point]Connection),
		wireInputs:       make(map[vocab.Point]Connection),
		wireOutputs:      make(map[vocab.Point]Connection),
		logicItemPoints:  make(map[vocab.LogicItemID][]vocab.Point),
		segmentPoints:    make(map[vocab.Segment][]vocab.Point),
	}
}

// LogicItemInputAt returns the input connection located at point, if any.
func (c *ConnectionIndex) LogicItemInputAt(p vocab.Point) (Connection, bool) {
	conn, ok := c.logicItemInputs[p]
	return conn, ok
}

// LogicItemOutputAt returns the output connection located at point, if any.
func (c *ConnectionIndex) LogicItemOutputAt(p vocab.Point) (Connection, bool) {
	conn, ok := c.logicItemOutputs[p]
	return conn, ok
}

// WireInputAt returns the wire-endpoint-classified-as-input connection
// located at point, if any.
func (c *ConnectionIndex) WireInputAt(p vocab.Point) (Connection, bool) {
	conn, ok := c.wireInputs[p]
	return conn, ok
}

// WireOutputAt returns the wire-endpoint-classified-as-output connection
// located at point, if any.
func (c *ConnectionIndex) WireOutputAt(p vocab.Point) (Connection, bool) {
	conn, ok := c.wireOutputs[p]
	return conn, ok
}

// addLogicItem registers every input/output connection point of an
// inserted logic-item. Connector placement is a simplified convention
// layered on the element's absolute (already-oriented) bounding rect
// carried in the message — inputs run down the rect's leading edge,
// outputs down its trailing edge, where "leading"/"trailing" depends on
// Orientation — rather than a reproduction of the original's per-gate
// relative-offset connector tables (out of scope: spec.md's Non-goals
// exclude pixel-accurate drawing, and exact connector placement is a
// rendering-layout concern of that same kind).
func (c *ConnectionIndex) addLogicItem(id vocab.LogicItemID, data message.ElementCalculationData) {
	inputs, outputs := connectorPoints(data)

	var points []vocab.Point
	for i, p := range inputs {
		c.logicItemInputs[p] = Connection{
			Kind: LogicItemInputConnection, LogicItem: id,
			ConnectionID: vocab.ConnectionID(i), Orientation: data.Orientation,
		}
		points = append(points, p)
	}
	for i, p := range outputs {
		c.logicItemOutputs[p] = Connection{
			Kind: LogicItemOutputConnection, LogicItem: id,
			ConnectionID: vocab.ConnectionID(i), Orientation: data.Orientation,
		}
		points = append(points, p)
	}
	c.logicItemPoints[id] = points
}

func (c *ConnectionIndex) removeLogicItem(id vocab.LogicItemID) {
	for _, p := range c.logicItemPoints[id] {
		delete(c.logicItemInputs, p)
		delete(c.logicItemOutputs, p)
	}
	delete(c.logicItemPoints, id)
}

func (c *ConnectionIndex) renameLogicItem(oldID, newID vocab.LogicItemID) {
	points, ok := c.logicItemPoints[oldID]
	if !ok {
		return
	}
	for _, p := range points {
		if conn, ok := c.logicItemInputs[p]; ok && conn.LogicItem == oldID {
			conn.LogicItem = newID
			c.logicItemInputs[p] = conn
		}
		if conn, ok := c.logicItemOutputs[p]; ok && conn.LogicItem == oldID {
			conn.LogicItem = newID
			c.logicItemOutputs[p] = conn
		}
	}
	delete(c.logicItemPoints, oldID)
	c.logicItemPoints[newID] = points
}

func (c *ConnectionIndex) addSegment(seg vocab.Segment, info segment.Info) {
	var points []vocab.Point
	switch info.P0Type {
	case vocab.EndpointInput:
		c.wireInputs[info.Line.P0] = Connection{Kind: WireInputConnection, Wire: seg.Wire}
		points = append(points, info.Line.P0)
	case vocab.EndpointOutput:
		c.wireOutputs[info.Line.P0] = Connection{Kind: WireOutputConnection, Wire: seg.Wire}
		points = append(points, info.Line.P0)
	}
	switch info.P1Type {
	case vocab.EndpointInput:
		c.wireInputs[info.Line.P1] = Connection{Kind: WireInputConnection, Wire: seg.Wire}
		points = append(points, info.Line.P1)
	case vocab.EndpointOutput:
		c.wireOutputs[info.Line.P1] = Connection{Kind: WireOutputConnection, Wire: seg.Wire}
		points = append(points, info.Line.P1)
	}
	c.segmentPoints[seg] = points
}

func (c *ConnectionIndex) removeSegment(seg vocab.Segment) {
	for _, p := range c.segmentPoints[seg] {
		delete(c.wireInputs, p)
		delete(c.wireOutputs, p)
	}
	delete(c.segmentPoints, seg)
}

func (c *ConnectionIndex) renameSegment(oldSeg, newSeg vocab.Segment) {
	points, ok := c.segmentPoints[oldSeg]
	if !ok {
		return
	}
	for _, p := range points {
		if conn, ok := c.wireInputs[p]; ok && conn.Wire == oldSeg.Wire {
			conn.Wire = newSeg.Wire
			c.wireInputs[p] = conn
		}
		if conn, ok := c.wireOutputs[p]; ok && conn.Wire == oldSeg.Wire {
			conn.Wire = newSeg.Wire
			c.wireOutputs[p] = conn
		}
	}
	delete(c.segmentPoints, oldSeg)
	c.segmentPoints[newSeg] = points
}

// ConnectorPoints exposes the same connector-placement convention
// addLogicItem uses, for callers (package editing's collision check) that
// need to know where an as-yet-uninserted logic-item's pins would land.
func ConnectorPoints(data message.ElementCalculationData) (inputs, outputs []vocab.Point) {
	return connectorPoints(data)
}

func connectorPoints(data message.ElementCalculationData) (inputs, outputs []vocab.Point) {
	rect := data.BoundingRect
	switch data.Orientation {
	case vocab.OrientationLeft:
		inputs = verticalRun(rect.P1.X, rect.P0.Y, data.InputCount)
		outputs = verticalRun(rect.P0.X, rect.P0.Y, data.OutputCount)
	case vocab.OrientationUp:
		inputs = horizontalRun(rect.P0.X, rect.P1.Y, data.InputCount)
		outputs = horizontalRun(rect.P0.X, rect.P0.Y, data.OutputCount)
	case vocab.OrientationDown:
		inputs = horizontalRun(rect.P0.X, rect.P0.Y, data.InputCount)
		outputs = horizontalRun(rect.P0.X, rect.P1.Y, data.OutputCount)
	default: // OrientationRight, OrientationUndirected
		inputs = verticalRun(rect.P0.X, rect.P0.Y, data.InputCount)
		outputs = verticalRun(rect.P1.X, rect.P0.Y, data.OutputCount)
	}
	return inputs, outputs
}

func verticalRun(x, y0 vocab.Grid, n int) []vocab.Point {
	pts := make([]vocab.Point, n)
	for i := 0; i < n; i++ {
		pts[i] = vocab.Point{X: x, Y: y0 + vocab.Grid(i)}
	}
	return pts
}

func horizontalRun(x0, y vocab.Grid, n int) []vocab.Point {
	pts := make([]vocab.Point, n)
	for i := 0; i < n; i++ {
		pts[i] = vocab.Point{X: x0 + vocab.Grid(i), Y: y}
	}
	return pts
}
