package mouselogic

import (
	"github.com/logiksim/circuitcore/keyindex"
	"github.com/logiksim/circuitcore/modifier"
	"github.com/logiksim/circuitcore/vocab"
)

// InsertWireLogic draws an L-shaped two-segment wire between the point of
// the first press and the current cursor, grounded on original_source's
// InsertWireLogic: the press captures p0, every move redraws both legs in
// collisions mode along the tool's current LineInsertionType, and release
// upgrades both legs to insert_or_discard.
type InsertWireLogic struct {
	direction vocab.LineInsertionType

	first *vocab.Point
	legs  []keyindex.SegmentKey
	group group
}

// NewInsertWireLogic starts a tool drawing with the horizontal-first leg
// order; SetDirection switches it mid-drag.
func NewInsertWireLogic() *InsertWireLogic {
	return &InsertWireLogic{direction: vocab.LineInsertionHorizontalFirst}
}

// SetDirection changes which leg of the L-shape is drawn first. Taking
// effect on the next redraw, it lets a caller flip the bend with a
// keypress mid-drag without restarting the gesture.
func (l *InsertWireLogic) SetDirection(d vocab.LineInsertionType) {
	l.direction = d
}

// MousePress captures position as p0 and draws the (zero-length, so empty)
// initial preview.
func (l *InsertWireLogic) MousePress(m *modifier.Modifier, position vocab.PointFine) {
	l.group.begin(m)
	grid, ok := vocab.ToGrid(position)
	if !ok {
		return
	}
	p := grid
	l.first = &p
	l.redraw(m, grid)
}

// MouseMove redraws both legs from p0 to position.
func (l *InsertWireLogic) MouseMove(m *modifier.Modifier, position vocab.PointFine) {
	if l.first == nil {
		return
	}
	grid, ok := vocab.ToGrid(position)
	if !ok {
		return
	}
	l.redraw(m, grid)
}

// MouseRelease redraws at position one last time, then inserts both legs
// and resets the tool for the next line.
func (l *InsertWireLogic) MouseRelease(m *modifier.Modifier, position vocab.PointFine) {
	if l.first == nil {
		l.group.end(m)
		return
	}
	if grid, ok := vocab.ToGrid(position); ok {
		l.redraw(m, grid)
	}
	for _, key := range l.legs {
		m.ChangeWireInsertionMode(key, vocab.ModeInsertOrDiscard)
	}
	l.legs = nil
	l.first = nil
	l.group.end(m)
}

// Finalize removes any still-temporary legs and closes any open group.
func (l *InsertWireLogic) Finalize(m *modifier.Modifier) {
	l.clear(m)
	l.first = nil
	l.group.end(m)
}

func (l *InsertWireLogic) clear(m *modifier.Modifier) {
	for _, key := range l.legs {
		deleteWireSegment(m, key)
	}
	l.legs = nil
}

func (l *InsertWireLogic) redraw(m *modifier.Modifier, p1 vocab.Point) {
	l.clear(m)
	for _, line := range l.legLines(p1) {
		key := m.AddWireSegment(line, vocab.ModeCollisions)
		if !key.WireKey.IsZero() {
			l.legs = append(l.legs, key)
		}
	}
}

// legLines splits p0->p1 into its one or two orthogonal legs, bending at
// the corner direction picks; a degenerate leg (p0, the bend corner, or
// p1 coinciding) is simply omitted.
func (l *InsertWireLogic) legLines(p1 vocab.Point) []vocab.OrderedLine {
	p0 := *l.first
	if p0 == p1 {
		return nil
	}

	var corner vocab.Point
	if l.direction == vocab.LineInsertionHorizontalFirst {
		corner = vocab.Point{X: p1.X, Y: p0.Y}
	} else {
		corner = vocab.Point{X: p0.X, Y: p1.Y}
	}

	var lines []vocab.OrderedLine
	if line, ok := orderedLine(p0, corner); ok {
		lines = append(lines, line)
	}
	if line, ok := orderedLine(corner, p1); ok {
		lines = append(lines, line)
	}
	return lines
}

func orderedLine(a, b vocab.Point) (vocab.OrderedLine, bool) {
	if a == b {
		return vocab.OrderedLine{}, false
	}
	if a.Less(b) {
		line, err := vocab.NewOrderedLine(a, b)
		return line, err == nil
	}
	line, err := vocab.NewOrderedLine(b, a)
	return line, err == nil
}
