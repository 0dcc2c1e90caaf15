package editing

import (
	"testing"

	"github.com/logiksim/circuitcore/circuit"
	"github.com/logiksim/circuitcore/vocab"
)

func hline(t *testing.T, x0, x1, y vocab.Grid) vocab.OrderedLine {
	t.Helper()
	l, err := vocab.NewOrderedLine(vocab.Point{X: x0, Y: y}, vocab.Point{X: x1, Y: y})
	if err != nil {
		t.Fatalf("NewOrderedLine: %v", err)
	}
	return l
}

func vline(t *testing.T, x, y0, y1 vocab.Grid) vocab.OrderedLine {
	t.Helper()
	l, err := vocab.NewOrderedLine(vocab.Point{X: x, Y: y0}, vocab.Point{X: x, Y: y1})
	if err != nil {
		t.Fatalf("NewOrderedLine: %v", err)
	}
	return l
}

func TestAddWireSegmentTemporary(t *testing.T) {
	c := circuit.New()
	line := hline(t, 0, 4, 0)

	seg := AddWireSegment(c, line, vocab.ModeTemporary)
	if seg.Wire != vocab.TemporaryWireID {
		t.Fatalf("expected segment to stay in the temporary tree, got wire %v", seg.Wire)
	}
	tree, err := c.Layout.Wires.Tree(vocab.TemporaryWireID)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	info, err := tree.Info(seg.Index)
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.P0Type != vocab.EndpointNewUnknown || info.P1Type != vocab.EndpointNewUnknown {
		t.Fatalf("expected both endpoints new_unknown, got %v/%v", info.P0Type, info.P1Type)
	}
}

func TestAddWireSegmentInsertsAndCreatesWire(t *testing.T) {
	c := circuit.New()
	line := hline(t, 0, 4, 0)

	seg := AddWireSegment(c, line, vocab.ModeInsertOrDiscard)
	if !isInsertedWireID(seg.Wire) {
		t.Fatalf("expected segment to land in an inserted wire, got %v", seg.Wire)
	}
	tree, err := c.Layout.Wires.Tree(seg.Wire)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	if tree.Len() != 1 {
		t.Fatalf("expected exactly one segment in the new wire, got %d", tree.Len())
	}
}

func TestChangeWireInsertionModeMergesTouchingWires(t *testing.T) {
	c := circuit.New()
	first := AddWireSegment(c, hline(t, 0, 4, 0), vocab.ModeInsertOrDiscard)
	if !isInsertedWireID(first.Wire) {
		t.Fatalf("expected first segment inserted, got %v", first.Wire)
	}

	second := AddWireSegment(c, hline(t, 4, 8, 0), vocab.ModeInsertOrDiscard)
	if !isInsertedWireID(second.Wire) {
		t.Fatalf("expected second segment inserted, got %v", second.Wire)
	}
	if second.Wire != first.Wire {
		t.Fatalf("expected touching segments to merge into the same wire, got %v and %v", first.Wire, second.Wire)
	}
}

func TestChangeWireInsertionModeCollidesOnOverlap(t *testing.T) {
	c := circuit.New()
	first := AddWireSegment(c, hline(t, 0, 4, 0), vocab.ModeInsertOrDiscard)
	if !isInsertedWireID(first.Wire) {
		t.Fatalf("expected first segment inserted, got %v", first.Wire)
	}

	second := AddWireSegment(c, vline(t, 2, -2, 2), vocab.ModeCollisions)
	if second.Wire != vocab.CollidingWireID {
		t.Fatalf("expected overlapping segment to land in the colliding tree, got %v", second.Wire)
	}
}

func TestChangeWireInsertionModeDiscardsStillCollidingSegment(t *testing.T) {
	c := circuit.New()
	first := AddWireSegment(c, hline(t, 0, 4, 0), vocab.ModeInsertOrDiscard)
	if !isInsertedWireID(first.Wire) {
		t.Fatalf("expected first segment inserted, got %v", first.Wire)
	}

	second := AddWireSegment(c, vline(t, 2, -2, 2), vocab.ModeCollisions)
	if second.Wire != vocab.CollidingWireID {
		t.Fatalf("expected second segment colliding, got %v", second.Wire)
	}

	ChangeWireInsertionMode(c, &second, vocab.ModeInsertOrDiscard)
	if second.IsValid() {
		t.Fatalf("expected the still-colliding segment to be discarded, got %v", second)
	}
}

func TestChangeWireInsertionModeRoundTrip(t *testing.T) {
	c := circuit.New()
	seg := AddWireSegment(c, hline(t, 0, 4, 0), vocab.ModeInsertOrDiscard)
	if !isInsertedWireID(seg.Wire) {
		t.Fatalf("expected segment inserted, got %v", seg.Wire)
	}
	insertedWire := seg.Wire

	ChangeWireInsertionMode(c, &seg, vocab.ModeTemporary)
	if seg.Wire != vocab.TemporaryWireID {
		t.Fatalf("expected segment back in the temporary tree, got %v", seg.Wire)
	}

	tree, err := c.Layout.Wires.Tree(insertedWire)
	if err == nil && tree.Len() != 0 {
		t.Fatalf("expected the vacated inserted wire to be deleted or empty, len=%d", tree.Len())
	}
}

func TestIsWirePositionRepresentable(t *testing.T) {
	c := circuit.New()
	seg := AddWireSegment(c, hline(t, 0, 4, 0), vocab.ModeTemporary)

	if !IsWirePositionRepresentable(c.Layout, seg, 10, 0) {
		t.Fatalf("expected a small in-range translation to be representable")
	}
	if IsWirePositionRepresentable(c.Layout, seg, vocab.GridMax, 0) {
		t.Fatalf("expected an out-of-range translation to be unrepresentable")
	}
}

func TestMoveOrDeleteTemporaryWireDeletesOnOverflow(t *testing.T) {
	c := circuit.New()
	seg := AddWireSegment(c, hline(t, 0, 4, 0), vocab.ModeTemporary)

	MoveOrDeleteTemporaryWire(c, seg, vocab.GridMax, 0)
	tree, err := c.Layout.Wires.Tree(vocab.TemporaryWireID)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	if tree.Len() != 0 {
		t.Fatalf("expected the unrepresentable segment to be deleted, len=%d", tree.Len())
	}
}

func TestMoveOrDeleteTemporaryWireTranslates(t *testing.T) {
	c := circuit.New()
	seg := AddWireSegment(c, hline(t, 0, 4, 0), vocab.ModeTemporary)

	MoveOrDeleteTemporaryWire(c, seg, 10, 0)
	tree, err := c.Layout.Wires.Tree(vocab.TemporaryWireID)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	line, err := tree.Line(seg.Index)
	if err != nil {
		t.Fatalf("Line: %v", err)
	}
	if line.P0.X != 10 || line.P1.X != 14 {
		t.Fatalf("expected the line translated by (10, 0), got %+v", line)
	}
}

func TestSplitTemporaryBeforeInsert(t *testing.T) {
	c := circuit.New()
	base := AddWireSegment(c, hline(t, 0, 4, 0), vocab.ModeInsertOrDiscard)
	if !isInsertedWireID(base.Wire) {
		t.Fatalf("expected base segment inserted, got %v", base.Wire)
	}

	AddWireSegment(c, vline(t, 2, -2, 0), vocab.ModeTemporary)

	SplitTemporaryBeforeInsert(c)

	tree, err := c.Layout.Wires.Tree(vocab.TemporaryWireID)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	if tree.Len() < 1 {
		t.Fatalf("expected the temporary tree to retain at least one segment, len=%d", tree.Len())
	}
}

func TestRegularizeTemporarySelectionFindsCrossPoints(t *testing.T) {
	c := circuit.New()
	base := AddWireSegment(c, hline(t, 0, 4, 0), vocab.ModeInsertOrDiscard)
	if !isInsertedWireID(base.Wire) {
		t.Fatalf("expected base segment inserted, got %v", base.Wire)
	}
	AddWireSegment(c, hline(t, 4, 8, 0), vocab.ModeInsertOrDiscard)

	AddWireSegment(c, vline(t, 4, -4, 0), vocab.ModeTemporary)
	AddWireSegment(c, vline(t, 4, 0, 4), vocab.ModeTemporary)

	points := RegularizeTemporarySelection(c)
	found := false
	for _, p := range points {
		if p == (vocab.Point{X: 4, Y: 0}) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected (4,0) to be reported as a cross point, got %+v", points)
	}
}
