package segment

import (
	"testing"

	"github.com/logiksim/circuitcore/vocab"
)

func line(x0, y0, x1, y1 int32) vocab.OrderedLine {
	l, err := vocab.NewLine(
		vocab.Point{X: vocab.Grid(x0), Y: vocab.Grid(y0)},
		vocab.Point{X: vocab.Grid(x1), Y: vocab.Grid(y1)},
	)
	if err != nil {
		panic(err)
	}
	return vocab.OrderLine(l)
}

func TestAddAndSwapAndDelete(t *testing.T) {
	tree := New()
	i0 := tree.AddSegment(Info{Line: line(0, 0, 10, 0)})
	i1 := tree.AddSegment(Info{Line: line(10, 0, 10, 10)})
	i2 := tree.AddSegment(Info{Line: line(10, 10, 20, 10)})

	movedFrom, moved, err := tree.SwapAndDelete(i0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !moved || movedFrom != i2 {
		t.Fatalf("expected last segment (%v) to move into i0, got moved=%v from=%v", i2, moved, movedFrom)
	}
	if tree.Len() != 2 {
		t.Fatalf("expected 2 segments left, got %d", tree.Len())
	}

	gotInfo, err := tree.Info(i0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotInfo.Line != line(10, 10, 20, 10) {
		t.Fatalf("swap-and-delete did not move the expected segment, got %v", gotInfo.Line)
	}
	_ = i1
}

func TestUpdateSegmentPreservesValidPartsWhenSuperset(t *testing.T) {
	tree := New()
	idx := tree.AddSegment(Info{Line: line(0, 0, 10, 0)})
	if err := tree.MarkValid(idx, vocab.Part{Begin: 2, End: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := tree.UpdateSegment(idx, line(-5, 0, 10, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vp, err := tree.ValidParts(idx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := vocab.Part{Begin: 7, End: 10} // shifted by +5 since P0 moved left by 5
	if len(vp.Parts()) != 1 || vp.Parts()[0] != want {
		t.Fatalf("got %v, want [%v]", vp.Parts(), want)
	}
}

func TestUpdateSegmentDropsPartsOutsideNewLine(t *testing.T) {
	tree := New()
	idx := tree.AddSegment(Info{Line: line(0, 0, 10, 0)})
	if err := tree.MarkValid(idx, vocab.Part{Begin: 8, End: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Shrink the line so the valid part falls entirely outside it.
	if err := tree.UpdateSegment(idx, line(0, 0, 5, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vp, err := tree.ValidParts(idx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !vp.Empty() {
		t.Fatalf("expected valid parts to be dropped, got %v", vp.Parts())
	}
}

func TestIsContiguousTree(t *testing.T) {
	tree := New()
	tree.AddSegment(Info{Line: line(0, 0, 10, 0)})
	tree.AddSegment(Info{Line: line(10, 0, 10, 10)})
	if !tree.IsContiguousTree() {
		t.Fatalf("expected connected L-shape to be contiguous")
	}

	disjoint := New()
	disjoint.AddSegment(Info{Line: line(0, 0, 10, 0)})
	disjoint.AddSegment(Info{Line: line(100, 100, 110, 100)})
	if disjoint.IsContiguousTree() {
		t.Fatalf("expected disjoint segments to not be contiguous")
	}

	cyclic := New()
	cyclic.AddSegment(Info{Line: line(0, 0, 10, 0)})
	cyclic.AddSegment(Info{Line: line(10, 0, 10, 10)})
	cyclic.AddSegment(Info{Line: line(10, 10, 0, 10)})
	cyclic.AddSegment(Info{Line: line(0, 10, 0, 0)})
	if cyclic.IsContiguousTree() {
		t.Fatalf("expected a closed loop to violate the acyclic invariant")
	}
}
