package spatialindex

import (
	"testing"

	"github.com/logiksim/circuitcore/vocab"
)

func rect(x0, y0, x1, y1 vocab.Grid) vocab.Rect {
	r, err := vocab.NewRect(vocab.Point{X: x0, Y: y0}, vocab.Point{X: x1, Y: y1})
	if err != nil {
		panic(err)
	}
	return r
}

func TestSpatialIndexQuerySelection(t *testing.T) {
	idx := NewSpatialIndex()
	a := ElementRef{Kind: ElementLogicItem, LogicItem: 1}
	b := ElementRef{Kind: ElementLogicItem, LogicItem: 2}
	idx.insert(a, rect(0, 0, 2, 2))
	idx.insert(b, rect(100, 100, 102, 102))

	got := idx.QuerySelection(rect(-1, -1, 5, 5))
	if len(got) != 1 || got[0] != a {
		t.Fatalf("expected only element a to be selected, got %v", got)
	}
}

func TestSpatialIndexHasElement(t *testing.T) {
	idx := NewSpatialIndex()
	idx.insert(ElementRef{Kind: ElementLogicItem, LogicItem: 1}, rect(0, 0, 4, 4))

	if !idx.HasElement(vocab.Point{X: 2, Y: 2}) {
		t.Fatalf("expected point inside the rect to report an element")
	}
	if idx.HasElement(vocab.Point{X: 50, Y: 50}) {
		t.Fatalf("expected point far outside any rect to report no element")
	}
}

func TestSpatialIndexRenameAndRemove(t *testing.T) {
	idx := NewSpatialIndex()
	old := ElementRef{Kind: ElementLogicItem, LogicItem: 1}
	fresh := ElementRef{Kind: ElementLogicItem, LogicItem: 5}
	idx.insert(old, rect(0, 0, 1, 1))
	idx.rename(old, fresh)

	if idx.Len() != 1 {
		t.Fatalf("expected exactly one element after rename, got %d", idx.Len())
	}
	got := idx.QuerySelection(rect(0, 0, 1, 1))
	if len(got) != 1 || got[0] != fresh {
		t.Fatalf("expected renamed ref to be found, got %v", got)
	}

	idx.remove(fresh)
	if idx.Len() != 0 {
		t.Fatalf("expected index to be empty after remove, got %d", idx.Len())
	}
}

func TestSpatialIndexSpansMultipleBuckets(t *testing.T) {
	idx := NewSpatialIndex()
	ref := ElementRef{Kind: ElementLogicItem, LogicItem: 1}
	idx.insert(ref, rect(-20, -20, 20, 20))

	for _, p := range []vocab.Point{{X: -20, Y: -20}, {X: 20, Y: 20}, {X: 0, Y: 0}} {
		if !idx.HasElement(p) {
			t.Fatalf("expected a large rect spanning several buckets to be found at %v", p)
		}
	}
}
