package layout

import (
	"testing"

	"github.com/logiksim/circuitcore/segment"
	"github.com/logiksim/circuitcore/vocab"
)

func TestAddAndSwapAndDeleteLogicItem(t *testing.T) {
	l := New()
	id0 := l.LogicItems.Add(&LogicItemDefinition{Type: vocab.LogicItemAnd, InputCount: 2, OutputCount: 1})
	id1 := l.LogicItems.Add(&LogicItemDefinition{Type: vocab.LogicItemOr, InputCount: 2, OutputCount: 1})
	id2 := l.LogicItems.Add(&LogicItemDefinition{Type: vocab.LogicItemXor, InputCount: 2, OutputCount: 1})

	evicted, movedFrom, moved, err := l.LogicItems.SwapAndDelete(id0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if evicted.Type != vocab.LogicItemAnd {
		t.Fatalf("got evicted type %v", evicted.Type)
	}
	if !moved || movedFrom != id2 {
		t.Fatalf("expected id2 to move into id0's slot, got moved=%v from=%v", moved, movedFrom)
	}
	if l.LogicItems.Len() != 2 {
		t.Fatalf("expected 2 items left, got %d", l.LogicItems.Len())
	}

	got, err := l.LogicItems.Get(id0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Type != vocab.LogicItemXor {
		t.Fatalf("expected the moved item to be Xor, got %v", got.Type)
	}
	_ = id1
}

func TestInverterValidation(t *testing.T) {
	def := &LogicItemDefinition{InputCount: 2, OutputCount: 1, InputInverters: []bool{true}}
	if err := def.Validate(); err == nil {
		t.Fatalf("expected mismatch error")
	}

	ok := &LogicItemDefinition{InputCount: 2, OutputCount: 1, InputInverters: []bool{true, false}}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	emptyOK := &LogicItemDefinition{InputCount: 2, OutputCount: 1}
	if err := emptyOK.Validate(); err != nil {
		t.Fatalf("unexpected error for empty inverter vector: %v", err)
	}
}

func TestWireStoreReservedIds(t *testing.T) {
	l := New()
	if l.Wires.Len() != 2 {
		t.Fatalf("expected 2 reserved wires preallocated, got %d", l.Wires.Len())
	}

	if _, _, err := l.Wires.SwapAndDelete(vocab.TemporaryWireID); err != ErrReservedWireID {
		t.Fatalf("expected ErrReservedWireID, got %v", err)
	}

	id := l.Wires.Add()
	if !id.IsInserted() {
		t.Fatalf("expected newly added wire to be an inserted id, got %v", id)
	}
}

func TestLayoutEqualIgnoresWireIdNumbering(t *testing.T) {
	a := New()
	b := New()

	line, _ := vocab.NewLine(vocab.Point{X: 0, Y: 0}, vocab.Point{X: 10, Y: 0})
	ordered := vocab.OrderLine(line)

	wa := a.Wires.Add()
	treeA, _ := a.Wires.Tree(wa)
	treeA.AddSegment(segment.Info{Line: ordered})

	placeholder := b.Wires.Add()
	wb := b.Wires.Add()
	treeB, _ := b.Wires.Tree(wb)
	treeB.AddSegment(segment.Info{Line: ordered})
	if _, _, err := b.Wires.SwapAndDelete(placeholder); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a.Normalize()
	b.Normalize()

	if !a.Equal(b) {
		t.Fatalf("expected layouts with equivalent wire content but different ids to compare equal")
	}
}
