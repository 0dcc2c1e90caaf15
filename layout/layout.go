package layout

import (
	"errors"
	"sort"

	"github.com/logiksim/circuitcore/segment"
	"github.com/logiksim/circuitcore/vocab"
)

// ErrReservedWireID is returned when a caller tries to delete one of the
// two reserved wire ids (temporary, colliding).
var ErrReservedWireID = errors.New("layout: cannot delete a reserved wire id")

// Layout is the aggregate struct-of-arrays store for logic-items,
// decorations, and wires (spec.md §4.3). It holds no indices or history of
// its own; those live in sibling packages and are kept in sync purely
// through the message stream emitted by package editing.
type Layout struct {
	LogicItems  LogicItemStore
	Decorations DecorationStore
	Wires       *WireStore
}

// New returns an empty Layout with the two reserved wire ids allocated.
func New() *Layout {
	return &Layout{Wires: NewWireStore()}
}

// Normalize reorders each wire's segment tree into canonical form so that
// two layouts representing the same visual circuit compare equal
// regardless of edit history (spec.md §8 round-trip law). Logic-item and
// decoration ids are not reordered: their insertion order has no visual
// meaning to normalize away, matching the original (which normalizes wire
// segment order but leaves element storage order alone).
func (l *Layout) Normalize() {
	for _, id := range l.Wires.Ids() {
		tree, err := l.Wires.Tree(id)
		if err != nil {
			continue
		}
		tree.Normalize()
		_ = l.Wires.InvalidateBoundingRect(id)
	}
}

// Equal reports whether two (already-normalized) layouts represent the same
// circuit: the same logic-items/decorations in the same storage order, and
// the same multiset of inserted wire trees (wire ids themselves are
// insignificant, only the segments and endpoint classifications they carry
// are — this implements spec.md §8's "normalize(layout_a) ==
// normalize(layout_b) iff visually equivalent" for wires, whose numeric id
// has no visual meaning).
func (l *Layout) Equal(o *Layout) bool {
	if l.LogicItems.Len() != o.LogicItems.Len() {
		return false
	}
	for i := 0; i < l.LogicItems.Len(); i++ {
		a, _ := l.LogicItems.Get(vocab.LogicItemID(i))
		b, _ := o.LogicItems.Get(vocab.LogicItemID(i))
		if !logicItemsEqual(a, b) {
			return false
		}
	}

	if l.Decorations.Len() != o.Decorations.Len() {
		return false
	}
	for i := 0; i < l.Decorations.Len(); i++ {
		a, _ := l.Decorations.Get(vocab.DecorationID(i))
		b, _ := o.Decorations.Get(vocab.DecorationID(i))
		if !decorationsEqual(a, b) {
			return false
		}
	}

	return sameWireTreeMultiset(l.Wires, o.Wires)
}

func sameWireTreeMultiset(a, b *WireStore) bool {
	aIds, bIds := a.InsertedIds(), b.InsertedIds()
	if len(aIds) != len(bIds) {
		return false
	}

	aTrees := treesOf(a, aIds)
	bTrees := treesOf(b, bIds)

	sort.Slice(aTrees, func(i, j int) bool { return treeSortKey(aTrees[i]) < treeSortKey(aTrees[j]) })
	sort.Slice(bTrees, func(i, j int) bool { return treeSortKey(bTrees[i]) < treeSortKey(bTrees[j]) })

	for i := range aTrees {
		if !aTrees[i].Equal(bTrees[i]) {
			return false
		}
	}
	return true
}

func treesOf(s *WireStore, ids []vocab.WireID) []*segment.Tree {
	out := make([]*segment.Tree, 0, len(ids))
	for _, id := range ids {
		tree, err := s.Tree(id)
		if err != nil {
			continue
		}
		out = append(out, tree)
	}
	return out
}

// treeSortKey orders trees by their (already-normalized) first segment, so
// the multiset comparison in sameWireTreeMultiset is order-independent.
func treeSortKey(t *segment.Tree) string {
	if t.Len() == 0 {
		return ""
	}
	line, _ := t.Line(0)
	return line.String()
}

func logicItemsEqual(a, b *LogicItemDefinition) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type || a.InputCount != b.InputCount || a.OutputCount != b.OutputCount ||
		a.Orientation != b.Orientation || a.Position != b.Position || a.Display != b.Display {
		return false
	}
	if !boolsEqual(a.InputInverters, b.InputInverters) || !boolsEqual(a.OutputInverters, b.OutputInverters) {
		return false
	}
	return true
}

func decorationsEqual(a, b *DecorationDefinition) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Type == b.Type && a.Position == b.Position && a.Size == b.Size && a.Display == b.Display
}

func boolsEqual(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
