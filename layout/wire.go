package layout

import (
	"github.com/logiksim/circuitcore/segment"
	"github.com/logiksim/circuitcore/vocab"
)

// wireEntry is one wire's segment tree plus its cached bounding rect, kept
// in sync by WireStore's mutators (spec.md §4.3 "wire: segment tree +
// cached bounding rect").
type wireEntry struct {
	tree         *segment.Tree
	boundingRect vocab.Rect
	hasRect      bool
}

// WireStore is the dense, swap-and-delete-keyed vector of wires. Unlike
// LogicItemStore/DecorationStore, wire ids additionally carry the three
// reserved meanings from spec.md §3 (temporary, colliding, first_inserted);
// WireStore itself is agnostic to that and simply always keeps slots 0 and
// 1 allocated as the temporary/colliding trees.
type WireStore struct {
	store denseStore[*wireEntry]
}

// NewWireStore returns a WireStore with the two reserved wire ids
// (temporary, colliding) already allocated with empty trees.
func NewWireStore() *WireStore {
	s := &WireStore{}
	s.store.add(&wireEntry{tree: segment.New()})
	s.store.add(&wireEntry{tree: segment.New()})
	return s
}

// Len returns the number of wires currently stored, including the two
// reserved ones.
func (s *WireStore) Len() int { return s.store.len() }

// Add appends a new (ordinarily "inserted") wire with an empty tree and
// returns its id.
func (s *WireStore) Add() vocab.WireID {
	return vocab.WireID(s.store.add(&wireEntry{tree: segment.New()}))
}

// Tree returns the segment tree for id.
func (s *WireStore) Tree(id vocab.WireID) (*segment.Tree, error) {
	if !s.store.inBounds(int(id)) {
		return nil, ErrInvalidID
	}
	return s.store.get(int(id)).tree, nil
}

// InvalidateBoundingRect marks id's cached bounding rect as stale; the next
// call to BoundingRect recomputes it.
func (s *WireStore) InvalidateBoundingRect(id vocab.WireID) error {
	if !s.store.inBounds(int(id)) {
		return ErrInvalidID
	}
	s.store.get(int(id)).hasRect = false
	return nil
}

// BoundingRect returns the (possibly cached) bounding rect of id's tree.
func (s *WireStore) BoundingRect(id vocab.WireID) (vocab.Rect, bool, error) {
	if !s.store.inBounds(int(id)) {
		return vocab.Rect{}, false, ErrInvalidID
	}
	e := s.store.get(int(id))
	if e.hasRect {
		return e.boundingRect, true, nil
	}
	rect, ok := e.tree.BoundingRect()
	if !ok {
		return vocab.Rect{}, false, nil
	}
	e.boundingRect = rect
	e.hasRect = true
	return rect, true, nil
}

// SwapAndDelete removes id, moving the last wire into its place. Reserved
// ids (temporary, colliding) may never be deleted; the caller clears their
// tree instead.
func (s *WireStore) SwapAndDelete(id vocab.WireID) (movedFrom vocab.WireID, moved bool, err error) {
	if !id.IsInserted() {
		return 0, false, ErrReservedWireID
	}
	if !s.store.inBounds(int(id)) {
		return 0, false, ErrInvalidID
	}
	from, didMove := s.store.swapAndDelete(int(id))
	return vocab.WireID(from), didMove, nil
}

// Ids returns every currently-valid wire id, including the two reserved
// ones.
func (s *WireStore) Ids() []vocab.WireID {
	out := make([]vocab.WireID, s.store.len())
	for i := range out {
		out[i] = vocab.WireID(i)
	}
	return out
}

// InsertedIds returns every wire id that is actually inserted (excludes the
// reserved temporary/colliding ids).
func (s *WireStore) InsertedIds() []vocab.WireID {
	var out []vocab.WireID
	for i := int(vocab.FirstInsertedWireID); i < s.store.len(); i++ {
		out = append(out, vocab.WireID(i))
	}
	return out
}
