package keyindex

import (
	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/vocab"
)

// KeyIndex binds stable Keys to every id kind named in spec.md §3
// (logicitem_id, decoration_id, wire_id; segment identity is derived from
// the owning wire's key plus segment_index). It is a message.Subscriber: it
// keeps its bindings current purely by observing the message stream, the
// same way every other index in this module stays in sync (spec.md §4.4).
type KeyIndex struct {
	logicItems  *index[vocab.LogicItemID]
	decorations *index[vocab.DecorationID]
	wires       *index[vocab.WireID]
}

// New returns an empty KeyIndex.
func New() *KeyIndex {
	return &KeyIndex{
		logicItems:  newIndex[vocab.LogicItemID](),
		decorations: newIndex[vocab.DecorationID](),
		wires:       newIndex[vocab.WireID](),
	}
}

// LogicItemKey returns the stable key bound to id.
func (k *KeyIndex) LogicItemKey(id vocab.LogicItemID) (Key, bool) {
	return k.logicItems.Key(id)
}

// LogicItemID returns the id currently bound to key.
func (k *KeyIndex) LogicItemID(key Key) (vocab.LogicItemID, bool) {
	return k.logicItems.ID(key)
}

// DecorationKey returns the stable key bound to id.
func (k *KeyIndex) DecorationKey(id vocab.DecorationID) (Key, bool) {
	return k.decorations.Key(id)
}

// DecorationID returns the id currently bound to key.
func (k *KeyIndex) DecorationID(key Key) (vocab.DecorationID, bool) {
	return k.decorations.ID(key)
}

// WireKey returns the stable key bound to id.
func (k *KeyIndex) WireKey(id vocab.WireID) (Key, bool) {
	return k.wires.Key(id)
}

// WireID returns the id currently bound to key.
func (k *KeyIndex) WireID(key Key) (vocab.WireID, bool) {
	return k.wires.ID(key)
}

// SegmentKeyOf composes the SegmentKey for seg from its wire's current key.
// It fails if the wire was never registered.
func (k *KeyIndex) SegmentKeyOf(seg vocab.Segment) (SegmentKey, bool) {
	wireKey, ok := k.wires.Key(seg.Wire)
	if !ok {
		return SegmentKey{}, false
	}
	return SegmentKey{WireKey: wireKey, Index: int32(seg.Index)}, true
}

// SegmentOf resolves a SegmentKey back to the live vocab.Segment it
// currently names.
func (k *KeyIndex) SegmentOf(sk SegmentKey) (vocab.Segment, bool) {
	wireID, ok := k.wires.ID(sk.WireKey)
	if !ok {
		return vocab.Segment{}, false
	}
	return vocab.Segment{Wire: wireID, Index: vocab.SegmentIndex(sk.Index)}, true
}

// HandleMessage implements message.Subscriber, keeping every binding in
// sync with the layout's own id lifecycle. Segment messages carry no
// segment-level key of their own (see SegmentKey's doc comment): only the
// Wire group's Created/IdUpdated/Deleted triad mutates this index.
func (k *KeyIndex) HandleMessage(m message.Message) {
	switch msg := m.(type) {
	case message.LogicItemCreated:
		k.logicItems.Register(msg.ID)
	case message.LogicItemIDUpdated:
		k.logicItems.Rename(msg.OldID, msg.NewID)
	case message.LogicItemDeleted:
		k.logicItems.Forget(msg.ID)

	case message.DecorationCreated:
		k.decorations.Register(msg.ID)
	case message.DecorationIDUpdated:
		k.decorations.Rename(msg.OldID, msg.NewID)
	case message.DecorationDeleted:
		k.decorations.Forget(msg.ID)

	case message.WireCreated:
		k.wires.Register(msg.ID)
	case message.WireIDUpdated:
		k.wires.Rename(msg.OldID, msg.NewID)
	case message.WireDeleted:
		k.wires.Forget(msg.ID)
	}
}
