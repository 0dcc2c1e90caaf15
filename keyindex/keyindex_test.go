package keyindex

import (
	"testing"

	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/vocab"
)

func TestKeySurvivesRename(t *testing.T) {
	k := New()
	k.HandleMessage(message.LogicItemCreated{ID: 3})
	key, ok := k.LogicItemKey(3)
	if !ok {
		t.Fatalf("expected a key to be registered for id 3")
	}

	k.HandleMessage(message.LogicItemIDUpdated{OldID: 3, NewID: 0})
	if _, ok := k.LogicItemKey(3); ok {
		t.Fatalf("expected id 3 to no longer be bound after rename")
	}
	newID, ok := k.LogicItemID(key)
	if !ok || newID != 0 {
		t.Fatalf("expected key to now resolve to id 0, got id=%v ok=%v", newID, ok)
	}
}

func TestKeyForgottenOnDelete(t *testing.T) {
	k := New()
	k.HandleMessage(message.LogicItemCreated{ID: 1})
	key, _ := k.LogicItemKey(1)
	k.HandleMessage(message.LogicItemDeleted{ID: 1})

	if _, ok := k.LogicItemKey(1); ok {
		t.Fatalf("expected id 1 to be forgotten")
	}
	if _, ok := k.LogicItemID(key); ok {
		t.Fatalf("expected key to be forgotten")
	}
}

func TestSegmentKeyComposedFromWireKey(t *testing.T) {
	k := New()
	k.HandleMessage(message.WireCreated{ID: 5})

	seg := vocab.Segment{Wire: 5, Index: 2}
	sk, ok := k.SegmentKeyOf(seg)
	if !ok {
		t.Fatalf("expected segment key to be derivable once its wire is registered")
	}

	resolved, ok := k.SegmentOf(sk)
	if !ok || resolved != seg {
		t.Fatalf("expected segment key to resolve back to %v, got %v (ok=%v)", seg, resolved, ok)
	}

	k.HandleMessage(message.WireIDUpdated{OldID: 5, NewID: 9})
	movedSeg := vocab.Segment{Wire: 9, Index: 2}
	resolved2, ok := k.SegmentOf(sk)
	if !ok || resolved2 != movedSeg {
		t.Fatalf("expected segment key to track wire renumbering, got %v (ok=%v)", resolved2, ok)
	}
}
