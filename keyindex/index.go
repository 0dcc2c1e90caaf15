package keyindex

import "errors"

// ErrUnknownID is returned when looking up a key for an id that was never
// registered, or that has since been forgotten.
var ErrUnknownID = errors.New("keyindex: unknown id")

// ErrUnknownKey is returned when looking up the id for a key that was never
// registered, or that has since been forgotten.
var ErrUnknownKey = errors.New("keyindex: unknown key")

// index is a bidirectional id↔Key binding for one id kind, generalizing
// confignew.NameIDBinding's string↔int maps to ID↔Key.
type index[ID comparable] struct {
	idToKey map[ID]Key
	keyToID map[Key]ID
}

func newIndex[ID comparable]() *index[ID] {
	return &index[ID]{
		idToKey: make(map[ID]Key),
		keyToID: make(map[Key]ID),
	}
}

// Register mints a fresh key for id, overwriting any prior binding.
func (x *index[ID]) Register(id ID) Key {
	key := NewKey()
	x.idToKey[id] = key
	x.keyToID[key] = id
	return key
}

// Key returns the key currently bound to id.
func (x *index[ID]) Key(id ID) (Key, bool) {
	key, ok := x.idToKey[id]
	return key, ok
}

// ID returns the id currently bound to key.
func (x *index[ID]) ID(key Key) (ID, bool) {
	id, ok := x.keyToID[key]
	return id, ok
}

// Rename re-binds the key previously held by oldID to newID, implementing
// the "IdUpdated" half of spec.md §3's lifecycle rule. It is a no-op if
// oldID was never registered (the id may belong to a kind this index
// doesn't track, or may already have been forgotten).
func (x *index[ID]) Rename(oldID, newID ID) {
	key, ok := x.idToKey[oldID]
	if !ok {
		return
	}
	delete(x.idToKey, oldID)
	x.idToKey[newID] = key
	x.keyToID[key] = newID
}

// Forget removes id's binding entirely, implementing the "Deleted" half of
// spec.md §3's lifecycle rule.
func (x *index[ID]) Forget(id ID) {
	key, ok := x.idToKey[id]
	if !ok {
		return
	}
	delete(x.idToKey, id)
	delete(x.keyToID, key)
}

// Len returns the number of ids currently bound.
func (x *index[ID]) Len() int {
	return len(x.idToKey)
}
