// Package keyindex implements the stable-key layer that survives the
// swap-and-delete id renumbering used throughout the editable-circuit core
// (spec.md §3 "Keys"), plus the MessageValidator shadow-state machine
// (spec.md §4.5) that checks every published message against its legal
// predecessor. The id↔key binding pattern is grounded on confignew's
// NameIDBinding (a bidirectional name↔int map), generalized here from
// string↔int to ID↔Key via a generic index type.
package keyindex

import (
	"bytes"

	"github.com/rs/xid"
)

// Key is an opaque, monotonically-increasing identity that survives the
// renumbering of the raw integer id it was bound to. History records Keys,
// never raw ids (spec.md §3).
type Key struct {
	id xid.ID
}

// NewKey mints a fresh key. xid.ID is a 12-byte, time-sortable value, which
// satisfies "opaque monotonically increasing keys" (spec.md §3) without a
// hand-rolled counter-plus-epoch scheme.
func NewKey() Key {
	return Key{id: xid.New()}
}

// IsZero reports whether k is the unset zero value.
func (k Key) IsZero() bool {
	return k.id.IsZero()
}

// Less orders keys by creation time, breaking ties on the underlying bytes.
func (k Key) Less(o Key) bool {
	return bytes.Compare(k.id[:], o.id[:]) < 0
}

// String returns the key's canonical base32 text form.
func (k Key) String() string {
	return k.id.String()
}

// SegmentKey identifies a segment by the owning wire's stable Key plus the
// segment_index at the time of lookup. It survives renumbering of the
// wire's id, but not a change of the segment's own index, which happens
// whenever another segment in the same wire's tree is swap-and-deleted —
// DESIGN.md records that spec.md's
// "Keys" paragraph only spells this out via original_source's
// layout_message_validator.h, which shadows all four id kinds uniformly.
type SegmentKey struct {
	WireKey Key
	Index   int32
}
