// Package vocab holds the small value types shared by every other package in
// this module: grid coordinates, lines, parts, rects, and the dense integer
// id types used to index the layout store.
package vocab

import "fmt"

// LogicItemID identifies a logic-item in the layout store. The null id is
// NullLogicItemID (-1); the zero value is a valid id.
type LogicItemID int32

// DecorationID identifies a decoration in the layout store.
type DecorationID int32

// WireID identifies a wire (a segment tree) in the layout store.
//
// Three values are reserved and never denote an ordinary inserted wire:
//
//	TemporaryWireID  holds every segment currently in insertion mode temporary
//	CollidingWireID  holds every segment currently colliding
//	FirstInsertedWireID is the lowest id an actually-inserted wire may use
type WireID int32

// SegmentIndex identifies one segment within a wire's segment tree.
type SegmentIndex int32

// ConnectionID identifies one input/output pin on a logic-item or wire
// endpoint.
type ConnectionID int32

// SelectionID is a handle to a tracked Selection owned by the editable
// circuit. It must be explicitly released by its owner.
type SelectionID int32

// NullLogicItemID, NullDecorationID, ... are the sentinel "no id" values.
// Valid ids are always >= 0.
const (
	NullLogicItemID  LogicItemID  = -1
	NullDecorationID DecorationID = -1
	NullWireID       WireID       = -1
	NullSegmentIndex SegmentIndex = -1
	NullConnectionID ConnectionID = -1
	NullSelectionID  SelectionID  = -1
)

// Reserved wire ids, see spec.md §3 "Identifiers".
const (
	TemporaryWireID     WireID = 0
	CollidingWireID     WireID = 1
	FirstInsertedWireID WireID = 2
)

// MaxID is the largest id representable by any of the dense id types. The
// layout store never allocates an id at or beyond this bound.
const MaxID = int32(1<<31 - 2)

// IsValid reports whether the id is not the null sentinel.
func (id LogicItemID) IsValid() bool { return id >= 0 }

// IsValid reports whether the id is not the null sentinel.
func (id DecorationID) IsValid() bool { return id >= 0 }

// IsValid reports whether the id is not the null sentinel.
func (id WireID) IsValid() bool { return id >= 0 }

// IsInserted reports whether the wire id denotes an actually-inserted wire,
// i.e. it is neither the temporary nor the colliding tree.
func (id WireID) IsInserted() bool { return id >= FirstInsertedWireID }

// IsValid reports whether the index is not the null sentinel.
func (idx SegmentIndex) IsValid() bool { return idx >= 0 }

// IsValid reports whether the id is not the null sentinel.
func (id ConnectionID) IsValid() bool { return id >= 0 }

// IsValid reports whether the id is not the null sentinel.
func (id SelectionID) IsValid() bool { return id >= 0 }

func (id LogicItemID) String() string {
	if !id.IsValid() {
		return "LogicItemID(null)"
	}
	return fmt.Sprintf("LogicItemID(%d)", int32(id))
}

func (id DecorationID) String() string {
	if !id.IsValid() {
		return "DecorationID(null)"
	}
	return fmt.Sprintf("DecorationID(%d)", int32(id))
}

func (id WireID) String() string {
	switch id {
	case NullWireID:
		return "WireID(null)"
	case TemporaryWireID:
		return "WireID(temporary)"
	case CollidingWireID:
		return "WireID(colliding)"
	default:
		return fmt.Sprintf("WireID(%d)", int32(id))
	}
}

func (idx SegmentIndex) String() string {
	if !idx.IsValid() {
		return "SegmentIndex(null)"
	}
	return fmt.Sprintf("SegmentIndex(%d)", int32(idx))
}

// Segment is a (wire, segment index) pair identifying one segment of a wire.
type Segment struct {
	Wire  WireID
	Index SegmentIndex
}

// IsValid reports whether both components of the pair are valid.
func (s Segment) IsValid() bool { return s.Wire.IsValid() && s.Index.IsValid() }

func (s Segment) String() string {
	return fmt.Sprintf("Segment{%s, %s}", s.Wire, s.Index)
}

// SegmentPart pairs a segment with a sub-interval of it.
type SegmentPart struct {
	Segment Segment
	Part    Part
}
