package vocab

import "fmt"

// Orientation describes the rotation of a logic-item, matching the four
// cardinal directions plus the undirected case used by decorations and
// symmetric gates.
type Orientation int

const (
	OrientationRight Orientation = iota
	OrientationLeft
	OrientationUp
	OrientationDown
	OrientationUndirected
)

var orientationNames = [...]string{"right", "left", "up", "down", "undirected"}

// Name returns the lower-case name of the orientation, the same
// table-lookup-with-fallback idiom the teacher uses for cgra.Side.
func (o Orientation) Name() string {
	if int(o) >= 0 && int(o) < len(orientationNames) {
		return orientationNames[o]
	}
	return fmt.Sprintf("orientation(%d)", int(o))
}

func (o Orientation) String() string { return o.Name() }

// ParseOrientation reverses Name/String, used by package serialize to read
// the orientation field back out of a saved record.
func ParseOrientation(name string) (Orientation, bool) {
	for i, n := range orientationNames {
		if n == name {
			return Orientation(i), true
		}
	}
	return 0, false
}

// EndpointType classifies one endpoint of a segment, updated on insert,
// split, and merge (spec.md §3 "Segment endpoint classification").
type EndpointType int

const (
	EndpointInput EndpointType = iota
	EndpointOutput
	EndpointCornerPoint
	EndpointCrossPoint
	EndpointShadowPoint
	EndpointNewUnknown
)

var endpointTypeNames = [...]string{
	"input", "output", "corner_point", "cross_point", "shadow_point", "new_unknown",
}

func (e EndpointType) String() string {
	if int(e) >= 0 && int(e) < len(endpointTypeNames) {
		return endpointTypeNames[e]
	}
	return fmt.Sprintf("endpoint_type(%d)", int(e))
}

// IsConnection reports whether the endpoint is an actual connection point
// (input or output) rather than a structural wire junction.
func (e EndpointType) IsConnection() bool {
	return e == EndpointInput || e == EndpointOutput
}

// DisplayState is the internal display state of a logic-item, decoration,
// or (via the wire id it lives in / its valid_parts) a segment.
type DisplayState int

const (
	DisplayTemporary DisplayState = iota
	DisplayColliding
	DisplayValid
	DisplayNormal
)

var displayStateNames = [...]string{"temporary", "colliding", "valid", "normal"}

func (d DisplayState) String() string {
	if int(d) >= 0 && int(d) < len(displayStateNames) {
		return displayStateNames[d]
	}
	return fmt.Sprintf("display_state(%d)", int(d))
}

// DisplayStateMap is a fixed bitset over the four display states, used by
// selection.DisplayStates.
type DisplayStateMap [4]bool

// Set marks the given state as present.
func (m *DisplayStateMap) Set(d DisplayState) { m[d] = true }

// Get reports whether the given state is present.
func (m DisplayStateMap) Get(d DisplayState) bool { return m[d] }

// InsertionMode is the user-facing view of DisplayState (spec.md §3
// "Insertion modes"). Transitions are always composed of single steps along
// temporary <-> collisions <-> insert_or_discard; there is no direct
// temporary <-> insert_or_discard edge.
type InsertionMode int

const (
	ModeTemporary InsertionMode = iota
	ModeCollisions
	ModeInsertOrDiscard
)

var insertionModeNames = [...]string{"temporary", "collisions", "insert_or_discard"}

func (m InsertionMode) String() string {
	if int(m) >= 0 && int(m) < len(insertionModeNames) {
		return insertionModeNames[m]
	}
	return fmt.Sprintf("insertion_mode(%d)", int(m))
}

// InsertionModeHint adjusts how change_logicitem_insertion_mode /
// change_wire_insertion_mode behave when a transition is ambiguous
// (spec.md §4.9.1 "Hints").
type InsertionModeHint int

const (
	// HintNone applies no special handling.
	HintNone InsertionModeHint = iota
	// HintExpectValid makes it fatal for the transition not to pass
	// through the valid display state.
	HintExpectValid
	// HintAssumeColliding skips the collision check and forces the
	// colliding display state.
	HintAssumeColliding
)

// LineInsertionType picks which leg of an L-shaped two-segment wire a drag
// draws first (spec.md §4.12's InsertWireLogic). Horizontal draws the
// horizontal leg from p0 before the vertical leg into p1; Vertical is the
// mirror image.
type LineInsertionType int

const (
	LineInsertionHorizontalFirst LineInsertionType = iota
	LineInsertionVerticalFirst
)

var lineInsertionTypeNames = [...]string{"horizontal_first", "vertical_first"}

func (t LineInsertionType) String() string {
	if int(t) >= 0 && int(t) < len(lineInsertionTypeNames) {
		return lineInsertionTypeNames[t]
	}
	return fmt.Sprintf("line_insertion_type(%d)", int(t))
}

// LogicItemType enumerates the 16 logic-item variants named in spec.md §6.
type LogicItemType int

const (
	LogicItemAnd LogicItemType = iota
	LogicItemOr
	LogicItemXor
	LogicItemNand
	LogicItemNor
	LogicItemXnor
	LogicItemBufferElement
	LogicItemInverterElement
	LogicItemFlipFlopJK
	LogicItemFlipFlopD
	LogicItemLatchD
	LogicItemClockGenerator
	LogicItemShiftRegister
	LogicItemLED
	LogicItemButton
	LogicItemDisplayNumber
)

var logicItemTypeNames = [...]string{
	"and_element", "or_element", "xor_element",
	"nand_element", "nor_element", "xnor_element",
	"buffer_element", "inverter_element",
	"flipflop_jk", "flipflop_d", "latch_d",
	"clock_generator", "shift_register",
	"led", "button", "display_number",
}

func (t LogicItemType) String() string {
	if int(t) >= 0 && int(t) < len(logicItemTypeNames) {
		return logicItemTypeNames[t]
	}
	return fmt.Sprintf("logicitem_type(%d)", int(t))
}

// ParseLogicItemType reverses String, used by package serialize to read the
// logicitem_type field back out of a saved record.
func ParseLogicItemType(name string) (LogicItemType, bool) {
	for i, n := range logicItemTypeNames {
		if n == name {
			return LogicItemType(i), true
		}
	}
	return 0, false
}

// DecorationType enumerates the decoration variants (spec.md §6).
type DecorationType int

const (
	DecorationTextElement DecorationType = iota
	DecorationCommentBox
)

var decorationTypeNames = [...]string{"text_element", "comment_box"}

func (t DecorationType) String() string {
	if int(t) >= 0 && int(t) < len(decorationTypeNames) {
		return decorationTypeNames[t]
	}
	return fmt.Sprintf("decoration_type(%d)", int(t))
}

// ParseDecorationType reverses String, used by package serialize to read the
// decoration_type field back out of a saved record.
func ParseDecorationType(name string) (DecorationType, bool) {
	for i, n := range decorationTypeNames {
		if n == name {
			return DecorationType(i), true
		}
	}
	return 0, false
}
