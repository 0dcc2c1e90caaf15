// Package modifier implements the public editing facade spec.md §4.10
// describes: every mutation goes through a Modifier method that (1) checks
// arguments, (2) records the inverse onto a history.Stack, (3) executes the
// edit via package editing's primitives, and (4) relies on circuit.Data's
// bus to keep every index in sync. The Builder's value-receiver fluent
// style is grounded on config.DeviceBuilder.
package modifier

import (
	"errors"
	"fmt"

	"github.com/logiksim/circuitcore/circuit"
	"github.com/logiksim/circuitcore/editing"
	"github.com/logiksim/circuitcore/history"
	"github.com/logiksim/circuitcore/keyindex"
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/selection"
	"github.com/logiksim/circuitcore/spatialindex"
	"github.com/logiksim/circuitcore/visibleselection"
	"github.com/logiksim/circuitcore/vocab"
)

// ErrUnknownSelection is returned by any Modifier method given a
// vocab.SelectionID it never created, or one already destroyed.
var ErrUnknownSelection = errors.New("modifier: unknown selection id")

// stateViolation reports a logic bug: an invariant the caller was supposed
// to uphold (a valid key, a representable position already checked) did
// not hold. The same class of panic package editing and package history
// raise for the same reason (spec.md §7 "State violation").
func stateViolation(format string, args ...any) {
	panic("modifier: " + fmt.Sprintf(format, args...))
}

// Builder configures a Modifier before it is built, the same value-receiver
// "With* then Build" shape as config.DeviceBuilder.
type Builder struct {
	circuit          *circuit.Data
	storeMessages    bool
	validateMessages bool
	historyDepth     int
}

// NewBuilder starts building a Modifier over c.
func NewBuilder(c *circuit.Data) Builder {
	return Builder{circuit: c}
}

// WithStoreMessages makes the built Modifier keep a log of every message
// Submit publishes, retrievable via Modifier.Messages — useful for tests
// and the debug inspector, off by default to avoid the memory cost in
// normal use.
func (b Builder) WithStoreMessages(store bool) Builder {
	b.storeMessages = store
	return b
}

// WithValidateMessages records a validate-messages setting on the built
// Modifier. The setting is stored and not read: the circuit's Validator
// subscriber is always subscribed and panics on the first malformed
// message sequence whether or not this is set.
func (b Builder) WithValidateMessages(validate bool) Builder {
	b.validateMessages = validate
	return b
}

// WithHistoryDepth bounds the number of undo groups the built Modifier
// retains (config.EditorConfig's history-depth knob); 0 means unlimited.
func (b Builder) WithHistoryDepth(limit int) Builder {
	b.historyDepth = limit
	return b
}

// Build constructs the Modifier.
func (b Builder) Build() *Modifier {
	m := &Modifier{
		circuit:          b.circuit,
		selections:       make(map[vocab.SelectionID]*selection.Selection),
		nextSelectionID:  0,
		history:          history.NewStack(),
		tempWireKey:      keyindex.NewKey(),
		collidingWireKey: keyindex.NewKey(),
		validateMessages: b.validateMessages,
	}
	if b.storeMessages {
		m.messages = &messageLog{}
		m.circuit.Bus.Subscribe(m.messages)
	}
	if b.historyDepth > 0 {
		m.history.SetMaxDepth(b.historyDepth)
	}
	return m
}

// messageLog is a message.Subscriber that appends every message it sees,
// grounded on the same observer shape every other index in this module
// uses to stay in sync with the bus.
type messageLog struct {
	entries []message.Message
}

func (l *messageLog) HandleMessage(m message.Message) {
	l.entries = append(l.entries, m)
}

// Modifier is the editing facade spec.md §6 names: it owns the managed
// selections, the optional visible selection, and the undo/redo stack, and
// drives package editing's primitives against its circuit.
type Modifier struct {
	circuit *circuit.Data

	selections      map[vocab.SelectionID]*selection.Selection
	nextSelectionID vocab.SelectionID
	visible         *visibleselection.VisibleSelection

	history  *history.Stack
	keyRemap map[keyindex.Key]keyindex.Key

	// tempWireKey/collidingWireKey stand in for keyindex.Key's of the two
	// fixed sentinel wire ids (vocab.TemporaryWireID, vocab.CollidingWireID),
	// which never get a WireCreated message and so are never registered in
	// circuit.Keys. Minted once per Modifier so a segment dragged around
	// while still temporary keeps one stable SegmentKey across the drag,
	// the same coalescing spec.md §4.11 asks for.
	tempWireKey      keyindex.Key
	collidingWireKey keyindex.Key

	validateMessages bool
	messages         *messageLog
}

// Layout returns the live layout the Modifier mutates (spec.md §6's
// layout() const accessor).
func (m *Modifier) Layout() *layout.Layout { return m.circuit.Layout }

// Circuit returns the underlying circuit.Data aggregate.
func (m *Modifier) Circuit() *circuit.Data { return m.circuit }

// Self returns m itself, matching spec.md §6's modifier() const
// accessor (used by code that only holds a narrower view interface).
func (m *Modifier) Self() *Modifier { return m }

// Messages returns every message published since the Modifier was built, or
// nil if it was not built WithStoreMessages(true).
func (m *Modifier) Messages() []message.Message {
	if m.messages == nil {
		return nil
	}
	return m.messages.entries
}

//
// Selection management (spec.md §6's create_selection/destroy_selection/
// selection_exists/selection family).
//

// CreateSelection allocates a new empty selection and returns its id. The
// selection is subscribed to the circuit bus so logic-item/decoration
// renumbering and segment splits/merges keep its membership in sync
// (selection.Selection.HandleMessage) until it is destroyed.
func (m *Modifier) CreateSelection() vocab.SelectionID {
	id := m.nextSelectionID
	m.nextSelectionID++
	s := selection.New()
	m.selections[id] = s
	m.circuit.Bus.Subscribe(s)
	return id
}

// DestroySelection discards the selection identified by id.
func (m *Modifier) DestroySelection(id vocab.SelectionID) error {
	s, ok := m.selections[id]
	if !ok {
		return ErrUnknownSelection
	}
	m.circuit.Bus.Unsubscribe(s)
	delete(m.selections, id)
	return nil
}

// SelectionExists reports whether id names a live selection.
func (m *Modifier) SelectionExists(id vocab.SelectionID) bool {
	_, ok := m.selections[id]
	return ok
}

// Selection returns the selection identified by id.
func (m *Modifier) Selection(id vocab.SelectionID) (*selection.Selection, error) {
	s, ok := m.selections[id]
	if !ok {
		return nil, ErrUnknownSelection
	}
	return s, nil
}

// SetVisibleSelection installs v as the mouse-driven visible selection
// (there is at most one at a time, unlike the named selections above).
func (m *Modifier) SetVisibleSelection(v *visibleselection.VisibleSelection) {
	if m.visible != nil {
		m.circuit.Bus.Unsubscribe(m.visible)
	}
	m.visible = v
	if v != nil {
		m.circuit.Bus.Subscribe(v)
	}
}

// VisibleSelection returns the currently installed visible selection, or
// nil if none is set.
func (m *Modifier) VisibleSelection() *visibleselection.VisibleSelection {
	return m.visible
}

// NewVisibleSelection builds a VisibleSelection over m's own spatial index
// and layout, seeded from initial (nil means empty).
func (m *Modifier) NewVisibleSelection(initial *selection.Selection, spatial *spatialindex.Index) *visibleselection.VisibleSelection {
	if initial == nil {
		initial = selection.New()
	}
	return visibleselection.New(initial, spatial, m.circuit.Layout)
}

//
// History controls (spec.md §6's undo_group/redo_group/begin_group/
// end_group/enable_history/disable_history).
//

// BeginGroup opens an undo group; edits performed before the matching
// EndGroup undo as a single action.
func (m *Modifier) BeginGroup() { m.history.BeginGroup() }

// EndGroup closes the most recently opened undo group.
func (m *Modifier) EndGroup() { m.history.EndGroup() }

// EnableHistory turns undo/redo recording on.
func (m *Modifier) EnableHistory() { m.history.Enable() }

// DisableHistory turns undo/redo recording off; edits made while disabled
// cannot later be undone.
func (m *Modifier) DisableHistory() { m.history.Disable() }

// SetHistoryDepth re-bounds the number of undo groups retained, trimming
// the oldest groups immediately if the stack already exceeds limit. 0
// means unlimited. Lets a config reload adjust an already-built Modifier
// without rebuilding it.
func (m *Modifier) SetHistoryDepth(limit int) { m.history.SetMaxDepth(limit) }

// CanUndo reports whether UndoGroup has anything to apply.
func (m *Modifier) CanUndo() bool { return m.history.CanUndo() }

// CanRedo reports whether RedoGroup has anything to apply.
func (m *Modifier) CanRedo() bool { return m.history.CanRedo() }

// UndoGroup undoes the most recent undo group, if any.
func (m *Modifier) UndoGroup() {
	m.keyRemap = make(map[keyindex.Key]keyindex.Key)
	m.history.Undo(m.applyRecord)
	m.keyRemap = nil
}

// RedoGroup redoes the most recent redo group, if any.
func (m *Modifier) RedoGroup() {
	m.keyRemap = make(map[keyindex.Key]keyindex.Key)
	m.history.Redo(m.applyRecord)
	m.keyRemap = nil
}

// resolveKey follows keyRemap until it reaches a key editing actually
// still recognizes: recreating a deleted entity during undo/redo mints a
// brand-new keyindex.Key (see keyindex.index.Register), so every record
// after the Add/Delete that re-targets the original key must be redirected
// to the one actually bound in this apply pass.
func (m *Modifier) resolveKey(k keyindex.Key) keyindex.Key {
	for {
		next, ok := m.keyRemap[k]
		if !ok {
			return k
		}
		k = next
	}
}

// resolveSegmentKey redirects only the wire half of k through resolveKey;
// a segment's Index is stable across its own wire's recreation (the
// segment vocabulary records a whole OrderedLine, re-inserted at the same
// tree position).
func (m *Modifier) resolveSegmentKey(k keyindex.SegmentKey) keyindex.SegmentKey {
	return keyindex.SegmentKey{WireKey: m.resolveKey(k.WireKey), Index: k.Index}
}

// segmentKey composes the SegmentKey identifying seg, substituting the
// sentinel temp/colliding wire keys for the two wire ids circuit.Keys never
// registers.
func (m *Modifier) segmentKey(seg vocab.Segment) keyindex.SegmentKey {
	switch seg.Wire {
	case vocab.TemporaryWireID:
		return keyindex.SegmentKey{WireKey: m.tempWireKey, Index: int32(seg.Index)}
	case vocab.CollidingWireID:
		return keyindex.SegmentKey{WireKey: m.collidingWireKey, Index: int32(seg.Index)}
	default:
		sk, ok := m.circuit.Keys.SegmentKeyOf(seg)
		if !ok {
			stateViolation("wire segment has no registered key")
		}
		return sk
	}
}

// segmentOf resolves sk back to the live vocab.Segment it currently names.
func (m *Modifier) segmentOf(sk keyindex.SegmentKey) vocab.Segment {
	switch sk.WireKey {
	case m.tempWireKey:
		return vocab.Segment{Wire: vocab.TemporaryWireID, Index: vocab.SegmentIndex(sk.Index)}
	case m.collidingWireKey:
		return vocab.Segment{Wire: vocab.CollidingWireID, Index: vocab.SegmentIndex(sk.Index)}
	default:
		seg, ok := m.circuit.Keys.SegmentOf(sk)
		if !ok {
			stateViolation("segment key does not resolve to a live segment")
		}
		return seg
	}
}
