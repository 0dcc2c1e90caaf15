package modifier

import (
	"github.com/logiksim/circuitcore/editing"
	"github.com/logiksim/circuitcore/history"
	"github.com/logiksim/circuitcore/keyindex"
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/vocab"
)

// AddDecoration inserts def at position and returns its stable key, or a
// zero Key if position is not representable.
func (m *Modifier) AddDecoration(def *layout.DecorationDefinition, position vocab.Point) keyindex.Key {
	id := editing.AddDecoration(m.circuit, def, position)
	if !id.IsValid() {
		return keyindex.Key{}
	}
	key := must(m.circuit.Keys.DecorationKey(id))
	m.history.Push(history.DeleteDecoration{Key: key, Def: cloneDecorationDefinition(def), Position: position})
	return key
}

// DeleteDecoration removes the decoration identified by key.
func (m *Modifier) DeleteDecoration(key keyindex.Key) {
	id, ok := m.circuit.Keys.DecorationID(key)
	if !ok {
		stateViolation("decoration key does not resolve to a live id")
	}
	def, err := m.circuit.Layout.Decorations.Get(id)
	if err != nil {
		stateViolation("decoration id is invalid")
	}
	snapshot := cloneDecorationDefinition(def)
	position := def.Position
	editing.DeleteDecoration(m.circuit, id)
	m.history.Push(history.AddDecoration{Key: key, Def: snapshot, Position: position})
}

// SetTextElementAttrs replaces key's text-element attributes.
func (m *Modifier) SetTextElementAttrs(key keyindex.Key, attrs layout.TextElementAttrs) {
	id, ok := m.circuit.Keys.DecorationID(key)
	if !ok {
		stateViolation("decoration key does not resolve to a live id")
	}
	def, err := m.circuit.Layout.Decorations.Get(id)
	if err != nil {
		stateViolation("decoration id is invalid")
	}
	if def.TextElement == nil {
		stateViolation("decoration is not a text element")
	}
	old := *def.TextElement
	*def.TextElement = attrs
	m.history.Push(history.SetTextElementAttrs{Key: key, Old: attrs, New: old})
}

func must[T any](v T, ok bool) T {
	if !ok {
		stateViolation("expected lookup to succeed")
	}
	return v
}
