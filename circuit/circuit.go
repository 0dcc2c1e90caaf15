// Package circuit bundles the aggregate spec.md §4.9 calls CircuitData:
// the layout store, its spatial/connection/key indices, the message
// validator, and the publish-subscribe bus that keeps them all in sync.
// Package editing's free functions take a *Data and mutate it directly,
// the same relationship original_source/src/core/component/editable_circuit
// gives its CircuitData struct and editing:: namespace.
package circuit

import (
	"github.com/logiksim/circuitcore/keyindex"
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/spatialindex"
)

// Data is the aggregate every editing operation reads and mutates.
type Data struct {
	Layout    *layout.Layout
	Spatial   *spatialindex.Index
	Keys      *keyindex.KeyIndex
	Validator *keyindex.MessageValidator
	Bus       *message.Bus
}

// New returns an empty Data with a fresh layout and every index subscribed
// to its own bus.
func New() *Data {
	d := &Data{
		Layout:    layout.New(),
		Spatial:   spatialindex.New(),
		Keys:      keyindex.New(),
		Validator: keyindex.NewMessageValidator(),
		Bus:       message.NewBus(),
	}
	d.Bus.Subscribe(d.Spatial)
	d.Bus.Subscribe(d.Keys)
	d.Bus.Subscribe(d.Validator)
	return d
}

// Submit publishes msgs through Bus, the single point through which every
// editing primitive announces a layout change (spec.md §5: "the core never
// mutates state without publishing the corresponding message").
func (d *Data) Submit(msgs ...message.Message) {
	d.Bus.Publish(msgs...)
}
