package layout

import (
	"errors"
	"fmt"

	"github.com/logiksim/circuitcore/vocab"
)

// ErrInvalidID is returned when an operation is given an id the store does
// not currently hold.
var ErrInvalidID = errors.New("layout: invalid id")

// ErrInverterCountMismatch is returned when an inverter bit vector's length
// does not match the item's input/output count (and is not empty, meaning
// "all false" per spec.md §4.3).
var ErrInverterCountMismatch = errors.New("layout: inverter vector length must match connection count or be empty")

// ClockGeneratorAttrs holds the type-specific attributes of a clock
// generator logic-item (spec.md §6). Per DESIGN NOTES, these attributes
// travel with their logic-item through every swap-and-delete and sort —
// the "TODO !!! clock attributes !!!" resolved per the spec's mandate.
type ClockGeneratorAttrs struct {
	Name                   string
	TimeSymmetricNs        int64
	TimeOnNs               int64
	TimeOffNs              int64
	IsSymmetric            bool
	ShowSimulationControls bool
}

// LogicItemDefinition is everything the layout store keeps for one
// logic-item: the data needed both for layout calculation (bounding rect,
// collision/connection checks) and for round-tripping through
// serialization.
type LogicItemDefinition struct {
	Type            vocab.LogicItemType
	InputCount      int
	OutputCount     int
	Orientation     vocab.Orientation
	SubCircuitID    int32 // -1 if this item is not a sub-circuit instance
	InputInverters  []bool
	OutputInverters []bool
	Position        vocab.Point
	Display         vocab.DisplayState
	BoundingRect    vocab.Rect

	ClockGenerator *ClockGeneratorAttrs // only set when Type == LogicItemClockGenerator
}

// Validate checks the invariants spec.md §4.3 places on a logic-item
// definition: inverter vectors must be empty or match the corresponding
// connection count.
func (d *LogicItemDefinition) Validate() error {
	if len(d.InputInverters) != 0 && len(d.InputInverters) != d.InputCount {
		return fmt.Errorf("%w: inputs=%d inverters=%d", ErrInverterCountMismatch, d.InputCount, len(d.InputInverters))
	}
	if len(d.OutputInverters) != 0 && len(d.OutputInverters) != d.OutputCount {
		return fmt.Errorf("%w: outputs=%d inverters=%d", ErrInverterCountMismatch, d.OutputCount, len(d.OutputInverters))
	}
	return nil
}

// InputInverted reports whether the given input pin is inverted, treating
// an empty inverter vector as "all false".
func (d *LogicItemDefinition) InputInverted(pin int) bool {
	if len(d.InputInverters) == 0 {
		return false
	}
	return d.InputInverters[pin]
}

// OutputInverted reports whether the given output pin is inverted, treating
// an empty inverter vector as "all false".
func (d *LogicItemDefinition) OutputInverted(pin int) bool {
	if len(d.OutputInverters) == 0 {
		return false
	}
	return d.OutputInverters[pin]
}

func (d *LogicItemDefinition) clone() *LogicItemDefinition {
	out := *d
	if d.InputInverters != nil {
		out.InputInverters = append([]bool(nil), d.InputInverters...)
	}
	if d.OutputInverters != nil {
		out.OutputInverters = append([]bool(nil), d.OutputInverters...)
	}
	if d.ClockGenerator != nil {
		cg := *d.ClockGenerator
		out.ClockGenerator = &cg
	}
	return &out
}

// LogicItemStore is the dense, swap-and-delete-keyed vector of logic-item
// definitions.
type LogicItemStore struct {
	store denseStore[*LogicItemDefinition]
}

// Len returns the number of logic-items currently stored.
func (s *LogicItemStore) Len() int { return s.store.len() }

// Add appends a new logic-item and returns its id.
func (s *LogicItemStore) Add(def *LogicItemDefinition) vocab.LogicItemID {
	return vocab.LogicItemID(s.store.add(def))
}

// Get returns the definition stored at id.
func (s *LogicItemStore) Get(id vocab.LogicItemID) (*LogicItemDefinition, error) {
	if !s.store.inBounds(int(id)) {
		return nil, ErrInvalidID
	}
	return s.store.get(int(id)), nil
}

// Set replaces the definition stored at id.
func (s *LogicItemStore) Set(id vocab.LogicItemID, def *LogicItemDefinition) error {
	if !s.store.inBounds(int(id)) {
		return ErrInvalidID
	}
	s.store.set(int(id), def)
	return nil
}

// SetDisplayState updates just the display state of id.
func (s *LogicItemStore) SetDisplayState(id vocab.LogicItemID, state vocab.DisplayState) error {
	def, err := s.Get(id)
	if err != nil {
		return err
	}
	def.Display = state
	return nil
}

// SwapAndDelete removes id, moving the last logic-item into its place. It
// returns the evicted definition (for the Modifier's history record) and
// the id the moved item used to have.
func (s *LogicItemStore) SwapAndDelete(id vocab.LogicItemID) (evicted *LogicItemDefinition, movedFrom vocab.LogicItemID, moved bool, err error) {
	if !s.store.inBounds(int(id)) {
		return nil, 0, false, ErrInvalidID
	}
	evicted = s.store.get(int(id))
	from, didMove := s.store.swapAndDelete(int(id))
	return evicted, vocab.LogicItemID(from), didMove, nil
}

// Ids returns every currently-valid logic-item id.
func (s *LogicItemStore) Ids() []vocab.LogicItemID {
	out := make([]vocab.LogicItemID, s.store.len())
	for i := range out {
		out[i] = vocab.LogicItemID(i)
	}
	return out
}
