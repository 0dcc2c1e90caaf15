package history

import (
	"reflect"
	"testing"

	"github.com/logiksim/circuitcore/keyindex"
	"github.com/logiksim/circuitcore/layout"
)

func TestToggleLogicItemInverterIsSelfInverse(t *testing.T) {
	r := ToggleLogicItemInverter{Key: keyindex.NewKey(), Input: true, Index: 2}
	if !reflect.DeepEqual(r.Invert(), r) {
		t.Fatalf("expected ToggleLogicItemInverter to be its own inverse")
	}
}

func TestSetClockGeneratorAttrsInvertSwapsOldNew(t *testing.T) {
	key := keyindex.NewKey()
	old := layout.ClockGeneratorAttrs{Name: "a", TimeOnNs: 1}
	next := layout.ClockGeneratorAttrs{Name: "b", TimeOnNs: 2}
	r := SetClockGeneratorAttrs{Key: key, Old: old, New: next}

	inv := r.Invert().(SetClockGeneratorAttrs)
	if inv.Old != next || inv.New != old {
		t.Fatalf("expected Invert to swap Old/New, got %+v", inv)
	}
	if !reflect.DeepEqual(inv.Invert(), r) {
		t.Fatalf("expected double-invert to restore the original record")
	}
}

func TestAddDecorationInvertIsDeleteDecoration(t *testing.T) {
	key := keyindex.NewKey()
	def := &layout.DecorationDefinition{Type: 0}
	r := AddDecoration{Key: key, Def: def}

	del, ok := r.Invert().(DeleteDecoration)
	if !ok {
		t.Fatalf("expected Invert to produce a DeleteDecoration, got %T", r.Invert())
	}
	if del.Key != key || del.Def != def {
		t.Fatalf("expected the inverse to carry the same key/def, got %+v", del)
	}
	back, ok := del.Invert().(AddDecoration)
	if !ok || back.Key != key {
		t.Fatalf("expected double-invert to restore an AddDecoration, got %+v", del.Invert())
	}
}
