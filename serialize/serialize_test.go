package serialize

import (
	"strings"
	"testing"

	"github.com/logiksim/circuitcore/circuit"
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/modifier"
	"github.com/logiksim/circuitcore/vocab"
)

func newModifier() *modifier.Modifier {
	return modifier.NewBuilder(circuit.New()).Build()
}

func TestDetectEnvelopeJSONGzipBase64Gzip(t *testing.T) {
	rec := NewRecord()

	jsonData, err := SaveJSON(rec)
	if err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}
	if env, ok := detectEnvelope(jsonData); !ok || env != envelopeJSON {
		t.Fatalf("expected json envelope, got %v ok=%v", env, ok)
	}

	gz, err := SaveGzip(rec)
	if err != nil {
		t.Fatalf("SaveGzip: %v", err)
	}
	if env, ok := detectEnvelope(gz); !ok || env != envelopeGzip {
		t.Fatalf("expected gzip envelope, got %v ok=%v", env, ok)
	}

	b64gz, err := SaveBase64Gzip(rec)
	if err != nil {
		t.Fatalf("SaveBase64Gzip: %v", err)
	}
	if env, ok := detectEnvelope(b64gz); !ok || env != envelopeBase64Gzip {
		t.Fatalf("expected base64_gzip envelope, got %v ok=%v", env, ok)
	}
}

func TestLoadRoundTripsThroughAllThreeEnvelopes(t *testing.T) {
	rec := NewRecord()
	rec.LogicItems = append(rec.LogicItems, LogicItem{
		Type:        vocab.LogicItemAnd,
		InputCount:  2,
		OutputCount: 1,
		Orientation: vocab.OrientationRight,
		Position:    vocab.Point{X: 3, Y: 4},
	})

	for name, save := range map[string]func(*Record) ([]byte, error){
		"json":        SaveJSON,
		"gzip":        SaveGzip,
		"base64_gzip": SaveBase64Gzip,
	} {
		data, err := save(rec)
		if err != nil {
			t.Fatalf("%s: save: %v", name, err)
		}
		loaded, err := Load(data)
		if err != nil {
			t.Fatalf("%s: Load: %v", name, err)
		}
		if len(loaded.LogicItems) != 1 || loaded.LogicItems[0].Position != (vocab.Point{X: 3, Y: 4}) {
			t.Fatalf("%s: expected logic-item to round-trip, got %+v", name, loaded.LogicItems)
		}
		if loaded.LogicItems[0].Type != vocab.LogicItemAnd || loaded.LogicItems[0].Orientation != vocab.OrientationRight {
			t.Fatalf("%s: expected type/orientation to round-trip, got %+v", name, loaded.LogicItems[0])
		}
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	if _, err := Load([]byte("not a save file")); err == nil {
		t.Fatalf("expected an error for unrecognized leading bytes")
	}
}

func TestLoadRejectsWrongVersion(t *testing.T) {
	rec := NewRecord()
	rec.Version = 1
	data, err := SaveJSON(rec)
	if err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}
	_, err = Load(data)
	if err == nil {
		t.Fatalf("expected a version-mismatch error")
	}
	if !strings.Contains(err.Error(), MinimumAppVersion) {
		t.Fatalf("expected the error to name the minimum app version, got %q", err)
	}
}

func TestLoadTruncatesOverLongStrings(t *testing.T) {
	rec := NewRecord()
	rec.LogicItems = append(rec.LogicItems, LogicItem{
		Type:        vocab.LogicItemClockGenerator,
		InputCount:  0,
		OutputCount: 1,
		Orientation: vocab.OrientationRight,
		AttributesClockGenerator: &ClockGeneratorAttrs{
			Name: strings.Repeat("x", ClockGeneratorNameMaxSize+50),
		},
	})
	data, err := SaveJSON(rec)
	if err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}
	loaded, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := len(loaded.LogicItems[0].AttributesClockGenerator.Name); got != ClockGeneratorNameMaxSize {
		t.Fatalf("expected the name truncated to %d, got %d", ClockGeneratorNameMaxSize, got)
	}
}

func TestExportImportRoundTripsAnInsertedAndGate(t *testing.T) {
	m := newModifier()
	def := andGate(vocab.Point{X: 0, Y: 0})
	m.AddLogicItem(def, vocab.Point{X: 0, Y: 0}, vocab.ModeInsertOrDiscard)

	rec := Export(m.Layout())
	if len(rec.LogicItems) != 1 {
		t.Fatalf("expected one exported logic-item, got %d", len(rec.LogicItems))
	}

	m2 := newModifier()
	result := Import(m2, rec, vocab.Point{X: 10, Y: 10}, vocab.ModeInsertOrDiscard)
	if len(result.LogicItems) != 1 {
		t.Fatalf("expected one imported logic-item, got %d", len(result.LogicItems))
	}

	id, ok := m2.Circuit().Keys.LogicItemID(result.LogicItems[0])
	if !ok {
		t.Fatalf("expected the imported key to resolve")
	}
	got, err := m2.Layout().LogicItems.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Position != (vocab.Point{X: 10, Y: 10}) {
		t.Fatalf("expected the item to land at the translated position, got %v", got.Position)
	}
	if got.Type != vocab.LogicItemAnd || got.InputCount != 2 || got.OutputCount != 1 {
		t.Fatalf("expected the definition to round-trip, got %+v", got)
	}
}

func TestExportWiresFlattensInsertedTrees(t *testing.T) {
	m := newModifier()
	line, _ := vocab.NewOrderedLine(vocab.Point{X: 0, Y: 0}, vocab.Point{X: 10, Y: 0})
	m.AddWireSegment(line, vocab.ModeInsertOrDiscard)

	rec := Export(m.Layout())
	if len(rec.WireSegments) != 1 {
		t.Fatalf("expected one exported wire segment, got %d", len(rec.WireSegments))
	}
	got := rec.WireSegments[0]
	if got.P0 != (vocab.Point{X: 0, Y: 0}) || got.P1 != (vocab.Point{X: 10, Y: 0}) {
		t.Fatalf("expected the segment's endpoints to round-trip, got %+v", got)
	}
}

func andGate(pos vocab.Point) *layout.LogicItemDefinition {
	return &layout.LogicItemDefinition{
		Type:        vocab.LogicItemAnd,
		InputCount:  2,
		OutputCount: 1,
		Orientation: vocab.OrientationRight,
		Position:    pos,
		BoundingRect: vocab.Rect{
			P0: pos,
			P1: vocab.Point{X: pos.X + 2, Y: pos.Y + 2},
		},
	}
}
