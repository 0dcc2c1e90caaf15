package config

import (
	"strings"
	"testing"

	"github.com/logiksim/circuitcore/circuit"
	"github.com/logiksim/circuitcore/modifier"
	"github.com/logiksim/circuitcore/vocab"
)

func TestDefaultEditorConfigIsValid(t *testing.T) {
	cfg := NewEditorConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected the default config to validate, got %v", err)
	}
	if !cfg.ValidateMessages() {
		t.Fatalf("expected message validation on by default")
	}
	if cfg.HistoryDepth() != 0 {
		t.Fatalf("expected unlimited (0) history depth by default, got %d", cfg.HistoryDepth())
	}
}

func TestWithGridBoundsNarrowsContains(t *testing.T) {
	cfg := NewEditorConfig().WithGridBounds(
		vocab.Point{X: 0, Y: 0},
		vocab.Point{X: 100, Y: 100},
	)
	if !cfg.Contains(vocab.Point{X: 50, Y: 50}) {
		t.Fatalf("expected a point inside the bounds to be contained")
	}
	if cfg.Contains(vocab.Point{X: 200, Y: 0}) {
		t.Fatalf("expected a point outside the bounds to not be contained")
	}
}

func TestValidateRejectsInvertedBounds(t *testing.T) {
	cfg := NewEditorConfig().WithGridBounds(
		vocab.Point{X: 100, Y: 0},
		vocab.Point{X: 0, Y: 100},
	)
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected an error for a min past max on the x axis")
	}
}

func TestValidateRejectsNegativeHistoryDepth(t *testing.T) {
	cfg := NewEditorConfig().WithHistoryDepth(-1)
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected an error for a negative history depth")
	}
}

func TestBuildAppliesSettingsToModifier(t *testing.T) {
	cfg := NewEditorConfig().WithValidateMessages(false).WithHistoryDepth(1)

	b := cfg.Build(modifier.NewBuilder(circuit.New()))
	m := b.Build()

	line1, _ := vocab.NewOrderedLine(vocab.Point{X: 0, Y: 0}, vocab.Point{X: 1, Y: 0})
	m.AddWireSegment(line1, vocab.ModeInsertOrDiscard)
	line2, _ := vocab.NewOrderedLine(vocab.Point{X: 2, Y: 0}, vocab.Point{X: 3, Y: 0})
	m.AddWireSegment(line2, vocab.ModeInsertOrDiscard)

	if !m.CanUndo() {
		t.Fatalf("expected at least one undo entry")
	}
	m.UndoGroup()
	if m.CanUndo() {
		t.Fatalf("expected a history depth of 1 to have dropped the older entry")
	}
}

func TestParseEditorConfigOverridesOnlyGivenKeys(t *testing.T) {
	data := []byte(`
grid_min: [0, 0]
grid_max: [10, 10]
history_depth: 50
`)
	cfg, err := ParseEditorConfig(data)
	if err != nil {
		t.Fatalf("ParseEditorConfig: %v", err)
	}
	if !cfg.ValidateMessages() {
		t.Fatalf("expected validate_messages to keep its default (true) when absent from yaml")
	}
	if cfg.HistoryDepth() != 50 {
		t.Fatalf("expected history_depth 50, got %d", cfg.HistoryDepth())
	}
	min, max := cfg.GridBounds()
	if min != (vocab.Point{X: 0, Y: 0}) || max != (vocab.Point{X: 10, Y: 10}) {
		t.Fatalf("expected grid bounds to round-trip, got min=%v max=%v", min, max)
	}
}

func TestParseEditorConfigRejectsInvalidYAML(t *testing.T) {
	if _, err := ParseEditorConfig([]byte("not: [valid")); err == nil {
		t.Fatalf("expected an error for malformed yaml")
	}
}

func TestLoadEditorConfigReportsMissingFile(t *testing.T) {
	_, err := LoadEditorConfig("/nonexistent/editor-config.yaml")
	if err == nil || !strings.Contains(err.Error(), "reading") {
		t.Fatalf("expected a file-read error, got %v", err)
	}
}
