// Package config provides editor-session settings — the working grid
// rectangle a UI should clamp pointer input to, message-validation
// strictness, and undo history depth — built the same value-receiver
// "With* then Build" way as the teacher's DeviceBuilder, and loadable from
// YAML the way confignew/easyconf load their settings.
package config

import (
	"fmt"
	"os"

	"github.com/logiksim/circuitcore/modifier"
	"github.com/logiksim/circuitcore/vocab"
	"gopkg.in/yaml.v3"
)

// EditorConfig holds the knobs one editor session is configured with.
// Unlike vocab.GridMin/GridMax, which bound what a Grid coordinate can
// represent at all, EditorConfig's grid bounds are a narrower working
// rectangle a particular session chooses to offer — e.g. a fixed canvas
// size for an embedded or classroom build.
type EditorConfig struct {
	gridMin vocab.Point
	gridMax vocab.Point

	validateMessages bool
	historyDepth     int
}

// NewEditorConfig returns the default EditorConfig: the full representable
// grid, message validation on, unlimited undo history.
func NewEditorConfig() EditorConfig {
	return EditorConfig{
		gridMin:          vocab.Point{X: vocab.GridMin, Y: vocab.GridMin},
		gridMax:          vocab.Point{X: vocab.GridMax, Y: vocab.GridMax},
		validateMessages: true,
	}
}

// WithGridBounds narrows the working rectangle Contains checks against.
func (c EditorConfig) WithGridBounds(min, max vocab.Point) EditorConfig {
	c.gridMin, c.gridMax = min, max
	return c
}

// WithValidateMessages sets the value Build passes to
// modifier.Builder.WithValidateMessages, which stores it without acting on
// it: the circuit's validator checks message sequences either way.
func (c EditorConfig) WithValidateMessages(validate bool) EditorConfig {
	c.validateMessages = validate
	return c
}

// WithHistoryDepth sets the maximum number of undo groups a Modifier built
// from this config retains. 0 means unlimited.
func (c EditorConfig) WithHistoryDepth(depth int) EditorConfig {
	c.historyDepth = depth
	return c
}

// GridBounds returns the configured working rectangle.
func (c EditorConfig) GridBounds() (min, max vocab.Point) { return c.gridMin, c.gridMax }

// ValidateMessages reports the validate-messages setting Build passes on.
func (c EditorConfig) ValidateMessages() bool { return c.validateMessages }

// HistoryDepth reports the configured undo depth limit.
func (c EditorConfig) HistoryDepth() int { return c.historyDepth }

// Contains reports whether p lies within the configured working
// rectangle — a session-level check, softer than vocab.Point.IsRepresentable.
func (c EditorConfig) Contains(p vocab.Point) bool {
	return p.X >= c.gridMin.X && p.X <= c.gridMax.X &&
		p.Y >= c.gridMin.Y && p.Y <= c.gridMax.Y
}

// Validate reports whether the config's own invariants hold: both grid
// bounds representable, min not past max on either axis, and a
// non-negative history depth.
func (c EditorConfig) Validate() error {
	if !c.gridMin.IsRepresentable() || !c.gridMax.IsRepresentable() {
		return fmt.Errorf("config: grid bounds must be representable, got min=%v max=%v", c.gridMin, c.gridMax)
	}
	if c.gridMin.X > c.gridMax.X || c.gridMin.Y > c.gridMax.Y {
		return fmt.Errorf("config: grid min %v must not exceed grid max %v", c.gridMin, c.gridMax)
	}
	if c.historyDepth < 0 {
		return fmt.Errorf("config: history depth must not be negative, got %d", c.historyDepth)
	}
	return nil
}

// Build applies the config to b, mirroring DeviceBuilder.Build's role of
// turning accumulated With* settings into the thing they configure.
func (c EditorConfig) Build(b modifier.Builder) modifier.Builder {
	return b.WithValidateMessages(c.validateMessages).WithHistoryDepth(c.historyDepth)
}

// yamlEditorConfig is the on-disk shape of EditorConfig. Fields are
// pointers so a key's absence can be told apart from its zero value:
// loading only sets what the file actually mentions, leaving
// NewEditorConfig's defaults for everything else.
type yamlEditorConfig struct {
	GridMin          *[2]int32 `yaml:"grid_min"`
	GridMax          *[2]int32 `yaml:"grid_max"`
	ValidateMessages *bool     `yaml:"validate_messages"`
	HistoryDepth     *int      `yaml:"history_depth"`
}

// ParseEditorConfig decodes an EditorConfig from YAML bytes, starting from
// NewEditorConfig's defaults and overriding only the keys present in data.
func ParseEditorConfig(data []byte) (EditorConfig, error) {
	var raw yamlEditorConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return EditorConfig{}, fmt.Errorf("config: parsing editor config: %w", err)
	}

	cfg := NewEditorConfig()
	if raw.GridMin != nil {
		cfg.gridMin = vocab.Point{X: vocab.Grid(raw.GridMin[0]), Y: vocab.Grid(raw.GridMin[1])}
	}
	if raw.GridMax != nil {
		cfg.gridMax = vocab.Point{X: vocab.Grid(raw.GridMax[0]), Y: vocab.Grid(raw.GridMax[1])}
	}
	if raw.ValidateMessages != nil {
		cfg.validateMessages = *raw.ValidateMessages
	}
	if raw.HistoryDepth != nil {
		cfg.historyDepth = *raw.HistoryDepth
	}

	if err := cfg.Validate(); err != nil {
		return EditorConfig{}, err
	}
	return cfg, nil
}

// LoadEditorConfig reads path and decodes it as an EditorConfig.
func LoadEditorConfig(path string) (EditorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EditorConfig{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return ParseEditorConfig(data)
}
