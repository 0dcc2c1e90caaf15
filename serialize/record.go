// Package serialize implements the external circuit save/copy-paste format
// (spec.md §6): a versioned JSON record plus envelope auto-detection
// (plain JSON, gzip, or base64(gzip(JSON))), grounded on
// original_source/src/core/serialize_detail.h's SerializedLayout and
// original_source/src/core/serialize.cpp's add_element/to_placed_*
// conversion pipeline.
package serialize

import (
	"encoding/json"

	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/vocab"
)

// CurrentVersion is the save-file format version this package writes and
// the only version it will load (original_source/serialize_detail.h's
// CURRENT_VERSION; "200: LogikSim 2.2.0").
const CurrentVersion = 200

// MinimumAppVersion is the human-readable application version stamped into
// every record's MinimumLogiksimVersion field, so that a save file loaded
// by an older build can tell the user what to upgrade to
// (original_source's MIN_LS_APP_VERSION_STR).
const MinimumAppVersion = "2.2.0"

// String length limits enforced on load (spec.md §6 "String limits").
// Longer values are truncated rather than rejected, matching
// original_source's parse_attr_clock_generator/parse_attr_text_element
// (`limited_name.resize(...)`).
const (
	ClockGeneratorNameMaxSize = 100
	TextElementTextMaxSize    = 10_000
)

// Clock-generator timing bounds (spec.md §6 "Clock-generator timing
// validation"), grounded on validate_definition_logicitem.h's
// clock_generator_min_time/clock_generator_max_time.
const (
	ClockGeneratorMinTimeNs int64 = 1               // 1 ns
	ClockGeneratorMaxTimeNs int64 = 500_000_000_000 // 500 s
)

// Record is the root of the serialized circuit format (spec.md §6), the Go
// shape of original_source's SerializedLayout.
type Record struct {
	Version                int    `json:"version"`
	MinimumLogiksimVersion string `json:"minimum_logiksim_version"`

	SavePosition vocab.Point `json:"save_position"`
	ViewPoint    ViewPoint   `json:"view_point"`

	SimulationConfig SimulationConfig `json:"simulation_config"`

	LogicItems   []LogicItem  `json:"logicitems"`
	Decorations  []Decoration `json:"decorations"`
	WireSegments []Line       `json:"wire_segments"`
}

// ViewPoint is the saved scroll/zoom anchor (spec.md §6), the Go shape of
// SerializedViewPoint.
type ViewPoint struct {
	DeviceScale float64 `json:"device_scale"`
	GridOffsetX float64 `json:"grid_offset_x"`
	GridOffsetY float64 `json:"grid_offset_y"`
}

// SimulationConfig carries the two simulation knobs a saved circuit
// remembers (spec.md §6), the Go shape of SerializedSimulationConfig.
type SimulationConfig struct {
	SimulationTimeRateNs int64 `json:"simulation_time_rate_ns"`
	UseWireDelay         bool  `json:"use_wire_delay"`
}

// NewRecord returns an empty Record stamped with the current version and
// original_source's documented simulation-config defaults
// (simulation_time_rate_ns: 10_000, use_wire_delay: true).
func NewRecord() *Record {
	return &Record{
		Version:                CurrentVersion,
		MinimumLogiksimVersion: MinimumAppVersion,
		SimulationConfig: SimulationConfig{
			SimulationTimeRateNs: 10_000,
			UseWireDelay:         true,
		},
	}
}

// Line is one saved wire segment, the Go shape of original_source's
// SerializedLine: a plain [p0, p1] pair with no orientation/ordering
// guarantee of its own (unlike vocab.OrderedLine).
type Line struct {
	P0, P1 vocab.Point
}

// MarshalJSON encodes l as the two-element [p0, p1] array the wire format
// expects.
func (l Line) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]vocab.Point{l.P0, l.P1})
}

// UnmarshalJSON decodes the [p0, p1] array form produced by MarshalJSON.
func (l *Line) UnmarshalJSON(data []byte) error {
	var pair [2]vocab.Point
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	l.P0, l.P1 = pair[0], pair[1]
	return nil
}

// RGBColor is a plain 8-bit-per-channel color, the Go shape of
// SerializedRgbColor.
type RGBColor struct {
	R uint8 `json:"red"`
	G uint8 `json:"green"`
	B uint8 `json:"blue"`
}

// ClockGeneratorAttrs is the type-specific attribute block carried by a
// clock-generator logic-item (spec.md §6), the Go shape of
// SerializedAttributesClockGenerator.
type ClockGeneratorAttrs struct {
	Name                   string `json:"name"`
	TimeSymmetricNs        int64  `json:"time_symmetric_ns"`
	TimeOnNs               int64  `json:"time_on_ns"`
	TimeOffNs              int64  `json:"time_off_ns"`
	IsSymmetric            bool   `json:"is_symmetric"`
	ShowSimulationControls bool   `json:"show_simulation_controls"`
}

// LogicItem is one saved logic-item (spec.md §6), the Go shape of
// SerializedLogicItem. Type/Orientation are carried as their vocab string
// form (e.g. "and_element", "right") rather than raw ints, matching the
// original's glz::meta enumerate() bindings.
type LogicItem struct {
	Type        vocab.LogicItemType `json:"type"`
	InputCount  int                 `json:"input_count"`
	OutputCount int                 `json:"output_count"`

	InputInverters  []bool `json:"input_inverters"`
	OutputInverters []bool `json:"output_inverters"`

	Position    vocab.Point       `json:"position"`
	Orientation vocab.Orientation `json:"orientation"`

	AttributesClockGenerator *ClockGeneratorAttrs `json:"attributes_clock_generator,omitempty"`
}

// TextElementAttrs is the type-specific attribute block carried by a
// text-element decoration (spec.md §6), the Go shape of
// SerializedAttributesTextElement.
type TextElementAttrs struct {
	Text                string               `json:"text"`
	HorizontalAlignment layout.TextAlignment `json:"horizontal_alignment"`
	FontStyle           layout.FontStyle     `json:"font_style"`
	TextColor           RGBColor             `json:"text_color"`
}

// Decoration is one saved decoration (spec.md §6), the Go shape of
// SerializedDecoration.
type Decoration struct {
	Type     vocab.DecorationType `json:"type"`
	Position vocab.Point          `json:"position"`
	Size     vocab.Point          `json:"size"`

	AttributesTextElement *TextElementAttrs `json:"attributes_text_element,omitempty"`
}
