package vocab

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes o by its lower-case name, matching the original's
// glz::meta enumerate() string binding for orientation_t — used by package
// serialize.
func (o Orientation) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Name())
}

// UnmarshalJSON decodes the string form produced by MarshalJSON.
func (o *Orientation) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("vocab: decoding orientation: %w", err)
	}
	v, ok := ParseOrientation(name)
	if !ok {
		return fmt.Errorf("vocab: unknown orientation %q", name)
	}
	*o = v
	return nil
}

// MarshalJSON encodes t by its lower-case name, matching the original's
// glz::meta enumerate() string binding for LogicItemType.
func (t LogicItemType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes the string form produced by MarshalJSON.
func (t *LogicItemType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("vocab: decoding logicitem_type: %w", err)
	}
	v, ok := ParseLogicItemType(name)
	if !ok {
		return fmt.Errorf("vocab: unknown logicitem_type %q", name)
	}
	*t = v
	return nil
}

// MarshalJSON encodes t by its lower-case name.
func (t DecorationType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes the string form produced by MarshalJSON.
func (t *DecorationType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("vocab: decoding decoration_type: %w", err)
	}
	v, ok := ParseDecorationType(name)
	if !ok {
		return fmt.Errorf("vocab: unknown decoration_type %q", name)
	}
	*t = v
	return nil
}

// MarshalJSON encodes p as a two-element [x, y] array, the same compact
// form the original's glaze binding gives point_t (array(&T::x, &T::y)) —
// used by package serialize for save_position and wire_segments.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int32{int32(p.X), int32(p.Y)})
}

// UnmarshalJSON decodes the [x, y] array form produced by MarshalJSON.
func (p *Point) UnmarshalJSON(data []byte) error {
	var pair [2]int32
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("vocab: decoding point: %w", err)
	}
	p.X = Grid(pair[0])
	p.Y = Grid(pair[1])
	return nil
}
