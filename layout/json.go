package layout

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes a by its lower-case name, the same string-binding
// idiom vocab's enums use for package serialize's benefit.
func (a TextAlignment) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes the string form produced by MarshalJSON.
func (a *TextAlignment) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("layout: decoding horizontal_alignment: %w", err)
	}
	v, ok := ParseTextAlignment(name)
	if !ok {
		return fmt.Errorf("layout: unknown horizontal_alignment %q", name)
	}
	*a = v
	return nil
}

// MarshalJSON encodes s by its lower-case name.
func (s FontStyle) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes the string form produced by MarshalJSON.
func (s *FontStyle) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("layout: decoding font_style: %w", err)
	}
	v, ok := ParseFontStyle(name)
	if !ok {
		return fmt.Errorf("layout: unknown font_style %q", name)
	}
	*s = v
	return nil
}
