package layout

import (
	"fmt"

	"github.com/logiksim/circuitcore/vocab"
)

// TextAlignment mirrors the original's horizontal_alignment enum for text
// elements.
type TextAlignment int

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
)

var textAlignmentNames = [...]string{"left", "center", "right"}

func (a TextAlignment) String() string {
	if int(a) >= 0 && int(a) < len(textAlignmentNames) {
		return textAlignmentNames[a]
	}
	return fmt.Sprintf("text_alignment(%d)", int(a))
}

// ParseTextAlignment reverses String, used by package serialize.
func ParseTextAlignment(name string) (TextAlignment, bool) {
	for i, n := range textAlignmentNames {
		if n == name {
			return TextAlignment(i), true
		}
	}
	return 0, false
}

// FontStyle mirrors the original's font_style enum for text elements.
type FontStyle int

const (
	FontRegular FontStyle = iota
	FontBold
	FontItalic
	FontBoldItalic
)

var fontStyleNames = [...]string{"regular", "bold", "italic", "bold_italic"}

func (s FontStyle) String() string {
	if int(s) >= 0 && int(s) < len(fontStyleNames) {
		return fontStyleNames[s]
	}
	return fmt.Sprintf("font_style(%d)", int(s))
}

// ParseFontStyle reverses String, used by package serialize.
func ParseFontStyle(name string) (FontStyle, bool) {
	for i, n := range fontStyleNames {
		if n == name {
			return FontStyle(i), true
		}
	}
	return 0, false
}

// Color is a plain RGB triple, used by text-element attributes.
type Color struct {
	R, G, B uint8
}

// TextElementAttrs holds the type-specific attributes of a text decoration
// (spec.md §6).
type TextElementAttrs struct {
	Text                string
	HorizontalAlignment TextAlignment
	FontStyle           FontStyle
	TextColor           Color
}

// DecorationDefinition is everything the layout store keeps for one
// decoration.
type DecorationDefinition struct {
	Type         vocab.DecorationType
	Position     vocab.Point
	Size         vocab.Point // width, height in grid units
	Display      vocab.DisplayState
	BoundingRect vocab.Rect

	TextElement *TextElementAttrs // only set when Type == DecorationTextElement
}

func (d *DecorationDefinition) clone() *DecorationDefinition {
	out := *d
	if d.TextElement != nil {
		te := *d.TextElement
		out.TextElement = &te
	}
	return &out
}

// DecorationStore is the dense, swap-and-delete-keyed vector of decoration
// definitions, analogous to LogicItemStore (spec.md §4.6 "Decoration:
// analogous to LogicItem").
type DecorationStore struct {
	store denseStore[*DecorationDefinition]
}

// Len returns the number of decorations currently stored.
func (s *DecorationStore) Len() int { return s.store.len() }

// Add appends a new decoration and returns its id.
func (s *DecorationStore) Add(def *DecorationDefinition) vocab.DecorationID {
	return vocab.DecorationID(s.store.add(def))
}

// Get returns the definition stored at id.
func (s *DecorationStore) Get(id vocab.DecorationID) (*DecorationDefinition, error) {
	if !s.store.inBounds(int(id)) {
		return nil, ErrInvalidID
	}
	return s.store.get(int(id)), nil
}

// Set replaces the definition stored at id.
func (s *DecorationStore) Set(id vocab.DecorationID, def *DecorationDefinition) error {
	if !s.store.inBounds(int(id)) {
		return ErrInvalidID
	}
	s.store.set(int(id), def)
	return nil
}

// SwapAndDelete removes id, moving the last decoration into its place.
func (s *DecorationStore) SwapAndDelete(id vocab.DecorationID) (evicted *DecorationDefinition, movedFrom vocab.DecorationID, moved bool, err error) {
	if !s.store.inBounds(int(id)) {
		return nil, 0, false, ErrInvalidID
	}
	evicted = s.store.get(int(id))
	from, didMove := s.store.swapAndDelete(int(id))
	return evicted, vocab.DecorationID(from), didMove, nil
}

// Ids returns every currently-valid decoration id.
func (s *DecorationStore) Ids() []vocab.DecorationID {
	out := make([]vocab.DecorationID, s.store.len())
	for i := range out {
		out[i] = vocab.DecorationID(i)
	}
	return out
}
