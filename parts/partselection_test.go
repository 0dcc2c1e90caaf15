package parts

import (
	"reflect"
	"testing"

	"github.com/logiksim/circuitcore/vocab"
)

func TestAddCoalesces(t *testing.T) {
	var s PartSelection
	s.Add(vocab.Part{Begin: 0, End: 5})
	s.Add(vocab.Part{Begin: 5, End: 10})
	s.Add(vocab.Part{Begin: 20, End: 25})

	want := []vocab.Part{{Begin: 0, End: 10}, {Begin: 20, End: 25}}
	if !reflect.DeepEqual(s.Parts(), want) {
		t.Fatalf("got %v, want %v", s.Parts(), want)
	}
}

func TestAddOverlapping(t *testing.T) {
	var s PartSelection
	s.Add(vocab.Part{Begin: 0, End: 10})
	s.Add(vocab.Part{Begin: 5, End: 15})

	want := []vocab.Part{{Begin: 0, End: 15}}
	if !reflect.DeepEqual(s.Parts(), want) {
		t.Fatalf("got %v, want %v", s.Parts(), want)
	}
}

func TestRemoveSplits(t *testing.T) {
	var s PartSelection
	s.Add(vocab.Part{Begin: 0, End: 20})
	s.Remove(vocab.Part{Begin: 5, End: 10})

	want := []vocab.Part{{Begin: 0, End: 5}, {Begin: 10, End: 20}}
	if !reflect.DeepEqual(s.Parts(), want) {
		t.Fatalf("got %v, want %v", s.Parts(), want)
	}
}

func TestMaxOffset(t *testing.T) {
	var s PartSelection
	if s.MaxOffset() != 0 {
		t.Fatalf("expected 0 for empty selection")
	}
	s.Add(vocab.Part{Begin: 3, End: 8})
	s.Add(vocab.Part{Begin: 20, End: 30})
	if s.MaxOffset() != 30 {
		t.Fatalf("got %d", s.MaxOffset())
	}
}

func TestMoveParts(t *testing.T) {
	var src, dst PartSelection
	src.Add(vocab.Part{Begin: 0, End: 10})

	MoveParts(&dst, &src, CopyDefinition{
		Source:      vocab.Part{Begin: 2, End: 6},
		Destination: vocab.Part{Begin: 100, End: 104},
	})

	want := []vocab.Part{{Begin: 100, End: 104}}
	if !reflect.DeepEqual(dst.Parts(), want) {
		t.Fatalf("got %v, want %v", dst.Parts(), want)
	}
}

func TestIterParts(t *testing.T) {
	var sel PartSelection
	sel.Add(vocab.Part{Begin: 2, End: 4})
	sel.Add(vocab.Part{Begin: 6, End: 8})

	type piece struct {
		part     vocab.Part
		selected bool
	}
	var got []piece
	IterParts(vocab.Part{Begin: 0, End: 10}, &sel, func(part vocab.Part, selected bool) {
		got = append(got, piece{part, selected})
	})

	want := []piece{
		{vocab.Part{Begin: 0, End: 2}, false},
		{vocab.Part{Begin: 2, End: 4}, true},
		{vocab.Part{Begin: 4, End: 6}, false},
		{vocab.Part{Begin: 6, End: 8}, true},
		{vocab.Part{Begin: 8, End: 10}, false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
