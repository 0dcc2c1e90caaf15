package editing

import (
	"sort"

	"github.com/logiksim/circuitcore/circuit"
	"github.com/logiksim/circuitcore/segment"
	"github.com/logiksim/circuitcore/spatialindex"
	"github.com/logiksim/circuitcore/vocab"
)

// splitSegmentAt divides the segment at idx into two entries at point at,
// which must lie strictly inside the segment's line. The first half keeps
// idx; the second half is appended as a new segment with both of its new
// interior-facing endpoints classified new_unknown, pending
// reclassifyEndpointsOnInsert once actually inserted. Returns the new
// segment's index.
func splitSegmentAt(tree *segment.Tree, idx vocab.SegmentIndex, at vocab.Point) (vocab.SegmentIndex, bool) {
	info, err := tree.Info(idx)
	if err != nil {
		return 0, false
	}
	line := info.Line
	if at == line.P0 || at == line.P1 {
		return 0, false
	}
	if line.IsHorizontal() && at.Y != line.P0.Y {
		return 0, false
	}
	if line.IsVertical() && at.X != line.P0.X {
		return 0, false
	}

	first, err := vocab.NewOrderedLine(line.P0, at)
	if err != nil {
		return 0, false
	}
	second, err := vocab.NewOrderedLine(at, line.P1)
	if err != nil {
		return 0, false
	}

	p0Type, p1Type := info.P0Type, info.P1Type
	_ = tree.UpdateSegment(idx, first)
	_ = tree.SetEndpointType(idx, 0, p0Type)
	_ = tree.SetEndpointType(idx, 1, vocab.EndpointNewUnknown)

	newIdx := tree.AddSegment(segment.Info{
		Line:   second,
		P0Type: vocab.EndpointNewUnknown,
		P1Type: p1Type,
	})
	return newIdx, true
}

// SplitTemporaryBeforeInsert walks every segment in the temporary wire tree
// and splits it at any point that coincides with an existing inserted
// segment's endpoint strictly inside its span — spec.md §4.9.2's "split
// every temporary segment at any point that would become a T-junction with
// an existing inserted segment after insertion". This is a purely geometric
// pass grounded on segment.Tree's own split-by-UpdateSegment-plus-AddSegment
// idiom (see splitSegmentAt); it only detects T-junctions against
// already-inserted segments, not temporary-against-temporary crossings,
// since the latter requires full segment-segment intersection geometry this
// package does not otherwise need.
func SplitTemporaryBeforeInsert(c *circuit.Data) {
	tree, err := c.Layout.Wires.Tree(vocab.TemporaryWireID)
	if err != nil {
		return
	}

	for pass := true; pass; {
		pass = false
		for _, idx := range tree.Indices() {
			info, err := tree.Info(idx)
			if err != nil {
				continue
			}
			splitPoint, ok := findTJunction(c, info.Line)
			if !ok {
				continue
			}
			if _, split := splitSegmentAt(tree, idx, splitPoint); split {
				pass = true
				break
			}
		}
	}
}

func findTJunction(c *circuit.Data, line vocab.OrderedLine) (vocab.Point, bool) {
	for _, seg := range c.Spatial.Spatial.QuerySelection(vocab.Rect{P0: line.P0, P1: line.P1}) {
		if seg.Kind != spatialindex.ElementSegment {
			continue
		}
		tree, err := c.Layout.Wires.Tree(seg.Segment.Wire)
		if err != nil {
			continue
		}
		info, err := tree.Info(seg.Segment.Index)
		if err != nil {
			continue
		}
		for _, p := range [2]vocab.Point{info.Line.P0, info.Line.P1} {
			if p == line.P0 || p == line.P1 {
				continue
			}
			if withinOrderedLine(line, p) {
				return p, true
			}
		}
	}
	return vocab.Point{}, false
}

func withinOrderedLine(line vocab.OrderedLine, p vocab.Point) bool {
	if line.IsHorizontal() {
		return p.Y == line.P0.Y && p.X > line.P0.X && p.X < line.P1.X
	}
	return p.X == line.P0.X && p.Y > line.P0.Y && p.Y < line.P1.Y
}

// RegularizeTemporarySelection reports every point in the temporary wire
// tree where three or more segment ends (temporary or already inserted)
// meet — the cross-points spec.md §4.9.3 says must be returned so undo can
// restore them.
func RegularizeTemporarySelection(c *circuit.Data) []vocab.Point {
	tree, err := c.Layout.Wires.Tree(vocab.TemporaryWireID)
	if err != nil {
		return nil
	}

	counts := make(map[vocab.Point]int)
	for _, idx := range tree.Indices() {
		info, err := tree.Info(idx)
		if err != nil {
			continue
		}
		counts[info.Line.P0]++
		counts[info.Line.P1]++
	}
	for p := range counts {
		counts[p] += len(c.Spatial.QueryLineSegments(p))
	}

	var out []vocab.Point
	for p, n := range counts {
		if n >= 3 {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}
