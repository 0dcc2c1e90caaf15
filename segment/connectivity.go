package segment

import "github.com/logiksim/circuitcore/vocab"

// IsContiguousTree reports whether the segments form a single connected,
// acyclic component in the point-adjacency graph (spec.md §3 segment tree
// invariant, spec.md §8 "the segment graph is connected and acyclic"):
// points are nodes, segments are edges. A point where three or more
// segments meet (a legal cross_point, spec.md §4.9.2) is simply a
// higher-degree node, not a cycle; a cycle only exists when two points are
// already connected before the edge joining them is added. An empty tree
// and a single segment both count as valid.
func (t *Tree) IsContiguousTree() bool {
	if len(t.entries) == 0 {
		return true
	}

	parent := make(map[vocab.Point]vocab.Point, len(t.entries)*2)
	var find func(vocab.Point) vocab.Point
	find = func(p vocab.Point) vocab.Point {
		root, ok := parent[p]
		if !ok {
			parent[p] = p
			return p
		}
		if root == p {
			return p
		}
		root = find(root)
		parent[p] = root
		return root
	}

	for _, e := range t.entries {
		r0, r1 := find(e.info.Line.P0), find(e.info.Line.P1)
		if r0 == r1 {
			return false // cycle: both endpoints already connected
		}
		parent[r0] = r1
	}

	root := find(t.entries[0].info.Line.P0)
	for _, e := range t.entries {
		if find(e.info.Line.P0) != root || find(e.info.Line.P1) != root {
			return false // disconnected
		}
	}
	return true
}

// EndpointDegree returns how many segments have an endpoint exactly at p.
func (t *Tree) EndpointDegree(p vocab.Point) int {
	degree := 0
	for _, e := range t.entries {
		if e.info.Line.P0 == p {
			degree++
		}
		if e.info.Line.P1 == p {
			degree++
		}
	}
	return degree
}

// SegmentsAt returns the indices of every segment with an endpoint at p,
// together with which end (0 or 1) touches it.
func (t *Tree) SegmentsAt(p vocab.Point) []EndpointRef {
	var out []EndpointRef
	for i, e := range t.entries {
		if e.info.Line.P0 == p {
			out = append(out, EndpointRef{Index: vocab.SegmentIndex(i), End: 0})
		}
		if e.info.Line.P1 == p {
			out = append(out, EndpointRef{Index: vocab.SegmentIndex(i), End: 1})
		}
	}
	return out
}

// EndpointRef names one end of one segment.
type EndpointRef struct {
	Index vocab.SegmentIndex
	End   int // 0 = P0, 1 = P1
}

// IsCollinear reports whether two lines sharing an endpoint continue
// straight through it (used to distinguish corner_point from cross_point
// classification, spec.md §4.9.2 step 2).
func IsCollinear(a, b vocab.OrderedLine) bool {
	return a.IsHorizontal() == b.IsHorizontal()
}
