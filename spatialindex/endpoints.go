package spatialindex

import "github.com/logiksim/circuitcore/vocab"

// endpointIndex maps an exact grid point to the segments whose line has an
// endpoint there, used by QueryLineSegments (spec.md §4.4(a)). It is a
// separate structure from SpatialIndex's coarse bucket grid because exact
// point membership, not bounding-box overlap, is what the operation needs.
type endpointIndex struct {
	atPoint map[vocab.Point]map[vocab.Segment]struct{}
}

func newEndpointIndex() *endpointIndex {
	return &endpointIndex{atPoint: make(map[vocab.Point]map[vocab.Segment]struct{})}
}

func (e *endpointIndex) add(seg vocab.Segment, p vocab.Point) {
	set, ok := e.atPoint[p]
	if !ok {
		set = make(map[vocab.Segment]struct{})
		e.atPoint[p] = set
	}
	set[seg] = struct{}{}
}

func (e *endpointIndex) remove(seg vocab.Segment, p vocab.Point) {
	set, ok := e.atPoint[p]
	if !ok {
		return
	}
	delete(set, seg)
	if len(set) == 0 {
		delete(e.atPoint, p)
	}
}

func (e *endpointIndex) rename(oldSeg, newSeg vocab.Segment, points []vocab.Point) {
	for _, p := range points {
		e.remove(oldSeg, p)
		e.add(newSeg, p)
	}
}

// at returns every segment with an endpoint exactly at p, a query that can
// return up to 4 results at a grid point where two orthogonal wires cross
// or four wire ends meet.
func (e *endpointIndex) at(p vocab.Point) []vocab.Segment {
	set := e.atPoint[p]
	if len(set) == 0 {
		return nil
	}
	out := make([]vocab.Segment, 0, len(set))
	for seg := range set {
		out = append(out, seg)
	}
	return out
}
