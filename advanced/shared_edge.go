package advanced

// Find the edge of tri that lies along an edge of the accumulated hull, in
// either direction. The edge is returned in the triangle's own orientation.
//
// A triangle glued onto a concave part of the real region shares an edge that
// is strictly inside the hull, in which case nothing is found.
func LocateSharedEdge(tri Triangle, hull Polygon) (Segment, bool) {
	vertices := NewPointSet(hull.Points...)
	hullEdges := hull.Edges()
	for _, edge := range tri.Edges() {
		if !vertices.Contains(edge.Start) || !vertices.Contains(edge.End) {
			continue
		}
		for _, hullEdge := range hullEdges {
			if edge.Matches(hullEdge) {
				return edge, true
			}
		}
	}
	return Segment{}, false
}

// The shared edge for the triangle introduced at the given step, measured
// against the hull of everything placed before it. The first step has nothing
// to glue onto.
func SharedEdgeAt(sequence TriangleList, outer OuterTriangle, step int) (Segment, bool) {
	if step <= 0 || step >= len(sequence) {
		return Segment{}, false
	}
	hull := AccumulatedHull(sequence, outer, step)
	return LocateSharedEdge(sequence[step], hull)
}
