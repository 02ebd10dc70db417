package advanced

// Order triangles so that each one, after the first, glues onto the pieces
// already placed along a full edge.
//
// The walk is seeded with the (0, 0) lower triangle. At each step the placed
// triangles are visited in placement order, and for each one the unplaced
// triangles are scanned in generation order; the first unplaced triangle
// that shares exactly two vertices with a placed one goes next. Ties are
// therefore broken purely by generation order, which decides the order of the
// animation.
//
// If nothing unplaced touches the placed region along an edge, the next
// unplaced triangle is taken anyway so the walk terminates. That can only
// happen for an input that isn't edge connected. The second return value
// counts how many times this happened.
//
// This is O(T²) in the number of triangles, which is fine for the small
// subdivisions we deal with.
func SequenceByAdjacency(list TriangleList) (TriangleList, int) {
	if len(list) == 0 {
		return TriangleList{}, 0
	}

	remaining := make(TriangleList, len(list))
	copy(remaining, list)

	seedIndex := 0
	for i, tri := range remaining {
		if tri.HasTag(0, 0, Lower) {
			seedIndex = i
			break
		}
	}

	sequence := make(TriangleList, 0, len(list))
	sequence = append(sequence, remaining[seedIndex])
	remaining = removeTriangle(remaining, seedIndex)

	fallbacks := 0
	for len(remaining) > 0 {
		next := findAdjacent(sequence, remaining)
		if next < 0 {
			next = 0
			fallbacks++
		}
		sequence = append(sequence, remaining[next])
		remaining = removeTriangle(remaining, next)
	}
	return sequence, fallbacks
}

// Index into candidates of the first triangle that shares an edge with a
// placed triangle, or -1.
func findAdjacent(placed, candidates TriangleList) int {
	for _, p := range placed {
		for i, c := range candidates {
			if c.SharedVertexCount(p) == 2 {
				return i
			}
		}
	}
	return -1
}

// Remove the triangle at index i, preserving the order of the rest.
func removeTriangle(list TriangleList, i int) TriangleList {
	return append(list[:i], list[i+1:]...)
}
