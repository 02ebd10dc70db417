package advanced

// The polygon enclosing the first k triangles of the sequence.
//
// Intermediate regions are represented by the convex hull of their vertices,
// so any concavity of the glued region is hulled over. The shared edge lookup
// relies on exactly this, so don't replace it with a true boundary trace.
//
// Nothing placed yet gives an empty polygon, and once every triangle is placed
// the outer triangle's vertices are returned as they are.
func AccumulatedHull(sequence TriangleList, outer OuterTriangle, k int) Polygon {
	if k <= 0 {
		return Polygon{}
	}
	if k >= len(sequence) {
		return Polygon{Points: outer.Vertices()}
	}
	return Polygon{Points: ConvexHull(sequence[:k].Vertices())}
}

// Gift wrapping convex hull, counterclockwise, starting at the
// lexicographically smallest point.
//
// From each hull point the next one is the candidate that has no other point
// strictly clockwise of it. Collinear points are not filtered, so they may or
// may not appear on the hull depending on input order. Fewer than three
// distinct points are returned as they are, without duplicates.
func ConvexHull(points []Point) []Point {
	points = distinct(points)
	if len(points) < 3 {
		return points
	}

	start := points[0]
	for _, p := range points[1:] {
		if p.Less(start) {
			start = p
		}
	}

	hull := []Point{}
	current := start
	for {
		hull = append(hull, current)

		candidate := current
		for _, p := range points {
			if p == current {
				continue
			}
			if candidate == current || Orient(current, candidate, p) < 0 {
				candidate = p
			}
		}
		current = candidate

		// Guard against walks that never return to the start on degenerate input
		if current == start || len(hull) > len(points) {
			break
		}
	}
	return hull
}

func distinct(points []Point) []Point {
	seen := make(PointSet, len(points))
	result := make([]Point, 0, len(points))
	for _, p := range points {
		if seen.Contains(p) {
			continue
		}
		seen.Add(p)
		result = append(result, p)
	}
	return result
}
