package advanced

// Validation for polygons coming from the editing surface. Edits are checked
// before they are committed, so the rest of the engine never sees a
// degenerate or self-intersecting shape.

// A polygon is simple if its vertices are pairwise distinct, it encloses at
// least half a unit of area (which rules out collinear lattice polygons), and
// no two non-adjacent edges touch.
func IsSimplePolygon(points []Point) bool {
	n := len(points)
	if n < 3 {
		return false
	}

	seen := make(PointSet, n)
	for _, p := range points {
		if seen.Contains(p) {
			return false
		}
		seen.Add(p)
	}

	// Doubled, so half a unit is 1
	if absInt(DoubleSignedArea(points)) < 1 {
		return false
	}

	edges := Polygon{Points: points}.Edges()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// Adjacent edges share an endpoint, including the wrap-around pair
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			a, b := edges[i], edges[j]
			if SegmentsIntersect(a.Start, a.End, b.Start, b.End) {
				return false
			}
		}
	}
	return true
}

// For a quadrilateral a, b, c, d describing the triangles (a, b, c) and (a, d,
// c) glued along the diagonal a-c, check that b and d sit strictly on opposite
// sides of that diagonal.
func TrianglesOnOppositeSides(points []Point) bool {
	if len(points) != 4 {
		return false
	}
	a, b, c, d := points[0], points[1], points[2], points[3]
	return oppositeSigns(Orient(a, c, b), Orient(a, c, d))
}

// The gate for the two-triangle editing surface: the quadrilateral must be
// simple and split by its diagonal into two triangles on either side.
func ValidateAdditive(points []Point) bool {
	return IsSimplePolygon(points) && TrianglesOnOppositeSides(points)
}
