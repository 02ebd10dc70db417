package advanced

import "sort"

// Collect every lattice point on the boundary of the polygon, sorted by X and
// then Y.
//
// Each edge is walked in gcd(|dx|, |dy|) unit steps of the reduced direction
// vector, so both endpoints are always included, and the vertices shared by
// adjacent edges are deduplicated by the set. An edge of length zero
// contributes only its start point.
func CollectBoundaryPoints(points []Point) []Point {
	set := make(PointSet)
	for i, start := range points {
		end := points[CircularIndex(i+1, len(points))]
		dx, dy := end.X-start.X, end.Y-start.Y
		steps := gcd(dx, dy)
		if steps == 0 {
			set.Add(start)
			continue
		}
		step := Point{dx / steps, dy / steps}
		for j := 0; j <= steps; j++ {
			set.Add(Point{start.X + step.X*j, start.Y + step.Y*j})
		}
	}

	result := make([]Point, 0, len(set))
	for p := range set {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Less(result[j])
	})
	return result
}

// Number of lattice points on the boundary, counted as the sum of the unit
// step counts of the edges. For a polygon with distinct vertices this agrees
// with len(CollectBoundaryPoints(points)).
func BoundaryCount(points []Point) int {
	count := 0
	for i, start := range points {
		end := points[CircularIndex(i+1, len(points))]
		count += gcd(end.X-start.X, end.Y-start.Y)
	}
	return count
}

// Lattice points strictly between a and b, in order from a.
func EdgeInteriorPoints(a, b Point) []Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	steps := gcd(dx, dy)
	if steps <= 1 {
		return []Point{}
	}
	step := Point{dx / steps, dy / steps}
	result := make([]Point, 0, steps-1)
	for i := 1; i < steps; i++ {
		result = append(result, Point{a.X + step.X*i, a.Y + step.Y*i})
	}
	return result
}
