package advanced

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectBoundaryPoints(t *testing.T) {
	t.Run("horizontal segment", func(t *testing.T) {
		points := CollectBoundaryPoints([]Point{{0, 0}, {3, 0}})
		assert.Equal(t, []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, points)
	})

	t.Run("diagonal segment", func(t *testing.T) {
		points := CollectBoundaryPoints([]Point{{0, 0}, {2, 2}})
		assert.Equal(t, []Point{{0, 0}, {1, 1}, {2, 2}}, points)
	})

	t.Run("single point", func(t *testing.T) {
		assert.Equal(t, []Point{{5, 5}}, CollectBoundaryPoints([]Point{{5, 5}}))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, CollectBoundaryPoints(nil))
	})

	t.Run("unit triangle", func(t *testing.T) {
		points := CollectBoundaryPoints([]Point{{0, 1}, {1, 0}, {0, 0}})
		assert.Equal(t, []Point{{0, 0}, {0, 1}, {1, 0}}, points, "sorted by x then y")
	})

	for _, name := range []string{"square", "long_diagonal", "additive", "arrowhead", "chevron"} {
		t.Run(name+" fixture", func(t *testing.T) {
			polygon := LoadFixture(name)
			points := CollectBoundaryPoints(polygon)
			assert.Len(t, points, BoundaryCount(polygon))
			assert.True(t, sort.SliceIsSorted(points, func(i, j int) bool {
				return points[i].Less(points[j])
			}))

			// Every vertex is on the boundary, and every boundary point lies on an edge
			set := NewPointSet(points...)
			for _, p := range polygon {
				assert.True(t, set.Contains(p), "vertex %v missing", p)
			}
			edges := Polygon{Points: polygon}.Edges()
			for _, p := range points {
				onEdge := false
				for _, edge := range edges {
					if IsPointOnSegment(p, edge.Start, edge.End) {
						onEdge = true
						break
					}
				}
				assert.True(t, onEdge, "point %v is not on any edge", p)
			}
		})
	}
}

func TestBoundaryCount(t *testing.T) {
	assert.Equal(t, 8, BoundaryCount(LoadFixture("square")))
	assert.Equal(t, 18, BoundaryCount(LoadFixture("long_diagonal")))
	assert.Equal(t, 14, BoundaryCount(LoadFixture("additive")))
	assert.Equal(t, 3, BoundaryCount([]Point{{0, 0}, {1, 0}, {0, 1}}))
}

func TestEdgeInteriorPoints(t *testing.T) {
	assert.Equal(t, []Point{{1, 0}, {2, 0}}, EdgeInteriorPoints(Point{0, 0}, Point{3, 0}))
	assert.Equal(t, []Point{{2, 0}, {1, 0}}, EdgeInteriorPoints(Point{3, 0}, Point{0, 0}), "ordered from the start")
	assert.Equal(t, []Point{{2, 1}}, EdgeInteriorPoints(Point{0, 0}, Point{4, 2}))
	assert.Empty(t, EdgeInteriorPoints(Point{0, 0}, Point{1, 1}))
	assert.Empty(t, EdgeInteriorPoints(Point{-4, -1}, Point{2, 4}), "the default diagonal is primitive")
	assert.Empty(t, EdgeInteriorPoints(Point{2, 2}, Point{2, 2}))
}
