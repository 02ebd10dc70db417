package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSimplePolygon(t *testing.T) {
	expectations := map[string]bool{
		"square":          true,
		"long_diagonal":   true,
		"additive":        true,
		"arrowhead":       true,
		"chevron":         true,
		"bowtie":          false,
		"collinear":       false,
		"repeated_vertex": false,
		"pinched":         false,
		"touching":        false,
	}
	for name, expected := range expectations {
		t.Run(name, func(t *testing.T) {
			polygon := LoadFixture(name)
			assert.Equal(t, expected, IsSimplePolygon(polygon))
			// Winding doesn't matter
			assert.Equal(t, expected, IsSimplePolygon(reversed(polygon)), "reversed")
		})
	}

	t.Run("too few points", func(t *testing.T) {
		assert.False(t, IsSimplePolygon(nil))
		assert.False(t, IsSimplePolygon([]Point{{0, 0}, {1, 0}}))
	})

	t.Run("smallest lattice triangle", func(t *testing.T) {
		assert.True(t, IsSimplePolygon([]Point{{0, 0}, {1, 0}, {0, 1}}))
	})

	t.Run("bowtie with area", func(t *testing.T) {
		// Unlike the symmetric bowtie, the two lobes don't cancel out, so only
		// the crossing test can catch this one.
		polygon := []Point{{0, 0}, {4, 2}, {4, 0}, {0, 1}}
		assert.NotEqual(t, 0, DoubleSignedArea(polygon))
		assert.False(t, IsSimplePolygon(polygon))
	})
}

func TestTrianglesOnOppositeSides(t *testing.T) {
	assert.True(t, TrianglesOnOppositeSides(LoadFixture("additive")))
	assert.True(t, TrianglesOnOppositeSides(LoadFixture("square")))
	assert.False(t, TrianglesOnOppositeSides(LoadFixture("chevron")), "both on one side of the diagonal")
	assert.False(t, TrianglesOnOppositeSides([]Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}), "all collinear")
	assert.False(t, TrianglesOnOppositeSides([]Point{{0, 0}, {1, 1}, {2, 2}, {0, 2}}), "one apex on the diagonal")
	assert.False(t, TrianglesOnOppositeSides([]Point{{0, 0}, {1, 0}, {0, 1}}), "not a quadrilateral")
}

func TestValidateAdditive(t *testing.T) {
	assert.True(t, ValidateAdditive(LoadFixture("additive")))
	assert.False(t, ValidateAdditive(LoadFixture("chevron")))
	assert.False(t, ValidateAdditive(LoadFixture("bowtie")))
}
