package lattice

import (
	"github.com/osuushi/lattice/advanced"
	"github.com/pkg/errors"
)

// The vertices of the two-triangle configuration shown when the additive
// property is introduced.
func DefaultAdditiveVertices() []Point {
	return []Point{{X: -4, Y: -1}, {X: 3, Y: -1}, {X: 2, Y: 4}, {X: -3, Y: 4}}
}

// Editor holds the vertices of a user editable polygon and only ever commits
// valid configurations. A rejected edit leaves the last valid vertices in
// place.
//
// In additive mode the polygon is a quadrilateral a, b, c, d that must also be
// split by its diagonal a-c into two triangles on opposite sides.
//
// An Editor is meant to be driven by a single owner and is not safe for
// concurrent use.
type Editor struct {
	vertices []Point
	additive bool
}

func NewEditor(initial []Point, additive bool) (*Editor, error) {
	e := &Editor{additive: additive}
	if additive && len(initial) != 4 {
		return nil, errors.Errorf("additive polygon needs 4 vertices, got %d", len(initial))
	}
	if !e.valid(initial) {
		return nil, errors.Errorf("initial polygon %v is not valid", initial)
	}
	e.vertices = append([]Point{}, initial...)
	return e, nil
}

// Commit the proposed vertices if they are valid. Reports whether they were
// accepted.
func (e *Editor) Propose(vertices []Point) bool {
	if !e.valid(vertices) {
		return false
	}
	e.vertices = append([]Point{}, vertices...)
	return true
}

// Drag a single vertex. Reports whether the move was accepted.
func (e *Editor) Move(index int, to Point) bool {
	if index < 0 || index >= len(e.vertices) {
		return false
	}
	proposed := e.Vertices()
	proposed[index] = to
	return e.Propose(proposed)
}

func (e *Editor) Vertices() []Point {
	return append([]Point{}, e.vertices...)
}

func (e *Editor) Additive() bool {
	return e.additive
}

func (e *Editor) valid(vertices []Point) bool {
	if e.additive {
		return advanced.ValidateAdditive(vertices)
	}
	return advanced.IsSimplePolygon(vertices)
}
