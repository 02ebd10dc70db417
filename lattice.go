// Lattice polygon decomposition for teaching the area theorem
// A = I + B/2 - 1.
//
// This package subdivides a right triangle into unit lattice triangles, orders
// them so they can be glued together one at a time along full edges, and
// reports the region accumulated at each step and the edge each new piece
// attaches along. It also validates polygons coming from an editing surface
// before they are committed.
//
// Everything is computed with exact integer arithmetic.
package lattice

import (
	"github.com/osuushi/lattice/advanced"
	"github.com/pkg/errors"
)

type Point = advanced.Point
type Segment = advanced.Segment
type Polygon = advanced.Polygon
type Triangle = advanced.Triangle
type TriangleList = advanced.TriangleList
type GridTag = advanced.GridTag
type Orientation = advanced.Orientation
type OuterTriangle = advanced.OuterTriangle

const (
	Lower = advanced.Lower
	Upper = advanced.Upper
)

const MaxLegLength = advanced.MaxLegLength

// The reference triangle used by the animation: right angle at the origin,
// legs of length 4.
func DefaultOuterTriangle() OuterTriangle {
	return OuterTriangle{Origin: Point{X: 0, Y: 0}, Leg: 4}
}

// A Session owns the decomposition of one outer triangle and its gluing order.
// Both are computed once by NewSession and never change afterwards, so a
// Session can be shared freely, including between goroutines. Everything else
// is derived from them on demand.
type Session struct {
	outer     OuterTriangle
	triangles TriangleList
	sequence  TriangleList
	fallbacks int
}

// Decompose and sequence the outer triangle. The leg length must be in [1,
// MaxLegLength].
func NewSession(outer OuterTriangle) (session *Session, err error) {
	if outer.Leg > MaxLegLength {
		return nil, errors.Errorf("leg length %d exceeds the maximum of %d", outer.Leg, MaxLegLength)
	}
	defer func() {
		recoveredErr := advanced.HandleLatticePanicRecover(recover())
		if recoveredErr != nil {
			session = nil
			err = recoveredErr
		}
	}()

	triangles := advanced.Decompose(outer)
	sequence, fallbacks := advanced.SequenceByAdjacency(triangles)
	return &Session{
		outer:     outer,
		triangles: triangles,
		sequence:  sequence,
		fallbacks: fallbacks,
	}, nil
}

func (s *Session) Outer() OuterTriangle {
	return s.outer
}

// Number of triangles in the decomposition.
func (s *Session) Len() int {
	return len(s.sequence)
}

// The decomposition in generation order.
func (s *Session) Triangles() TriangleList {
	return append(TriangleList{}, s.triangles...)
}

// The decomposition in gluing order.
func (s *Session) Sequence() TriangleList {
	return append(TriangleList{}, s.sequence...)
}

// How many triangles had to be placed without an edge to glue onto. This is
// always zero for the supported leg lengths.
func (s *Session) Fallbacks() int {
	return s.fallbacks
}

// The polygon enclosing the first k triangles of the sequence. See
// advanced.AccumulatedHull.
func (s *Session) Hull(k int) Polygon {
	return advanced.AccumulatedHull(s.sequence, s.outer, k)
}

// The edge along which the triangle at the given step attaches to the region
// placed before it, if it lies on that region's hull.
func (s *Session) SharedEdge(step int) (Segment, bool) {
	return advanced.SharedEdgeAt(s.sequence, s.outer, step)
}

// Everything the presentation layer needs to show one step of the gluing
// animation.
type Step struct {
	Index    int      `yaml:"index"`
	Triangle Triangle `yaml:"triangle"`
	// Hull of the region before and after this step's triangle is added
	Before Polygon `yaml:"before"`
	After  Polygon `yaml:"after"`
	// Nil when there is nothing to glue onto, or the shared edge is inside the
	// hull
	SharedEdge *Segment `yaml:"shared_edge,omitempty"`
}

func (s *Session) Step(index int) (Step, error) {
	if index < 0 || index >= len(s.sequence) {
		return Step{}, errors.Errorf("step %d out of range [0, %d)", index, len(s.sequence))
	}
	step := Step{
		Index:    index,
		Triangle: s.sequence[index],
		Before:   s.Hull(index),
		After:    s.Hull(index + 1),
	}
	if edge, ok := s.SharedEdge(index); ok {
		step.SharedEdge = &edge
	}
	return step, nil
}

// Is the polygon simple: distinct vertices, non-zero area, and no crossing
// edges?
func IsSimplePolygon(points []Point) bool {
	return advanced.IsSimplePolygon(points)
}

// For the quadrilateral a, b, c, d, are the triangles (a, b, c) and (a, d, c)
// on opposite sides of the diagonal a-c?
func TrianglesOnOppositeSides(points []Point) bool {
	return advanced.TrianglesOnOppositeSides(points)
}

// Every lattice point on the boundary of the polygon, sorted by x then y.
func CollectBoundaryPoints(points []Point) []Point {
	return advanced.CollectBoundaryPoints(points)
}
