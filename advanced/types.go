package advanced

import "fmt"

// Every point sits on the integer lattice, so points are plain values and
// equality is exact. They can be used directly as map keys.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Lexicographic ordering: smaller X first, ties broken by smaller Y.
func (p Point) Less(q Point) bool {
	if p.X == q.X {
		return p.Y < q.Y
	}
	return p.X < q.X
}

type Segment struct {
	Start Point `yaml:"start"`
	End   Point `yaml:"end"`
}

// Does the segment match other in either direction?
func (s Segment) Matches(other Segment) bool {
	return (s.Start == other.Start && s.End == other.End) ||
		(s.Start == other.End && s.End == other.Start)
}

type Polygon struct {
	Points []Point `yaml:"points"`
}

func (poly Polygon) Empty() bool {
	return len(poly.Points) == 0
}

// Edges of the polygon, wrapping from the last point back to the first.
func (poly Polygon) Edges() []Segment {
	n := len(poly.Points)
	if n < 2 {
		return nil
	}
	edges := make([]Segment, n)
	for i, p := range poly.Points {
		edges[i] = Segment{p, poly.Points[CircularIndex(i+1, n)]}
	}
	return edges
}

type Orientation int

const (
	Lower Orientation = iota
	Upper
)

func (o Orientation) String() string {
	if o == Upper {
		return "upper"
	}
	return "lower"
}

func (o Orientation) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// Position of a unit triangle within the subdivision lattice.
type GridTag struct {
	I           int         `yaml:"i"`
	J           int         `yaml:"j"`
	Orientation Orientation `yaml:"orientation"`
}

func (g GridTag) String() string {
	return fmt.Sprintf("[%d,%d %s]", g.I, g.J, g.Orientation)
}

// Vertex order matters for drawing, but shape comparisons treat the points as
// an unordered set.
type Triangle struct {
	Points [3]Point `yaml:"points"`
	Tag    *GridTag `yaml:"tag,omitempty"`
}

func (t Triangle) Edges() [3]Segment {
	return [3]Segment{
		{t.Points[0], t.Points[1]},
		{t.Points[1], t.Points[2]},
		{t.Points[2], t.Points[0]},
	}
}

// Number of vertices this triangle has in common with other.
func (t Triangle) SharedVertexCount(other Triangle) int {
	count := 0
	for _, p := range t.Points {
		for _, q := range other.Points {
			if p == q {
				count++
				break
			}
		}
	}
	return count
}

func (t Triangle) HasTag(i, j int, orientation Orientation) bool {
	return t.Tag != nil && t.Tag.I == i && t.Tag.J == j && t.Tag.Orientation == orientation
}

func (t Triangle) String() string {
	s := fmt.Sprintf("%v %v %v", t.Points[0], t.Points[1], t.Points[2])
	if t.Tag != nil {
		s = t.Tag.String() + " " + s
	}
	return s
}

type TriangleList []Triangle

// Deduplicated vertices of the list, in first-seen order.
func (list TriangleList) Vertices() []Point {
	seen := make(PointSet)
	var result []Point
	for _, tri := range list {
		for _, p := range tri.Points {
			if seen.Contains(p) {
				continue
			}
			seen.Add(p)
			result = append(result, p)
		}
	}
	return result
}

// The fixed reference triangle: a right angle at Origin with two legs of
// length Leg running along the positive axes.
type OuterTriangle struct {
	Origin Point `yaml:"origin"`
	Leg    int   `yaml:"leg"`
}

// Vertices in counterclockwise order, starting at the right angle.
func (o OuterTriangle) Vertices() []Point {
	return []Point{
		o.Origin,
		o.Origin.Add(Point{o.Leg, 0}),
		o.Origin.Add(Point{0, o.Leg}),
	}
}

type PointSet map[Point]struct{}

func NewPointSet(points ...Point) PointSet {
	set := make(PointSet, len(points))
	for _, p := range points {
		set.Add(p)
	}
	return set
}

func (set PointSet) Add(p Point) {
	set[p] = struct{}{}
}

func (set PointSet) Contains(p Point) bool {
	_, ok := set[p]
	return ok
}
