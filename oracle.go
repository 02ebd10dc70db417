package lattice

import (
	"io"
	"log"

	"github.com/osuushi/lattice/advanced"
)

// Counting lattice points and areas is done by an external engine. These are
// the shapes it has to return.

type Snapshot struct {
	Area           float64 `yaml:"area"`
	Boundary       int     `yaml:"boundary"`
	Interior       int     `yaml:"interior"`
	BoundaryPoints []Point `yaml:"boundary_points"`
	InteriorPoints []Point `yaml:"interior_points"`
}

// The diagonal shared by the two triangles of an additive pair.
type EdgeInfo struct {
	// Lattice points strictly between the endpoints
	Points        []Point  `yaml:"points"`
	InteriorCount int      `yaml:"interior_count"`
	Endpoints     [2]Point `yaml:"endpoints"`
}

// Statistics for a quadrilateral a, b, c, d split along a-c into T1 = (a, b,
// c) and T2 = (a, d, c).
type AdditiveSnapshot struct {
	T1         Snapshot `yaml:"t1"`
	T2         Snapshot `yaml:"t2"`
	Union      Snapshot `yaml:"union"`
	SharedEdge EdgeInfo `yaml:"shared_edge"`
}

type Oracle interface {
	Snapshot(vertices []Point) (Snapshot, error)
	AdditiveSnapshot(vertices [4]Point) (AdditiveSnapshot, error)
}

// OracleGuard keeps the engine usable when the oracle isn't. A nil or failing
// oracle yields empty snapshots instead of errors, and failures are logged to
// Logger if one is set.
type OracleGuard struct {
	Oracle Oracle
	Logger *log.Logger
}

func EmptySnapshot() Snapshot {
	return Snapshot{
		BoundaryPoints: []Point{},
		InteriorPoints: []Point{},
	}
}

func (g OracleGuard) Available() bool {
	return g.Oracle != nil
}

func (g OracleGuard) Snapshot(vertices []Point) Snapshot {
	if g.Oracle == nil {
		return EmptySnapshot()
	}
	snapshot, err := g.Oracle.Snapshot(vertices)
	if err != nil {
		g.logger().Printf("snapshot of %v failed, using an empty one: %v", vertices, err)
		return EmptySnapshot()
	}
	return normalizeSnapshot(snapshot)
}

// The shared edge needs no counting, so it is always filled in from our own
// geometry when the oracle can't provide it.
func (g OracleGuard) AdditiveSnapshot(vertices [4]Point) AdditiveSnapshot {
	if g.Oracle != nil {
		snapshot, err := g.Oracle.AdditiveSnapshot(vertices)
		if err == nil {
			snapshot.T1 = normalizeSnapshot(snapshot.T1)
			snapshot.T2 = normalizeSnapshot(snapshot.T2)
			snapshot.Union = normalizeSnapshot(snapshot.Union)
			return snapshot
		}
		g.logger().Printf("additive snapshot of %v failed, using an empty one: %v", vertices, err)
	}
	return AdditiveSnapshot{
		T1:         EmptySnapshot(),
		T2:         EmptySnapshot(),
		Union:      EmptySnapshot(),
		SharedEdge: SharedDiagonal(vertices),
	}
}

func (g OracleGuard) logger() *log.Logger {
	if g.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return g.Logger
}

// Describe the diagonal a-c of the quadrilateral a, b, c, d.
func SharedDiagonal(vertices [4]Point) EdgeInfo {
	a, c := vertices[0], vertices[2]
	points := advanced.EdgeInteriorPoints(a, c)
	return EdgeInfo{
		Points:        points,
		InteriorCount: len(points),
		Endpoints:     [2]Point{a, c},
	}
}

func normalizeSnapshot(s Snapshot) Snapshot {
	if s.BoundaryPoints == nil {
		s.BoundaryPoints = []Point{}
	}
	if s.InteriorPoints == nil {
		s.InteriorPoints = []Point{}
	}
	return s
}
