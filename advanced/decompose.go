package advanced

// Largest supported leg length. The sequencer is quadratic in the number of
// triangles.
const MaxLegLength = 16

// Subdivide the outer right triangle into Leg² unit right triangles on the
// lattice.
//
// Cell (i, j) is the unit square whose lower left corner is Origin+(i, j).
// Every cell under the hypotenuse is split along its anti-diagonal into a
// lower and an upper triangle, while the cells the hypotenuse runs through
// (i+j == Leg-1) only contribute their lower half. Triangles are emitted
// column by column, lower before upper, and this generation order is what
// the sequencer breaks ties with.
func Decompose(outer OuterTriangle) TriangleList {
	n := outer.Leg
	if n <= 0 {
		fatalf("cannot decompose outer triangle with leg length %d", n)
	}

	o := outer.Origin
	triangles := make(TriangleList, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i; j++ {
			triangles = append(triangles, Triangle{
				Points: [3]Point{
					o.Add(Point{i, j}),
					o.Add(Point{i + 1, j}),
					o.Add(Point{i, j + 1}),
				},
				Tag: &GridTag{I: i, J: j, Orientation: Lower},
			})

			if i+j < n-1 {
				triangles = append(triangles, Triangle{
					Points: [3]Point{
						o.Add(Point{i + 1, j}),
						o.Add(Point{i + 1, j + 1}),
						o.Add(Point{i, j + 1}),
					},
					Tag: &GridTag{I: i, J: j, Orientation: Upper},
				})
			}
		}
	}
	return triangles
}
