package advanced

// Orientation test. This is the cross product (b-a)x(c-a): positive when a, b,
// c turn counterclockwise, negative when they turn clockwise, and zero when
// they are collinear. All of the lattice geometry is integral, so there is no
// tolerance here.
func Orient(a, b, c Point) int {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Is p within the axis aligned bounding box of the segment a-b (inclusive)?
func InBoundingBox(p, a, b Point) bool {
	return minInt(a.X, b.X) <= p.X && p.X <= maxInt(a.X, b.X) &&
		minInt(a.Y, b.Y) <= p.Y && p.Y <= maxInt(a.Y, b.Y)
}

// Does p lie on the closed segment a-b?
func IsPointOnSegment(p, a, b Point) bool {
	return Orient(a, b, p) == 0 && InBoundingBox(p, a, b)
}

// Do the closed segments p1-p2 and p3-p4 touch? Proper crossings are detected
// by the orientations straddling each segment, and collinear contact by the
// bounding box check.
func SegmentsIntersect(p1, p2, p3, p4 Point) bool {
	d1 := Orient(p1, p2, p3)
	d2 := Orient(p1, p2, p4)
	d3 := Orient(p3, p4, p1)
	d4 := Orient(p3, p4, p2)

	if oppositeSigns(d1, d2) && oppositeSigns(d3, d4) {
		return true
	}

	switch {
	case d1 == 0 && InBoundingBox(p3, p1, p2):
		return true
	case d2 == 0 && InBoundingBox(p4, p1, p2):
		return true
	case d3 == 0 && InBoundingBox(p1, p3, p4):
		return true
	case d4 == 0 && InBoundingBox(p2, p3, p4):
		return true
	}
	return false
}

// Twice the signed area of the polygon by the shoelace formula. Positive for
// counterclockwise polygons. Doubling keeps the result exact.
func DoubleSignedArea(points []Point) int {
	sum := 0
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum
}

func oppositeSigns(a, b int) bool {
	return (a > 0 && b < 0) || (a < 0 && b > 0)
}

func gcd(a, b int) int {
	a, b = absInt(a), absInt(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
