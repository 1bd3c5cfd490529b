package levelset

import "math"

// Nearest describes the segment of a cut set closest to a query point.
type Nearest struct {
	// Index is the index of the winning segment.
	Index int
	// Point is the point on that segment closest to the query point.
	Point Point
	// Distance is the signed distance to the segment.
	Distance float64
}

// SignedDistance returns the signed distance from pt to the closest segment of
// cs. The magnitude is the euclidean distance to that segment and the sign is
// the one computed by [Segment.SignedDistance] for it.
//
// For an empty cut set SignedDistance returns +Inf, meaning that there is no
// interface nearby.
func (cs *CutSet) SignedDistance(pt Point) float64 {
	n, ok := cs.Nearest(pt)
	if !ok {
		return math.Inf(1)
	}
	return n.Distance
}

// Nearest returns the segment closest to pt. If several segments are equally
// close, the one with the lowest index wins. ok is false for an empty cut set
// and for a point with a NaN or infinite coordinate.
//
// Nearest is linear in the number of segments. [Index] answers the same
// queries, with the same results, in sublinear time.
func (cs *CutSet) Nearest(pt Point) (n Nearest, ok bool) {
	n.Distance = math.Inf(1)
	if !pt.isFinite() {
		return n, false
	}
	for i, s := range cs.all() {
		if c := nearestOn(i, s, pt); closer(c, n) {
			n = c
			ok = true
		}
	}
	return n, ok
}

func nearestOn(i int, s Segment, pt Point) Nearest {
	nearest, dist := s.signedNearest(pt)
	return Nearest{Index: i, Point: nearest, Distance: dist}
}

// closer reports whether a beats b. Ties go to the lower segment index.
func closer(a, b Nearest) bool {
	da, db := math.Abs(a.Distance), math.Abs(b.Distance)
	if da != db {
		return da < db
	}
	return a.Index < b.Index
}
