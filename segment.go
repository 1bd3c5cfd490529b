package levelset

// Segment is one straight piece of a piecewise-linear interface, running from
// A to B. Payload holds the two per-segment scalars of the flat cut-data
// layout (see [CutDataStride]). Distance computations ignore it.
type Segment struct {
	A Point
	B Point

	Payload [2]float64
}

// Seg returns the segment from a to b with zero payload.
func Seg(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.B.Sub(s.A).Hypot()
}

// Direction returns B−A.
func (s Segment) Direction() Vec2 {
	return s.B.Sub(s.A)
}

// Normal returns the segment's direction rotated by +90°. Points on the side
// the normal points to have a positive signed distance. The normal is not
// normalized.
func (s Segment) Normal() Vec2 {
	return s.Direction().Turn90()
}

// IsDegenerate reports whether the segment has zero length.
func (s Segment) IsDegenerate() bool {
	return s.A == s.B
}

func (s Segment) isFinite() bool {
	return s.A.isFinite() && s.B.isFinite() && Pt(s.Payload[0], s.Payload[1]).isFinite()
}

// Nearest returns the point on the segment closest to pt and the distance
// between the two. The projection of pt onto the segment's line is clamped to
// the segment, so points beyond either end are measured to that endpoint.
//
// The segment must not be degenerate.
func (s Segment) Nearest(pt Point) (Point, float64) {
	d := s.Length()
	v := s.Direction().Div(d)
	t := v.Dot(pt.Sub(s.A))

	var nearest Point
	if t < 0 {
		nearest = s.A
	} else if t > d {
		nearest = s.B
	} else {
		nearest = s.A.Translate(v.Mul(t))
	}
	return nearest, pt.Distance(nearest)
}

// SignedDistance returns the distance from pt to the segment, negated if pt
// lies on the opposite side of the segment's [Segment.Normal]. Points whose
// nearest point is an endpoint take their sign from the same normal, which
// makes points on the segment's extension non-negative.
//
// This is the opposite sign of measuring (nearest − pt) against the normal:
// for the segment (0,0)→(10,0), the point (5,3) is at +3, not −3.
func (s Segment) SignedDistance(pt Point) float64 {
	_, dist := s.signedNearest(pt)
	return dist
}

func (s Segment) signedNearest(pt Point) (Point, float64) {
	nearest, dist := s.Nearest(pt)
	if s.Normal().Dot(pt.Sub(nearest)) < 0 {
		dist = -dist
	}
	return nearest, dist
}

func (s Segment) BoundingBox() Rect {
	return NewRectFromPoints(s.A, s.B)
}

// Translate returns the segment moved by v. The payload is kept.
func (s Segment) Translate(v Vec2) Segment {
	return Segment{
		A:       s.A.Translate(v),
		B:       s.B.Translate(v),
		Payload: s.Payload,
	}
}

// Reverse returns the segment from B to A, which flips the sign of every
// distance measured to it.
func (s Segment) Reverse() Segment {
	return Segment{A: s.B, B: s.A, Payload: s.Payload}
}
