package levelset

import (
	"fmt"
	"iter"
	"math"

	"github.com/samber/lo"
)

// CutDataStride is the number of reals per segment in flat cut data:
// ax, ay, bx, by followed by the two payload slots.
const CutDataStride = 6

// CutSet is the piecewise-linear approximation of an interface at one point
// in time, as an ordered list of segments.
//
// A CutSet is immutable. Moving the interface produces a new CutSet (see
// [CutSet.Translate] and [CutSet.Map]) which is then published as a whole,
// for example through a [Front]. A nil *CutSet is the empty cut set.
type CutSet struct {
	segs []Segment
	bbox Rect
}

// NewCutSet returns a cut set made of segs, in order. It fails with a
// [*SegmentError] wrapping [ErrDegenerateSegment] or [ErrNonFinite] for the
// first invalid segment. Payload slots must be finite, too.
func NewCutSet(segs ...Segment) (*CutSet, error) {
	cs := &CutSet{
		segs: make([]Segment, len(segs)),
		bbox: emptyRect,
	}
	for i, s := range segs {
		switch {
		case !s.isFinite():
			return nil, &SegmentError{Index: i, Err: ErrNonFinite}
		case s.IsDegenerate():
			return nil, &SegmentError{Index: i, Err: ErrDegenerateSegment}
		}
		cs.segs[i] = s
		cs.bbox = cs.bbox.Union(s.BoundingBox())
	}
	return cs, nil
}

// ParseCutData decodes flat cut data made of [CutDataStride] reals per
// segment. A length that is not a multiple of the stride is rejected with
// [ErrCutDataStride]; no partial cut set is returned.
func ParseCutData(data []float64) (*CutSet, error) {
	if len(data)%CutDataStride != 0 {
		return nil, fmt.Errorf("%w: got %d values, stride %d", ErrCutDataStride, len(data), CutDataStride)
	}
	if len(data) == 0 {
		return NewCutSet()
	}
	segs := lo.Map(lo.Chunk(data, CutDataStride), func(rec []float64, _ int) Segment {
		return Segment{
			A:       Pt(rec[0], rec[1]),
			B:       Pt(rec[2], rec[3]),
			Payload: [2]float64{rec[4], rec[5]},
		}
	})
	return NewCutSet(segs...)
}

// CutData encodes the cut set in the flat layout read by [ParseCutData].
func (cs *CutSet) CutData() []float64 {
	return lo.FlatMap(cs.all(), func(s Segment, _ int) []float64 {
		return []float64{s.A.X, s.A.Y, s.B.X, s.B.Y, s.Payload[0], s.Payload[1]}
	})
}

func (cs *CutSet) all() []Segment {
	if cs == nil {
		return nil
	}
	return cs.segs
}

// Len returns the number of segments.
func (cs *CutSet) Len() int { return len(cs.all()) }

// Segment returns the i'th segment.
func (cs *CutSet) Segment(i int) Segment { return cs.segs[i] }

// Segments returns an iterator over the segments and their indices.
func (cs *CutSet) Segments() iter.Seq2[int, Segment] {
	return func(yield func(int, Segment) bool) {
		for i, s := range cs.all() {
			if !yield(i, s) {
				return
			}
		}
	}
}

// BoundingBox returns the smallest rectangle enclosing all segments. The
// result is empty (see [Rect.IsEmpty]) for an empty cut set.
func (cs *CutSet) BoundingBox() Rect {
	if cs == nil {
		return emptyRect
	}
	return cs.bbox
}

// Map returns a new cut set whose i'th segment is fn(i, s) for the i'th
// segment s of cs. The result is validated like [NewCutSet].
func (cs *CutSet) Map(fn func(i int, s Segment) Segment) (*CutSet, error) {
	return NewCutSet(lo.Map(cs.all(), func(s Segment, i int) Segment {
		return fn(i, s)
	})...)
}

// Translate returns a new cut set with every segment moved by v.
func (cs *CutSet) Translate(v Vec2) (*CutSet, error) {
	return cs.Map(func(_ int, s Segment) Segment {
		return s.Translate(v)
	})
}

// Advance returns a new cut set moved by speed·dt along the unit vector of n. speed is typically a [Velocity.Compute] result for a
// front that moves uniformly.
func (cs *CutSet) Advance(speed, dt float64, n Vec2) (*CutSet, error) {
	h := n.Hypot()
	if h == 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return nil, fmt.Errorf("levelset: invalid advance direction %v", n)
	}
	return cs.Translate(n.Normalize().Mul(speed * dt))
}
