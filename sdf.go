package levelset

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

var _ sdf.SDF2 = (*cutSetSDF)(nil)

// cutSetSDF wraps a cut set to implement sdf.SDF2.
type cutSetSDF struct {
	ix *Index
	bb sdf.Box2
}

// SDF2 returns the signed distance field of cs for use with
// github.com/deadsy/sdfx. Evaluate returns the same value as
// [CutSet.SignedDistance]; BoundingBox is the cut set's bounding box grown by
// pad on every side.
//
// sdfx treats negative values as inside. A closed cut set running clockwise
// in y-up coordinates has its inside on the negative side of every segment,
// matching that convention.
func (cs *CutSet) SDF2(pad float64) sdf.SDF2 {
	bbox := cs.BoundingBox()
	if bbox.IsEmpty() {
		bbox = Rect{}
	}
	bbox = bbox.Inflate(pad, pad)
	return &cutSetSDF{
		ix: NewIndex(cs),
		bb: sdf.Box2{
			Min: v2.Vec{X: bbox.X0, Y: bbox.Y0},
			Max: v2.Vec{X: bbox.X1, Y: bbox.Y1},
		},
	}
}

// Evaluate returns the signed distance from p to the cut set.
func (s *cutSetSDF) Evaluate(p v2.Vec) float64 {
	return s.ix.SignedDistance(Pt(p.X, p.Y))
}

// BoundingBox returns the padded bounding box of the cut set.
func (s *cutSetSDF) BoundingBox() sdf.Box2 {
	return s.bb
}
