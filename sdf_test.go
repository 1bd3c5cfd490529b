package levelset

import (
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

func TestSDF2(t *testing.T) {
	cs := mustCutSet(t,
		Seg(Pt(0, 0), Pt(10, 0)),
		Seg(Pt(10, 0), Pt(10, 10)),
	)
	s := cs.SDF2(1)
	for _, pt := range []Point{Pt(5, 3), Pt(5, -3), Pt(12, 5), Pt(15, 0), Pt(-1, -1)} {
		got := s.Evaluate(v2.Vec{X: pt.X, Y: pt.Y})
		if want := cs.SignedDistance(pt); got != want {
			t.Errorf("%v: got %v, want %v", pt, got, want)
		}
	}

	bb := s.BoundingBox()
	diff(t, [4]float64{bb.Min.X, bb.Min.Y, bb.Max.X, bb.Max.Y}, [4]float64{-1, -1, 11, 11})
}

func TestSDF2Empty(t *testing.T) {
	s := mustCutSet(t).SDF2(2)
	bb := s.BoundingBox()
	diff(t, [4]float64{bb.Min.X, bb.Min.Y, bb.Max.X, bb.Max.Y}, [4]float64{-2, -2, 2, 2})
}
