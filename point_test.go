package levelset

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Lerp(Pt(10, -4), 0.5), Pt(5, -2))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointFinite(t *testing.T) {
	if !Pt(1, 2).isFinite() {
		t.Error("finite point reported as non-finite")
	}
	if Pt(math.Inf(-1), 2).isFinite() {
		t.Error("infinite point reported as finite")
	}
	if Pt(0, math.NaN()).isFinite() {
		t.Error("NaN point reported as finite")
	}
}

func TestVecTurn90(t *testing.T) {
	diff(t, Vec(1, 0).Turn90(), Vec(0, 1))
	diff(t, Vec(0, 1).Turn90(), Vec(-1, 0))
	v := Vec(3, -7)
	if d := v.Dot(v.Turn90()); d != 0 {
		t.Errorf("rotated vector not perpendicular, dot product %v", d)
	}
	if c := v.Cross(v.Turn90()); c <= 0 {
		t.Errorf("rotation isn't anti-clockwise, cross product %v", c)
	}
}
