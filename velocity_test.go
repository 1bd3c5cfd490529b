package levelset

import (
	"errors"
	"math"
	"testing"
)

func TestVelocitySymmetric(t *testing.T) {
	tests := []VelocityInputs{
		{ValuePositive: 1, ValueNegative: 1, GradPositive: Vec(2, 3), GradNegative: Vec(2, 3), DiffusivityPositive: 0.7, DiffusivityNegative: 0.7},
		{ValuePositive: 0.1, ValueNegative: 0.1, GradPositive: Vec(-1e-3, 0), GradNegative: Vec(-1e-3, 0), DiffusivityPositive: 1e-12, DiffusivityNegative: 1e-12},
		{ValuePositive: 0, ValueNegative: 0, GradPositive: Vec(0.1, 0.2), GradNegative: Vec(0.1, 0.2), DiffusivityPositive: 3, DiffusivityNegative: 3},
		// The fluxes overflow to infinity on both sides.
		{ValuePositive: 1, ValueNegative: 1, GradPositive: Vec(1e308, 1e308), GradNegative: Vec(1e308, 1e308), DiffusivityPositive: 10, DiffusivityNegative: 10},
	}
	for _, in := range tests {
		for _, v := range []Velocity{{}, {Normal: Vec(0, 1)}, {Normal: Vec(0.6, 0.8)}} {
			if got := v.Compute(in); got != 0 {
				t.Errorf("%+v with normal %v: got %v, want 0", in, v.Normal, got)
			}
			if err := v.Check(in); err != nil {
				t.Errorf("%+v: unexpected error %v", in, err)
			}
		}
		got := InterfaceVelocity(in.ValuePositive, in.ValueNegative, in.GradPositive, in.GradNegative, in.DiffusivityPositive, in.DiffusivityNegative)
		if got != 0 {
			t.Errorf("%+v: got %v, want 0", in, got)
		}
	}
}

func TestVelocityFluxJump(t *testing.T) {
	in := VelocityInputs{
		ValuePositive:       1,
		ValueNegative:       0.5,
		GradPositive:        Vec(2, 0),
		GradNegative:        Vec(1, 0),
		DiffusivityPositive: 3,
		DiffusivityNegative: 4,
	}
	// (3·2 − 4·1) / (1 − 0.5)
	if got := (Velocity{}).Compute(in); got != 4 {
		t.Errorf("got %v, want 4", got)
	}
	if got := InterfaceVelocity(1, 0.5, Vec(2, 0), Vec(1, 0), 3, 4); got != 4 {
		t.Errorf("got %v, want 4", got)
	}

	// Only the normal component contributes.
	in.GradPositive.Y = 100
	if got := (Velocity{Normal: Vec(1, 0)}).Compute(in); got != 4 {
		t.Errorf("got %v, want 4", got)
	}
	if got := (Velocity{Normal: Vec(0, 1)}).Compute(in); got != 600 {
		t.Errorf("got %v, want 600", got)
	}

	// Swapping the sides flips the sign of the flux jump and of the value
	// jump.
	swapped := VelocityInputs{
		ValuePositive:       in.ValueNegative,
		ValueNegative:       in.ValuePositive,
		GradPositive:        in.GradNegative,
		GradNegative:        Vec(2, 0),
		DiffusivityPositive: in.DiffusivityNegative,
		DiffusivityNegative: in.DiffusivityPositive,
	}
	if got := (Velocity{}).Compute(swapped); got != 4 {
		t.Errorf("got %v, want 4", got)
	}
}

func TestVelocityNoValueJump(t *testing.T) {
	in := VelocityInputs{
		ValuePositive:       1,
		ValueNegative:       1,
		GradPositive:        Vec(2, 0),
		GradNegative:        Vec(1, 0),
		DiffusivityPositive: 1,
		DiffusivityNegative: 1,
	}
	v := Velocity{}
	if got := v.Compute(in); !math.IsInf(got, 1) {
		t.Errorf("got %v, want +Inf", got)
	}
	if err := v.Check(in); !errors.Is(err, ErrNoValueJump) {
		t.Errorf("got error %v, want %v", err, ErrNoValueJump)
	}
	in.ValueNegative = 0
	if err := v.Check(in); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}

func TestVelocitySegmentDiffusivities(t *testing.T) {
	cs, err := ParseCutData([]float64{0, 0, 0, 10, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	in := VelocityInputs{
		ValuePositive: 1,
		ValueNegative: 0.5,
		GradPositive:  Vec(2, 0),
		GradNegative:  Vec(1, 0),
	}.WithSegmentDiffusivities(cs.Segment(0))
	if in.DiffusivityPositive != 3 || in.DiffusivityNegative != 4 {
		t.Fatalf("got diffusivities %v, %v, want 3, 4", in.DiffusivityPositive, in.DiffusivityNegative)
	}

	speed := (Velocity{}).Compute(in)
	moved, err := cs.Advance(speed, 0.25, Vec(1, 0))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, moved.CutData(), []float64{1, 0, 1, 10, 3, 4})
}
