package levelset

import "fmt"

// VelocityInputs are the field values sampled on both sides of the interface
// at one interface point.
type VelocityInputs struct {
	ValuePositive float64
	ValueNegative float64

	GradPositive Vec2
	GradNegative Vec2

	DiffusivityPositive float64
	DiffusivityNegative float64
}

// Velocity computes the normal speed of an interface from the jump in
// diffusive flux across it.
//
// The speed is
//
//	(Dp (∇cp · n) − Dn (∇cn · n)) / (cp − cn)
//
// where p and n denote the positive and negative side. A positive speed
// moves the interface along Normal.
type Velocity struct {
	// Normal is the direction the speed is measured along. It is used as
	// given, without normalization. The zero value means ⟨1, 0⟩.
	Normal Vec2
}

func (v Velocity) normal() Vec2 {
	if v.Normal == (Vec2{}) {
		return Vec(1, 0)
	}
	return v.Normal
}

// Compute returns the interface speed for in.
//
// If both sides have the same gradient and diffusivity, or the flux jump is
// exactly zero, the speed is exactly zero regardless of the value jump; in
// particular identical inputs on both sides never move the interface, even
// when the fluxes themselves overflow. A zero value jump with a non-zero flux jump has no finite speed
// and yields a signed infinity; use [Velocity.Check] to reject such samples.
func (v Velocity) Compute(in VelocityInputs) float64 {
	if in.GradPositive == in.GradNegative && in.DiffusivityPositive == in.DiffusivityNegative {
		return 0
	}
	n := v.normal()
	flux := in.DiffusivityPositive*in.GradPositive.Dot(n) -
		in.DiffusivityNegative*in.GradNegative.Dot(n)
	if flux == 0 {
		return 0
	}
	return flux / (in.ValuePositive - in.ValueNegative)
}

// Check reports [ErrNoValueJump] for inputs that [Velocity.Compute] cannot
// turn into a finite speed.
func (v Velocity) Check(in VelocityInputs) error {
	if in.ValuePositive != in.ValueNegative {
		return nil
	}
	if v.Compute(in) == 0 {
		return nil
	}
	return fmt.Errorf("%w: value %g on both sides", ErrNoValueJump, in.ValuePositive)
}

// InterfaceVelocity computes the speed along ⟨1, 0⟩ of an interface with the
// given two-sided values, gradients and diffusivities. See [Velocity].
func InterfaceVelocity(valuePos, valueNeg float64, gradPos, gradNeg Vec2, diffPos, diffNeg float64) float64 {
	return Velocity{}.Compute(VelocityInputs{
		ValuePositive:       valuePos,
		ValueNegative:       valueNeg,
		GradPositive:        gradPos,
		GradNegative:        gradNeg,
		DiffusivityPositive: diffPos,
		DiffusivityNegative: diffNeg,
	})
}

// WithSegmentDiffusivities returns in with its diffusivities taken from the
// payload of s: Payload[0] for the positive side and Payload[1] for the
// negative side.
func (in VelocityInputs) WithSegmentDiffusivities(s Segment) VelocityInputs {
	in.DiffusivityPositive = s.Payload[0]
	in.DiffusivityNegative = s.Payload[1]
	return in
}
