package levelset

import "fmt"

// Triple holds one value per region, in the order PositivePositive,
// NegativePositive, NegativeNegative.
type Triple[T any] [NumRegions]T

// Select returns the value t holds for r. It panics if r is not a valid
// region; there is no fallback value.
func Select[T any](r Region, t Triple[T]) T {
	if !r.Valid() {
		panic(fmt.Sprintf("levelset: selecting for invalid region %v", r))
	}
	return t[r-PositivePositive]
}

// Select is shorthand for [Select](r, t).
func (t Triple[T]) Select(r Region) T {
	return Select(r, t)
}

// Pair holds one value per side of a single level set.
type Pair[T any] struct {
	Positive T
	Negative T
}

// Select returns the value p holds for s.
func (p Pair[T]) Select(s Side) T {
	switch s {
	case PositiveSide:
		return p.Positive
	case NegativeSide:
		return p.Negative
	default:
		panic(fmt.Sprintf("levelset: selecting for invalid side %v", s))
	}
}

// Property describes a material property that takes one of three values
// depending on the region. Values are looked up by name in a host property
// store, under "<base>_<name>" for each of the three region bases.
//
// A diffusion coefficient and any other named property differ only in Name.
type Property struct {
	// Name is the property name, e.g. "diffusion_coefficient".
	Name string
	// Bases are the base names of the materials of the three regions, in
	// [Triple] order.
	Bases [NumRegions]string
	// BaseName optionally prefixes the name of the computed property.
	BaseName string
}

// Names returns the store names of the three source values.
func (p Property) Names() [NumRegions]string {
	var names [NumRegions]string
	for i, base := range p.Bases {
		names[i] = base + "_" + p.Name
	}
	return names
}

// Declared returns the name under which the selected value is published.
func (p Property) Declared() string {
	if p.BaseName == "" {
		return p.Name
	}
	return p.BaseName + "_" + p.Name
}

// Resolve looks up the three source values. It fails with
// [ErrUnknownProperty] if lookup doesn't know one of them.
func (p Property) Resolve(lookup func(name string) (float64, bool)) (Triple[float64], error) {
	var t Triple[float64]
	for i, name := range p.Names() {
		v, ok := lookup(name)
		if !ok {
			return Triple[float64]{}, fmt.Errorf("%w %q", ErrUnknownProperty, name)
		}
		t[i] = v
	}
	return t, nil
}
