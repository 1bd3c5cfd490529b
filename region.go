package levelset

import "fmt"

// Region is a material region of a domain partitioned by two level sets.
//
// The three valid regions are named after the signs of the first and second
// level set. The fourth combination, positive/negative, cannot occur under the
// ordering of the two interfaces; classifying it yields [Forbidden] instead of
// a region. [Ambiguous] is reported when the samples do not single out a
// region.
type Region uint8

const (
	// NoRegion is the zero value and means "not classified".
	NoRegion Region = iota
	// PositivePositive is the region where both level sets are positive.
	PositivePositive
	// NegativePositive is the region between the two interfaces.
	NegativePositive
	// NegativeNegative is the region where both level sets are negative.
	NegativeNegative
	// Ambiguous is reported for samples on an interface (a level set that is
	// exactly zero or NaN) and for outside samples equally far from both
	// interfaces.
	Ambiguous
	// Forbidden is reported for a positive first and a negative second level
	// set, which violates the ordering of the interfaces.
	Forbidden

	// byMagnitude marks table entries resolved by comparing magnitudes.
	byMagnitude Region = 0xff
)

// NumRegions is the number of valid regions. A [Triple] has one entry per
// region.
const NumRegions = 3

// Valid reports whether r is one of the three material regions.
func (r Region) Valid() bool {
	return r >= PositivePositive && r <= NegativeNegative
}

// Or returns r if it is valid and prev otherwise. Callers that classify once
// per element use it to carry the previous element's region over ambiguous
// samples.
func (r Region) Or(prev Region) Region {
	if r.Valid() {
		return r
	}
	return prev
}

func (r Region) String() string {
	switch r {
	case NoRegion:
		return "NoRegion"
	case PositivePositive:
		return "PositivePositive"
	case NegativePositive:
		return "NegativePositive"
	case NegativeNegative:
		return "NegativeNegative"
	case Ambiguous:
		return "Ambiguous"
	case Forbidden:
		return "Forbidden"
	default:
		return fmt.Sprintf("Region(%d)", uint8(r))
	}
}

type sign uint8

const (
	negative sign = iota
	zero
	positive
)

func signOf(x float64) sign {
	switch {
	case x > 0:
		return positive
	case x < 0:
		return negative
	default:
		// Zero and NaN.
		return zero
	}
}

// classification is indexed by [inside][sign(ls1)][sign(ls2)].
//
// Outside the physical domain the sample belongs to the region the element is
// cut away from: both signs equal fold back onto the middle region, and the
// middle sign combination is resolved towards the nearer interface.
var classification = [2][3][3]Region{
	// outside
	{
		negative: {negative: NegativePositive, zero: Ambiguous, positive: byMagnitude},
		zero:     {negative: Ambiguous, zero: Ambiguous, positive: Ambiguous},
		positive: {negative: Forbidden, zero: Ambiguous, positive: NegativePositive},
	},
	// inside
	{
		negative: {negative: NegativeNegative, zero: Ambiguous, positive: NegativePositive},
		zero:     {negative: Ambiguous, zero: Ambiguous, positive: Ambiguous},
		positive: {negative: Forbidden, zero: Ambiguous, positive: PositivePositive},
	},
}

// Classify returns the region of a point given the values of the two level
// sets at the point and whether the point lies inside the physical part of
// its element.
//
// The result is one of the three valid regions, or a sentinel:
//   - [Forbidden] for ls1 > 0 and ls2 < 0, inside or outside.
//   - [Ambiguous] if either level set is zero or NaN.
//   - [Ambiguous] outside the physical domain for ls1 < 0 < ls2 with
//     |ls1| = ls2.
//
// Classify is a pure function.
func Classify(ls1, ls2 float64, inside bool) Region {
	var in int
	if inside {
		in = 1
	}
	r := classification[in][signOf(ls1)][signOf(ls2)]
	if r != byMagnitude {
		return r
	}
	switch {
	case -ls1 < ls2:
		return PositivePositive
	case ls2 < -ls1:
		return NegativeNegative
	default:
		return Ambiguous
	}
}

// Sample holds the level-set values at one point together with the point's
// membership of the physical domain.
type Sample struct {
	LevelSet1 float64
	LevelSet2 float64
	Inside    bool
}

// Classify is shorthand for [Classify](s.LevelSet1, s.LevelSet2, s.Inside).
func (s Sample) Classify() Region {
	return Classify(s.LevelSet1, s.LevelSet2, s.Inside)
}

// Side is a side of a single level set.
type Side uint8

const (
	// PositiveSide is where the level set is positive.
	PositiveSide Side = iota
	// NegativeSide is where the level set is zero or negative.
	NegativeSide
)

// SideOf returns the side of a single level set value. Zero belongs to the
// negative side.
func SideOf(ls float64) Side {
	if ls > 0 {
		return PositiveSide
	}
	return NegativeSide
}

func (s Side) String() string {
	switch s {
	case PositiveSide:
		return "PositiveSide"
	case NegativeSide:
		return "NegativeSide"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}
