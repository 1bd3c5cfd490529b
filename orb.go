package levelset

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/samber/lo"
)

// PayloadKeys are the GeoJSON feature properties holding the two payload
// slots of the segments of a feature.
var PayloadKeys = [2]string{"payload_0", "payload_1"}

func lineSegments(ls orb.LineString, payload [2]float64) ([]Segment, error) {
	if len(ls) < 2 {
		return nil, fmt.Errorf("%w: line string with %d vertices", ErrGeometry, len(ls))
	}
	segs := make([]Segment, 0, len(ls)-1)
	for i := range len(ls) - 1 {
		segs = append(segs, Segment{
			A:       Pt(ls[i][0], ls[i][1]),
			B:       Pt(ls[i+1][0], ls[i+1][1]),
			Payload: payload,
		})
	}
	return segs, nil
}

// FromLineString returns the cut set made of the consecutive vertex pairs of
// ls. Repeated vertices produce degenerate segments and are rejected, as are
// line strings with fewer than two vertices ([ErrGeometry]).
func FromLineString(ls orb.LineString) (*CutSet, error) {
	segs, err := lineSegments(ls, [2]float64{})
	if err != nil {
		return nil, err
	}
	return NewCutSet(segs...)
}

// FromMultiLineString is like [FromLineString], concatenating the segments of
// all line strings in order.
func FromMultiLineString(mls orb.MultiLineString) (*CutSet, error) {
	parts := make([][]Segment, len(mls))
	for i, ls := range mls {
		segs, err := lineSegments(ls, [2]float64{})
		if err != nil {
			return nil, fmt.Errorf("line string %d: %w", i, err)
		}
		parts[i] = segs
	}
	return NewCutSet(lo.Flatten(parts)...)
}

// DecodeGeoJSON decodes a GeoJSON feature collection of LineString and
// MultiLineString features into a cut set. Segments carry the payload stored
// in the feature properties named by [PayloadKeys]; missing keys default to
// zero. Any other geometry type fails with [ErrGeometry].
func DecodeGeoJSON(data []byte) (*CutSet, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("levelset: decoding GeoJSON: %w", err)
	}
	var segs []Segment
	for i, f := range fc.Features {
		payload := [2]float64{
			f.Properties.MustFloat64(PayloadKeys[0], 0),
			f.Properties.MustFloat64(PayloadKeys[1], 0),
		}
		var lines orb.MultiLineString
		switch g := f.Geometry.(type) {
		case orb.LineString:
			lines = orb.MultiLineString{g}
		case orb.MultiLineString:
			lines = g
		default:
			return nil, fmt.Errorf("%w: feature %d is a %T", ErrGeometry, i, f.Geometry)
		}
		for _, ls := range lines {
			part, err := lineSegments(ls, payload)
			if err != nil {
				return nil, fmt.Errorf("feature %d: %w", i, err)
			}
			segs = append(segs, part...)
		}
	}
	return NewCutSet(segs...)
}

// EncodeGeoJSON encodes cs as a feature collection with one two-point
// LineString feature per segment, in order, carrying the payload under
// [PayloadKeys]. [DecodeGeoJSON] reverses it.
func (cs *CutSet) EncodeGeoJSON() ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, s := range cs.Segments() {
		f := geojson.NewFeature(orb.LineString{{s.A.X, s.A.Y}, {s.B.X, s.B.Y}})
		f.Properties[PayloadKeys[0]] = s.Payload[0]
		f.Properties[PayloadKeys[1]] = s.Payload[1]
		fc.Append(f)
	}
	return fc.MarshalJSON()
}
