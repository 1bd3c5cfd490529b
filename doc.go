// Package levelset provides the geometric kernels of a moving-interface
// simulation on a cut mesh: signed distances to a piecewise-linear interface,
// classification of points into the material regions induced by one or two
// level sets, selection of per-region material properties, and the normal
// velocity of an interface driven by a jump in diffusive flux.
//
// The package does not assemble, mesh or integrate anything. A host
// simulation supplies level-set samples, cut data and field values and
// consumes the distances, regions, property values and velocities computed
// here.
//
// # Cut sets and signed distance
//
// A [CutSet] is an immutable, ordered list of [Segment] values approximating
// an interface at one point in time. Cut sets are built from segments
// ([NewCutSet]), from flat cut data with [CutDataStride] reals per segment
// ([ParseCutData]), or from GeoJSON and orb geometries ([DecodeGeoJSON],
// [FromLineString]). Construction is where malformed data is rejected; the
// kernels themselves never fail.
//
// [CutSet.SignedDistance] returns the distance to the closest segment. A
// segment's side is determined by its [Segment.Normal], the direction B−A
// rotated by +90°: points to the left of A→B have a positive distance.
// An empty cut set yields +Inf. [Index] answers the same queries using an
// R-tree, and [CutSet.SDF2] exposes the distance as an sdfx SDF2.
//
// When the interface moves, a new cut set replaces the old one. [Front]
// publishes cut sets atomically so that queries in flight keep a consistent
// snapshot.
//
// # Regions
//
// Two level sets partition a domain into three material regions,
// [PositivePositive], [NegativePositive] and [NegativeNegative]. [Classify]
// maps the two level-set values at a point, and whether the point lies inside
// the physical part of a cut element, to one of them. Combinations that don't
// determine a region are reported as [Ambiguous] or [Forbidden] rather than
// being assigned silently; [Region.Or] lets a caller fall back to a
// previously found region.
//
// A [Triple] holds one value per region and [Select] picks the value for a
// region. [Property] names the three source values of a material property in
// a host property store.
//
// For a single level set, [SideOf] and [Pair] play the same roles.
//
// # Interface velocity
//
// [Velocity] computes the speed of an interface from the values, gradients
// and diffusivities on both of its sides, following a Stefan-type flux
// balance. Identical sides produce a speed of exactly zero.
//
// # Concurrency
//
// All functions are pure and all types are immutable once built, so queries
// may run concurrently from any number of goroutines.
package levelset
