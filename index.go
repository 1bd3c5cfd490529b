package levelset

import (
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
)

// Node fan-out of the R-tree backing an [Index].
const (
	indexMinChildren = 4
	indexMaxChildren = 16
)

// Index answers nearest-segment queries against a cut set using an R-tree
// over the segments' bounding boxes. It returns exactly the results of
// [CutSet.Nearest], including the lowest-index tie-break.
//
// An Index is immutable and may be queried concurrently. It has to be rebuilt
// when the cut set is replaced.
type Index struct {
	cs   *CutSet
	tree *rtreego.Rtree
}

type indexedSegment struct {
	index int
	seg   Segment
	rect  rtreego.Rect
}

func (e *indexedSegment) Bounds() rtreego.Rect { return e.rect }

// NewIndex returns an index over cs.
func NewIndex(cs *CutSet) *Index {
	ix := &Index{cs: cs}
	if cs.Len() == 0 {
		return ix
	}
	objs := make([]rtreego.Spatial, 0, cs.Len())
	for i, s := range cs.Segments() {
		objs = append(objs, &indexedSegment{
			index: i,
			seg:   s,
			rect:  paddedRect(s.BoundingBox(), 0),
		})
	}
	ix.tree = rtreego.NewTree(2, indexMinChildren, indexMaxChildren, objs...)
	return ix
}

// CutSet returns the cut set the index was built from.
func (ix *Index) CutSet() *CutSet { return ix.cs }

// SignedDistance is like [CutSet.SignedDistance].
func (ix *Index) SignedDistance(pt Point) float64 {
	n, ok := ix.Nearest(pt)
	if !ok {
		return math.Inf(1)
	}
	return n.Distance
}

// Nearest is like [CutSet.Nearest].
func (ix *Index) Nearest(pt Point) (Nearest, bool) {
	if ix.tree == nil || !pt.isFinite() {
		return Nearest{Distance: math.Inf(1)}, false
	}

	// The segment with the nearest box seeds the search. Every segment that
	// could tie or beat it has its box within the seed's distance.
	seed, ok := ix.tree.NearestNeighbor(rtreego.Point{pt.X, pt.Y}).(*indexedSegment)
	if !ok {
		// The R-tree finds nothing once the squared box distance overflows.
		return ix.cs.Nearest(pt)
	}
	best := nearestOn(seed.index, seed.seg, pt)

	r := math.Abs(best.Distance)
	query := paddedRect(Rect{X0: pt.X - r, Y0: pt.Y - r, X1: pt.X + r, Y1: pt.Y + r}, r*1e-9)
	for _, obj := range ix.tree.SearchIntersect(query) {
		e := obj.(*indexedSegment)
		if c := nearestOn(e.index, e.seg, pt); closer(c, best) {
			best = c
		}
	}
	return best, true
}

// paddedRect converts r to an R-tree rectangle grown by pad plus one ulp on
// every side, so that boxes of zero width still overlap the boxes touching
// them.
func paddedRect(r Rect, pad float64) rtreego.Rect {
	lo := rtreego.Point{
		math.Nextafter(r.MinX()-pad, math.Inf(-1)),
		math.Nextafter(r.MinY()-pad, math.Inf(-1)),
	}
	hi := rtreego.Point{
		math.Nextafter(r.MaxX()+pad, math.Inf(1)),
		math.Nextafter(r.MaxY()+pad, math.Inf(1)),
	}
	rect, err := rtreego.NewRectFromPoints(lo, hi)
	if err != nil {
		panic(fmt.Sprintf("rtreego.NewRectFromPoints: %v", err))
	}
	return rect
}
