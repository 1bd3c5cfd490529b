package levelset

import "sync/atomic"

// Front publishes the current cut set of a moving interface. Queries load a
// snapshot and keep using it; the step that finishes moving the interface
// publishes a complete new cut set. A snapshot is never modified, so queries
// running concurrently with Publish see either the old or the new cut set.
//
// The zero value holds no cut set.
type Front struct {
	cur atomic.Pointer[frontState]
}

type frontState struct {
	cs *CutSet
	ix *Index
}

// NewFront returns a front publishing cs.
func NewFront(cs *CutSet) *Front {
	f := &Front{}
	f.Publish(cs)
	return f
}

// Load returns the current cut set, or nil if none has been published.
func (f *Front) Load() *CutSet {
	if st := f.cur.Load(); st != nil {
		return st.cs
	}
	return nil
}

// Index returns the index of the current cut set. It is built once per
// published cut set.
func (f *Front) Index() *Index {
	if st := f.cur.Load(); st != nil {
		return st.ix
	}
	return NewIndex(nil)
}

// Publish replaces the current cut set with cs.
func (f *Front) Publish(cs *CutSet) {
	f.cur.Store(&frontState{cs: cs, ix: NewIndex(cs)})
}

// SignedDistance measures pt against the current cut set.
func (f *Front) SignedDistance(pt Point) float64 {
	return f.Index().SignedDistance(pt)
}
