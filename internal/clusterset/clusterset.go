// Package clusterset tracks per-center cluster membership as compressed
// bitmaps over node indices. Sets are rebuilt from scratch on every
// assignment pass and carry no identity across iterations.
package clusterset

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Set is the membership of a single cluster: the indices of all nodes
// currently assigned to one center. Not safe for concurrent mutation.
type Set struct {
	bm *roaring.Bitmap
}

// New creates an empty membership set.
func New() *Set {
	return &Set{bm: roaring.New()}
}

// Add inserts a node index into the set.
func (s *Set) Add(i int) {
	s.bm.Add(uint32(i))
}

// Contains reports whether the node index is a member.
func (s *Set) Contains(i int) bool {
	return s.bm.Contains(uint32(i))
}

// Len returns the number of members.
func (s *Set) Len() int {
	return int(s.bm.GetCardinality())
}

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool {
	return s.bm.IsEmpty()
}

// Clear removes all members, retaining allocated containers for reuse.
func (s *Set) Clear() {
	s.bm.Clear()
}

// Each calls fn for every member index in ascending order.
func (s *Set) Each(fn func(i int)) {
	it := s.bm.Iterator()
	for it.HasNext() {
		fn(int(it.Next()))
	}
}

// Indices returns the member indices in ascending order.
func (s *Set) Indices() []int {
	out := make([]int, 0, s.Len())
	s.Each(func(i int) { out = append(out, i) })
	return out
}

// Partition groups node indices by their assigned center. assignments[i]
// is the center index of node i and must be in [0, k).
func Partition(assignments []int, k int) []*Set {
	sets := make([]*Set, k)
	for i := range sets {
		sets[i] = New()
	}
	for i, c := range assignments {
		sets[c].Add(i)
	}
	return sets
}
