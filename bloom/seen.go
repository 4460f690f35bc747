// Package bloom provides probabilistic URL deduplication for candidate
// discovery using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// SeenSet tracks URLs already considered during a discovery pass.
// False positives are possible (a never-seen URL may be reported seen);
// false negatives are not, so a duplicate is never admitted twice.
type SeenSet struct {
	f *bloom.BloomFilter
}

// NewSeenSet creates a SeenSet sized for n expected URLs with the given
// false positive rate.
func NewSeenSet(n uint, fpRate float64) *SeenSet {
	return &SeenSet{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Admit records the URL and reports whether it was new.
// Returns false if the URL was (probably) seen before.
func (s *SeenSet) Admit(url string) bool {
	if s.f.TestString(url) {
		return false
	}
	s.f.AddString(url)
	return true
}

// Seen returns true if the URL might have been admitted.
func (s *SeenSet) Seen(url string) bool {
	return s.f.TestString(url)
}
