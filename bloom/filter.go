// Package bloom provides drive file ID deduplication using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for file ID deduplication within a run.
// A folder can contain shortcuts to files it already holds; the filter
// keeps each file from being processed more than once.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a file ID to the filter.
func (f *Filter) Add(fileID string) {
	f.f.AddString(fileID)
}

// Test returns true if the file ID might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(fileID string) bool {
	return f.f.TestString(fileID)
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
