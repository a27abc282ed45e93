// Package bloom provides duplicate email-body detection using Bloom filters.
package bloom

import (
	"fmt"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"
)

// Digest returns the hex xxhash digest of an email body.
func Digest(body string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(body))
}

// Filter records body digests so repeated bodies can be skipped.
// It is safe for concurrent use.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen reports whether the digest was probably added before, and adds it.
// False positives are possible; false negatives are not.
func (f *Filter) Seen(digest string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestAndAddString(digest)
}
