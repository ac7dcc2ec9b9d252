// Package bloom provides the probabilistic membership filter that bloom-based
// walkers consult to decide whether a vertex was "probably already visited".
//
// The filter is a fixed-size bit array with three indices per key. All three
// indices are carved out of one 64-bit xxhash digest of the key's decimal
// form by repeated integer division:
//
//	h1 = d % m
//	h2 = (d / m) % m
//	h3 = (d / m / m) % m
//
// Add never fails, Query never yields a false negative, and there is no
// deletion or resizing; the false-positive rate grows with the load factor,
// so callers size the filter relative to the expected number of distinct
// visits.
package bloom

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// DefaultSize is the filter size in bits used when New receives 0.
const DefaultSize = 1000

// ErrInvalidSize is returned by New for a negative size.
var ErrInvalidSize = errors.New("bloom: invalid filter size")

const wordBits = 64

// Filter is a Bloom filter with three hash functions.
// It is not safe for concurrent mutation; each walker owns its own.
type Filter struct {
	size  uint64   // number of addressable bits
	words []uint64 // packed bit array
}

// New returns a Filter of size bits. size == 0 selects DefaultSize.
//
// Errors:
//   - ErrInvalidSize: size < 0.
//
// Complexity: O(size/64) time and space.
func New(size int) (*Filter, error) {
	if size < 0 {
		return nil, fmt.Errorf("New(%d): %w", size, ErrInvalidSize)
	}
	if size == 0 {
		size = DefaultSize
	}

	return &Filter{
		size:  uint64(size),
		words: make([]uint64, (size+wordBits-1)/wordBits),
	}, nil
}

// Add registers key in the filter.
// Complexity: O(1).
func (f *Filter) Add(key int) {
	for _, n := range f.indices(key) {
		f.words[n/wordBits] |= 1 << (n % wordBits)
	}
}

// Query reports whether key may have been added. A false result is exact;
// a true result may be a false positive.
// Complexity: O(1).
func (f *Filter) Query(key int) bool {
	for _, n := range f.indices(key) {
		if f.words[n/wordBits]&(1<<(n%wordBits)) == 0 {
			return false
		}
	}

	return true
}

// Size returns the number of bits in the filter.
func (f *Filter) Size() int { return int(f.size) }

// Count returns the number of bits currently set.
func (f *Filter) Count() int {
	total := 0
	for _, w := range f.words {
		total += bits.OnesCount64(w)
	}

	return total
}

// indices derives the three bit positions for key.
func (f *Filter) indices(key int) [3]uint64 {
	d := xxhash.Sum64String(strconv.Itoa(key))
	m := f.size

	return [3]uint64{
		d % m,
		(d / m) % m,
		(d / m / m) % m,
	}
}
