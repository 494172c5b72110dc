package noise

import (
	"fmt"
	"math"
	"math/bits"
	"slices"

	"github.com/gogpu/noise/internal/prng"
)

// Permutation table size limits.
const (
	// DefaultTableSize is the classic 256-entry table.
	DefaultTableSize = 256

	// MinTableSize is the smallest usable table.
	MinTableSize = 2

	// MaxTableSize bounds table memory at 1 MiB on 64-bit platforms.
	MaxTableSize = 1 << 16
)

// PermutationTable is a seeded permutation of [0, size) stored twice in a
// row, so that perm[perm[x]+y] never needs an explicit wrap for x, y in
// [0, size].
//
// A PermutationTable is immutable and safe for concurrent use.
type PermutationTable struct {
	perm []int
	size int
	mask int
}

// NewPermutationTable builds the table for seed.
//
// The same (seed, size) pair always produces the same table. size must be a
// power of two in [MinTableSize, MaxTableSize].
func NewPermutationTable(seed int64, size int) (*PermutationTable, error) {
	if size < MinTableSize || size > MaxTableSize || bits.OnesCount(uint(size)) != 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTableSize, size)
	}

	perm := make([]int, 2*size)
	base := perm[:size]
	for i := range base {
		base[i] = i
	}

	prng.New(uint64(seed)).Shuffle(size, func(i, j int) {
		base[i], base[j] = base[j], base[i]
	})
	copy(perm[size:], base)

	return &PermutationTable{perm: perm, size: size, mask: size - 1}, nil
}

// Size returns the number of distinct values in the table.
func (t *PermutationTable) Size() int { return t.size }

// Len returns the length of the doubled table, 2*Size().
func (t *PermutationTable) Len() int { return len(t.perm) }

// At returns entry i of the doubled table. It panics if i is outside
// [0, Len()).
func (t *PermutationTable) At(i int) int { return t.perm[i] }

// Values returns a copy of the doubled table.
func (t *PermutationTable) Values() []int { return slices.Clone(t.perm) }

// Hash maps a lattice corner to a table value with two chained lookups.
// x and y must already be reduced to [0, Size()].
func (t *PermutationTable) Hash(x, y int) int {
	return t.perm[t.perm[x]+y]
}

// Wrap reduces a floored coordinate to a lattice index in [0, Size()).
// Negative values wrap like a mathematical modulo. Values too large for
// an int are reduced in floating point first, and NaN maps to 0.
func (t *PermutationTable) Wrap(f float64) int {
	const limit = 1 << 62
	if f > -limit && f < limit {
		// Two's complement masking is a non-negative modulo for powers of two.
		return int(f) & t.mask
	}
	m := math.Mod(f, float64(t.size))
	if m != m {
		return 0
	}
	if m < 0 {
		m += float64(t.size)
	}
	return int(m)
}
