package noise

import (
	"math"

	"github.com/gogpu/noise/internal/parallel"
)

// Field is a seeded 2D gradient-noise field.
//
// A Field holds only its permutation table and batch settings, both fixed at
// construction. All evaluation methods are pure functions of their
// arguments, so a Field is safe for concurrent use by multiple goroutines.
// Build a Field once and reuse it: construction shuffles a table, evaluation
// only reads it.
type Field struct {
	seed  int64
	table *PermutationTable

	// pool runs batched evaluation; nil means the calling goroutine.
	pool     *parallel.WorkerPool
	spanSize int
}

// New creates the field for seed.
//
// The only error comes from options: an invalid WithTableSize yields
// ErrInvalidTableSize.
func New(seed int64, opts ...Option) (*Field, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	table, err := NewPermutationTable(seed, o.tableSize)
	if err != nil {
		return nil, err
	}

	f := &Field{
		seed:     seed,
		table:    table,
		spanSize: o.spanSize,
	}
	if f.spanSize <= 0 {
		f.spanSize = parallel.DefaultSpanSize
	}
	if o.workers != 1 {
		f.pool = parallel.Shared(o.workers)
	}

	Logger().Debug("noise: field created",
		"seed", seed,
		"table_size", table.Size(),
		"workers", f.Workers(),
		"chunk_size", f.spanSize)

	return f, nil
}

// MustNew is like New but panics if the options are invalid.
func MustNew(seed int64, opts ...Option) *Field {
	f, err := New(seed, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Seed returns the seed the field was built from.
func (f *Field) Seed() int64 { return f.seed }

// Table returns the field's permutation table.
func (f *Field) Table() *PermutationTable { return f.table }

// Workers returns the number of goroutines batched evaluation may use.
func (f *Field) Workers() int {
	if f.pool == nil {
		return 1
	}
	return f.pool.Workers()
}

// Noise returns single-octave gradient noise at (x, y).
//
// The result lies in [-1, 1] and is exactly 0 at integer coordinates.
// NaN or infinite coordinates yield NaN.
func (f *Field) Noise(x, y float64) float64 {
	t := f.table

	fx := math.Floor(x)
	fy := math.Floor(y)
	xi := t.Wrap(fx)
	yi := t.Wrap(fy)

	xf := x - fx
	yf := y - fy

	u := fade(xf)
	v := fade(yf)

	aa := t.Hash(xi, yi)
	ab := t.Hash(xi, yi+1)
	ba := t.Hash(xi+1, yi)
	bb := t.Hash(xi+1, yi+1)

	d := cornerOffsets(xf, yf)
	x1 := lerp(u, grad(aa, d[cornerAA]), grad(ba, d[cornerBA]))
	x2 := lerp(u, grad(ab, d[cornerAB]), grad(bb, d[cornerBB]))

	return lerp(v, x1, x2)
}
