package noise

// Option configures a Field during creation.
//
// Example:
//
//	// Default: 256-entry table, batches spread over GOMAXPROCS workers
//	f, err := noise.New(42)
//
//	// Larger lattice period, batches on the calling goroutine
//	f, err := noise.New(42, noise.WithTableSize(1024), noise.WithWorkers(1))
type Option func(*fieldOptions)

// fieldOptions holds optional configuration for Field creation.
type fieldOptions struct {
	tableSize int
	workers   int
	spanSize  int
}

// defaultOptions returns the default field options.
func defaultOptions() fieldOptions {
	return fieldOptions{
		tableSize: DefaultTableSize,
		workers:   0, // GOMAXPROCS
		spanSize:  0, // parallel.DefaultSpanSize
	}
}

// WithTableSize sets the permutation table size. It must be a power of two
// in [MinTableSize, MaxTableSize]; New reports ErrInvalidTableSize otherwise.
//
// The table size is the period of the field along each axis. Note that the
// same seed produces a different field for each table size.
func WithTableSize(size int) Option {
	return func(o *fieldOptions) {
		o.tableSize = size
	}
}

// WithWorkers sets how many goroutines batched evaluation may use.
// 1 evaluates batches on the calling goroutine. 0 or a negative value uses
// GOMAXPROCS. Pools are shared process-wide between fields with the same
// worker count.
func WithWorkers(n int) Option {
	return func(o *fieldOptions) {
		o.workers = n
	}
}

// WithChunkSize sets how many elements make up one unit of parallel work in
// batched evaluation. Batches no larger than one chunk run on the calling
// goroutine. 0 or a negative value selects the default (4096).
func WithChunkSize(n int) Option {
	return func(o *fieldOptions) {
		o.spanSize = n
	}
}
