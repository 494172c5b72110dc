// Package noise provides deterministic 2D gradient ("Perlin") noise for
// generative art.
//
// # Overview
//
// A [Field] is built once from an integer seed and then evaluated as often as
// needed. Construction shuffles a permutation table; evaluation is a pure
// function of the coordinates, so one Field can be shared by any number of
// goroutines without locking.
//
// # Quick Start
//
//	import "github.com/gogpu/noise"
//
//	f, err := noise.New(42)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Single octave, value in [-1, 1]
//	v := f.Noise(1.5, 2.5)
//
//	// Fractal sum of four octaves
//	v, err = f.OctaveNoise(1.5, 2.5, 4, 0.5, 2.0)
//
//	// Whole canvas at once: 800x600 samples, 0.01 units per pixel
//	g, err := f.Sample(800, 600, 0.01, noise.DefaultFractal())
//
// # Determinism
//
// The same seed always yields the same field, on every platform and Go
// release. The permutation table is shuffled by a generator defined in this
// module, and the gradient set is fixed (see [Gradient]). Changing either
// would change every image ever rendered from a seed, so both are part of
// the compatibility contract.
//
// # Batched Evaluation
//
// [Field.NoiseSlice], [Field.NoiseGrid] and their octave counterparts apply
// the scalar kernel to every element. Large batches are split into spans and
// spread over a worker pool. Results are bitwise identical to calling
// [Field.Noise] in a loop.
//
// # Coordinate System
//
// The lattice has unit spacing. Integer coordinates fall on lattice corners,
// where single-octave noise is exactly zero. Lattice indexes wrap every
// table size units (256 by default), so the field tiles with that period.
//
// # Logging
//
// The package is silent by default. See [SetLogger].
package noise

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
