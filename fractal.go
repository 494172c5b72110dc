package noise

import (
	"fmt"
	"math"
)

// Fractal holds the parameters of octave composition (fractal Brownian
// motion).
type Fractal struct {
	// Octaves is the number of noise layers summed. Must be at least 1.
	Octaves int

	// Persistence scales the amplitude from one octave to the next.
	// Values in (0, 1] give the usual fractal look.
	Persistence float64

	// Lacunarity scales the frequency from one octave to the next.
	// Values >= 1 give the usual fractal look.
	Lacunarity float64
}

// DefaultFractal returns four octaves, each at half the amplitude and twice
// the frequency of the previous one.
func DefaultFractal() Fractal {
	return Fractal{Octaves: 4, Persistence: 0.5, Lacunarity: 2.0}
}

// Validate reports ErrInvalidOctaves when Octaves < 1.
//
// Persistence and lacunarity are not checked: values outside the usual
// ranges are allowed on purpose and simply produce non-fractal output.
func (fr Fractal) Validate() error {
	if fr.Octaves < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidOctaves, fr.Octaves)
	}
	return nil
}

// Degenerate reports whether the parameters fall outside the fractal range:
// Persistence <= 0 or Lacunarity < 1.
func (fr Fractal) Degenerate() bool {
	return fr.Persistence <= 0 || fr.Lacunarity < 1
}

// OctaveNoise sums octaves of Noise at (x, y) and normalizes the sum by the
// total amplitude, keeping the result in [-1, 1].
//
// Octave i is sampled at frequency lacunarity^i with amplitude
// persistence^i. With octaves == 1 the result equals Noise(x, y).
// An octave count below 1 yields ErrInvalidOctaves.
//
// A finite coordinate whose scaled value overflows at a high octave is held
// at ±math.MaxFloat64, which lies on the lattice, so large finite inputs
// stay finite. NaN or infinite inputs give NaN, as with Noise. If the amplitudes sum to zero (persistence -1 with an even octave
// count) the result is NaN or an infinity.
func (f *Field) OctaveNoise(x, y float64, octaves int, persistence, lacunarity float64) (float64, error) {
	if octaves < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidOctaves, octaves)
	}
	return f.octave(x, y, octaves, persistence, lacunarity), nil
}

// Fractal is OctaveNoise with the parameters taken from fr.
func (f *Field) Fractal(x, y float64, fr Fractal) (float64, error) {
	return f.OctaveNoise(x, y, fr.Octaves, fr.Persistence, fr.Lacunarity)
}

// octave is the unchecked octave sum; octaves must be >= 1.
func (f *Field) octave(x, y float64, octaves int, persistence, lacunarity float64) float64 {
	total := 0.0
	frequency := 1.0
	amplitude := 1.0
	maxAmplitude := 0.0

	for range octaves {
		total += f.Noise(scaled(x, frequency), scaled(y, frequency)) * amplitude
		maxAmplitude += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}

	return total / maxAmplitude
}

// scaled returns v*frequency. A product that overflows from a finite v is
// held at ±math.MaxFloat64; NaN and infinite v pass through.
func scaled(v, frequency float64) float64 {
	s := v * frequency
	if math.IsInf(s, 0) && !math.IsInf(v, 0) {
		return math.Copysign(math.MaxFloat64, s)
	}
	return s
}
