package noise

import (
	"fmt"

	"github.com/gogpu/noise/internal/parallel"
)

// NoiseSlice evaluates Noise(xs[i], ys[i]) for every i and returns the
// results in dst, which is grown if its capacity is below len(xs).
//
// xs and ys must have equal length, otherwise ErrShapeMismatch is returned
// and dst is left untouched. Each element is exactly Noise(xs[i], ys[i]),
// so NaN or infinite coordinates give NaN in their own slot only.
func (f *Field) NoiseSlice(dst, xs, ys []float64) ([]float64, error) {
	if err := checkCoords(xs, ys); err != nil {
		return dst, err
	}
	dst = grow(dst, len(xs))
	f.run(len(xs), func(s parallel.Span) {
		for i := s.Start; i < s.End; i++ {
			dst[i] = f.Noise(xs[i], ys[i])
		}
	})
	return dst, nil
}

// OctaveNoiseSlice is the batched form of OctaveNoise with the parameters
// taken from fr. It fails like NoiseSlice, and with ErrInvalidOctaves when
// fr.Octaves < 1. Element i equals Fractal(xs[i], ys[i], fr).
func (f *Field) OctaveNoiseSlice(dst, xs, ys []float64, fr Fractal) ([]float64, error) {
	if err := fr.Validate(); err != nil {
		return dst, err
	}
	if err := checkCoords(xs, ys); err != nil {
		return dst, err
	}
	warnDegenerate(fr)

	dst = grow(dst, len(xs))
	f.run(len(xs), func(s parallel.Span) {
		for i := s.Start; i < s.End; i++ {
			dst[i] = f.octave(xs[i], ys[i], fr.Octaves, fr.Persistence, fr.Lacunarity)
		}
	})
	return dst, nil
}

// NoiseGrid evaluates Noise over coordinate grids of equal shape and
// returns a new grid of that shape.
func (f *Field) NoiseGrid(xs, ys *Grid) (*Grid, error) {
	if !xs.SameShape(ys) {
		return nil, shapeError(xs, ys)
	}
	out := &Grid{Width: xs.Width, Height: xs.Height}
	data, err := f.NoiseSlice(nil, xs.Data, ys.Data)
	if err != nil {
		return nil, err
	}
	out.Data = data
	return out, nil
}

// OctaveNoiseGrid evaluates octave noise over coordinate grids of equal
// shape and returns a new grid of that shape.
func (f *Field) OctaveNoiseGrid(xs, ys *Grid, fr Fractal) (*Grid, error) {
	if !xs.SameShape(ys) {
		return nil, shapeError(xs, ys)
	}
	out := &Grid{Width: xs.Width, Height: xs.Height}
	data, err := f.OctaveNoiseSlice(nil, xs.Data, ys.Data, fr)
	if err != nil {
		return nil, err
	}
	out.Data = data
	return out, nil
}

// Sample evaluates octave noise on a width x height pixel raster where
// pixel (px, py) maps to noise coordinates (px*scale, py*scale).
//
// This is the usual way to fill a canvas: a scale around 0.01 gives
// features a few dozen pixels wide.
func (f *Field) Sample(width, height int, scale float64, fr Fractal) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: sample size %dx%d", ErrInvalidInput, width, height)
	}
	gx, gy := Meshgrid(Arange(width, scale), Arange(height, scale))
	return f.OctaveNoiseGrid(gx, gy, fr)
}

// run calls fn over [0, n), on the field's pool when the batch spans more
// than one chunk.
func (f *Field) run(n int, fn func(parallel.Span)) {
	if n == 0 {
		return
	}
	if f.pool == nil || n <= f.spanSize {
		fn(parallel.Span{Start: 0, End: n})
		return
	}

	spans := parallel.Split(n, f.spanSize)
	Logger().Debug("noise: batch evaluation",
		"elements", n,
		"chunks", len(spans),
		"workers", f.pool.Workers())
	f.pool.Run(spans, fn)
}

func checkCoords(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: len(xs) = %d, len(ys) = %d", ErrShapeMismatch, len(xs), len(ys))
	}
	return nil
}

func shapeError(xs, ys *Grid) error {
	return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, xs, ys)
}

func grow(dst []float64, n int) []float64 {
	if cap(dst) < n {
		return make([]float64, n)
	}
	return dst[:n]
}

func warnDegenerate(fr Fractal) {
	if fr.Degenerate() {
		Logger().Warn("noise: degenerate fractal parameters",
			"octaves", fr.Octaves,
			"persistence", fr.Persistence,
			"lacunarity", fr.Lacunarity)
	}
}
