package noise

import (
	"fmt"
	"math"
)

// Grid is a dense row-major 2D array of reals.
//
// Grids carry coordinates into batched evaluation and results out of it.
// Element (x, y) is Data[y*Width+x].
type Grid struct {
	Width  int
	Height int
	Data   []float64
}

// NewGrid allocates a zeroed width x height grid.
// Non-positive dimensions give an empty grid.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		return &Grid{}
	}
	return &Grid{
		Width:  width,
		Height: height,
		Data:   make([]float64, width*height),
	}
}

// Len returns the number of elements, Width*Height.
func (g *Grid) Len() int {
	return g.Width * g.Height
}

// At returns element (x, y). It panics if (x, y) is out of range.
func (g *Grid) At(x, y int) float64 {
	return g.Data[g.index(x, y)]
}

// Set stores v at element (x, y). It panics if (x, y) is out of range.
func (g *Grid) Set(x, y int, v float64) {
	g.Data[g.index(x, y)] = v
}

// Row returns row y as a slice sharing the grid's storage.
func (g *Grid) Row(y int) []float64 {
	if y < 0 || y >= g.Height {
		panic(fmt.Sprintf("noise: row %d out of range [0, %d)", y, g.Height))
	}
	return g.Data[y*g.Width : (y+1)*g.Width]
}

func (g *Grid) index(x, y int) int {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		panic(fmt.Sprintf("noise: grid index (%d, %d) out of range %dx%d", x, y, g.Width, g.Height))
	}
	return y*g.Width + x
}

// String describes the grid's shape, e.g. "Grid(4x3)".
func (g *Grid) String() string {
	if g == nil {
		return "Grid(nil)"
	}
	if !g.valid() {
		return fmt.Sprintf("Grid(%dx%d, %d values)", g.Width, g.Height, len(g.Data))
	}
	return fmt.Sprintf("Grid(%dx%d)", g.Width, g.Height)
}

// valid reports whether Data holds exactly Width*Height elements.
func (g *Grid) valid() bool {
	return g.Width >= 0 && g.Height >= 0 && len(g.Data) == g.Width*g.Height
}

// SameShape reports whether g and other have equal dimensions and both are
// backed by correctly sized data.
func (g *Grid) SameShape(other *Grid) bool {
	if g == nil || other == nil {
		return false
	}
	return g.valid() && other.valid() &&
		g.Width == other.Width && g.Height == other.Height
}

// Range returns the smallest and largest element. NaN elements are
// skipped. An empty grid returns (0, 0).
func (g *Grid) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range g.Data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

// Mean returns the arithmetic mean of the elements, or 0 for an empty grid.
func (g *Grid) Mean() float64 {
	if len(g.Data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range g.Data {
		sum += v
	}
	return sum / float64(len(g.Data))
}

// Arange returns n values 0, step, 2*step, ...
func Arange(n int, step float64) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}

// Linspace returns n evenly spaced values from start to stop inclusive.
// For n == 1 it returns []float64{start}.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// Meshgrid expands axis vectors into coordinate grids of shape
// len(xs) x len(ys): gx varies along rows, gy along columns.
func Meshgrid(xs, ys []float64) (gx, gy *Grid) {
	w, h := len(xs), len(ys)
	gx, gy = NewGrid(w, h), NewGrid(w, h)
	if gx.Len() == 0 {
		return gx, gy
	}
	for y := range h {
		copy(gx.Row(y), xs)
		row := gy.Row(y)
		for x := range row {
			row[x] = ys[y]
		}
	}
	return gx, gy
}
