package noise

import "golang.org/x/image/math/f64"

// gradients is the fixed gradient set, indexed by hash & 3.
// The order is part of the seed-determinism contract.
var gradients = [4]f64.Vec2{
	{1, 1},
	{-1, 1},
	{1, -1},
	{-1, -1},
}

// NumGradients is the number of distinct gradient directions.
const NumGradients = len(gradients)

// Gradient returns gradient direction i of the fixed set, for i in
// [0, NumGradients). Lattice corners select a direction by hash & 3.
//
// The set is the four diagonals (±1, ±1). Each corner contribution is then
// a plain sum or difference of the offsets, and the kernel stays within
// [-1, 1].
func Gradient(i int) f64.Vec2 {
	return gradients[i&3]
}

// grad returns the dot product of the gradient selected by hash with the
// corner offset d.
func grad(hash int, d f64.Vec2) float64 {
	return dot(gradients[hash&3], d)
}

func dot(a, b f64.Vec2) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

// Corner order within a lattice cell, matching the offsets from
// cornerOffsets.
const (
	cornerAA = iota // (xi, yi)
	cornerBA        // (xi+1, yi)
	cornerAB        // (xi, yi+1)
	cornerBB        // (xi+1, yi+1)
)

// cornerOffsets returns the vectors from each corner of the lattice cell to
// the point at fractional position (xf, yf) inside it.
func cornerOffsets(xf, yf float64) [4]f64.Vec2 {
	return [4]f64.Vec2{
		cornerAA: {xf, yf},
		cornerBA: {xf - 1, yf},
		cornerAB: {xf, yf - 1},
		cornerBB: {xf - 1, yf - 1},
	}
}

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
// Its first and second derivatives vanish at 0 and 1.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lerp interpolates from a at t=0 to b at t=1.
func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}
