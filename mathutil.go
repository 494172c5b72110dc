package noise

import "math"

// Remap maps v from [inMin, inMax] to [outMin, outMax] linearly. With clamp
// set, the result is limited to the output range.
//
// Noise in [-1, 1] becomes a unit intensity with
//
//	t := noise.Remap(v, -1, 1, 0, 1, true)
func Remap(v, inMin, inMax, outMin, outMax float64, clamp bool) float64 {
	r := (v-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
	if clamp {
		r = Clamp(r, min(outMin, outMax), max(outMin, outMax))
	}
	return r
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

// Lerp interpolates from a at t=0 to b at t=1. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return lerp(t, a, b)
}

// Distance returns the Euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
