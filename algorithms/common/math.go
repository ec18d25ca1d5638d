package common

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Small numeric helpers shared by the wave, playback and analysis packages

// Lerp blends linearly from a to b by amt. amt is not clamped.
func Lerp(a, b, amt float64) float64 {
	return (b-a)*amt + a
}

// ClampedLerp is Lerp with amt held to [0, 1]
func ClampedLerp(a, b, amt float64) float64 {
	if amt < 0 {
		return a
	}
	if amt > 1 {
		return b
	}
	return Lerp(a, b, amt)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DivideInterval maps t from the sub-interval [lo, hi] back onto [0, 1].
// No clamping is done, so values outside the sub-interval map outside [0, 1].
//
//	      lo   hi
//	t: 0 --+----+-- 1
//	      /      \
//	  -> 0 ------ 1
func DivideInterval(t, lo, hi float64) float64 {
	return (t - lo) / (hi - lo)
}

// RadiansToDegrees converts an angle in radians to degrees
func RadiansToDegrees(radians float64) float64 {
	return radians * (180 / math.Pi)
}

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// MinMax returns the smallest and largest value in one pass.
// Both are zero for an empty slice.
func MinMax(data []float64) (lo, hi float64) {
	if len(data) == 0 {
		return 0, 0
	}

	lo, hi = data[0], data[0]
	for _, v := range data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
