package windowing

import (
	"math"
)

// NewBlackman creates a periodic Blackman window
func NewBlackman(size int) (Window, error) {
	a0, a1, a2 := 0.42, 0.5, 0.08

	return newCoefficientWindow("blackman", size, func(i int, n float64) float64 {
		arg := 2 * math.Pi * float64(i) / n
		return a0 - a1*math.Cos(arg) + a2*math.Cos(2*arg)
	})
}
