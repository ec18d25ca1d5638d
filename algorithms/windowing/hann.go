package windowing

import (
	"math"
)

// NewHann creates a periodic Hann window
func NewHann(size int) (Window, error) {
	return newCoefficientWindow("hann", size, func(i int, n float64) float64 {
		return 0.5 * (1.0 - math.Cos(2*math.Pi*float64(i)/n))
	})
}
