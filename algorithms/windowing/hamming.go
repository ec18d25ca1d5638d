package windowing

import (
	"math"
)

// NewHamming creates a periodic Hamming window
func NewHamming(size int) (Window, error) {
	return newCoefficientWindow("hamming", size, func(i int, n float64) float64 {
		return 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/n)
	})
}
