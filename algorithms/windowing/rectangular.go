package windowing

// NewRectangular creates a boxcar window; applying it leaves the signal as is
func NewRectangular(size int) (Window, error) {
	return newCoefficientWindow("rectangular", size, func(int, float64) float64 {
		return 1.0
	})
}
