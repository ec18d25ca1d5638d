package windowing

import (
	"fmt"
	"strings"

	"github.com/douugdev/synth/algorithms/common"
)

// Window shapes a buffer before spectral analysis
type Window interface {
	// Apply returns a windowed copy of signal
	Apply(signal []float64) ([]float64, error)
	// ApplyInPlace windows signal directly
	ApplyInPlace(signal []float64) error
	Coefficients() []float64
	Size() int
	Name() string
}

// coefficientWindow holds precomputed periodic window coefficients
type coefficientWindow struct {
	name         string
	coefficients []float64
}

func newCoefficientWindow(name string, size int, generate func(i int, n float64) float64) (Window, error) {
	if size <= 0 {
		return nil, common.InvalidArgument("window size must be positive, got %d", size)
	}

	w := &coefficientWindow{
		name:         name,
		coefficients: make([]float64, size),
	}

	// periodic form: denominator is N, not N-1
	n := float64(size)
	for i := range size {
		w.coefficients[i] = generate(i, n)
	}

	return w, nil
}

func (w *coefficientWindow) Apply(signal []float64) ([]float64, error) {
	windowed := make([]float64, len(signal))
	copy(windowed, signal)
	if err := w.ApplyInPlace(windowed); err != nil {
		return nil, err
	}
	return windowed, nil
}

func (w *coefficientWindow) ApplyInPlace(signal []float64) error {
	if len(signal) != len(w.coefficients) {
		return fmt.Errorf("%w: signal length (%d) doesn't match window size (%d)",
			common.ErrInvalidArgument, len(signal), len(w.coefficients))
	}

	for i := range signal {
		signal[i] *= w.coefficients[i]
	}

	return nil
}

// Coefficients returns a copy of the window coefficients
func (w *coefficientWindow) Coefficients() []float64 {
	coeffs := make([]float64, len(w.coefficients))
	copy(coeffs, w.coefficients)
	return coeffs
}

func (w *coefficientWindow) Size() int {
	return len(w.coefficients)
}

func (w *coefficientWindow) Name() string {
	return w.name
}

// ByName builds the named window (rectangular, hann, hamming, blackman)
func ByName(name string, size int) (Window, error) {
	switch strings.ToLower(name) {
	case "rectangular", "rect", "none", "":
		return NewRectangular(size)
	case "hann", "hanning":
		return NewHann(size)
	case "hamming":
		return NewHamming(size)
	case "blackman":
		return NewBlackman(size)
	default:
		return nil, common.InvalidArgument("unknown window %q", name)
	}
}
