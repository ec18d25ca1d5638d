package wave

import (
	"math"
	"strings"

	"github.com/douugdev/synth/algorithms/common"
)

// Basic oscillator shapes over one cycle, phase in [0, 1)

func Sine(phase float64) float64 {
	return math.Sin(2 * math.Pi * phase)
}

func Square(phase float64) float64 {
	if phase < 0.5 {
		return -1
	}
	return 1
}

// Triangle starts at -1, peaks at 1 on the half cycle
func Triangle(phase float64) float64 {
	if phase < 0.5 {
		return -1 + 4*phase
	}
	return 3 - 4*phase
}

// Sawtooth ramps from -1 up to just under 1
func Sawtooth(phase float64) float64 {
	return 2*phase - 1
}

var shapes = map[string]PhaseFunction{
	"sine":     Sine,
	"square":   Square,
	"triangle": Triangle,
	"sawtooth": Sawtooth,
	"saw":      Sawtooth,
}

// ShapeByName resolves a shape name (sine, square, triangle, sawtooth)
func ShapeByName(name string) (PhaseFunction, error) {
	if fn, ok := shapes[strings.ToLower(name)]; ok {
		return fn, nil
	}
	return nil, common.InvalidArgument("unknown waveform %q", name)
}
