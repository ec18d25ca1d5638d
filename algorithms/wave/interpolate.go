package wave

import (
	"math"
	"slices"

	"github.com/douugdev/synth/algorithms/common"
)

// WrapPhase reduces phase modulo 1 into [0, 1).
// math.Mod keeps the sign of the dividend, so negative phases need the +1.
func WrapPhase(phase float64) float64 {
	p := math.Mod(phase, 1)
	if p < 0 {
		p++
	}
	// -1e-20 + 1 rounds to exactly 1
	if p >= 1 {
		p = 0
	}
	return p
}

// ToFunction turns a table into a continuous periodic function of phase.
// Values between knots are linearly interpolated and the last sample blends
// into sample 0, so f(x) == f(x+k) for any integer k.
//
// The table is copied; later changes to t do not affect the result.
func ToFunction(t Table) (PhaseFunction, error) {
	if len(t) == 0 {
		return nil, common.InvalidArgument("cannot interpolate an empty table")
	}

	table := slices.Clone(t)
	size := len(table)
	length := float64(size)

	return func(phase float64) float64 {
		pos := WrapPhase(phase) * length

		index := int(math.Floor(pos))
		if index >= size {
			index -= size
		}
		next := (index + 1) % size
		frac := pos - math.Floor(pos)

		return common.Lerp(table[index], table[next], frac)
	}, nil
}
