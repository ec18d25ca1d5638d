package wave

import (
	"math"

	"github.com/douugdev/synth/algorithms/common"
)

// Normalize rescales t linearly so its minimum maps to -1 and its maximum to 1.
// A constant table has no range to stretch and comes back as silence (all
// zeros). The input is left untouched.
func Normalize(t Table) Table {
	normalized := make(Table, len(t))
	if len(t) == 0 {
		return normalized
	}

	lo, hi := common.MinMax(t)
	if hi == lo {
		return normalized
	}

	// halving keeps the span finite when the extremes are near ±MaxFloat64
	scale := 1.0
	span := hi - lo
	if math.IsInf(span, 0) {
		scale = 0.5
		span = hi*scale - lo*scale
	}

	for i, s := range t {
		normalized[i] = common.Lerp(-1, 1, (s*scale-lo*scale)/span)
	}

	return normalized
}
