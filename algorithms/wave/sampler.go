package wave

import (
	"github.com/douugdev/synth/algorithms/common"
)

// DefaultSampleCount is the table length used by SampleDefault
const DefaultSampleCount = 128

// Sample evaluates gen at phase i/sampleCount for i in [0, sampleCount).
// Phase never reaches 1, so the table holds exactly one period.
func Sample(gen PhaseFunction, sampleCount int) (Table, error) {
	if gen == nil {
		return nil, common.InvalidArgument("generator cannot be nil")
	}
	if sampleCount <= 0 {
		return nil, common.InvalidArgument("sample count must be positive, got %d", sampleCount)
	}

	table := make(Table, sampleCount)
	for i := range sampleCount {
		table[i] = gen(float64(i) / float64(sampleCount))
	}

	return table, nil
}

// SampleDefault samples gen with DefaultSampleCount points
func SampleDefault(gen PhaseFunction) (Table, error) {
	return Sample(gen, DefaultSampleCount)
}
