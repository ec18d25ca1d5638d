package playback

import (
	"time"

	"github.com/douugdev/synth/algorithms/common"
)

// Envelope is a linear ADSR amplitude envelope
type Envelope struct {
	Attack  time.Duration `json:"attack"`
	Decay   time.Duration `json:"decay"`
	Sustain float64       `json:"sustain"` // level in [0, 1]
	Release time.Duration `json:"release"`
}

// DefaultEnvelope returns the keyboard synth's envelope
func DefaultEnvelope() Envelope {
	return Envelope{
		Attack:  20 * time.Millisecond,
		Decay:   500 * time.Millisecond,
		Sustain: 0.5,
		Release: time.Second,
	}
}

// Validate rejects negative stages and sustain levels outside [0, 1]
func (e Envelope) Validate() error {
	if e.Attack < 0 || e.Decay < 0 || e.Release < 0 {
		return common.InvalidArgument("envelope stages cannot be negative: %+v", e)
	}
	if e.Sustain < 0 || e.Sustain > 1 {
		return common.InvalidArgument("sustain level %f outside [0, 1]", e.Sustain)
	}
	return nil
}

// Gain returns the envelope level elapsed into a note that is held for held
// before release
func (e Envelope) Gain(elapsed, held time.Duration) float64 {
	if elapsed < 0 {
		return 0
	}
	if elapsed < held {
		return e.heldLevel(elapsed)
	}

	if e.Release <= 0 {
		return 0
	}
	start := e.heldLevel(held)
	amt := common.DivideInterval(float64(elapsed), float64(held), float64(held+e.Release))
	return common.ClampedLerp(start, 0, amt)
}

func (e Envelope) heldLevel(t time.Duration) float64 {
	if t < e.Attack {
		return float64(t) / float64(e.Attack)
	}
	t -= e.Attack

	if t < e.Decay {
		return common.Lerp(1, e.Sustain, float64(t)/float64(e.Decay))
	}
	return e.Sustain
}
