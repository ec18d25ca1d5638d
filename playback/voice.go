package playback

import (
	"math"
	"time"

	"github.com/douugdev/synth/algorithms/common"
	"github.com/douugdev/synth/algorithms/wave"
	"github.com/gopxl/beep"
)

// DBToGain converts a volume in decibels to a linear amplitude factor
func DBToGain(db float64) float64 {
	return math.Pow(10, db/20)
}

// voice renders one note of a phase function through an envelope
type voice struct {
	fn       wave.PhaseFunction
	step     float64
	phase    float64
	gain     float64
	env      Envelope
	held     time.Duration
	rate     beep.SampleRate
	position int
	total    int
}

// NewVoice returns a finite stereo streamer playing fn at freq Hz.
// The note is held for held and then released, so the stream lasts
// held + env.Release.
func NewVoice(fn wave.PhaseFunction, freq float64, held time.Duration, env Envelope, gainDB float64, rate beep.SampleRate) (beep.Streamer, error) {
	if fn == nil {
		return nil, common.InvalidArgument("phase function cannot be nil")
	}
	if freq <= 0 || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return nil, common.InvalidArgument("frequency must be positive, got %f", freq)
	}
	if rate <= 0 {
		return nil, common.InvalidArgument("sample rate must be positive, got %d", rate)
	}
	if held < 0 {
		return nil, common.InvalidArgument("note duration cannot be negative, got %s", held)
	}
	if err := env.Validate(); err != nil {
		return nil, err
	}

	return &voice{
		fn:    fn,
		step:  freq / float64(rate),
		gain:  DBToGain(gainDB),
		env:   env,
		held:  held,
		rate:  rate,
		total: rate.N(held + env.Release),
	}, nil
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	if v.position >= v.total {
		return 0, false
	}

	for i := range samples {
		if v.position >= v.total {
			return i, true
		}

		level := v.env.Gain(v.rate.D(v.position), v.held)
		val := v.fn(v.phase) * v.gain * level
		samples[i][0] = val
		samples[i][1] = val

		v.phase += v.step
		v.phase -= math.Floor(v.phase)
		v.position++
	}

	return len(samples), true
}

func (v *voice) Err() error { return nil }
