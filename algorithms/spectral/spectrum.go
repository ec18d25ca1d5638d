package spectral

import (
	"math"
	"math/cmplx"

	"github.com/douugdev/synth/algorithms/common"
	"github.com/douugdev/synth/algorithms/windowing"
	"gonum.org/v1/gonum/floats"
)

// Point is one frequency bin of an analysed buffer
type Point struct {
	// Frequency is the signed bin index, centred on 0
	Frequency int `json:"frequency"`
	// Amplitude is the bin magnitude divided by the transform size
	Amplitude float64 `json:"amplitude"`
	// Phase is atan2(imag, real) in (-pi, pi]. For a zero-magnitude bin it is
	// whatever math.Atan2 returns for signed zeros, normally 0 or ±pi.
	Phase float64 `json:"phase"`
}

// Spectrum lists bins in plotting order: low frequencies of both signs sit at
// the start, alternating positive and negative, and the highest at the end.
type Spectrum []Point

var defaultFFT = NewFFT()

// Analyze computes the spectrum of an interleaved real/imaginary buffer.
// samples holds len/2 complex values as (re, im) pairs; callers with a purely
// real signal zero-fill the imaginary slots (see Interleave).
func Analyze(samples []float64) (Spectrum, error) {
	if len(samples) == 0 {
		return nil, common.InvalidArgument("cannot analyze an empty buffer")
	}
	if len(samples)%2 != 0 {
		return nil, common.InvalidArgument("buffer length must be even (real/imaginary pairs), got %d", len(samples))
	}

	bins := defaultFFT.Transform(Deinterleave(samples))
	return FromBins(bins), nil
}

// AnalyzeWindowed windows a real-valued buffer and analyses it as if its
// imaginary channel were zero-filled
func AnalyzeWindowed(reals []float64, window windowing.Window) (Spectrum, error) {
	if len(reals) == 0 {
		return nil, common.InvalidArgument("cannot analyze an empty buffer")
	}

	windowed, err := window.Apply(reals)
	if err != nil {
		return nil, err
	}

	return FromBins(defaultFFT.TransformReal(windowed)), nil
}

// FromBins reorders raw transform output and converts each bin to polar form
func FromBins(bins []complex128) Spectrum {
	n := len(bins)
	spectrum := make(Spectrum, n)

	for i := range n {
		j := ReorderIndex(i, n)
		bin := bins[j]
		spectrum[i] = Point{
			Frequency: FrequencyLabel(j, n),
			Amplitude: cmplx.Abs(bin) / float64(n),
			Phase:     math.Atan2(imag(bin), real(bin)),
		}
	}

	return spectrum
}

// ReorderIndex picks the raw bin for output position i by alternating between
// the front and the back of the transform: 0, n-1, 1, n-2, 2, ...
func ReorderIndex(i, n int) int {
	if i%2 == 0 {
		return i / 2
	}
	return n - (i+1)/2
}

// FrequencyLabel maps raw bin j of an n-point transform to a signed index in
// [-n/2, n/2-1]
func FrequencyLabel(j, n int) int {
	half := n / 2
	return (j+half)%n - half
}

// Interleave packs a real signal as (re, 0) pairs
func Interleave(reals []float64) []float64 {
	out := make([]float64, 2*len(reals))
	for i, v := range reals {
		out[2*i] = v
	}
	return out
}

// Deinterleave unpacks (re, im) pairs into complex values. A trailing odd
// element is ignored.
func Deinterleave(samples []float64) []complex128 {
	out := make([]complex128, len(samples)/2)
	for k := range out {
		out[k] = complex(samples[2*k], samples[2*k+1])
	}
	return out
}

// Amplitudes returns the bin amplitudes in spectrum order
func (s Spectrum) Amplitudes() []float64 {
	amps := make([]float64, len(s))
	for i, p := range s {
		amps[i] = p.Amplitude
	}
	return amps
}

// Peak returns the loudest bin. ok is false for an empty spectrum.
func (s Spectrum) Peak() (p Point, ok bool) {
	if len(s) == 0 {
		return Point{}, false
	}
	return s[floats.MaxIdx(s.Amplitudes())], true
}

// Bin returns the point labelled with frequency
func (s Spectrum) Bin(frequency int) (Point, bool) {
	for _, p := range s {
		if p.Frequency == frequency {
			return p, true
		}
	}
	return Point{}, false
}

// PowerDB converts amplitudes to decibels, flooring silent bins at floorDB
func (s Spectrum) PowerDB(floorDB float64) []float64 {
	floor := math.Pow(10, floorDB/10.0)
	logPower := make([]float64, len(s))

	for i, p := range s {
		power := p.Amplitude * p.Amplitude
		if power < floor {
			power = floor
		}
		logPower[i] = 10 * math.Log10(power)
	}

	return logPower
}
