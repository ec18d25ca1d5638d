package config

import (
	"github.com/douugdev/synth/algorithms/common"
	"github.com/douugdev/synth/algorithms/wave"
	"github.com/douugdev/synth/algorithms/windowing"
	"github.com/douugdev/synth/logging"
	"github.com/douugdev/synth/playback"
)

// SynthConfig holds the knobs a front end sets before rendering or analysing
type SynthConfig struct {
	SampleCount int               `json:"sample_count"` // waveform table length
	SampleRate  int               `json:"sample_rate"`  // Hz
	VolumeDB    float64           `json:"volume_db"`
	Envelope    playback.Envelope `json:"envelope"`
	Waveform    string            `json:"waveform"` // sine, square, triangle, sawtooth
	Window      string            `json:"window"`   // spectrum analysis window
	FallbackBPM float64           `json:"fallback_bpm"`
	LogLevel    logging.Level     `json:"log_level"`
}

// DefaultSynthConfig returns the keyboard synth's defaults
func DefaultSynthConfig() *SynthConfig {
	return &SynthConfig{
		SampleCount: wave.DefaultSampleCount,
		SampleRate:  44100,
		VolumeDB:    -15,
		Envelope:    playback.DefaultEnvelope(),
		Waveform:    "sine",
		Window:      "rectangular",
		FallbackBPM: 120,
		LogLevel:    logging.InfoLevel,
	}
}

// Validate checks every field against the ranges the synth packages accept
func (c *SynthConfig) Validate() error {
	if c.SampleCount <= 0 {
		return common.InvalidArgument("sample count must be positive, got %d", c.SampleCount)
	}
	if c.SampleRate <= 0 {
		return common.InvalidArgument("sample rate must be positive, got %d", c.SampleRate)
	}
	if c.FallbackBPM <= 0 {
		return common.InvalidArgument("fallback BPM must be positive, got %f", c.FallbackBPM)
	}
	if _, err := wave.ShapeByName(c.Waveform); err != nil {
		return err
	}
	if _, err := windowing.ByName(c.Window, 1); err != nil {
		return err
	}
	return c.Envelope.Validate()
}
