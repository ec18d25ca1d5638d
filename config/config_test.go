package config

import (
	"errors"
	"testing"
	"time"

	"github.com/douugdev/synth/algorithms/common"
	"github.com/douugdev/synth/logging"
)

func init() {
	logging.SetGlobalLogger(&logging.NoOpLogger{})
}

// TestDefaultSynthConfig verifies default configuration
func TestDefaultSynthConfig(t *testing.T) {
	cfg := DefaultSynthConfig()

	if cfg.SampleCount != 128 {
		t.Errorf("Expected default sample count 128, got %d", cfg.SampleCount)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	if cfg.VolumeDB != -15 {
		t.Errorf("Expected default volume -15 dB, got %f", cfg.VolumeDB)
	}
	if cfg.Envelope.Attack != 20*time.Millisecond || cfg.Envelope.Release != time.Second {
		t.Errorf("Unexpected default envelope: %+v", cfg.Envelope)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

// TestLoadSynthConfigDefaults verifies loading with no env vars
func TestLoadSynthConfigDefaults(t *testing.T) {
	for _, key := range []string{EnvSampleCount, EnvSampleRate, EnvVolume, EnvWaveform, EnvWindow, EnvBPM, EnvEnvelope, EnvLogLevel} {
		t.Setenv(key, "")
	}

	cfg := LoadSynthConfig()
	if *cfg != *DefaultSynthConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

// TestLoadSynthConfigOverrides verifies env overlay
func TestLoadSynthConfigOverrides(t *testing.T) {
	t.Setenv(EnvSampleCount, "256")
	t.Setenv(EnvSampleRate, "48000")
	t.Setenv(EnvVolume, "-6.5")
	t.Setenv(EnvWaveform, "square")
	t.Setenv(EnvWindow, "hann")
	t.Setenv(EnvBPM, "90")
	t.Setenv(EnvEnvelope, `{"attack":5,"sustain":0.8}`)
	t.Setenv(EnvLogLevel, "debug")

	cfg := LoadSynthConfig()

	if cfg.SampleCount != 256 || cfg.SampleRate != 48000 {
		t.Errorf("Unexpected counts: %d %d", cfg.SampleCount, cfg.SampleRate)
	}
	if cfg.VolumeDB != -6.5 {
		t.Errorf("Expected volume -6.5, got %f", cfg.VolumeDB)
	}
	if cfg.Waveform != "square" || cfg.Window != "hann" {
		t.Errorf("Unexpected names: %s %s", cfg.Waveform, cfg.Window)
	}
	if cfg.FallbackBPM != 90 {
		t.Errorf("Expected BPM 90, got %f", cfg.FallbackBPM)
	}
	if cfg.Envelope.Attack != 5*time.Millisecond || cfg.Envelope.Sustain != 0.8 {
		t.Errorf("Envelope overlay failed: %+v", cfg.Envelope)
	}
	// untouched stages keep their defaults
	if cfg.Envelope.Decay != 500*time.Millisecond {
		t.Errorf("Expected default decay, got %s", cfg.Envelope.Decay)
	}
	if cfg.LogLevel != logging.DebugLevel {
		t.Errorf("Expected debug level, got %v", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Overridden config should validate: %v", err)
	}
}

// TestLoadSynthConfigIgnoresGarbage verifies bad values fall back to defaults
func TestLoadSynthConfigIgnoresGarbage(t *testing.T) {
	t.Setenv(EnvSampleCount, "-4")
	t.Setenv(EnvSampleRate, "fast")
	t.Setenv(EnvEnvelope, "{not json")

	cfg := LoadSynthConfig()
	def := DefaultSynthConfig()

	if cfg.SampleCount != def.SampleCount || cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected defaults for invalid values, got %d %d", cfg.SampleCount, cfg.SampleRate)
	}
	if cfg.Envelope != def.Envelope {
		t.Errorf("Expected default envelope, got %+v", cfg.Envelope)
	}
}

// TestValidate verifies bad configs are rejected
func TestValidate(t *testing.T) {
	cases := map[string]func(*SynthConfig){
		"sample count": func(c *SynthConfig) { c.SampleCount = 0 },
		"sample rate":  func(c *SynthConfig) { c.SampleRate = -1 },
		"bpm":          func(c *SynthConfig) { c.FallbackBPM = 0 },
		"waveform":     func(c *SynthConfig) { c.Waveform = "piano" },
		"window":       func(c *SynthConfig) { c.Window = "kaiser" },
		"envelope":     func(c *SynthConfig) { c.Envelope.Sustain = 2 },
	}

	for name, mutate := range cases {
		cfg := DefaultSynthConfig()
		mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, common.ErrInvalidArgument) {
			t.Errorf("%s: Validate() = %v, want ErrInvalidArgument", name, err)
		}
	}
}
