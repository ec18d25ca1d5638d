package config

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/douugdev/synth/logging"
)

// Environment variables read by LoadSynthConfig
const (
	EnvSampleCount = "SYNTH_SAMPLE_COUNT"
	EnvSampleRate  = "SYNTH_SAMPLE_RATE"
	EnvVolume      = "SYNTH_VOLUME_DB"
	EnvWaveform    = "SYNTH_WAVEFORM"
	EnvWindow      = "SYNTH_WINDOW"
	EnvBPM         = "SYNTH_BPM"
	EnvEnvelope    = "SYNTH_ENVELOPE"
	EnvLogLevel    = "SYNTH_LOG_LEVEL"
)

// envelopeJSON spells envelope stages in milliseconds,
// e.g. {"attack":20,"decay":500,"sustain":0.5,"release":1000}
type envelopeJSON struct {
	Attack  *float64 `json:"attack"`
	Decay   *float64 `json:"decay"`
	Sustain *float64 `json:"sustain"`
	Release *float64 `json:"release"`
}

// LoadSynthConfig overlays SYNTH_* environment variables on the defaults.
// Unparseable values are logged and skipped.
func LoadSynthConfig() *SynthConfig {
	cfg := DefaultSynthConfig()
	logger := logging.WithFields(logging.Fields{
		"component": "config_loader",
	})

	if v := os.Getenv(EnvSampleCount); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SampleCount = n
		} else {
			logger.Warn("Ignoring invalid sample count", logging.Fields{"value": v})
		}
	}

	if v := os.Getenv(EnvSampleRate); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SampleRate = n
		} else {
			logger.Warn("Ignoring invalid sample rate", logging.Fields{"value": v})
		}
	}

	if v := os.Getenv(EnvVolume); v != "" {
		if db, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.VolumeDB = db
		} else {
			logger.Warn("Ignoring invalid volume", logging.Fields{"value": v})
		}
	}

	if v := os.Getenv(EnvWaveform); v != "" {
		cfg.Waveform = v
	}

	if v := os.Getenv(EnvWindow); v != "" {
		cfg.Window = v
	}

	if v := os.Getenv(EnvBPM); v != "" {
		if bpm, err := strconv.ParseFloat(v, 64); err == nil && bpm > 0 {
			cfg.FallbackBPM = bpm
		} else {
			logger.Warn("Ignoring invalid BPM", logging.Fields{"value": v})
		}
	}

	if v := os.Getenv(EnvEnvelope); v != "" {
		var env envelopeJSON
		if err := json.Unmarshal([]byte(v), &env); err == nil {
			if env.Attack != nil {
				cfg.Envelope.Attack = millis(*env.Attack)
			}
			if env.Decay != nil {
				cfg.Envelope.Decay = millis(*env.Decay)
			}
			if env.Sustain != nil {
				cfg.Envelope.Sustain = *env.Sustain
			}
			if env.Release != nil {
				cfg.Envelope.Release = millis(*env.Release)
			}
		} else {
			logger.Error(err, "Ignoring invalid envelope", logging.Fields{"value": v})
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		if level, err := logging.ParseLevel(v); err == nil {
			cfg.LogLevel = level
		} else {
			logger.Warn("Ignoring invalid log level", logging.Fields{"value": v})
		}
	}

	return cfg
}

func millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
