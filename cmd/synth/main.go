// Command synth renders waveforms, notes and MIDI files to WAV and prints
// waveform tables and spectra.
//
//	synth wave     -shape triangle -samples 16
//	synth spectrum -shape square -samples 64 -window hann -top 6
//	synth render   -notes C4,E4,G4 -duration 400ms -out arpeggio.wav
//	synth midi     -in song.mid -out song.wav
//	synth keys     -from 3 -octaves 3
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/douugdev/synth/config"
	"github.com/douugdev/synth/logging"
)

type command struct {
	name    string
	summary string
	run     func(args []string, out io.Writer, cfg *config.SynthConfig) error
}

var commands = []command{
	{"wave", "print a sampled waveform table", runWave},
	{"spectrum", "print the spectrum of a sampled waveform", runSpectrum},
	{"render", "render notes to a wav file", runRender},
	{"midi", "render a MIDI file to a wav file", runMIDI},
	{"keys", "list keyboard notes with their frequencies", runKeys},
}

func main() {
	cfg := config.LoadSynthConfig()
	logging.SetLevel(cfg.LogLevel)
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		logging.DisableColors()
	}

	if err := run(os.Args[1:], os.Stdout, cfg); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		logging.Error(err, "synth failed")
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

func run(args []string, out io.Writer, cfg *config.SynthConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if len(args) == 0 {
		usage(out)
		return errUsage
	}

	for _, c := range commands {
		if c.name == args[0] {
			return c.run(args[1:], out, cfg)
		}
	}

	usage(out)
	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "usage: synth <command> [flags]")
	for _, c := range commands {
		fmt.Fprintf(out, "  %-9s %s\n", c.name, c.summary)
	}
}
