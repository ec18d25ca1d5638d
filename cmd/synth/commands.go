package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/douugdev/synth/algorithms/common"
	"github.com/douugdev/synth/algorithms/pitch"
	"github.com/douugdev/synth/algorithms/spectral"
	"github.com/douugdev/synth/algorithms/wave"
	"github.com/douugdev/synth/algorithms/windowing"
	"github.com/douugdev/synth/config"
	"github.com/douugdev/synth/logging"
	"github.com/douugdev/synth/midi"
	"github.com/douugdev/synth/playback"
	"github.com/gopxl/beep"
)

// buildTable samples and normalises the named shape
func buildTable(shape string, samples int) (wave.Table, error) {
	gen, err := wave.ShapeByName(shape)
	if err != nil {
		return nil, err
	}
	table, err := wave.Sample(gen, samples)
	if err != nil {
		return nil, err
	}
	return wave.Normalize(table), nil
}

// buildPhaseFunction runs the sample, normalise, interpolate pipeline
func buildPhaseFunction(shape string, samples int) (wave.PhaseFunction, error) {
	table, err := buildTable(shape, samples)
	if err != nil {
		return nil, err
	}
	return wave.ToFunction(table)
}

func runWave(args []string, out io.Writer, cfg *config.SynthConfig) error {
	fs := flag.NewFlagSet("wave", flag.ContinueOnError)
	fs.SetOutput(out)
	shape := fs.String("shape", cfg.Waveform, "waveform: sine, square, triangle, sawtooth")
	samples := fs.Int("samples", cfg.SampleCount, "table length")
	raw := fs.Bool("raw", false, "skip normalisation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	gen, err := wave.ShapeByName(*shape)
	if err != nil {
		return err
	}
	table, err := wave.Sample(gen, *samples)
	if err != nil {
		return err
	}
	if !*raw {
		table = wave.Normalize(table)
	}

	lo, hi := common.MinMax(table)
	fmt.Fprintf(out, "# %s, %d samples, min %.4f max %.4f mean %.4f\n",
		*shape, len(table), lo, hi, common.Mean(table))
	for i, v := range table {
		fmt.Fprintf(out, "%d\t%.6f\t%.6f\n", i, float64(i)/float64(len(table)), v)
	}
	return nil
}

func runSpectrum(args []string, out io.Writer, cfg *config.SynthConfig) error {
	fs := flag.NewFlagSet("spectrum", flag.ContinueOnError)
	fs.SetOutput(out)
	shape := fs.String("shape", cfg.Waveform, "waveform: sine, square, triangle, sawtooth")
	samples := fs.Int("samples", cfg.SampleCount, "table length")
	windowName := fs.String("window", cfg.Window, "analysis window: rectangular, hann, hamming, blackman")
	top := fs.Int("top", 0, "only print the N loudest bins (0 prints all, in spectrum order)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	table, err := buildTable(*shape, *samples)
	if err != nil {
		return err
	}
	window, err := windowing.ByName(*windowName, len(table))
	if err != nil {
		return err
	}
	spectrum, err := spectral.AnalyzeWindowed(table, window)
	if err != nil {
		return err
	}

	points := spectrum
	if *top > 0 {
		points = loudest(spectrum, *top)
	}

	db := points.PowerDB(-120)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "freq\tamplitude\tdB\tphase(deg)")
	for i, p := range points {
		fmt.Fprintf(tw, "%d\t%.6f\t%.1f\t%.1f\n", p.Frequency, p.Amplitude, db[i], common.RadiansToDegrees(p.Phase))
	}
	return tw.Flush()
}

// loudest returns up to n points ordered by falling amplitude
func loudest(s spectral.Spectrum, n int) spectral.Spectrum {
	remaining := append(spectral.Spectrum(nil), s...)
	var picked spectral.Spectrum
	for len(picked) < n && len(remaining) > 0 {
		p, _ := remaining.Peak()
		picked = append(picked, p)
		for i := range remaining {
			if remaining[i] == p {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}
	return picked
}

func runRender(args []string, out io.Writer, cfg *config.SynthConfig) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(out)
	shape := fs.String("shape", cfg.Waveform, "waveform: sine, square, triangle, sawtooth")
	notes := fs.String("notes", "A4", "comma separated notes played one after another")
	chord := fs.Bool("chord", false, "play all notes together")
	duration := fs.Duration("duration", 250*time.Millisecond, "how long each note is held")
	output := fs.String("out", "synth.wav", "output wav path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fn, err := buildPhaseFunction(*shape, cfg.SampleCount)
	if err != nil {
		return err
	}

	rate := beep.SampleRate(cfg.SampleRate)
	var events []playback.Event
	for i, name := range strings.Split(*notes, ",") {
		note, err := pitch.ParseNote(name)
		if err != nil {
			return err
		}
		v, err := playback.NewVoice(fn, note.Frequency(), *duration, cfg.Envelope, cfg.VolumeDB, rate)
		if err != nil {
			return err
		}

		start := time.Duration(i) * *duration
		if *chord {
			start = 0
		}
		events = append(events, playback.Event{Start: start, Streamer: v})
	}

	return writeWAV(*output, playback.Schedule(rate, events...), rate, out)
}

func runMIDI(args []string, out io.Writer, cfg *config.SynthConfig) error {
	fs := flag.NewFlagSet("midi", flag.ContinueOnError)
	fs.SetOutput(out)
	shape := fs.String("shape", cfg.Waveform, "waveform: sine, square, triangle, sawtooth")
	input := fs.String("in", "", "MIDI file to render")
	output := fs.String("out", "midi.wav", "output wav path")
	bpm := fs.Float64("bpm", cfg.FallbackBPM, "tempo used when the file has none")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return fmt.Errorf("%w: -in is required", errUsage)
	}

	f, err := os.Open(*input)
	if err != nil {
		return err
	}
	defer f.Close()

	notes, err := midi.ReadNotes(f, *bpm)
	if err != nil {
		return err
	}

	fn, err := buildPhaseFunction(*shape, cfg.SampleCount)
	if err != nil {
		return err
	}

	rate := beep.SampleRate(cfg.SampleRate)
	events := make([]playback.Event, 0, len(notes))
	for _, n := range notes {
		if n.Velocity <= 0 {
			continue
		}
		gainDB := cfg.VolumeDB + 20*math.Log10(n.Velocity)
		note, err := pitch.FromMIDI(int(n.Key))
		if err != nil {
			return err
		}
		v, err := playback.NewVoice(fn, note.Frequency(), n.Duration, cfg.Envelope, gainDB, rate)
		if err != nil {
			return err
		}
		events = append(events, playback.Event{Start: n.Start, Streamer: v})
	}

	logging.Info("Rendering MIDI", logging.Fields{
		"file":  *input,
		"notes": len(events),
	})

	return writeWAV(*output, playback.Schedule(rate, events...), rate, out)
}

func runKeys(args []string, out io.Writer, _ *config.SynthConfig) error {
	fs := flag.NewFlagSet("keys", flag.ContinueOnError)
	fs.SetOutput(out)
	from := fs.Int("from", 3, "lowest octave")
	octaves := fs.Int("octaves", 3, "number of octaves")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *octaves <= 0 {
		return common.InvalidArgument("octaves must be positive, got %d", *octaves)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "note\tmidi\tfreq(Hz)\tkey")
	for _, n := range pitch.KeyboardNotes(*from, *octaves) {
		key := "white"
		if n.Sharp() {
			key = "black"
		}
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%s\n", n, n.MIDI(), n.Frequency(), key)
	}
	return tw.Flush()
}

func writeWAV(path string, s beep.Streamer, rate beep.SampleRate, out io.Writer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	frames, err := playback.RenderWAV(f, s, rate)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "wrote %s (%s)\n", path, rate.D(frames))
	return nil
}
