// Package midi extracts playable notes from Standard MIDI Files.
//
// Decoding is delegated to gomidi. Only note on/off pairs are read; ticks are
// converted to time at a single tempo, so tempo changes after the first one
// are ignored.
package midi

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/douugdev/synth/algorithms/common"
	"github.com/douugdev/synth/algorithms/pitch"
	"github.com/douugdev/synth/logging"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// PercussionChannel is General MIDI channel 10, zero-based
const PercussionChannel = 9

// DefaultBPM is used when a file carries no tempo event
const DefaultBPM = 120.0

// NoteEvent is one sounding note
type NoteEvent struct {
	Name     string        `json:"name"`
	Key      uint8         `json:"key"`
	Channel  uint8         `json:"channel"`
	Track    int           `json:"track"`
	Start    time.Duration `json:"start"`
	Duration time.Duration `json:"duration"`
	Velocity float64       `json:"velocity"` // 0-1
}

type noteKey struct {
	channel uint8
	key     uint8
}

type openNote struct {
	tick     uint64
	velocity uint8
}

// ReadNotes decodes a MIDI file and returns its non-percussion notes sorted by
// start time. fallbackBPM applies when the file has no tempo event; values
// <= 0 select DefaultBPM.
func ReadNotes(r io.Reader, fallbackBPM float64) ([]NoteEvent, error) {
	logger := logging.WithFields(logging.Fields{
		"component": "midi_reader",
	})

	file, err := decode(r)
	if err != nil {
		return nil, err
	}

	ticks, ok := file.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, common.InvalidArgument("unsupported midi time format %v", file.TimeFormat)
	}

	bpm := fallbackBPM
	if bpm <= 0 {
		bpm = DefaultBPM
	}
	if tempo, found := firstTempo(file); found {
		bpm = tempo
	}

	var notes []NoteEvent
	skipped := 0

	for trackIndex, track := range file.Tracks {
		open := make(map[noteKey]openNote)
		var tick uint64

		for _, ev := range track {
			tick += uint64(ev.Delta)
			msg := gomidi.Message(ev.Message)

			var channel, key, velocity uint8
			switch {
			case msg.GetNoteStart(&channel, &key, &velocity):
				if channel == PercussionChannel {
					skipped++
					continue
				}
				// a retriggered key without a note off ends the previous note
				k := noteKey{channel, key}
				if prev, playing := open[k]; playing {
					notes = appendNote(notes, ticks, bpm, trackIndex, k, prev, tick)
				}
				open[k] = openNote{tick: tick, velocity: velocity}

			case msg.GetNoteEnd(&channel, &key):
				k := noteKey{channel, key}
				prev, playing := open[k]
				if !playing {
					continue
				}
				delete(open, k)
				notes = appendNote(notes, ticks, bpm, trackIndex, k, prev, tick)
			}
		}

		if len(open) > 0 {
			logger.Warn("Notes left open at end of track", logging.Fields{
				"track": trackIndex,
				"open":  len(open),
			})
		}
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Start < notes[j].Start
	})

	logger.Debug("MIDI notes extracted", logging.Fields{
		"tracks":     len(file.Tracks),
		"notes":      len(notes),
		"percussion": skipped,
		"bpm":        bpm,
	})

	return notes, nil
}

// decode reads an SMF. gomidi panics on some headers it accepts (SMPTE time
// codes among them), so those surface as InvalidArgument.
func decode(r io.Reader) (file *smf.SMF, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			file, err = nil, common.InvalidArgument("unsupported midi file: %v", rec)
		}
	}()

	file, err = smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode midi: %w", err)
	}
	return file, nil
}

func appendNote(notes []NoteEvent, ticks smf.MetricTicks, bpm float64, track int, k noteKey, on openNote, offTick uint64) []NoteEvent {
	start := ticks.Duration(bpm, uint32(on.tick))
	duration := ticks.Duration(bpm, uint32(offTick)) - start
	if duration <= 0 {
		return notes
	}

	name := fmt.Sprintf("key%d", k.key)
	if n, err := pitch.FromMIDI(int(k.key)); err == nil {
		name = n.String()
	}

	return append(notes, NoteEvent{
		Name:     name,
		Key:      k.key,
		Channel:  k.channel,
		Track:    track,
		Start:    start,
		Duration: duration,
		Velocity: float64(on.velocity) / 127,
	})
}

func firstTempo(file *smf.SMF) (float64, bool) {
	for _, track := range file.Tracks {
		for _, ev := range track {
			var bpm float64
			if ev.Message.GetMetaTempo(&bpm) && bpm > 0 {
				return bpm, true
			}
		}
	}
	return 0, false
}
