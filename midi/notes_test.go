package midi

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/douugdev/synth/algorithms/common"
	"github.com/douugdev/synth/logging"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func init() {
	logging.SetGlobalLogger(&logging.NoOpLogger{})
}

// buildSMF writes a small two-track file at 96 ticks per quarter note
func buildSMF(t *testing.T, bpm float64) *bytes.Buffer {
	t.Helper()

	s := smf.NewSMF1()
	s.TimeFormat = smf.MetricTicks(96)

	var meta smf.Track
	if bpm > 0 {
		meta.Add(0, smf.MetaTempo(bpm))
	}
	meta.Close(0)

	var tr smf.Track
	tr.Add(0, gomidi.NoteOn(0, 60, 127))
	tr.Add(96, gomidi.NoteOff(0, 60))
	// percussion hit, skipped
	tr.Add(0, gomidi.NoteOn(PercussionChannel, 36, 100))
	tr.Add(48, gomidi.NoteOff(PercussionChannel, 36))
	// note on with velocity 0 ends a note
	tr.Add(0, gomidi.NoteOn(1, 69, 64))
	tr.Add(48, gomidi.NoteOn(1, 69, 0))
	// zero-length note, skipped
	tr.Add(0, gomidi.NoteOn(0, 64, 100))
	tr.Add(0, gomidi.NoteOff(0, 64))
	tr.Close(0)

	if err := s.Add(meta); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(tr); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func TestReadNotesFallbackTempo(t *testing.T) {
	notes, err := ReadNotes(buildSMF(t, 0), 0)
	if err != nil {
		t.Fatalf("ReadNotes returned error: %v", err)
	}

	if len(notes) != 2 {
		t.Fatalf("got %d notes, want 2: %+v", len(notes), notes)
	}

	first := notes[0]
	if first.Name != "C4" || first.Key != 60 || first.Channel != 0 {
		t.Errorf("first note = %+v, want C4 on channel 0", first)
	}
	if first.Start != 0 || first.Duration != 500*time.Millisecond {
		t.Errorf("first note timing = %s + %s, want 0s + 500ms", first.Start, first.Duration)
	}
	if first.Velocity != 1 {
		t.Errorf("first note velocity = %f, want 1", first.Velocity)
	}

	second := notes[1]
	if second.Name != "A4" || second.Channel != 1 {
		t.Errorf("second note = %+v, want A4 on channel 1", second)
	}
	if second.Start != 750*time.Millisecond || second.Duration != 250*time.Millisecond {
		t.Errorf("second note timing = %s + %s, want 750ms + 250ms", second.Start, second.Duration)
	}
}

func TestReadNotesUsesFileTempo(t *testing.T) {
	notes, err := ReadNotes(buildSMF(t, 60), 200)
	if err != nil {
		t.Fatal(err)
	}
	if len(notes) != 2 {
		t.Fatalf("got %d notes, want 2", len(notes))
	}
	if notes[0].Duration != time.Second {
		t.Errorf("duration at 60 BPM = %s, want 1s", notes[0].Duration)
	}
}

func TestReadNotesCustomFallback(t *testing.T) {
	notes, err := ReadNotes(buildSMF(t, 0), 240)
	if err != nil {
		t.Fatal(err)
	}
	if notes[0].Duration != 250*time.Millisecond {
		t.Errorf("duration at 240 BPM = %s, want 250ms", notes[0].Duration)
	}
}

func TestReadNotesInvalid(t *testing.T) {
	if _, err := ReadNotes(strings.NewReader("not a midi file"), 0); err == nil {
		t.Error("expected error for garbage input")
	}
}

// writeTrack encodes a single track file with the given time format
func writeTrack(t *testing.T, format smf.TimeFormat, tr smf.Track) *bytes.Buffer {
	t.Helper()

	s := smf.NewSMF1()
	s.TimeFormat = format
	tr.Close(0)
	if err := s.Add(tr); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func TestReadNotesRejectsTimeCode(t *testing.T) {
	var tr smf.Track
	tr.Add(0, gomidi.NoteOn(0, 60, 100))
	tr.Add(40, gomidi.NoteOff(0, 60))

	notes, err := ReadNotes(writeTrack(t, smf.SMPTE25(40), tr), 0)
	if !errors.Is(err, common.ErrInvalidArgument) {
		t.Errorf("error = %v, want ErrInvalidArgument", err)
	}
	if notes != nil {
		t.Errorf("expected no notes, got %+v", notes)
	}
}

func TestReadNotesRetrigger(t *testing.T) {
	var tr smf.Track
	tr.Add(0, gomidi.NoteOn(0, 60, 100))
	tr.Add(48, gomidi.NoteOn(0, 60, 80))
	tr.Add(48, gomidi.NoteOff(0, 60))

	notes, err := ReadNotes(writeTrack(t, smf.MetricTicks(96), tr), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(notes) != 2 {
		t.Fatalf("got %d notes, want 2: %+v", len(notes), notes)
	}

	for i, want := range []time.Duration{0, 250 * time.Millisecond} {
		if notes[i].Start != want || notes[i].Duration != 250*time.Millisecond {
			t.Errorf("note %d timing = %s + %s, want %s + 250ms", i, notes[i].Start, notes[i].Duration, want)
		}
	}
	if notes[1].Velocity != 80.0/127 {
		t.Errorf("retriggered velocity = %f, want %f", notes[1].Velocity, 80.0/127)
	}
}
