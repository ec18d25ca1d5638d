// Package pitch resolves note names such as "C#4" to equal-tempered
// frequencies and MIDI key numbers.
package pitch

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/douugdev/synth/algorithms/common"
)

// Concert pitch reference: A4 = MIDI key 69 = 440 Hz
const (
	ReferenceKey       = 69
	ReferenceFrequency = 440.0
)

// PitchClasses lists the twelve classes in keyboard order starting at C
var PitchClasses = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var flatToSharp = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
}

var notePattern = regexp.MustCompile(`^([A-Ga-g])([#b]?)(-?\d+)$`)

// Note is a pitch class with an octave, using scientific pitch notation
type Note struct {
	Class  string `json:"class"`
	Octave int    `json:"octave"`
}

// ParseNote parses text like "A4", "d#3" or "Bb2". Flats come back spelled as
// sharps.
func ParseNote(text string) (Note, error) {
	m := notePattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return Note{}, common.InvalidArgument("cannot parse note %q", text)
	}

	class := strings.ToUpper(m[1]) + m[2]
	if sharp, ok := flatToSharp[class]; ok {
		class = sharp
	}
	if classIndex(class) < 0 {
		return Note{}, common.InvalidArgument("unsupported pitch class %q", m[1]+m[2])
	}

	octave, err := strconv.Atoi(m[3])
	if err != nil {
		return Note{}, common.InvalidArgument("bad octave in %q: %v", text, err)
	}

	return Note{Class: class, Octave: octave}, nil
}

// FromMIDI converts a MIDI key number (0-127) to a note. Key 60 is C4.
func FromMIDI(key int) (Note, error) {
	if key < 0 || key > 127 {
		return Note{}, common.InvalidArgument("MIDI key %d out of range 0-127", key)
	}
	return Note{Class: PitchClasses[key%12], Octave: key/12 - 1}, nil
}

// MIDI returns the MIDI key number, which may fall outside 0-127 for extreme
// octaves
func (n Note) MIDI() int {
	return 12*(n.Octave+1) + classIndex(n.Class)
}

// Frequency returns the equal-tempered frequency in Hz
func (n Note) Frequency() float64 {
	return ReferenceFrequency * math.Pow(2, float64(n.MIDI()-ReferenceKey)/12)
}

// Sharp reports whether the note sits on a black key
func (n Note) Sharp() bool {
	return strings.HasSuffix(n.Class, "#")
}

func (n Note) String() string {
	return fmt.Sprintf("%s%d", n.Class, n.Octave)
}

// FrequencyOf parses text and returns its frequency
func FrequencyOf(text string) (float64, error) {
	n, err := ParseNote(text)
	if err != nil {
		return 0, err
	}
	return n.Frequency(), nil
}

// KeyboardNotes lists the keys of an on-screen piano spanning octaves full
// C-to-B octaves, starting at fromOctave
func KeyboardNotes(fromOctave, octaves int) []Note {
	if octaves <= 0 {
		return nil
	}

	notes := make([]Note, 0, 12*octaves)
	for o := fromOctave; o < fromOctave+octaves; o++ {
		for _, class := range PitchClasses {
			notes = append(notes, Note{Class: class, Octave: o})
		}
	}
	return notes
}

func classIndex(class string) int {
	for i, c := range PitchClasses {
		if c == class {
			return i
		}
	}
	return -1
}
