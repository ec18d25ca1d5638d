package playback

import (
	"time"

	"github.com/gopxl/beep"
)

// Event places a streamer on a timeline
type Event struct {
	Start    time.Duration
	Streamer beep.Streamer
}

// Schedule mixes events into a single streamer, each delayed by its start
// time. The result drains once every event has finished.
func Schedule(rate beep.SampleRate, events ...Event) beep.Streamer {
	streamers := make([]beep.Streamer, 0, len(events))
	for _, ev := range events {
		delay := max(rate.N(ev.Start), 0)
		streamers = append(streamers, beep.Seq(beep.Silence(delay), ev.Streamer))
	}
	return beep.Mix(streamers...)
}
