package playback

import (
	"fmt"
	"io"

	"github.com/douugdev/synth/algorithms/common"
	"github.com/douugdev/synth/logging"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gopxl/beep"
)

const (
	renderChunk = 512
	bitDepth    = 16
	pcmFormat   = 1
)

// RenderWAV drains s and writes it to w as 16-bit stereo PCM. Samples are
// clipped to [-1, 1]. It returns the number of frames written.
func RenderWAV(w io.WriteSeeker, s beep.Streamer, rate beep.SampleRate) (int, error) {
	if rate <= 0 {
		return 0, common.InvalidArgument("sample rate must be positive, got %d", rate)
	}

	logger := logging.WithFields(logging.Fields{
		"component":   "wav_renderer",
		"sample_rate": int(rate),
	})

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 2,
			SampleRate:  int(rate),
		},
		SourceBitDepth: bitDepth,
	}

	chunk := make([][2]float64, renderChunk)
	frames := 0
	for {
		n, ok := s.Stream(chunk)
		for _, frame := range chunk[:n] {
			buf.Data = append(buf.Data, toPCM16(frame[0]), toPCM16(frame[1]))
		}
		frames += n
		if !ok || n == 0 {
			break
		}
	}
	if err := s.Err(); err != nil {
		return 0, fmt.Errorf("streamer failed: %w", err)
	}

	enc := wav.NewEncoder(w, int(rate), bitDepth, 2, pcmFormat)
	if err := enc.Write(buf); err != nil {
		return 0, fmt.Errorf("failed to write wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf("failed to finalize wav: %w", err)
	}

	logger.Debug("Rendered wav", logging.Fields{
		"frames":   frames,
		"duration": rate.D(frames).String(),
	})

	return frames, nil
}

func toPCM16(v float64) int {
	return int(common.Clamp(v, -1, 1) * 32767)
}
