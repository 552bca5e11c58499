package audio

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

func TestTone(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(Tone(rate, 440, 100*time.Millisecond))

	assert.Len(t, samples, rate.N(100*time.Millisecond))

	var peak float64
	for _, s := range samples {
		assert.Equal(t, s[0], s[1], "mono")
		peak = math.Max(peak, math.Abs(s[0]))
	}
	assert.LessOrEqual(t, peak, volume)
	assert.Greater(t, peak, volume/2)

	// The envelope dies out toward the end.
	tail := samples[len(samples)-20:]
	for _, s := range tail {
		assert.Less(t, math.Abs(s[0]), 0.01)
	}
}

func TestToneZeroDuration(t *testing.T) {
	assert.Empty(t, drain(Tone(beep.SampleRate(8000), 440, 0)))
}
