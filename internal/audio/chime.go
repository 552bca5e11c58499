package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
	"go.uber.org/zap"
)

const (
	darkFreq  = 329.63 // E4
	lightFreq = 659.25 // E5
	volume    = 0.2
)

// Chime plays a short tone whenever the label palette flips.
type Chime struct {
	rate     beep.SampleRate
	duration time.Duration
	log      *zap.Logger
}

// NewChime initializes the speaker with a 1/20s buffer.
func NewChime(cfg config.SoundConfig, log *zap.Logger) (*Chime, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	return &Chime{rate: rate, duration: cfg.Duration, log: log}, nil
}

func (c *Chime) PaletteChanged(p field.Palette) {
	freq := darkFreq
	if p == field.PaletteLight {
		freq = lightFreq
	}
	c.log.Debug("chime", zap.Float64("freq", freq))

	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	speaker.Play(Tone(c.rate, freq, c.duration))
}

// Tone is a mono sine at freq lasting d, fading linearly to silence.
func Tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := rate.N(d)
	pos := 0
	step := 2 * math.Pi * freq / float64(rate)
	sine := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			env := 1.0
			if total > 0 {
				env = 1 - float64(pos)/float64(total)
			}
			v := volume * env * math.Sin(step*float64(pos))
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
	return beep.Take(total, sine)
}
