// Package audio plays the engine's tones through the system speaker using
// beep, with a muted fallback that keeps the same timing.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// fadeDuration is the attack and release applied to every tone.
const fadeDuration = 5 * time.Millisecond

// NewTone returns a finite sine tone of the given frequency and duration
// at volume (0..1).
func NewTone(rate beep.SampleRate, freqHz float64, duration time.Duration, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freqHz)
	if err != nil {
		return nil, err
	}
	total := rate.N(duration)
	shaped := &fade{
		streamer: beep.Take(total, sine),
		total:    total,
		ramp:     min(rate.N(fadeDuration), total/2),
	}
	return withVolume(shaped, volume), nil
}

// fade ramps a finite stream in and out so tones do not click.
type fade struct {
	streamer beep.Streamer
	pos      int
	total    int
	ramp     int
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := range n {
		vol := 1.0
		if f.ramp > 0 {
			switch {
			case f.pos < f.ramp:
				vol = float64(f.pos) / float64(f.ramp)
			case f.total-f.pos <= f.ramp:
				vol = float64(f.total-f.pos) / float64(f.ramp)
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// withVolume scales s linearly; math.Log2(0) is -Inf so zero means silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
