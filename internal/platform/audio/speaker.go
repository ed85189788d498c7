package audio

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	defaultVolume = 0.3
)

// Speaker plays tones on the default output device.
// All tones are mixed, and Playing reports whether any is still sounding.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	active      atomic.Int32
	initialized bool
	logger      *log.Logger
}

// NewSpeaker creates a speaker. Call Init before playing.
func NewSpeaker(volume float64, logger *log.Logger) *Speaker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if volume <= 0 || volume > 1 {
		volume = defaultVolume
	}
	return &Speaker{
		mixer:  &beep.Mixer{},
		rate:   sampleRate,
		volume: volume,
		logger: logger,
	}
}

// Init opens the output device.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// PlayTone starts a tone. Failures are logged, never returned: a missing
// tone must not stop the game.
func (s *Speaker) PlayTone(freqHz, durationMs uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	tone, err := NewTone(s.rate, float64(freqHz), time.Duration(durationMs)*time.Millisecond, s.volume)
	if err != nil {
		s.logger.Warn("tone not played", "freq", freqHz, "error", err)
		return
	}

	speaker.Lock()
	s.mixer.Add(s.track(tone))
	speaker.Unlock()
}

// track counts tone as active until it has been fully streamed.
func (s *Speaker) track(tone beep.Streamer) beep.Streamer {
	s.active.Add(1)
	return beep.Seq(tone, beep.Callback(func() {
		s.active.Add(-1)
	}))
}

// Playing reports whether a tone is still sounding.
func (s *Speaker) Playing() bool {
	return s.active.Load() > 0
}

// Close stops every tone and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.active.Store(0)
	s.initialized = false
}
