package audio

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Muted keeps the timing of tones without making a sound, so scripted
// tunes advance at the same pace with or without a speaker.
type Muted struct {
	now    func() time.Time
	until  time.Time
	logger *log.Logger
}

// NewMuted returns a silent player that logs tones at debug level.
func NewMuted(logger *log.Logger) *Muted {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Muted{now: time.Now, logger: logger}
}

// PlayTone records that a tone of the given duration started now.
func (m *Muted) PlayTone(freqHz, durationMs uint32) {
	m.logger.Debug("tone", "freq", freqHz, "ms", durationMs)
	m.until = m.now().Add(time.Duration(durationMs) * time.Millisecond)
}

// Playing reports whether the last tone would still be sounding.
func (m *Muted) Playing() bool {
	return m.now().Before(m.until)
}
