package t2040

import "github.com/vovakirdan/tui-2040/internal/config"

// Audio is the tone-playing collaborator.
type Audio interface {
	// PlayTone starts a tone of the given frequency and duration.
	PlayTone(freqHz, durationMs uint32)
	// Playing reports whether a tone is still sounding.
	Playing() bool
}

type silentAudio struct{}

func (silentAudio) PlayTone(uint32, uint32) {}
func (silentAudio) Playing() bool           { return false }

// tune feeds scripted notes to the audio collaborator one at a time.
type tune struct {
	notes []config.Note
	next  int
}

func (t *tune) queue(notes []config.Note) {
	t.notes = append(t.notes[:0], notes...)
	t.next = 0
}

func (t *tune) playing() bool {
	return t.next < len(t.notes)
}

// pump hands the next note over once the previous one has finished.
func (t *tune) pump(a Audio) {
	if !t.playing() || a.Playing() {
		return
	}
	n := t.notes[t.next]
	a.PlayTone(n.Frequency, n.DurationMs)
	t.next++
}
