package t2040

import "github.com/vovakirdan/tui-2040/internal/config"

// splash is the time-driven fade shown before the title screen.
// The level climbs with ticks, chimes once on the way up, then jumps to
// the hold level at the peak and fades back down to zero.
type splash struct {
	level     int
	chimed    bool
	fadingOut bool
}

// advance moves the fade on. chime is true exactly once, when the jingle
// should be queued; done is true once the fade-out reached zero.
func (s *splash) advance(ticks int, cfg config.SplashConfig) (chime, done bool) {
	if s.fadingOut {
		s.level -= min(s.level, ticks)
		return false, s.level == 0
	}

	s.level += ticks
	if s.level > cfg.ChimeAt && !s.chimed {
		s.chimed = true
		chime = true
	}
	if s.level >= cfg.Peak {
		s.level = cfg.Hold
		s.fadingOut = true
	}
	return chime, false
}

// brightness returns the logo intensity from 0 to 1.
func (s splash) brightness(cfg config.SplashConfig) float64 {
	if s.level >= cfg.Peak {
		return 1
	}
	return float64(s.level) / float64(cfg.Peak)
}
