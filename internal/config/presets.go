package config

import "fmt"

// SpeedPreset represents a named animation speed.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// ParseSpeedPreset validates a preset name. Empty means normal.
func ParseSpeedPreset(name string) (SpeedPreset, error) {
	switch SpeedPreset(name) {
	case "", SpeedNormal:
		return SpeedNormal, nil
	case SpeedSlow, SpeedFast:
		return SpeedPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown speed %q (want slow, normal or fast)", name)
	}
}

// ApplySpeedPreset scales the slide and spawn rates of cfg.
// Slow halves both rates, fast doubles them.
func ApplySpeedPreset(cfg *EngineConfig, preset SpeedPreset) {
	switch preset {
	case SpeedSlow:
		cfg.Animation.SlideRate = max(cfg.Animation.SlideRate/2, 1)
		cfg.Spawn.Rate = max(cfg.Spawn.Rate/2, 1)
	case SpeedFast:
		cfg.Animation.SlideRate *= 2
		cfg.Spawn.Rate *= 2
	}
}
