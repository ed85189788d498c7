// Package config provides YAML-based engine tuning with embedded defaults
// and animation speed presets.
package config

import (
	"errors"
	"fmt"
)

// EngineConfig contains all tunables of the board transition engine.
type EngineConfig struct {
	Clock      ClockConfig     `yaml:"clock"`
	Animation  AnimationConfig `yaml:"animation"`
	Spawn      SpawnConfig     `yaml:"spawn"`
	Splash     SplashConfig    `yaml:"splash"`
	RecordTone ToneConfig      `yaml:"record_tone"`
	Jingle     []Note          `yaml:"jingle"`
}

// ClockConfig converts measured microseconds into simulation ticks.
type ClockConfig struct {
	TickMicros      uint64 `yaml:"tick_micros"`        // Microseconds per tick
	MaxTicksPerStep int    `yaml:"max_ticks_per_step"` // Upper bound for one step (after stalls)
}

// AnimationConfig defines how fast movements travel.
type AnimationConfig struct {
	CellSpan  int `yaml:"cell_span"`  // Animation units per cell of travel
	SlideRate int `yaml:"slide_rate"` // Animation units removed per tick
}

// SpawnConfig defines how new tiles appear.
type SpawnConfig struct {
	Rate       int     `yaml:"rate"`        // Progress percent gained per tick
	FourChance float64 `yaml:"four_chance"` // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// SplashConfig defines the time-driven splash fade.
type SplashConfig struct {
	ChimeAt int `yaml:"chime_at"` // Level at which the jingle is queued
	Peak    int `yaml:"peak"`     // Level at which the fade turns around
	Hold    int `yaml:"hold"`     // Level the fade-out starts from
}

// ToneConfig defines the tone played for a new largest tile:
// frequency = Base + Factor*value.
type ToneConfig struct {
	Base       uint32 `yaml:"base"`
	Factor     uint32 `yaml:"factor"`
	DurationMs uint32 `yaml:"duration_ms"`
}

// Note is a single tone of a scripted tune.
type Note struct {
	Frequency  uint32 `yaml:"frequency"`
	DurationMs uint32 `yaml:"duration_ms"`
}

// Validate checks the configuration for values the engine cannot run with.
func (c EngineConfig) Validate() error {
	var errs []error

	if c.Clock.TickMicros == 0 {
		errs = append(errs, errors.New("clock.tick_micros must be positive"))
	}
	if c.Clock.MaxTicksPerStep <= 0 {
		errs = append(errs, errors.New("clock.max_ticks_per_step must be positive"))
	}
	if c.Animation.CellSpan <= 0 {
		errs = append(errs, errors.New("animation.cell_span must be positive"))
	}
	if c.Animation.SlideRate <= 0 {
		errs = append(errs, errors.New("animation.slide_rate must be positive"))
	}
	if c.Spawn.Rate <= 0 {
		errs = append(errs, errors.New("spawn.rate must be positive"))
	}
	if c.Spawn.FourChance < 0 || c.Spawn.FourChance > 1 {
		errs = append(errs, fmt.Errorf("spawn.four_chance %v outside [0, 1]", c.Spawn.FourChance))
	}
	if c.Splash.Peak <= 0 || c.Splash.Hold < c.Splash.Peak {
		errs = append(errs, fmt.Errorf("splash: need 0 < peak (%d) <= hold (%d)", c.Splash.Peak, c.Splash.Hold))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid engine config: %w", errors.Join(errs...))
	}
	return nil
}
