package config

import (
	_ "embed"
)

//go:embed defaults/t2040.yaml
var defaultEngineYAML []byte

// DefaultEngineConfig returns the default engine configuration.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Clock: ClockConfig{
			TickMicros:      5000,
			MaxTicksPerStep: 50,
		},
		Animation: AnimationConfig{
			CellSpan:  60,
			SlideRate: 5,
		},
		Spawn: SpawnConfig{
			Rate:       4,
			FourChance: 0.0,
		},
		Splash: SplashConfig{
			ChimeAt: 50,
			Peak:    150,
			Hold:    200,
		},
		RecordTone: ToneConfig{
			Base:       750,
			Factor:     2,
			DurationMs: 300,
		},
		Jingle: []Note{
			{Frequency: 800, DurationMs: 200},
			{Frequency: 710, DurationMs: 200},
			{Frequency: 525, DurationMs: 300},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultEngineYAML
}
