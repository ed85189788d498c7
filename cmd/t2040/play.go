package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2040/internal/config"
	"github.com/vovakirdan/tui-2040/internal/core"
	"github.com/vovakirdan/tui-2040/internal/games/t2040"
	"github.com/vovakirdan/tui-2040/internal/platform/audio"
	"github.com/vovakirdan/tui-2040/internal/platform/tui"
	"github.com/vovakirdan/tui-2040/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2040",
	Long: `Start the game.

Controls:
  Arrows/WASD/HJKL - Slide the board
  Enter/Space      - Start a round
  Esc/B            - Leave the round
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Speed options:
  slow   - Half the slide and spawn speed
  normal - Original speed
  fast   - Double the slide and spawn speed

Examples:
  t2040 play
  t2040 play --seed 42
  t2040 play --mute --speed fast`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// loadEngineConfig loads the config file and applies the speed preset.
func loadEngineConfig() (config.EngineConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.EngineConfig{}, err
	}
	preset, err := config.ParseSpeedPreset(flagSpeed)
	if err != nil {
		return config.EngineConfig{}, err
	}
	config.ApplySpeedPreset(&cfg, preset)
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	engineCfg, err := loadEngineConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	logger.Debug("starting", "seed", rc.Seed, "screen", fmt.Sprintf("%dx%d", width, height))

	var player t2040.Audio = audio.NewMuted(logger)
	if !flagMute {
		sp := audio.NewSpeaker(flagVolume, logger)
		if err := sp.Init(); err != nil {
			// Non-fatal, the game runs without sound
			logger.Warn("sound disabled", "error", err)
		} else {
			defer sp.Close()
			player = sp
		}
	}

	engine := t2040.New(engineCfg,
		t2040.WithAudio(player),
		t2040.WithLogger(logger),
	)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("records disabled", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(engine, store, rc, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
