// t2040 is a terminal sliding-tile merge puzzle.
//
// Usage:
//
//	t2040 play       - Play a round (the default command)
//	t2040 records    - Show the best finished rounds
//	t2040 config     - Print the effective engine configuration
//
// Global flags:
//
//	--config <path>     - Engine config YAML (default: search ~/.t2040, ./configs, embedded)
//	--speed <preset>    - Animation speed: slow, normal, fast
//	--db <path>         - Records database (default: ~/.t2040/records.db)
//	--log-level <level> - debug, info, warn, error (default: warn)
//	--log-file <path>   - Write logs to a file instead of stderr
//	--fps <n>           - Frame rate (default: 60)
//	--seed <n>          - RNG seed (default: time based)
//	--mute              - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2040/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSpeed    string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagFPS      int
	flagSeed     int64
	flagMute     bool
	flagVolume   float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2040",
	Short: "2040 - slide and merge tiles in your terminal",
	Long: `2040 is a sliding-tile merge puzzle for the terminal.

Slide the board in one of four directions; equal neighbours merge, but
only one pair per row or column each move. A new tile appears after every
move that changed something. The round ends when nothing can move.

Available commands:
  play     - Play (default)
  records  - View the best rounds
  config   - Print the effective configuration

Examples:
  t2040
  t2040 play --speed fast
  t2040 records
  t2040 config --config ./my-t2040.yaml`,
	SilenceUsage: true,
	RunE:         playCmd.RunE,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to engine config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Animation speed preset: slow, normal, fast")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to records database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.3, "Sound volume (0-1)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(configCmd)
}
