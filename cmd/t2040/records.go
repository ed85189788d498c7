package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2040/internal/platform/tui"
	"github.com/vovakirdan/tui-2040/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
	flagClear bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show the best rounds",
	Long: `Display the best finished rounds, largest tile first.

Examples:
  t2040 records
  t2040 records --plain --limit 5
  t2040 records --clear`,
	Args: cobra.NoArgs,
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&flagLimit, "limit", tui.DefaultRecordsLimit, "Number of rounds to show")
	recordsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive view")
	recordsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all records")
}

func runRecords(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRounds(); err != nil {
			return err
		}
		fmt.Println("Records cleared.")
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunRecords(store, flagLimit, width, height)
	}

	return printRecords(store)
}

// printRecords writes the records as plain text.
func printRecords(store *storage.Store) error {
	rounds, err := store.TopRounds(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("2040 Records")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 't2040 play' to set the first record!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-6s  %s\n", "Rank", "Tile", "Moves", "Time", "End", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-6s  %s\n", "----", "----", "-----", "----", "---", "----")
	for _, row := range tui.RecordRows(rounds) {
		fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-6s  %s\n", row[0], row[1], row[2], row[3], row[4], row[5])
	}

	best, err := store.BestTile()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}
