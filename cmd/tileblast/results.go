package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tileblast/internal/platform/tui"
	"github.com/vovakirdan/tileblast/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var resultsCmd = &cobra.Command{
	Use:   "results <level>",
	Short: "Show stored results for a level",
	Long: `Display stored results for a level, newest first, with the best win.

Examples:
  tileblast results 1
  tileblast results 1 --plain
  tileblast results 1 --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print results as text instead of an interactive table")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored results for the level")
}

func runResults(_ *cobra.Command, args []string) {
	number, err := parseLevelNumber(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(number); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared results for level %d.\n", number)
		return
	}

	// Fall back to plain output when not attached to a terminal.
	fd := int(os.Stdout.Fd())
	if flagPlain || !term.IsTerminal(fd) {
		printResults(store, number)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width = w
		height = h
	}
	if err := tui.RunResults(store, number, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printResults(store *storage.Store, number int) {
	results, err := store.Results(number, 20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Results - Level %d\n\n", number)
	if len(results) == 0 {
		fmt.Println("  No results recorded yet.")
		return
	}

	if best, err := store.BestResult(number); err == nil && best != nil {
		fmt.Printf("  Best: %d moves\n\n", best.MovesUsed)
	}

	for _, row := range tui.ResultRows(results) {
		fmt.Printf("  %-5s %-6s %-7s %-12s %s\n", row[0], row[1], row[2], row[3], row[4])
	}
}
