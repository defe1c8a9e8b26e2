package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tileblast/internal/platform/tui"
	"github.com/vovakirdan/tileblast/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Play a level",
	Long: `Start playing the specified level.

Controls:
  Arrows/hjkl  - Move cursor
  Space/Enter  - Tap the selected cell
  R            - Restart the level
  Esc          - Close popup
  Q/Ctrl+C     - Quit

Examples:
  tileblast play 1
  tileblast play 2 --seed 42
  tileblast play 3 --fps 60`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	number, err := parseLevelNumber(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	loader := newLoader()
	rec := loader.TryLoad(number)
	if rec == nil {
		fmt.Fprintf(os.Stderr, "Error: level %d is not available\n", number)
		fmt.Fprintf(os.Stderr, "Available levels: %s\n", availableLevels(loader))
		os.Exit(1)
	}

	// Results are best-effort; play continues without a database.
	var saver tui.ResultSaver
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
	} else {
		defer store.Close()
		saver = store
	}

	cfg := tui.PlayConfigFrom(appConfig, currentUser())
	if err := tui.Run(rec, saver, cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
