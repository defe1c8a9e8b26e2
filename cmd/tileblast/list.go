package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tileblast/internal/obstacle"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all levels",
	Long:  `Shows every loadable level in the level directory with its size, move budget and obstacle goals.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	records, err := newLoader().LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Printf("No levels found in %s.\n", appConfig.Levels.Dir)
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	fmt.Printf("  %-5s  %-7s  %-5s  %-5s  %-5s  %s\n", "Level", "Size", "Moves", "Box", "Stone", "Vase")
	fmt.Printf("  %-5s  %-7s  %-5s  %-5s  %-5s  %s\n", "-----", "----", "-----", "---", "-----", "----")

	for _, rec := range records {
		ledger := obstacle.LedgerFor(rec)
		fmt.Printf("  %-5d  %-7s  %-5d  %-5d  %-5d  %d\n",
			rec.Number,
			fmt.Sprintf("%dx%d", rec.Width, rec.Height),
			rec.MoveBudget,
			ledger.Remaining(obstacle.KindBox),
			ledger.Remaining(obstacle.KindStone),
			ledger.Remaining(obstacle.KindVase),
		)
	}

	fmt.Println()
	fmt.Println("Run 'tileblast play <level>' to play a level.")
}
