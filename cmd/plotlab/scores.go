package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mgirault/plotlab/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded sessions",
	Long: `Display the top 10 recorded sessions, best score first.

Examples:
  plotlab scores
  plotlab scores --db ./results.db`,
	Run: runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.TopResults(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Sessions")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'plotlab play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %-8s  %-5s  %s\n", "Rank", "Score", "Level", "Tier", "Hints", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-8s  %-5s  %s\n", "----", "-----", "-----", "----", "-----", "----")

	for i, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-7d  %-8s  %-5d  %s\n", i+1, r.Score, r.Level, r.Tier, r.HintsUsed, dateStr)
	}

	fmt.Println()
	if best, err := store.HighScore(); err == nil {
		fmt.Printf("Best score: %d", best)
		if level, err := store.BestLevel(); err == nil {
			fmt.Printf("   Deepest level: %d", level)
		}
		fmt.Println()
	}
}
