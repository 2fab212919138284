package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ostankin/ricochet-tui/internal/engine"
	"github.com/ostankin/ricochet-tui/internal/storage"
)

var solutionsCmd = &cobra.Command{
	Use:   "solutions <strategy>",
	Short: "Show best recorded solutions",
	Long: `Display the top 10 recorded solutions for a wall strategy, fewest
moves first.

Examples:
  ricochet solutions template
  ricochet solutions random`,
	Args: cobra.ExactArgs(1),
	Run:  runSolutions,
}

func runSolutions(cmd *cobra.Command, args []string) {
	strategy, err := engine.ParseStrategy(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solutions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.BestSolutions(string(strategy), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solutions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Solutions - %s\n", strategy)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No solutions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'ricochet play --strategy %s' to record the first one!\n", strategy)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-20s  %-6s  %s\n", "Rank", "Moves", "Seed", "Round", "Date")
	fmt.Printf("  %-4s  %-6s  %-20s  %-6s  %s\n", "----", "-----", "----", "-----", "----")

	for i, entry := range entries {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-20d  %-6d  %s\n", i+1, entry.Moves, entry.Seed, entry.Round, dateStr)
	}

	fmt.Println()
	if stats, statsErr := store.GetStats(string(strategy)); statsErr == nil && stats.Solved > 0 {
		fmt.Printf("Solved rounds: %d  Best: %d  Average: %.1f\n", stats.Solved, stats.BestMoves, stats.AvgMoves)
	}
}
