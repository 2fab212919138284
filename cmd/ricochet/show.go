package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ostankin/ricochet-tui/internal/config"
	"github.com/ostankin/ricochet-tui/internal/engine"
	"github.com/ostankin/ricochet-tui/internal/platform/tui"
)

var flagShowStrategy string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a generated board",
	Long: `Generate a board and print it to stdout without starting a session.
Useful for eyeballing what a seed produces.

Examples:
  ricochet show
  ricochet show --strategy random --seed 7`,
	Args: cobra.NoArgs,
	Run:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&flagShowStrategy, "strategy", string(engine.StrategyTemplate), "Wall strategy: template, random")
}

func runShow(cmd *cobra.Command, args []string) {
	strategy, err := engine.ParseStrategy(flagShowStrategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := config.DefaultConfig()
	rng := rand.New(rand.NewSource(seed))
	board, err := engine.Generate(strategy, rng, cfg.Generation.GenParams())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating board: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("strategy=%s seed=%d target=%s %s\n\n", strategy, seed, board.Target.Color, board.Target.Cell)

	screen := tui.DrawBoard(board, engine.ColorNone, false)
	fmt.Println(tui.WithCoordinates(screen.String()))
}
