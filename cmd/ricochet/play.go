package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ostankin/ricochet-tui/internal/config"
	"github.com/ostankin/ricochet-tui/internal/engine"
	"github.com/ostankin/ricochet-tui/internal/platform/tui"
	"github.com/ostankin/ricochet-tui/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagStrategy   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the puzzle",
	Long: `Start the puzzle in the current terminal.

Controls:
  R/G/B/Y    - Select a piece
  Arrows/hjkl - Slide the selected piece
  U          - Undo last move
  X          - Reset the round
  N          - Next round
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - More wall pockets, reach hints on
  normal - Default pocket density
  hard   - Fewer wall pockets, reach hints off

Examples:
  ricochet play
  ricochet play --strategy random
  ricochet play --difficulty hard --seed 7
  ricochet play --config ./my-ricochet.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagStrategy, "strategy", "", "Wall strategy: template, random (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}

	strategyName := cfg.Generation.Strategy
	if flagStrategy != "" {
		strategyName = flagStrategy
	}
	strategy, err := engine.ParseStrategy(strategyName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Check the terminal fits the board before starting
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < tui.BoardW || h < tui.BoardH+4 {
			fmt.Fprintf(os.Stderr, "Terminal %dx%d is too small; need at least %dx%d.\n",
				w, h, tui.BoardW, tui.BoardH+4)
			os.Exit(1)
		}
	}

	// Open solutions storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solutions database: %v\n", err)
		// Continue without storage - the puzzle still works
		store = nil
	}

	runErr := tui.Run(cfg, store, strategy, flagSeed)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", runErr)
		os.Exit(1)
	}
}
