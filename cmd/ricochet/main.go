// ricochet is a TUI sliding-piece puzzle played on a 16x16 walled board.
//
// Usage:
//
//	ricochet play                - Play in the current terminal
//	ricochet show                - Print a generated board and exit
//	ricochet serve               - Start SSH server for remote play
//	ricochet solutions <strategy> - Show best recorded solutions
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.ricochet/solutions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ricochet",
	Short: "Ricochet - a sliding-piece puzzle in your terminal",
	Long: `Ricochet is a terminal puzzle: slide colored pieces across a walled
board; a piece keeps moving until it hits a wall, another piece, or the
edge. Bring the piece matching the target color onto the target cell in
as few moves as you can.

Available commands:
  play       - Play in the current terminal
  show       - Print a generated board without playing
  serve      - Start SSH server for remote play
  solutions  - View best recorded solutions

Examples:
  ricochet play
  ricochet play --strategy random --difficulty hard
  ricochet show --seed 7
  ricochet serve --ssh :2222
  ricochet solutions template`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ricochet/solutions.db", "Path to solutions database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(solutionsCmd)
}
