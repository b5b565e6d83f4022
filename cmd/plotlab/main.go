// plotlab is a terminal game about reverse-engineering curves: a hidden
// function is plotted, and you type expressions until yours lies on top
// of it.
//
// Usage:
//
//	plotlab play             - Start a play session
//	plotlab check <expr>     - Parse and plot an expression offline
//	plotlab tiers            - Show the difficulty tiers and templates
//	plotlab scores           - Show the best recorded sessions
//	plotlab serve            - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>    - Set RNG seed for a reproducible template draw
//	--db <path>       - Set database path (default: ~/.plotlab/results.db)
//	--config <path>   - Path to a custom game config YAML
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
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "plotlab",
	Short: "PlotLab - Guess the function behind the curve",
	Long: `PlotLab plots a hidden function and challenges you to reproduce it.
Type an expression in x; your curve is drawn over the target and scored
by how closely the two agree. Match within the tier's tolerance to score
points and move up a level.

Available commands:
  play     - Start a play session in the terminal
  check    - Parse and plot an expression without starting a game
  tiers    - Show the difficulty tiers and their formula templates
  scores   - View the best recorded sessions
  serve    - Start SSH server for remote play

Examples:
  plotlab play
  plotlab play --seed 42
  plotlab check "sin(x) * exp(-x / 5)"
  plotlab tiers
  plotlab serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.plotlab/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
