package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgirault/plotlab/internal/config"
)

var flagDumpConfig bool

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show the difficulty tiers and their formula templates",
	Long: `Display the difficulty tiers: which levels they cover, the points
and tolerance for a match, and the formula templates targets are drawn
from.

With --dump the effective config is printed as YAML, ready to be saved
and edited for use with --config.

Examples:
  plotlab tiers
  plotlab tiers --config ./my-tiers.yaml
  plotlab tiers --dump > my-tiers.yaml`,
	Run: runTiers,
}

func init() {
	tiersCmd.Flags().BoolVar(&flagDumpConfig, "dump", false, "Print the default config as YAML")
}

func runTiers(cmd *cobra.Command, args []string) {
	if flagDumpConfig {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Domain: x from %g to %g, %d intervals\n", cfg.Domain.XMin, cfg.Domain.XMax, cfg.Domain.Intervals)
	fmt.Printf("Skip penalty: %d points   Hints: %d\n", cfg.Gameplay.SkipPenalty, cfg.Gameplay.InitialHints)
	fmt.Println()

	prev := 0
	for _, tier := range cfg.Tiers {
		levels := fmt.Sprintf("levels %d+", prev+1)
		if tier.MaxLevel > 0 {
			levels = fmt.Sprintf("levels %d-%d", prev+1, tier.MaxLevel)
			prev = tier.MaxLevel
		}

		fmt.Printf("%s (%s): %d points, tolerance %.3f\n", tier.Name, levels, tier.Points, tier.Tolerance)
		for _, tmpl := range tier.Templates {
			fmt.Printf("    y = %s\n", tmpl)
		}
		fmt.Println()
	}

	names := make([]string, len(cfg.Tiers))
	for i, tier := range cfg.Tiers {
		names[i] = tier.Name
	}
	fmt.Printf("Progression: %s\n", strings.Join(names, " -> "))
}
