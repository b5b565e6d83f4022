package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgirault/plotlab/internal/config"
	"github.com/mgirault/plotlab/internal/core"
	"github.com/mgirault/plotlab/internal/expr"
	"github.com/mgirault/plotlab/internal/platform/tui"
	"github.com/mgirault/plotlab/internal/sim"
)

var (
	flagCheckWidth  int
	flagCheckHeight int
)

var checkCmd = &cobra.Command{
	Use:   "check <expression>",
	Short: "Parse and plot an expression offline",
	Long: `Compile an expression, sample it over the game domain, and print a
text plot with sampling statistics. Useful for trying out formulas or
debugging a custom config's templates.

Supported functions:
  ` + strings.Join(expr.FunctionNames(), ", ") + `

Examples:
  plotlab check "sin(x)"
  plotlab check "sqrt(x - 2) * log(x)"
  plotlab check "exp(-x / 5) * cos(2 * x)" --width 100`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func init() {
	checkCmd.Flags().IntVar(&flagCheckWidth, "width", 72, "Plot width in characters")
	checkCmd.Flags().IntVar(&flagCheckHeight, "height", 20, "Plot height in characters")
}

func runCheck(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	e, err := expr.Compile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	domain := sim.DomainFromConfig(cfg.Domain)
	set := sim.Sample(e, domain)

	defined := set.DefinedCount()
	fmt.Printf("y = %s\n", e.String())
	fmt.Printf("Sampled %d points over x = %g .. %g, %d defined\n", len(set), domain.XMin, domain.XMax, defined)

	yMin, yMax, ok := set.YRange()
	if !ok {
		fmt.Println("The expression is undefined everywhere on the domain.")
		return
	}
	fmt.Printf("y range: %.4f .. %.4f\n\n", yMin, yMax)

	// Pad the window the way the game does
	span := yMax - yMin
	if span == 0 {
		span = 1
	}
	margin := span * cfg.Gameplay.YRangeMargin
	yLo, yHi := yMin-margin, yMax+margin

	w := core.Max(flagCheckWidth, 10)
	h := core.Max(flagCheckHeight, 5)
	screen := core.NewScreen(w, h)
	area := core.NewRect(0, 0, w, h)

	tui.DrawAxes(screen, area, domain, yLo, yHi)
	tui.DrawCurve(screen, area, set, yLo, yHi, '*', core.ColorDefault)

	fmt.Println(screen.String())
}
