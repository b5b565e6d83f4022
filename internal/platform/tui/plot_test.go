package tui

import (
	"strings"
	"testing"

	"github.com/mgirault/plotlab/internal/config"
	"github.com/mgirault/plotlab/internal/core"
	"github.com/mgirault/plotlab/internal/sim"
)

func TestYToRow(t *testing.T) {
	tests := []struct {
		y    float64
		want int
	}{
		{10, 0},
		{0, 10},
		{5, 5},
		{-3, 10}, // Below the window clamps to the bottom row
		{42, 0},  // Above the window clamps to the top row
	}

	for _, tt := range tests {
		if got := yToRow(tt.y, 0, 10, 11); got != tt.want {
			t.Errorf("yToRow(%v, 0, 10, 11) = %d, want %d", tt.y, got, tt.want)
		}
	}

	if got := yToRow(5, 0, 10, 1); got != 0 {
		t.Errorf("single-row plot should always map to row 0, got %d", got)
	}
}

func TestColumnPoint(t *testing.T) {
	set := sim.SampleSet{
		{X: 0, Y: 0, Defined: true},
		{X: 1, Y: 1, Defined: true},
		{X: 2, Y: 2, Defined: true},
		{X: 3, Y: 3, Defined: true},
		{X: 4, Y: 4, Defined: true},
	}

	// Width matching the sample count maps one-to-one.
	for col := range 5 {
		p, ok := columnPoint(set, col, 5)
		if !ok || p.Y != float64(col) {
			t.Errorf("columnPoint(col=%d, width=5) = (%+v, %v)", col, p, ok)
		}
	}

	if _, ok := columnPoint(nil, 0, 5); ok {
		t.Error("empty sample set should report no point")
	}
}

func TestDrawCurveFlat(t *testing.T) {
	s := core.NewScreen(20, 10)
	r := core.NewRect(0, 0, 20, 10)

	set := make(sim.SampleSet, 20)
	for i := range set {
		set[i] = sim.Point{X: float64(i), Y: 5, Defined: true}
	}

	DrawCurve(s, r, set, 0, 10, '*', core.ColorCyan)

	// A constant curve lands in exactly one row.
	row := yToRow(5, 0, 10, 10)
	for x := range 20 {
		if s.Get(x, row) != '*' {
			t.Errorf("expected '*' at (%d, %d), got %q", x, row, s.Get(x, row))
		}
	}
	for y := range 10 {
		if y == row {
			continue
		}
		if got := strings.TrimSpace(s.Row(y)); got != "" {
			t.Errorf("row %d should be empty, got %q", y, got)
		}
	}
}

func TestDrawCurveSkipsUndefined(t *testing.T) {
	s := core.NewScreen(10, 10)
	r := core.NewRect(0, 0, 10, 10)

	set := make(sim.SampleSet, 10)
	for i := range set {
		set[i] = sim.Point{X: float64(i), Y: 5, Defined: i%2 == 0}
	}

	DrawCurve(s, r, set, 0, 10, '*', core.ColorCyan)

	drawn := 0
	for x := range 10 {
		for y := range 10 {
			if s.Get(x, y) == '*' {
				drawn++
			}
		}
	}
	if drawn == 0 || drawn == 100 {
		t.Errorf("drawn = %d, undefined points should leave gaps", drawn)
	}
}

func plotTestConfig() config.Config {
	cfg := config.Default()
	cfg.Tiers = []config.TierConfig{
		{Name: "easy", MaxLevel: 0, Points: 100, Tolerance: 0.05, Templates: []string{"sin(x)"}},
	}
	return cfg
}

func TestDrawPlotFrame(t *testing.T) {
	sess := sim.NewSession(plotTestConfig(), 1)
	s := core.NewScreen(60, 20)

	DrawPlot(s, sess)

	if !strings.Contains(s.Row(0), "Level 1") {
		t.Errorf("HUD row = %q, expected the level readout", s.Row(0))
	}
	if !strings.Contains(s.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected the score readout", s.Row(0))
	}

	// Box corners around the plot area.
	if s.Get(0, 1) != '┌' || s.Get(59, 1) != '┐' {
		t.Error("plot box top corners missing")
	}
	if s.Get(0, 18) != '└' || s.Get(59, 18) != '┘' {
		t.Error("plot box bottom corners missing")
	}

	// The target curve must show up inside the box.
	if !strings.Contains(s.String(), string(targetGlyph)) {
		t.Error("target curve was not drawn")
	}

	if !strings.Contains(s.Row(19), "x: 0 .. 10") {
		t.Errorf("label row = %q, expected the domain bounds", s.Row(19))
	}
}

func TestDrawPlotTooSmall(t *testing.T) {
	sess := sim.NewSession(plotTestConfig(), 1)
	s := core.NewScreen(3, 3)

	// Must not panic on a tiny terminal.
	DrawPlot(s, sess)
}
