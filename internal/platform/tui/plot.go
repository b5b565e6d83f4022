package tui

import (
	"fmt"

	"github.com/mgirault/plotlab/internal/core"
	"github.com/mgirault/plotlab/internal/sim"
)

// Curve glyphs. The player's curve is drawn after the target so it wins
// where the two overlap.
const (
	targetGlyph = '·'
	playerGlyph = '*'
)

// yToRow maps a y value to a screen row inside a plot area of the given
// height. Row 0 is the top, so larger y means a smaller row index.
func yToRow(y, yMin, yMax float64, rows int) int {
	if rows <= 1 || yMax <= yMin {
		return 0
	}
	frac := (y - yMin) / (yMax - yMin)
	return core.Clamp(int(float64(rows-1)*(1-frac)+0.5), 0, rows-1)
}

// columnPoint picks the sample shown in a given plot column. Columns
// and samples rarely line up one-to-one, so each column shows its
// nearest sample.
func columnPoint(set sim.SampleSet, col, width int) (sim.Point, bool) {
	if len(set) == 0 || width <= 0 {
		return sim.Point{}, false
	}
	i := 0
	if width > 1 {
		i = core.Clamp(col*(len(set)-1)/(width-1), 0, len(set)-1)
	}
	return set[i], true
}

// DrawCurve plots a sample set into the rectangle, skipping undefined
// points and points outside the y window.
func DrawCurve(s *core.Screen, r core.Rect, set sim.SampleSet, yMin, yMax float64, glyph rune, c core.Color) {
	for col := 0; col < r.W; col++ {
		p, ok := columnPoint(set, col, r.W)
		if !ok || !p.Defined {
			continue
		}
		if p.Y < yMin || p.Y > yMax {
			continue
		}
		row := yToRow(p.Y, yMin, yMax, r.H)
		s.SetColored(r.X+col, r.Y+row, glyph, c)
	}
}

// DrawAxes draws the x and y axes inside the rectangle when they fall
// within the visible window, with the domain bounds labeled underneath.
func DrawAxes(s *core.Screen, r core.Rect, d sim.Domain, yMin, yMax float64) {
	if yMin <= 0 && 0 <= yMax {
		row := yToRow(0, yMin, yMax, r.H)
		s.DrawHLine(r.X, r.Y+row, r.W, '─', core.ColorGray)
	}
	if d.XMin <= 0 && 0 <= d.XMax && d.XMax > d.XMin {
		frac := (0 - d.XMin) / (d.XMax - d.XMin)
		col := core.Clamp(int(float64(r.W-1)*frac+0.5), 0, r.W-1)
		s.DrawVLine(r.X+col, r.Y, r.H, '│', core.ColorGray)
	}
}

// DrawPlot renders one full frame of the session into the screen: a HUD
// line, the boxed plot with both curves, and the domain labels.
func DrawPlot(s *core.Screen, sess *sim.Session) {
	s.Clear()

	tier := sess.Tier()
	hud := fmt.Sprintf(" Level %d [%s]  Score: %d  Hints: %d", sess.Level(), tier.Name, sess.Score(), sess.HintsLeft())
	s.DrawTextColored(0, 0, hud, core.ColorBrightYellow)

	box := core.NewRect(0, 1, s.Width(), s.Height()-2)
	if box.W < 4 || box.H < 4 {
		return
	}
	s.DrawBox(box)

	inner := box.Inset(1)
	yMin, yMax := sess.PlotRange()
	d := sess.Domain()

	DrawAxes(s, inner, d, yMin, yMax)
	DrawCurve(s, inner, sess.TargetCurve(), yMin, yMax, targetGlyph, core.ColorCyan)

	playerColor := core.ColorYellow
	if sess.Phase() == sim.PhaseMatched {
		playerColor = core.ColorBrightGreen
	}
	DrawCurve(s, inner, sess.PlayerCurve(), yMin, yMax, playerGlyph, playerColor)

	labels := fmt.Sprintf(" x: %g .. %g   y: %.2f .. %.2f", d.XMin, d.XMax, yMin, yMax)
	s.DrawTextColored(0, s.Height()-1, labels, core.ColorGray)
}
