// Package sim implements the plotlab game simulation: curve sampling,
// match scoring, difficulty progression, and session state. It is pure
// logic with no terminal or storage dependencies; the platform layer
// drives it from input events.
package sim

import (
	"github.com/mgirault/plotlab/internal/config"
	"github.com/mgirault/plotlab/internal/expr"
)

// Domain is the x-interval both curves are sampled over.
type Domain struct {
	XMin      float64
	XMax      float64
	Intervals int // A curve carries Intervals+1 evenly spaced samples
}

// DomainFromConfig converts the config representation.
func DomainFromConfig(dc config.DomainConfig) Domain {
	return Domain{XMin: dc.XMin, XMax: dc.XMax, Intervals: dc.Intervals}
}

// Len returns the number of sample points in this domain.
func (d Domain) Len() int {
	return d.Intervals + 1
}

// Point is a single curve sample. Y is meaningful only when Defined.
type Point struct {
	X       float64
	Y       float64
	Defined bool
}

// SampleSet is an ordered sequence of curve samples over a domain.
// Its length is always exactly Domain.Len(): points where the
// expression is undefined are marked, never dropped.
type SampleSet []Point

// Sample evaluates e across the domain. A failure at one x marks that
// point undefined and sampling continues; the result length never
// varies. Sampling is deterministic: same expression and domain, same
// SampleSet.
func Sample(e *expr.Expr, d Domain) SampleSet {
	set := make(SampleSet, d.Len())
	step := (d.XMax - d.XMin) / float64(d.Intervals)

	for i := range set {
		x := d.XMin + float64(i)*step
		y, ok := e.Eval(x)
		set[i] = Point{X: x, Y: y, Defined: ok}
	}
	return set
}

// DefinedCount returns how many points carry a defined y value.
func (s SampleSet) DefinedCount() int {
	n := 0
	for _, p := range s {
		if p.Defined {
			n++
		}
	}
	return n
}

// YRange returns the min and max y over defined points. A flat curve
// is padded by ±1 so the range is never empty. ok is false when no
// point is defined.
func (s SampleSet) YRange() (yMin, yMax float64, ok bool) {
	first := true
	for _, p := range s {
		if !p.Defined {
			continue
		}
		if first {
			yMin, yMax = p.Y, p.Y
			first = false
			continue
		}
		if p.Y < yMin {
			yMin = p.Y
		}
		if p.Y > yMax {
			yMax = p.Y
		}
	}
	if first {
		return 0, 0, false
	}
	if yMin == yMax {
		yMin--
		yMax++
	}
	return yMin, yMax, true
}
