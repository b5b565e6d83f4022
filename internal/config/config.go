// Package config provides YAML-based configuration loading and
// validation for the plotlab game: plot domain, difficulty tiers, and
// the target-function template sets.
package config

import (
	"fmt"

	"github.com/mgirault/plotlab/internal/expr"
)

// Config is the complete game configuration.
type Config struct {
	Domain   DomainConfig   `yaml:"domain"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Tiers    []TierConfig   `yaml:"tiers"`
}

// DomainConfig defines the sampling domain for both curves.
type DomainConfig struct {
	XMin      float64 `yaml:"x_min"`
	XMax      float64 `yaml:"x_max"`
	Intervals int     `yaml:"intervals"` // Curves carry intervals+1 sample points
}

// GameplayConfig defines scoring and session parameters.
type GameplayConfig struct {
	SkipPenalty  int     `yaml:"skip_penalty"`   // Points deducted on skip; total score floored at zero
	InitialHints int     `yaml:"initial_hints"`  // Hints available per session
	BonusFactor  float64 `yaml:"bonus_factor"`   // Precision bonus: extra fraction of tier points at zero error
	YRangeMargin float64 `yaml:"y_range_margin"` // Padding added above/below the target curve when plotting
}

// TierConfig defines one difficulty tier. Tiers are ordered easiest
// first; the last tier has MaxLevel 0 (unbounded) and catches every
// level past the table.
type TierConfig struct {
	Name      string   `yaml:"name"`
	MaxLevel  int      `yaml:"max_level"` // Highest level in this tier; 0 = unbounded
	Points    int      `yaml:"points"`    // Awarded on match
	Tolerance float64  `yaml:"tolerance"` // Max normalized error counted as a match
	Templates []string `yaml:"templates"` // Target-function expressions for this tier
}

// Sampling cost must stay bounded regardless of what a config file
// asks for.
const maxIntervals = 10000

// Validate checks the structural invariants the rest of the game
// relies on. Load calls it automatically; configs constructed in code
// should call it explicitly.
func (c *Config) Validate() error {
	if c.Domain.XMax <= c.Domain.XMin {
		return fmt.Errorf("config: domain x_max (%v) must exceed x_min (%v)", c.Domain.XMax, c.Domain.XMin)
	}
	if c.Domain.Intervals < 1 || c.Domain.Intervals > maxIntervals {
		return fmt.Errorf("config: domain intervals must be in 1..%d, got %d", maxIntervals, c.Domain.Intervals)
	}
	if c.Gameplay.SkipPenalty < 0 {
		return fmt.Errorf("config: skip_penalty must not be negative")
	}
	if c.Gameplay.InitialHints < 0 {
		return fmt.Errorf("config: initial_hints must not be negative")
	}

	if len(c.Tiers) == 0 {
		return fmt.Errorf("config: at least one tier is required")
	}
	for i, tier := range c.Tiers {
		if tier.Name == "" {
			return fmt.Errorf("config: tier %d has no name", i)
		}
		if tier.Points <= 0 {
			return fmt.Errorf("config: tier %q points must be positive", tier.Name)
		}
		if tier.Tolerance <= 0 {
			return fmt.Errorf("config: tier %q tolerance must be positive", tier.Name)
		}
		if len(tier.Templates) == 0 {
			return fmt.Errorf("config: tier %q has no templates", tier.Name)
		}
		for _, tpl := range tier.Templates {
			if _, err := expr.Compile(tpl); err != nil {
				return fmt.Errorf("config: tier %q template %q: %w", tier.Name, tpl, err)
			}
		}

		// Harder tiers never get a looser tolerance than easier ones.
		if i > 0 && tier.Tolerance > c.Tiers[i-1].Tolerance {
			return fmt.Errorf("config: tier %q tolerance %v exceeds easier tier %q tolerance %v",
				tier.Name, tier.Tolerance, c.Tiers[i-1].Name, c.Tiers[i-1].Tolerance)
		}

		last := i == len(c.Tiers)-1
		if last && tier.MaxLevel != 0 {
			return fmt.Errorf("config: last tier %q must be unbounded (max_level 0)", tier.Name)
		}
		if !last {
			if tier.MaxLevel <= 0 {
				return fmt.Errorf("config: tier %q must have a positive max_level", tier.Name)
			}
			if i > 0 && tier.MaxLevel <= c.Tiers[i-1].MaxLevel {
				return fmt.Errorf("config: tier %q max_level %d does not extend past tier %q",
					tier.Name, tier.MaxLevel, c.Tiers[i-1].Name)
			}
		}
	}

	return nil
}
