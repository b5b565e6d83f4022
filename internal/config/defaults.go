package config

import (
	_ "embed"
)

//go:embed defaults/plotlab.yaml
var defaultYAML []byte

// Default returns the built-in configuration: the standard tier table
// with the domain 0..10 sampled over 400 intervals.
func Default() Config {
	return Config{
		Domain: DomainConfig{
			XMin:      0.0,
			XMax:      10.0,
			Intervals: 400,
		},
		Gameplay: GameplayConfig{
			SkipPenalty:  50,
			InitialHints: 3,
			BonusFactor:  0.5,
			YRangeMargin: 0.2,
		},
		Tiers: []TierConfig{
			{
				Name:      "easy",
				MaxLevel:  3,
				Points:    100,
				Tolerance: 0.05,
				Templates: []string{"sin(x)", "cos(x)", "x", "x ^ 2"},
			},
			{
				Name:      "medium",
				MaxLevel:  6,
				Points:    200,
				Tolerance: 0.04,
				Templates: []string{
					"2 * sin(x)", "cos(x * 2)", "x ^ 2 - 3",
					"sqrt(x + 1)", "log(x + 1)", "sin(x) + cos(x)",
				},
			},
			{
				Name:      "hard",
				MaxLevel:  10,
				Points:    300,
				Tolerance: 0.03,
				Templates: []string{
					"sin(x) * cos(x)", "exp(x / 5) - 2", "sin(x ^ 2)",
					"tan(x / 2)", "sqrt(abs(sin(x * 3)))", "log(abs(x) + 1) * sin(x)",
				},
			},
			{
				Name:      "expert",
				MaxLevel:  0,
				Points:    500,
				Tolerance: 0.02,
				Templates: []string{
					"sinh(x / 2)", "sin(x) / (x + 1)", "exp(-x) * sin(x * 3)",
					"atan(x) * 2", "floor(sin(x * 3)) + x / 5", "cosh(x / 3) - 2",
				},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `plotlab tiers --dump`.
func DefaultYAML() []byte {
	return defaultYAML
}
