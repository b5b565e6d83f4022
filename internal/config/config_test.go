package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() config invalid: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(defaultYAML, "embedded")
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	want := Default()
	if len(cfg.Tiers) != len(want.Tiers) {
		t.Fatalf("embedded default has %d tiers, hardcoded has %d", len(cfg.Tiers), len(want.Tiers))
	}
	for i, tier := range cfg.Tiers {
		if tier.Name != want.Tiers[i].Name || tier.Points != want.Tiers[i].Points ||
			tier.Tolerance != want.Tiers[i].Tolerance || tier.MaxLevel != want.Tiers[i].MaxLevel {
			t.Errorf("tier %d: embedded %+v, hardcoded %+v", i, tier, want.Tiers[i])
		}
	}
	if cfg.Domain != want.Domain {
		t.Errorf("domain: embedded %+v, hardcoded %+v", cfg.Domain, want.Domain)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		msg    string
	}{
		{
			name:   "inverted domain",
			mutate: func(c *Config) { c.Domain.XMax = c.Domain.XMin - 1 },
			msg:    "x_max",
		},
		{
			name:   "zero intervals",
			mutate: func(c *Config) { c.Domain.Intervals = 0 },
			msg:    "intervals",
		},
		{
			name:   "unbounded intervals",
			mutate: func(c *Config) { c.Domain.Intervals = 1 << 20 },
			msg:    "intervals",
		},
		{
			name:   "no tiers",
			mutate: func(c *Config) { c.Tiers = nil },
			msg:    "at least one tier",
		},
		{
			name:   "loosening tolerance",
			mutate: func(c *Config) { c.Tiers[2].Tolerance = 0.5 },
			msg:    "tolerance",
		},
		{
			name:   "bounded top tier",
			mutate: func(c *Config) { c.Tiers[len(c.Tiers)-1].MaxLevel = 99 },
			msg:    "unbounded",
		},
		{
			name:   "overlapping thresholds",
			mutate: func(c *Config) { c.Tiers[1].MaxLevel = c.Tiers[0].MaxLevel },
			msg:    "extend past",
		},
		{
			name:   "template outside allow-list",
			mutate: func(c *Config) { c.Tiers[0].Templates = []string{"spam(x)"} },
			msg:    "unknown function",
		},
		{
			name:   "empty template set",
			mutate: func(c *Config) { c.Tiers[1].Templates = nil },
			msg:    "no templates",
		},
		{
			name:   "negative skip penalty",
			mutate: func(c *Config) { c.Gameplay.SkipPenalty = -1 },
			msg:    "skip_penalty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() passed, want error")
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("Validate() error %q, want substring %q", err, tt.msg)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	custom := `
domain:
  x_min: -5.0
  x_max: 5.0
  intervals: 100
gameplay:
  skip_penalty: 25
  initial_hints: 1
  bonus_factor: 0.0
  y_range_margin: 0.1
tiers:
  - name: only
    max_level: 0
    points: 10
    tolerance: 0.1
    templates: ["x"]
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}
	if cfg.Domain.XMin != -5 || cfg.Domain.Intervals != 100 {
		t.Errorf("Load() domain = %+v, want x_min -5 intervals 100", cfg.Domain)
	}
	if len(cfg.Tiers) != 1 || cfg.Tiers[0].Name != "only" {
		t.Errorf("Load() tiers = %+v", cfg.Tiers)
	}
}

func TestLoadRejectsInvalidCustom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	// Tolerance loosens between tiers.
	bad := `
domain: {x_min: 0, x_max: 10, intervals: 100}
gameplay: {skip_penalty: 50, initial_hints: 3, bonus_factor: 0.5, y_range_margin: 0.2}
tiers:
  - {name: a, max_level: 3, points: 100, tolerance: 0.01, templates: ["x"]}
  - {name: b, max_level: 0, points: 200, tolerance: 0.5, templates: ["x"]}
`
	if err := os.WriteFile(path, []byte(bad), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() accepted a config with loosening tolerance")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with missing custom path should fail")
	}
}
