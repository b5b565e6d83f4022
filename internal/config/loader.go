package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.plotlab/configs/plotlab.yaml ->
// ./configs/plotlab.yaml -> embedded default. The loaded config is
// validated; a config that breaks the tier invariants is an error, not
// a silent fallback.
func Load(customPath string) (Config, error) {
	var cfg Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if userPath := userConfigPath("plotlab.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			return parse(data, userPath)
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "plotlab.yaml")); err == nil {
		return parse(data, "configs/plotlab.yaml")
	}

	if cfg, err := parse(defaultYAML, "embedded default"); err == nil {
		return cfg, nil
	}
	// Embedded YAML failing to parse would be a build defect; fall back
	// to the hardcoded table rather than refusing to start.
	return Default(), nil
}

func parse(data []byte, source string) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w (from %s)", err, source)
	}
	return cfg, nil
}

// userConfigPath returns the per-user config file path, or empty if
// the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".plotlab", "configs", filename)
}
