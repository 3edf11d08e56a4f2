package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/chroma/v2/styles"
)

const (
	configDir  = ".config/amath"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary.
type rawConfig struct {
	Backend       string `json:"backend"`
	Display       string `json:"display"`
	Color         *bool  `json:"color"`
	Style         string `json:"style"`
	MaxInputBytes *int   `json:"maxInputBytes"`
	MaxDepth      *int   `json:"maxDepth"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/amath/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, configDir, configFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	mergeConfig(cfg, &raw)

	if styles.Get(cfg.Style) == styles.Fallback && cfg.Style != "swapoff" {
		slog.Warn("unknown highlight style, using fallback", "style", cfg.Style, "path", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	if raw.Backend != "" {
		cfg.Backend = raw.Backend
	}
	if raw.Display != "" {
		cfg.Display = raw.Display
	}
	if raw.Color != nil {
		cfg.Color = *raw.Color
	}
	if raw.Style != "" {
		cfg.Style = raw.Style
	}
	if raw.MaxInputBytes != nil {
		cfg.MaxInputBytes = *raw.MaxInputBytes
	}
	if raw.MaxDepth != nil {
		cfg.MaxDepth = *raw.MaxDepth
	}
}
