package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the application configuration.
// Search order: customPath -> ~/.playform/playform.yaml ->
// ./configs/playform.yaml -> embedded default.
func Load(customPath string) (Config, error) {
	var cfg Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return fill(cfg), nil
	}

	if userCfg := userConfigPath("playform.yaml"); userCfg != "" {
		if data, err := os.ReadFile(userCfg); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return fill(cfg), nil
			}
		}
	}

	if data, err := os.ReadFile("configs/playform.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return fill(cfg), nil
		}
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil
	}
	return fill(cfg), nil
}

// userConfigPath returns the path of a config file in the user config
// directory, or "" when the home directory cannot be determined.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".playform", name)
}

// fill patches zero values in a loaded config with defaults so a
// partial file still yields a usable configuration.
func fill(cfg Config) Config {
	def := Default()
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = def.Storage.Path
	}
	if cfg.Canvas.Width <= 0 {
		cfg.Canvas.Width = def.Canvas.Width
	}
	if cfg.Canvas.Height <= 0 {
		cfg.Canvas.Height = def.Canvas.Height
	}
	if cfg.Canvas.TickRate <= 0 {
		cfg.Canvas.TickRate = def.Canvas.TickRate
	}
	if cfg.SSH.Address == "" {
		cfg.SSH.Address = def.SSH.Address
	}
	if cfg.SSH.IdleMinutes <= 0 {
		cfg.SSH.IdleMinutes = def.SSH.IdleMinutes
	}
	return cfg
}
