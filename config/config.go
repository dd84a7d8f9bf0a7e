// Package config persists user defaults between runs.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// GenerateConfig stores default generation parameters.
type GenerateConfig struct {
	Style    string `json:"style,omitempty"`
	Tempo    int    `json:"tempo,omitempty"`
	Measures int    `json:"measures,omitempty"`
}

// UIConfig stores inspector preferences.
type UIConfig struct {
	PalettePath string `json:"palettePath,omitempty"`
}

// Config is the main configuration structure
type Config struct {
	Generate  GenerateConfig `json:"generate,omitempty"`
	UI        UIConfig       `json:"ui,omitempty"`
	OutputDir string         `json:"outputDir,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Generate: GenerateConfig{
			Style:    "techno",
			Measures: 128,
		},
	}
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "acidgrid", "config.json"), nil
}

// Load reads the user config, falling back to defaults when the file
// does not exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Save writes the config, creating the directory if needed.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
