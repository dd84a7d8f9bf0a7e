package style

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
)

// Preset bundles generation parameters under a memorable name.
// Zero Tempo means "use the style default"; zero Seed means "fresh seed".
type Preset struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Style       string `yaml:"style"`
	Tempo       int    `yaml:"tempo,omitempty"`
	Measures    int    `yaml:"measures"`
	Seed        int64  `yaml:"seed,omitempty"`
}

// Built-in presets. User presets on disk shadow these by name.
var builtinPresets = map[string]Preset{
	"berlin-warehouse": {
		Name:        "berlin-warehouse",
		Description: "Dark, industrial Berlin techno - minimal and hypnotic",
		Style:       "techno",
		Tempo:       132,
		Measures:    256,
	},
	"detroit-acid": {
		Name:        "detroit-acid",
		Description: "Classic Detroit acid techno with 303 basslines",
		Style:       "techno",
		Tempo:       128,
		Measures:    192,
	},
	"hardfloor": {
		Name:        "hardfloor",
		Description: "Fast, aggressive hard techno rave energy",
		Style:       "hard-tekno",
		Tempo:       165,
		Measures:    256,
	},
	"chicago-jack": {
		Name:        "chicago-jack",
		Description: "Classic Chicago house - groovy and soulful",
		Style:       "house",
		Tempo:       124,
		Measures:    192,
	},
	"jungle-massive": {
		Name:        "jungle-massive",
		Description: "Fast jungle breaks with ragga bass",
		Style:       "jungle",
		Tempo:       174,
		Measures:    192,
	},
	"boom-bap": {
		Name:        "boom-bap",
		Description: "Classic 90s boom bap hip-hop",
		Style:       "hip-hop",
		Tempo:       90,
		Measures:    64,
	},
	"trap-banger": {
		Name:        "trap-banger",
		Description: "Hard trap with 808s and hi-hat rolls",
		Style:       "trap",
		Tempo:       150,
		Measures:    64,
	},
	"deep-space": {
		Name:        "deep-space",
		Description: "Weightless ambient drift",
		Style:       "ambient",
		Tempo:       70,
		Measures:    96,
	},
}

// ConfigDir returns the acidgrid configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "acidgrid"), nil
}

// PresetDir returns the directory scanned for user preset files.
func PresetDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "presets"), nil
}

// LoadPresetFile reads a single YAML preset.
func LoadPresetFile(path string) (Preset, error) {
	var p Preset
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse preset %s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// SavePreset writes a preset into the user preset directory.
func SavePreset(p Preset) error {
	dir, err := PresetDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, p.Name+".yaml"), data, 0644)
}

// Presets returns all known presets, built-in plus user files, sorted
// by name. Unreadable user files are skipped.
func Presets() []Preset {
	byName := make(map[string]Preset, len(builtinPresets))
	for name, p := range builtinPresets {
		byName[name] = p
	}
	if dir, err := PresetDir(); err == nil {
		entries, _ := os.ReadDir(dir)
		for _, e := range entries {
			ext := filepath.Ext(e.Name())
			if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
				continue
			}
			if p, err := LoadPresetFile(filepath.Join(dir, e.Name())); err == nil {
				byName[p.Name] = p
			}
		}
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Preset, 0, len(names))
	for _, name := range names {
		out = append(out, byName[name])
	}
	return out
}

// PresetByName resolves a preset, user files shadowing built-ins.
func PresetByName(name string) (Preset, error) {
	for _, p := range Presets() {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %q", name)
}
