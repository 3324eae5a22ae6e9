// Package config loads the application configuration from an optional
// YAML file, falling back to built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window WindowConfig `yaml:"window"`
	World  WorldConfig  `yaml:"world"`
	Player PlayerConfig `yaml:"player"`
	Assets AssetsConfig `yaml:"assets"`
	Debug  DebugConfig  `yaml:"debug"`
}

type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Vsync      bool `yaml:"vsync"`
	Fullscreen bool `yaml:"fullscreen"`
}

type WorldConfig struct {
	Seed int64 `yaml:"seed"`
	// Noise selects the terrain sampler: "perlin" or "opensimplex".
	Noise      string  `yaml:"noise"`
	NoiseScale float64 `yaml:"noise_scale"`
}

type PlayerConfig struct {
	Speed       float32 `yaml:"speed"`
	Sensitivity float32 `yaml:"sensitivity"`
	FallSpeed   float32 `yaml:"fall_speed"`
}

type AssetsConfig struct {
	Atlas string `yaml:"atlas"`
	Font  string `yaml:"font"`
}

type DebugConfig struct {
	HUD bool `yaml:"hud"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{Width: 1600, Height: 900, Vsync: true},
		World:  WorldConfig{Seed: 1, Noise: "perlin", NoiseScale: 0.1},
		Player: PlayerConfig{Speed: 30, Sensitivity: 1, FallSpeed: 30},
		Assets: AssetsConfig{
			Atlas: "assets/textures/atlas.png",
			Font:  "assets/fonts/Mojang-Regular.ttf",
		},
		Debug: DebugConfig{HUD: true},
	}
}

// Load reads the configuration at path on top of the defaults. A
// missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
