// Package config handles tool configuration loading.
package config

// Config holds all settings for the sync tool and its demo host.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Scene   SceneConfig   `yaml:"scene"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// SceneConfig holds demo scene generation settings.
type SceneConfig struct {
	GridSize     int     `yaml:"grid_size"`     // Objects per side of the scatter grid
	Spacing      float32 `yaml:"spacing"`       // World units between grid cells
	Seed         int64   `yaml:"seed"`          // Noise seed
	NoiseScale   float64 `yaml:"noise_scale"`   // Horizontal noise frequency
	HeightScale  float64 `yaml:"height_scale"`  // Vertical amplitude of the heightfield
	InactiveRate int     `yaml:"inactive_rate"` // Every Nth object starts disabled (0 = none)
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Scene: SceneConfig{
			GridSize:     8,
			Spacing:      4.0,
			Seed:         1337,
			NoiseScale:   0.15,
			HeightScale:  6.0,
			InactiveRate: 0,
		},
	}
}
