// Package config loads proseamp's YAML configuration with validated
// defaults. The file is optional: when none exists the defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Enhance EnhanceConfig `yaml:"enhance" validate:"required"`
	Server  ServerConfig  `yaml:"server" validate:"required"`
	Batch   BatchConfig   `yaml:"batch" validate:"required"`
}

type EnhanceConfig struct {
	// TargetPercent is the default expansion target for enhance_text.
	TargetPercent int `yaml:"target_percent" validate:"required,min=100,max=500"`
	// CustomTargetPercent is the default for custom_enhance_text.
	CustomTargetPercent int `yaml:"custom_target_percent" validate:"required,min=100,max=500"`
	// MaxInputBytes rejects oversized request texts before analysis.
	MaxInputBytes int              `yaml:"max_input_bytes" validate:"required,min=1024,max=10485760"`
	Techniques    TechniquesConfig `yaml:"techniques"`
}

// TechniquesConfig sets which techniques are enabled by default when a
// request does not say otherwise.
type TechniquesConfig struct {
	GoldenShadow          bool `yaml:"golden_shadow"`
	Environmental         bool `yaml:"environmental"`
	ActionScene           bool `yaml:"action_scene"`
	ProseSmoothing        bool `yaml:"prose_smoothing"`
	RepetitionElimination bool `yaml:"repetition_elimination"`
}

type ServerConfig struct {
	RateLimit RateLimitConfig `yaml:"rate_limit" validate:"required"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" validate:"required,min=1,max=10000"`
	BurstSize         int `yaml:"burst_size" validate:"required,min=1,max=1000"`
}

type BatchConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" validate:"required,min=1,max=64"`
}

func Default() *Config {
	return &Config{
		Enhance: EnhanceConfig{
			TargetPercent:       200,
			CustomTargetPercent: 150,
			MaxInputBytes:       1 << 20,
			Techniques: TechniquesConfig{
				GoldenShadow:          true,
				Environmental:         true,
				ActionScene:           true,
				ProseSmoothing:        true,
				RepetitionElimination: true,
			},
		},
		Server: ServerConfig{
			RateLimit: RateLimitConfig{
				RequestsPerMinute: 120,
				BurstSize:         20,
			},
		},
		Batch: BatchConfig{
			MaxConcurrent: 8,
		},
	}
}

// Load reads the config file if one exists, layering its values over
// the defaults, and validates the result. A missing file is not an
// error; a malformed or invalid one is.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	path := configPath()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func configPath() string {
	if path := os.Getenv("PROSEAMP_CONFIG"); path != "" {
		return path
	}
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "proseamp", "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "proseamp", "config.yaml")
}

// Validate checks all struct-tag constraints.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	return nil
}
