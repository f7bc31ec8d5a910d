// Package config loads settings from defaults, an optional YAML file and GARAPON_* environment variables,
// in that order of precedence (later wins).
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/garapon/constants"
	"github.com/lixenwraith/garapon/prize"
)

var (
	ErrInvalidVolume  = errors.New("volume must be within [0, 1]")
	ErrInvalidPulseHz = errors.New("pulse frequency must be a finite number")
)

// Config is the full application configuration
type Config struct {
	Audio  AudioConfig   `yaml:"audio" envPrefix:"AUDIO_"`
	Log    LogConfig     `yaml:"log" envPrefix:"LOG_"`
	Prizes []prize.Prize `yaml:"prizes"`
}

// AudioConfig controls the speaker-backed pulse feedback
type AudioConfig struct {
	Enabled bool    `yaml:"enabled" env:"ENABLED"`
	Volume  float64 `yaml:"volume" env:"VOLUME"`
	PulseHz float64 `yaml:"pulse_hz" env:"PULSE_HZ"`
	Click   bool    `yaml:"click" env:"CLICK"`
}

// LogConfig controls the debug log file
type LogConfig struct {
	Dir   string `yaml:"dir" env:"DIR"`
	Level string `yaml:"level" env:"LEVEL"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Audio: AudioConfig{
			Enabled: true,
			Volume:  constants.DefaultVolume,
			PulseHz: constants.DefaultPulseFrequency,
			Click:   true,
		},
		Log: LogConfig{
			Dir:   constants.LogDir,
			Level: "debug",
		},
		Prizes: prize.DefaultPrizes(),
	}
}

// Load builds the configuration; an empty path or a missing file leaves the defaults in place
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := readYAML(path, cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: constants.EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readYAML decodes path over cfg; fields absent from the file keep their current value
func readYAML(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(b, cfg)
}

// Validate checks ranges and normalizes fallbacks
func (c *Config) Validate() error {
	// NaN fails every comparison, so range checks alone let it through
	if math.IsNaN(c.Audio.Volume) || c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio: %w (got %.2f)", ErrInvalidVolume, c.Audio.Volume)
	}
	if math.IsNaN(c.Audio.PulseHz) || math.IsInf(c.Audio.PulseHz, 0) {
		return fmt.Errorf("audio: %w (got %v)", ErrInvalidPulseHz, c.Audio.PulseHz)
	}
	if c.Audio.PulseHz <= 0 {
		c.Audio.PulseHz = constants.DefaultPulseFrequency
	}
	if c.Log.Dir == "" {
		c.Log.Dir = constants.LogDir
	}
	if len(c.Prizes) == 0 {
		c.Prizes = prize.DefaultPrizes()
	}
	if _, err := prize.NewTable(c.Prizes); err != nil {
		return fmt.Errorf("prizes: %w", err)
	}
	return nil
}

// PrizeTable builds the validated prize table
func (c *Config) PrizeTable() (*prize.Table, error) {
	return prize.NewTable(c.Prizes)
}
