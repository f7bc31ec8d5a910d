package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/garapon/constants"
	"github.com/lixenwraith/garapon/prize"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "garapon.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Audio.Enabled || cfg.Audio.Volume != constants.DefaultVolume {
		t.Errorf("Unexpected audio defaults: %+v", cfg.Audio)
	}
	if len(cfg.Prizes) != len(prize.DefaultPrizes()) {
		t.Errorf("Expected default prizes, got %d", len(cfg.Prizes))
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Expected missing file to be ignored, got %v", err)
	}
	if cfg.Log.Dir != constants.LogDir {
		t.Errorf("Expected default log dir, got %q", cfg.Log.Dir)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
audio:
  volume: 0.25
prizes:
  - rank: 1
    name: Bicycle
    weight: 2
  - rank: 2
    name: Candy
    weight: 8
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Audio.Volume != 0.25 {
		t.Errorf("Expected volume 0.25, got %f", cfg.Audio.Volume)
	}
	if !cfg.Audio.Enabled {
		t.Error("Expected enabled to keep its default when absent from file")
	}
	if len(cfg.Prizes) != 2 || cfg.Prizes[0].Name != "Bicycle" {
		t.Errorf("Expected prizes from file, got %+v", cfg.Prizes)
	}

	table, err := cfg.PrizeTable()
	if err != nil {
		t.Fatalf("PrizeTable failed: %v", err)
	}
	if p := table.Probability(0); p != 0.2 {
		t.Errorf("Expected probability 0.2, got %f", p)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "audio:\n  volume: 0.25\n  enabled: true\n")
	t.Setenv("GARAPON_AUDIO_VOLUME", "0.75")
	t.Setenv("GARAPON_AUDIO_ENABLED", "false")
	t.Setenv("GARAPON_LOG_DIR", "/tmp/garapon-logs")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Audio.Volume != 0.75 {
		t.Errorf("Expected env volume 0.75, got %f", cfg.Audio.Volume)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected env to disable audio")
	}
	if cfg.Log.Dir != "/tmp/garapon-logs" {
		t.Errorf("Expected env log dir, got %q", cfg.Log.Dir)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeFile(t, "audio:\n  volume: 1.5\n")
	if _, err := Load(path); !errors.Is(err, ErrInvalidVolume) {
		t.Errorf("Expected ErrInvalidVolume, got %v", err)
	}

	path = writeFile(t, "prizes:\n  - rank: 1\n    name: Broken\n    weight: 0\n")
	if _, err := Load(path); !errors.Is(err, prize.ErrInvalidWeight) {
		t.Errorf("Expected ErrInvalidWeight, got %v", err)
	}

	path = writeFile(t, "audio:\n  volume: .nan\n")
	if _, err := Load(path); !errors.Is(err, ErrInvalidVolume) {
		t.Errorf("Expected ErrInvalidVolume for NaN volume, got %v", err)
	}

	path = writeFile(t, "audio:\n  pulse_hz: .inf\n")
	if _, err := Load(path); !errors.Is(err, ErrInvalidPulseHz) {
		t.Errorf("Expected ErrInvalidPulseHz for infinite pulse, got %v", err)
	}

	path = writeFile(t, "audio: [not, a, map]\n")
	if _, err := Load(path); err == nil {
		t.Error("Expected malformed YAML to fail")
	}
}

func TestValidateFallbacks(t *testing.T) {
	cfg := Default()
	cfg.Audio.PulseHz = 0
	cfg.Log.Dir = ""
	cfg.Prizes = nil

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.Audio.PulseHz != constants.DefaultPulseFrequency {
		t.Errorf("Expected pulse fallback, got %f", cfg.Audio.PulseHz)
	}
	if cfg.Log.Dir != constants.LogDir {
		t.Errorf("Expected log dir fallback, got %q", cfg.Log.Dir)
	}
	if len(cfg.Prizes) == 0 {
		t.Error("Expected default prizes fallback")
	}
}

func TestLoadRejectsNonFiniteEnv(t *testing.T) {
	tests := []struct {
		key, value string
		want       error
	}{
		{"GARAPON_AUDIO_VOLUME", "NaN", ErrInvalidVolume},
		{"GARAPON_AUDIO_VOLUME", "+Inf", ErrInvalidVolume},
		{"GARAPON_AUDIO_PULSE_HZ", "NaN", ErrInvalidPulseHz},
		{"GARAPON_AUDIO_PULSE_HZ", "+Inf", ErrInvalidPulseHz},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(""); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}
