// Package config loads server and preview settings from the environment and
// an optional YAML stage schedule.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Zachkp/portfolio/internal/loader"
)

// Environment variables read by Load.
const (
	EnvPort       = "PORT"
	EnvGinMode    = "GIN_MODE"
	EnvStagesFile = "PORTFOLIO_STAGES_FILE"
	EnvFrameMS    = "PORTFOLIO_FRAME_MS"
	EnvAudio      = "PORTFOLIO_AUDIO"
)

const (
	DefaultPort          = "8080"
	DefaultSettleDelayMS = 2000
	// DefaultStreamFrameMS paces percent events on the SSE stream; a browser
	// does not need 60 updates a second over the wire.
	DefaultStreamFrameMS = 50
)

// StageConfig is one stage entry in the schedule file.
type StageConfig struct {
	ID         string `yaml:"id"`
	Label      string `yaml:"label"`
	DurationMS int    `yaml:"duration_ms"`
}

// LoaderConfig is the loading sequence schedule.
type LoaderConfig struct {
	Stages        []StageConfig `yaml:"stages"`
	SettleDelayMS int           `yaml:"settle_delay_ms"`
}

// Config is everything the binaries need.
type Config struct {
	Port    string
	GinMode string
	// FrameMS is the refresh interval; zero means each front end picks its own.
	FrameMS      int
	AudioEnabled bool
	StagesFile   string
	Loader       LoaderConfig
}

// DefaultLoader returns the built-in four stage schedule.
func DefaultLoader() LoaderConfig {
	stages, labels := loader.DefaultStages()
	cfg := LoaderConfig{SettleDelayMS: DefaultSettleDelayMS}
	for i, st := range stages {
		cfg.Stages = append(cfg.Stages, StageConfig{
			ID:         st.ID,
			Label:      labels[i],
			DurationMS: int(st.Duration / time.Millisecond),
		})
	}
	return cfg
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Port:         DefaultPort,
		AudioEnabled: true,
		Loader:       DefaultLoader(),
	}
}

// Load reads the environment. A stages file that does not exist falls back
// to the default schedule; one that exists but does not parse is an error.
func Load() (*Config, error) {
	cfg := Default()

	if port := os.Getenv(EnvPort); port != "" {
		cfg.Port = port
	}
	cfg.GinMode = os.Getenv(EnvGinMode)

	if v := os.Getenv(EnvFrameMS); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("invalid %s %q", EnvFrameMS, v)
		}
		cfg.FrameMS = ms
	}

	if v := os.Getenv(EnvAudio); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvAudio, v, err)
		}
		cfg.AudioEnabled = enabled
	}

	if path := strings.TrimSpace(os.Getenv(EnvStagesFile)); path != "" {
		cfg.StagesFile = path
		lc, err := LoadStagesFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			log.Printf("Stages file %s not found, using default schedule", path)
		case err != nil:
			return nil, err
		default:
			cfg.Loader = *lc
		}
	}

	return cfg, nil
}

// LoadStagesFile parses a YAML schedule. Fields left out keep their default.
func LoadStagesFile(path string) (*LoaderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stages file: %w", err)
	}

	lc := LoaderConfig{SettleDelayMS: DefaultSettleDelayMS}
	if err := yaml.Unmarshal(data, &lc); err != nil {
		return nil, fmt.Errorf("failed to parse stages file: %w", err)
	}
	if len(lc.Stages) == 0 {
		lc.Stages = DefaultLoader().Stages
	}
	if _, _, err := lc.Schedule(); err != nil {
		return nil, err
	}
	return &lc, nil
}

// Schedule converts the config into loader stages and labels.
func (lc LoaderConfig) Schedule() ([]loader.Stage, []string, error) {
	stages := make([]loader.Stage, 0, len(lc.Stages))
	labels := make([]string, 0, len(lc.Stages))
	for i, sc := range lc.Stages {
		id := sc.ID
		if id == "" {
			id = fmt.Sprintf("stage-%d", i+1)
		}
		stages = append(stages, loader.Stage{ID: id, Duration: time.Duration(sc.DurationMS) * time.Millisecond})
		labels = append(labels, sc.Label)
	}
	if err := loader.Validate(stages, labels); err != nil {
		return nil, nil, err
	}
	return stages, labels, nil
}

// SettleDelay returns the configured settle delay.
func (lc LoaderConfig) SettleDelay() time.Duration {
	if lc.SettleDelayMS < 0 {
		return loader.DefaultSettleDelay
	}
	return time.Duration(lc.SettleDelayMS) * time.Millisecond
}

// FrameInterval returns the configured frame interval, or fallback when none
// is set.
func (c *Config) FrameInterval(fallback time.Duration) time.Duration {
	if c.FrameMS > 0 {
		return time.Duration(c.FrameMS) * time.Millisecond
	}
	return fallback
}
