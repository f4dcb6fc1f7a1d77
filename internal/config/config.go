package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"go.yaml.in/yaml/v4"
)

const defaultPath = "config.yaml"

type Config struct {
	ListenAddr  string      `yaml:"listen_addr,omitempty"`
	APIBaseURL  string      `yaml:"api_base_url,omitempty"`
	Timezone    string      `yaml:"timezone,omitempty"`
	SeedSamples bool        `yaml:"seed_samples,omitempty"`
	Log         LogConfig   `yaml:"log"`
	Nudge       NudgeConfig `yaml:"nudge"`
}

type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
	File   string `yaml:"file,omitempty"`
}

type NudgeConfig struct {
	Email string `yaml:"email,omitempty"`
	From  string `yaml:"from,omitempty"`
	// ResendAPIKey is read from the environment only.
	ResendAPIKey string `yaml:"-"`
}

func Default() Config {
	return Config{
		ListenAddr: ":8080",
		APIBaseURL: "http://localhost:8080",
		Log:        LogConfig{Level: "info", Format: "text"},
		Nudge:      NudgeConfig{From: "onboarding@resend.dev"},
	}
}

// Load reads the YAML file named by HABITFLOW_CONFIG, falling back to
// ./config.yaml. A missing default file is not an error; a missing file that was
// asked for explicitly is. Environment variables override file values.
func Load() (*Config, error) {
	cfg := Default()

	path := os.Getenv("HABITFLOW_CONFIG")
	explicit := path != ""
	if !explicit {
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(&cfg)

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	overrides := []struct {
		key string
		dst *string
	}{
		{"HABITFLOW_LISTEN_ADDR", &cfg.ListenAddr},
		{"HABITFLOW_API_BASE", &cfg.APIBaseURL},
		{"HABITFLOW_TIMEZONE", &cfg.Timezone},
		{"HABITFLOW_LOG_LEVEL", &cfg.Log.Level},
		{"HABITFLOW_NUDGE_EMAIL", &cfg.Nudge.Email},
		{"HABITFLOW_RESEND_API_KEY", &cfg.Nudge.ResendAPIKey},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.key); v != "" {
			*o.dst = v
		}
	}
}

// Location resolves the configured time zone; empty means the host's local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
