// Package config loads quizdeck settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable holding a config file path.
const EnvConfig = "QUIZDECK_CONFIG"

// Config holds quiz and startup settings.
type Config struct {
	// DrawSize is the number of questions drawn per quiz.
	DrawSize int `yaml:"draw_size"`

	// FeedbackDelay is how long answer feedback stays up before the next question.
	FeedbackDelay time.Duration `yaml:"feedback_delay"`

	// PraiseRatio and EncourageRatio are the score fractions for the end tiers.
	PraiseRatio    float64 `yaml:"praise_ratio"`
	EncourageRatio float64 `yaml:"encourage_ratio"`

	// DefaultBank is fetched in the background at startup. It may be an
	// http(s) URL or a local path; empty disables the fetch.
	DefaultBank string `yaml:"default_bank"`

	FetchTimeout time.Duration `yaml:"fetch_timeout"`

	// ServeAddr is the listen address for the bank server.
	ServeAddr string `yaml:"serve_addr"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		DrawSize:       4,
		FeedbackDelay:  900 * time.Millisecond,
		PraiseRatio:    0.75,
		EncourageRatio: 0.4,
		DefaultBank:    "question_bank.csv",
		FetchTimeout:   5 * time.Second,
		ServeAddr:      ":8080",
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.DrawSize < 1:
		return fmt.Errorf("draw_size must be at least 1, got %d", c.DrawSize)
	case c.FeedbackDelay <= 0:
		return fmt.Errorf("feedback_delay must be positive, got %s", c.FeedbackDelay)
	case c.FetchTimeout <= 0:
		return fmt.Errorf("fetch_timeout must be positive, got %s", c.FetchTimeout)
	case c.PraiseRatio <= 0 || c.PraiseRatio > 1:
		return fmt.Errorf("praise_ratio must be in (0, 1], got %g", c.PraiseRatio)
	case c.EncourageRatio <= 0 || c.EncourageRatio > 1:
		return fmt.Errorf("encourage_ratio must be in (0, 1], got %g", c.EncourageRatio)
	case c.EncourageRatio > c.PraiseRatio:
		return fmt.Errorf("encourage_ratio (%g) must not exceed praise_ratio (%g)", c.EncourageRatio, c.PraiseRatio)
	}
	return nil
}

// Load reads the config file at path over the defaults. A missing file at
// the default location is not an error; a missing explicit path is.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfig)
		explicit = path != ""
	}
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/quizdeck/config.yaml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "quizdeck", "config.yaml"), nil
}
