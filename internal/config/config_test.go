package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.DrawSize)
	assert.Equal(t, 900*time.Millisecond, cfg.FeedbackDelay)
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("draw_size: 6\nfeedback_delay: 1.5s\ndefault_bank: https://example.com/bank.csv\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.DrawSize)
	assert.Equal(t, 1500*time.Millisecond, cfg.FeedbackDelay)
	assert.Equal(t, "https://example.com/bank.csv", cfg.DefaultBank)
	assert.Equal(t, 0.75, cfg.PraiseRatio, "unset keys keep defaults")
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "draw_sise: 3\n"},
		{"zero draw size", "draw_size: 0\n"},
		{"negative delay", "feedback_delay: -1s\n"},
		{"ratio above one", "praise_ratio: 1.2\n"},
		{"encourage above praise", "praise_ratio: 0.5\nencourage_ratio: 0.6\n"},
		{"bad duration", "fetch_timeout: soon\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad_Resolution(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvConfig, "")

	// Nothing on disk: defaults.
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	// Default location.
	defaultPath := filepath.Join(dir, "quizdeck", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(defaultPath), 0o755))
	require.NoError(t, os.WriteFile(defaultPath, []byte("draw_size: 2\n"), 0o644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.DrawSize)

	// Env var beats the default location.
	envPath := filepath.Join(dir, "env.yaml")
	require.NoError(t, os.WriteFile(envPath, []byte("draw_size: 3\n"), 0o644))
	t.Setenv(EnvConfig, envPath)
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.DrawSize)

	// Explicit path beats both.
	flagPath := filepath.Join(dir, "flag.yaml")
	require.NoError(t, os.WriteFile(flagPath, []byte("draw_size: 5\n"), 0o644))
	cfg, err = Load(flagPath)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.DrawSize)
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
