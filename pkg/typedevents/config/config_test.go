package config_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/typedevents/pkg/typedevents/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew verifies Config creation from maps.
func TestNew(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
	}{
		{"nil map", nil},
		{"empty map", map[string]any{}},
		{"with values", map[string]any{"key": "value"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.Equal(t, "fallback", cfg.String("missing", "fallback"))
		})
	}
}

// TestString verifies string extraction with defaults.
func TestString(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal string
		want       string
	}{
		{"key exists", map[string]any{"name": "orders"}, "name", "default", "orders"},
		{"key missing", map[string]any{"other": "value"}, "name", "default", "default"},
		{"empty string", map[string]any{"name": ""}, "name", "default", ""},
		{"wrong type int", map[string]any{"name": 123}, "name", "default", "default"},
		{"nil map", nil, "name", "default", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.Equal(t, tt.want, cfg.String(tt.key, tt.defaultVal))
		})
	}
}

// TestBool verifies boolean extraction with defaults.
func TestBool(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		defaultVal bool
		want       bool
	}{
		{"true", map[string]any{"metrics": true}, false, true},
		{"false", map[string]any{"metrics": false}, true, false},
		{"missing", map[string]any{}, true, true},
		{"wrong type string", map[string]any{"metrics": "true"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.Equal(t, tt.want, cfg.Bool("metrics", tt.defaultVal))
		})
	}
}

// TestLevel verifies slog level parsing.
func TestLevel(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		want slog.Level
	}{
		{"debug", map[string]any{"log_level": "debug"}, slog.LevelDebug},
		{"upper case", map[string]any{"log_level": "WARN"}, slog.LevelWarn},
		{"error", map[string]any{"log_level": "error"}, slog.LevelError},
		{"offset", map[string]any{"log_level": "info+2"}, slog.LevelInfo + 2},
		{"invalid", map[string]any{"log_level": "loud"}, slog.LevelInfo},
		{"wrong type", map[string]any{"log_level": 4}, slog.LevelInfo},
		{"missing", map[string]any{}, slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.Equal(t, tt.want, cfg.Level("log_level", slog.LevelInfo))
		})
	}
}

// TestSection verifies nested config extraction.
func TestSection(t *testing.T) {
	cfg := config.New(map[string]any{
		"channels": map[string]any{
			"carts": map[string]any{"metrics": true},
		},
		"scalar": "x",
	})

	carts := cfg.Section("channels").Section("carts")
	assert.True(t, carts.Bool("metrics", false))

	assert.True(t, cfg.Section("channels").Has("carts"))
	assert.False(t, cfg.Section("missing").Has("metrics"))
	assert.False(t, cfg.Section("scalar").Has("x"))
}

// TestHas verifies key existence checks.
func TestHas(t *testing.T) {
	cfg := config.New(map[string]any{"name": "orders", "nil": nil})
	assert.True(t, cfg.Has("name"))
	assert.True(t, cfg.Has("nil"))
	assert.False(t, cfg.Has("missing"))
}

func TestFromYAML(t *testing.T) {
	data := []byte(`
name: carts
metrics: true
log_level: debug
channels:
  orders:
    tracing: true
`)

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "carts", cfg.String("name", ""))
	assert.True(t, cfg.Bool("metrics", false))
	assert.Equal(t, slog.LevelDebug, cfg.Level("log_level", slog.LevelInfo))
	assert.True(t, cfg.Section("channels").Section("orders").Bool("tracing", false))
}

func TestFromYAML_Invalid(t *testing.T) {
	_, err := config.FromYAML([]byte("name: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml")
}

func TestFromJSON(t *testing.T) {
	cfg, err := config.FromJSON([]byte(`{"name": "orders", "tracing": true}`))
	require.NoError(t, err)

	assert.Equal(t, "orders", cfg.String("name", ""))
	assert.True(t, cfg.Bool("tracing", false))
}

func TestFromJSON_Invalid(t *testing.T) {
	_, err := config.FromJSON([]byte(`{"name":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse json")
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "channel.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: from-yaml\n"), 0o600))

		cfg, err := config.FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "from-yaml", cfg.String("name", ""))
	})

	t.Run("yml", func(t *testing.T) {
		path := filepath.Join(dir, "channel.yml")
		require.NoError(t, os.WriteFile(path, []byte("metrics: true\n"), 0o600))

		cfg, err := config.FromFile(path)
		require.NoError(t, err)
		assert.True(t, cfg.Bool("metrics", false))
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "channel.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"name":"from-json"}`), 0o600))

		cfg, err := config.FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "from-json", cfg.String("name", ""))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := config.FromFile(filepath.Join(dir, "channel.toml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrUnsupportedFormat))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.FromFile(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}
