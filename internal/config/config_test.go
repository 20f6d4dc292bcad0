package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PATHSENSE_DB", "")
	t.Setenv("PATHSENSE_USER", "")
	t.Setenv("PATHSENSE_LOG_USE_CASES", "")
	t.Setenv("PATHSENSE_COLOR", "")
	t.Setenv("USER", "ada")

	cfg := LoadConfig()

	assert.Equal(t, filepath.Join(".pathsense", "pathsense.db"), lastTwo(cfg.DBPath))
	assert.Equal(t, "ada", cfg.User)
	assert.False(t, cfg.LogUseCases)
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestLoadConfig_UserFallsBackToLocal(t *testing.T) {
	t.Setenv("PATHSENSE_USER", "")
	t.Setenv("USER", "")

	assert.Equal(t, "local", LoadConfig().User)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PATHSENSE_DB", "/tmp/ps.db")
	t.Setenv("PATHSENSE_USER", "grace")
	t.Setenv("PATHSENSE_LOG_USE_CASES", "true")
	t.Setenv("PATHSENSE_COLOR", "Never")

	cfg := LoadConfig()

	assert.Equal(t, "/tmp/ps.db", cfg.DBPath)
	assert.Equal(t, "grace", cfg.User)
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, ColorNever, cfg.Color)
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("PATHSENSE_LOG_USE_CASES", "sometimes")
	t.Setenv("PATHSENSE_COLOR", "rainbow")

	cfg := LoadConfig()

	assert.False(t, cfg.LogUseCases)
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestUseColor(t *testing.T) {
	tests := []struct {
		mode     ColorMode
		terminal bool
		want     bool
	}{
		{ColorAuto, true, true},
		{ColorAuto, false, false},
		{ColorAlways, false, true},
		{ColorNever, true, false},
	}
	for _, tt := range tests {
		cfg := Config{Color: tt.mode}
		assert.Equal(t, tt.want, cfg.UseColor(tt.terminal), "%s terminal=%v", tt.mode, tt.terminal)
	}
}

func lastTwo(p string) string {
	return filepath.Join(filepath.Base(filepath.Dir(p)), filepath.Base(p))
}
