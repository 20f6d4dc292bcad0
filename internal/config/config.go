package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ColorMode controls styled terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds process-wide settings for the pathsense binary.
type Config struct {
	DBPath      string
	User        string
	LogUseCases bool
	Color       ColorMode
}

// DefaultConfig returns a Config with sensible defaults. The database lives
// under ~/.pathsense and the learner defaults to the login name.
func DefaultConfig() Config {
	return Config{
		DBPath:      defaultDBPath(),
		User:        defaultUser(),
		LogUseCases: false,
		Color:       ColorAuto,
	}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := strings.TrimSpace(os.Getenv("PATHSENSE_DB")); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("PATHSENSE_USER")); v != "" {
		cfg.User = v
	}
	if v := os.Getenv("PATHSENSE_LOG_USE_CASES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}
	if v := os.Getenv("PATHSENSE_COLOR"); v != "" {
		if mode, ok := ParseColorMode(v); ok {
			cfg.Color = mode
		}
	}

	return cfg
}

// ParseColorMode accepts auto, always and never, case-insensitively.
func ParseColorMode(s string) (ColorMode, bool) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, true
	}
	return "", false
}

// UseColor resolves the mode against whether output is a terminal.
func (c Config) UseColor(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return isTerminal
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".pathsense", "pathsense.db")
	}
	return filepath.Join(home, ".pathsense", "pathsense.db")
}

func defaultUser() string {
	if u := strings.TrimSpace(os.Getenv("USER")); u != "" {
		return u
	}
	return "local"
}
