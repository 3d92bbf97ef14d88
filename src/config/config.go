package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"desktop-automate/src/geometry"
)

const (
	DefaultHotkey     = "Ctrl+Alt+H"
	DefaultThickness  = 2
	DefaultDurationMS = 500
	EnvPathVar        = "DESKTOP_AUTOMATE"
)

type Config struct {
	OutlineColor      geometry.Color
	OutlineThickness  int32
	OutlineDurationMS int
	TypeDelayMS       int
	Hotkey            string
	EnableFileLogging bool
}

// Load reads configuration from sources in priority order:
// 1) .env in the executable's directory
// 2) a file named by the DESKTOP_AUTOMATE env var
// 3) the process environment
func Load() (*Config, error) {
	if envPath := resolveEnvPath(); envPath != "" {
		_ = godotenv.Load(envPath)
	}

	cfg := &Config{
		OutlineColor:      resolveColor(),
		OutlineThickness:  int32(getEnvInt("OUTLINE_THICKNESS", DefaultThickness)),
		OutlineDurationMS: getEnvInt("OUTLINE_DURATION_MS", DefaultDurationMS),
		TypeDelayMS:       getEnvInt("TYPE_DELAY_MS", 0),
		Hotkey:            getEnvWithDefault("HOTKEY", DefaultHotkey),
		EnableFileLogging: strings.ToLower(os.Getenv("ENABLE_FILE_LOGGING")) == "true",
	}

	return cfg, nil
}

func resolveEnvPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}

	exeEnv := filepath.Join(filepath.Dir(execPath), ".env")
	if _, err := os.Stat(exeEnv); err == nil {
		return exeEnv
	}

	if alt := os.Getenv(EnvPathVar); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return ""
}

func resolveColor() geometry.Color {
	if v := os.Getenv("OUTLINE_COLOR"); v != "" {
		if c, err := geometry.ParseColor(v); err == nil {
			return c
		}
	}
	return geometry.Red
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
