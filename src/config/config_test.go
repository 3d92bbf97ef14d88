package config

import (
	"os"
	"testing"

	"desktop-automate/src/geometry"
)

func TestLoad(t *testing.T) {
	os.Setenv("OUTLINE_COLOR", "0,255,0")
	os.Setenv("OUTLINE_THICKNESS", "4")
	os.Setenv("OUTLINE_DURATION_MS", "750")
	os.Setenv("TYPE_DELAY_MS", "15")
	os.Setenv("HOTKEY", "Ctrl+Shift+O")
	os.Setenv("ENABLE_FILE_LOGGING", "true")

	defer func() {
		os.Unsetenv("OUTLINE_COLOR")
		os.Unsetenv("OUTLINE_THICKNESS")
		os.Unsetenv("OUTLINE_DURATION_MS")
		os.Unsetenv("TYPE_DELAY_MS")
		os.Unsetenv("HOTKEY")
		os.Unsetenv("ENABLE_FILE_LOGGING")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.OutlineColor != geometry.Green {
		t.Errorf("Expected OutlineColor green, got %#x", uint32(cfg.OutlineColor))
	}
	if cfg.OutlineThickness != 4 {
		t.Errorf("Expected OutlineThickness 4, got %d", cfg.OutlineThickness)
	}
	if cfg.OutlineDurationMS != 750 {
		t.Errorf("Expected OutlineDurationMS 750, got %d", cfg.OutlineDurationMS)
	}
	if cfg.TypeDelayMS != 15 {
		t.Errorf("Expected TypeDelayMS 15, got %d", cfg.TypeDelayMS)
	}
	if cfg.Hotkey != "Ctrl+Shift+O" {
		t.Errorf("Expected Hotkey 'Ctrl+Shift+O', got %q", cfg.Hotkey)
	}
	if !cfg.EnableFileLogging {
		t.Error("Expected EnableFileLogging to be true")
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"OUTLINE_COLOR", "OUTLINE_THICKNESS", "OUTLINE_DURATION_MS",
		"TYPE_DELAY_MS", "HOTKEY", "ENABLE_FILE_LOGGING",
	} {
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.OutlineColor != geometry.Red {
		t.Errorf("Expected default red outline, got %#x", uint32(cfg.OutlineColor))
	}
	if cfg.OutlineThickness != DefaultThickness {
		t.Errorf("Expected default thickness %d, got %d", DefaultThickness, cfg.OutlineThickness)
	}
	if cfg.OutlineDurationMS != DefaultDurationMS {
		t.Errorf("Expected default duration %d, got %d", DefaultDurationMS, cfg.OutlineDurationMS)
	}
	if cfg.Hotkey != DefaultHotkey {
		t.Errorf("Expected default hotkey %q, got %q", DefaultHotkey, cfg.Hotkey)
	}
	if cfg.EnableFileLogging {
		t.Error("Expected EnableFileLogging to default to false")
	}
}

func TestLoadIgnoresInvalidColor(t *testing.T) {
	os.Setenv("OUTLINE_COLOR", "not-a-color")
	defer os.Unsetenv("OUTLINE_COLOR")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.OutlineColor != geometry.Red {
		t.Errorf("Invalid color should fall back to red, got %#x", uint32(cfg.OutlineColor))
	}
}
