package config

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"
)

// setEnv clears every config variable (t.Setenv registers the restore,
// the unset makes envconfig fall back to defaults) and applies the
// test's own values.
func setEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for _, key := range []string{
		"PORT", "MAP_KEY", "FIRMS_AREA_URL", "REGION",
		"BOUNDS_NORTH", "BOUNDS_SOUTH", "BOUNDS_WEST", "BOUNDS_EAST",
		"DEFAULT_DAYS", "FETCH_TIMEOUT", "ENVIRONMENT", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, map[string]string{"MAP_KEY": "test-key"})

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %q", cfg.Port)
	}
	if cfg.MapKey != "test-key" {
		t.Errorf("Expected map key 'test-key', got %q", cfg.MapKey)
	}
	if !strings.HasPrefix(cfg.FIRMSAreaURL, "https://firms.modaps.eosdis.nasa.gov") {
		t.Errorf("Unexpected default FIRMS URL %q", cfg.FIRMSAreaURL)
	}
	if cfg.DefaultDays != 2 {
		t.Errorf("Expected default days 2, got %d", cfg.DefaultDays)
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Errorf("Expected 30s fetch timeout, got %v", cfg.FetchTimeout)
	}

	// Default region is Biobío.
	if cfg.Bounds.North != -36.0 || cfg.Bounds.South != -38.5 ||
		cfg.Bounds.West != -73.5 || cfg.Bounds.East != -71.0 {
		t.Errorf("Unexpected default bounds: %+v", cfg.Bounds)
	}
}

func TestLoadMissingMapKeyStillStarts(t *testing.T) {
	setEnv(t, nil)

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Missing MAP_KEY must not fail startup, got %v", err)
	}
	if cfg.MapKey != "" {
		t.Errorf("Expected empty map key, got %q", cfg.MapKey)
	}
}

func TestLoadNamedRegion(t *testing.T) {
	setEnv(t, map[string]string{"REGION": "Ñuble"})

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Bounds.North != -35.9 {
		t.Errorf("Expected Ñuble bounds, got %+v", cfg.Bounds)
	}
	if !strings.Contains(cfg.RegionName, "Ñuble") {
		t.Errorf("Unexpected region name %q", cfg.RegionName)
	}
}

func TestLoadUnknownRegion(t *testing.T) {
	setEnv(t, map[string]string{"REGION": "atlantis"})

	if _, err := Load(context.Background()); err == nil {
		t.Fatal("Expected error for unknown region")
	}
}

func TestLoadBoundsOverride(t *testing.T) {
	setEnv(t, map[string]string{
		"BOUNDS_NORTH": "-33.0",
		"BOUNDS_SOUTH": "-34.5",
		"BOUNDS_WEST":  "-72.0",
		"BOUNDS_EAST":  "-70.0",
	})

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Bounds.North != -33.0 || cfg.Bounds.South != -34.5 {
		t.Errorf("Override not applied: %+v", cfg.Bounds)
	}
	if cfg.RegionName != "custom bounds" {
		t.Errorf("Unexpected region name %q", cfg.RegionName)
	}
}

func TestLoadPartialBoundsOverride(t *testing.T) {
	setEnv(t, map[string]string{"BOUNDS_NORTH": "-33.0"})

	if _, err := Load(context.Background()); err == nil {
		t.Fatal("Expected error for partial bounds override")
	}
}

func TestLoadInvertedBounds(t *testing.T) {
	setEnv(t, map[string]string{
		"BOUNDS_NORTH": "-34.5",
		"BOUNDS_SOUTH": "-33.0", // south above north
		"BOUNDS_WEST":  "-72.0",
		"BOUNDS_EAST":  "-70.0",
	})

	if _, err := Load(context.Background()); err == nil {
		t.Fatal("Expected error for inverted bounds")
	}
}
