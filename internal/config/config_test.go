package config

import (
	"testing"
	"time"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("Expected default request timeout 30s, got %s", cfg.RequestTimeout)
	}
	if cfg.InterpupillaryMM != 63 {
		t.Errorf("Expected default interpupillary distance 63mm, got %f", cfg.InterpupillaryMM)
	}
	if !cfg.QualityChecks {
		t.Error("Expected quality checks enabled by default")
	}
	if cfg.FaceCascadeFile == "" || cfg.EyeCascadeFile == "" {
		t.Error("Expected cascade file defaults to be derived from CASCADE_PATH")
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("INTERPUPILLARY_MM", "61.5")
	t.Setenv("QUALITY_CHECKS", "false")
	t.Setenv("FACE_CASCADE_FILE", "/opt/models/face.xml")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Port)
	}
	if cfg.InterpupillaryMM != 61.5 {
		t.Errorf("Expected interpupillary distance 61.5mm, got %f", cfg.InterpupillaryMM)
	}
	if cfg.QualityChecks {
		t.Error("Expected quality checks disabled")
	}
	if cfg.FaceCascadeFile != "/opt/models/face.xml" {
		t.Errorf("Expected overridden face cascade file, got %s", cfg.FaceCascadeFile)
	}
}

func TestLoadFromEnv_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	if _, err := LoadFromEnv(); err == nil {
		t.Error("Expected error for invalid port")
	}
}

func TestLoadFromEnv_InvalidInterpupillary(t *testing.T) {
	t.Setenv("INTERPUPILLARY_MM", "-5")

	if _, err := LoadFromEnv(); err == nil {
		t.Error("Expected error for non-positive interpupillary distance")
	}
}

func TestServerAddress(t *testing.T) {
	cfg := &Config{Host: " 127.0.0.1 ", Port: " 8080 "}
	if addr := cfg.ServerAddress(); addr != "127.0.0.1:8080" {
		t.Errorf("Expected 127.0.0.1:8080, got %s", addr)
	}
}
