package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Host               string
	Port               string
	RequestTimeout     time.Duration
	ImageFetchTimeout  time.Duration
	MaxRequestBodySize int64

	// Cascade model files. FaceCascadeFile and EyeCascadeFile default to
	// the standard OpenCV Haar model names under CascadePath.
	CascadePath     string
	FaceCascadeFile string
	EyeCascadeFile  string

	// InterpupillaryMM is the physical calibration constant.
	InterpupillaryMM float64

	// QualityChecks toggles the capture quality diagnostics attached to
	// successful responses.
	QualityChecks bool
}

func (c *Config) ServerAddress() string {
	// Trim any whitespace from host and port
	host := strings.TrimSpace(c.Host)
	port := strings.TrimSpace(c.Port)
	return net.JoinHostPort(host, port)
}

func LoadFromEnv() (*Config, error) {
	// Set defaults
	cfg := &Config{
		Host:               getEnvOrDefault("HOST", "0.0.0.0"),
		Port:               getEnvOrDefault("PORT", "8080"),
		RequestTimeout:     parseDurationOrDefault("REQUEST_TIMEOUT", 30*time.Second),
		ImageFetchTimeout:  parseDurationOrDefault("IMAGE_FETCH_TIMEOUT", 15*time.Second),
		MaxRequestBodySize: parseIntOrDefault("MAX_REQUEST_BODY_SIZE", 10*1024*1024), // 10MB
		CascadePath:        getEnvOrDefault("CASCADE_PATH", "./models/haarcascades"),
		InterpupillaryMM:   parseFloatOrDefault("INTERPUPILLARY_MM", 63),
		QualityChecks:      parseBoolOrDefault("QUALITY_CHECKS", true),
	}
	cfg.FaceCascadeFile = getEnvOrDefault("FACE_CASCADE_FILE",
		filepath.Join(cfg.CascadePath, "haarcascade_frontalface_default.xml"))
	cfg.EyeCascadeFile = getEnvOrDefault("EYE_CASCADE_FILE",
		filepath.Join(cfg.CascadePath, "haarcascade_eye.xml"))

	// Validate port is numeric and in range
	p, err := strconv.Atoi(strings.TrimSpace(cfg.Port))
	if err != nil || p < 1 || p > 65535 {
		return nil, fmt.Errorf("invalid PORT: %q", cfg.Port)
	}
	if cfg.MaxRequestBodySize <= 0 {
		return nil, fmt.Errorf("MAX_REQUEST_BODY_SIZE must be > 0 (got %d)", cfg.MaxRequestBodySize)
	}
	if cfg.RequestTimeout <= 0 || cfg.ImageFetchTimeout <= 0 {
		return nil, fmt.Errorf("timeouts must be > 0 (got request=%s, fetch=%s)",
			cfg.RequestTimeout, cfg.ImageFetchTimeout)
	}
	if cfg.InterpupillaryMM <= 0 {
		return nil, fmt.Errorf("INTERPUPILLARY_MM must be > 0 (got %f)", cfg.InterpupillaryMM)
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && duration > 0 {
			return duration
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func parseBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
