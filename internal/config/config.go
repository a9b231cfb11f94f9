// Package config loads host-side driver settings — the ones that are not
// part of the wire protocol itself — from an optional .env file in the
// project root, overridable by environment variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds settings for locating and talking to a device, plus where
// pulled files land on disk.
type Config struct {
	VendorID    uint16
	ProductID   uint16
	Timeout     time.Duration
	DownloadDir string
	LogVerbose  bool
}

var (
	loaded   *Config
	isLoaded bool
)

// defaults mirror the values observed across the product family: the
// generic TomTom vendor id, an unset product id (probed at connect time via
// GetProductId rather than matched up front), and the codec-level timeout
// noted in the transaction engine's design.
func defaults() Config {
	return Config{
		VendorID:    0x1390,
		ProductID:   0x0000,
		Timeout:     2 * time.Second,
		DownloadDir: "./downloads",
		LogVerbose:  false,
	}
}

// Load reads .env (if present) from the project root, then applies
// environment-variable overrides, caching the result for subsequent calls.
func Load() (*Config, error) {
	if isLoaded {
		return loaded, nil
	}

	cfg := defaults()

	envPath := filepath.Join(findProjectRoot(), ".env")
	if data, err := os.ReadFile(envPath); err == nil {
		parseEnvFile(string(data), &cfg)
	}
	applyEnvOverrides(&cfg)

	loaded = &cfg
	isLoaded = true
	return loaded, nil
}

func parseEnvFile(content string, cfg *Config) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		applyField(cfg, strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	}
}

func applyEnvOverrides(cfg *Config) {
	for _, key := range []string{"WRISTSYNC_VENDOR_ID", "WRISTSYNC_PRODUCT_ID", "WRISTSYNC_TIMEOUT_MS", "WRISTSYNC_DOWNLOAD_DIR", "WRISTSYNC_VERBOSE"} {
		if v := os.Getenv(key); v != "" {
			applyField(cfg, key, v)
		}
	}
}

func applyField(cfg *Config, key, value string) {
	switch key {
	case "WRISTSYNC_VENDOR_ID":
		if n, err := strconv.ParseUint(value, 0, 16); err == nil {
			cfg.VendorID = uint16(n)
		}
	case "WRISTSYNC_PRODUCT_ID":
		if n, err := strconv.ParseUint(value, 0, 16); err == nil {
			cfg.ProductID = uint16(n)
		}
	case "WRISTSYNC_TIMEOUT_MS":
		if n, err := strconv.Atoi(value); err == nil {
			cfg.Timeout = time.Duration(n) * time.Millisecond
		}
	case "WRISTSYNC_DOWNLOAD_DIR":
		cfg.DownloadDir = value
	case "WRISTSYNC_VERBOSE":
		cfg.LogVerbose = value == "1" || strings.EqualFold(value, "true")
	}
}

func findProjectRoot() string {
	cwd, _ := os.Getwd()
	if _, err := os.Stat(filepath.Join(cwd, ".env")); err == nil {
		return cwd
	}
	for {
		if _, err := os.Stat(filepath.Join(cwd, "go.mod")); err == nil {
			return cwd
		}
		parent := filepath.Dir(cwd)
		if parent == cwd {
			return cwd
		}
		cwd = parent
	}
}

// MustLoad loads the configuration and panics if Load returns an error. No
// field is checked as required: every field falls back to its default, so
// a missing setting does not cause a panic.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic("wristsync: failed to load configuration: " + err.Error())
	}
	return *cfg
}
