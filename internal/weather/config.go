package weather

import (
	"os"
	"strconv"
)

// Config holds the weather-fetch settings.
type Config struct {
	Enabled   bool
	Endpoint  string
	TimeoutMs int
}

// DefaultConfig returns weather configuration defaults. Fetching is disabled
// by default; without it generation assumes suitable current conditions.
func DefaultConfig() Config {
	return Config{
		Enabled:   false,
		Endpoint:  "https://aviationweather.gov/api/data/metar",
		TimeoutMs: 5000,
	}
}

// LoadConfig reads weather configuration from environment variables, falling
// back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("SKYWARD_WX_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = b
		}
	}
	if v := os.Getenv("SKYWARD_WX_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("SKYWARD_WX_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	return cfg
}
