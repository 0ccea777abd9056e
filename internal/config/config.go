package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// OpenWeatherAPIKey authenticates outbound provider calls. Required.
	OpenWeatherAPIKey string

	// ProviderTimeout bounds every outbound provider call.
	ProviderTimeout time.Duration

	// StaticDir is where the landing page and assets are served from.
	StaticDir string

	// ProbeInterval controls how often provider reachability is checked.
	ProbeInterval time.Duration

	// ProbeLat/ProbeLon are the reference coordinates for the probe.
	ProbeLat float64
	ProbeLon float64

	Port string
}

// Load reads configuration from environment with sensible defaults.
// It fails when the provider API key is absent so the process can exit
// at startup instead of failing on the first request.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	if cfg.OpenWeatherAPIKey == "" {
		return nil, fmt.Errorf("OPENWEATHER_API_KEY is required")
	}

	timeoutStr := getenvDefault("PROVIDER_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PROVIDER_TIMEOUT: %w", err)
	}
	cfg.ProviderTimeout = timeout

	intervalStr := getenvDefault("PROBE_INTERVAL", "15m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PROBE_INTERVAL: %w", err)
	}
	cfg.ProbeInterval = interval

	// Central London by default; the probe only checks reachability, the
	// coordinates carry no meaning beyond being valid.
	cfg.ProbeLat, err = getenvFloat("PROBE_LAT", 51.5074)
	if err != nil {
		return nil, err
	}
	cfg.ProbeLon, err = getenvFloat("PROBE_LON", -0.1278)
	if err != nil {
		return nil, err
	}

	cfg.StaticDir = getenvDefault("STATIC_DIR", "./static")
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
