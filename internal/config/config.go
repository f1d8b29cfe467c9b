package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env                string
	ListenAddr         string
	DatabaseURL        string
	LogLevel           string
	ScanWorkers        int
	ScanQueueSize      int
	ClassifyTimeout    time.Duration
	HistoryRetention   int
	MemoryArtifacts    int
	MaxSessions        int
	FallbackConfidence float64
	RulesPath          string
	ClassifierURL      string
	SimulatedDelay     time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads the environment. The returned config is always usable; a
// non-nil error lists the variables that were malformed and fell back to
// their defaults.
func Load() (Config, error) {
	var errs []error
	cfg := Config{
		Env:              getenv("APP_ENV", "development"),
		ListenAddr:       getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		LogLevel:         os.Getenv("LOG_LEVEL"),
		ScanWorkers:      getenvInt("SCAN_WORKERS", 4, &errs),
		ScanQueueSize:    getenvInt("SCAN_QUEUE_SIZE", 64, &errs),
		ClassifyTimeout:  getenvDuration("CLASSIFY_TIMEOUT", 10*time.Second, &errs),
		HistoryRetention: getenvInt("HISTORY_RETENTION", 50, &errs),
		MemoryArtifacts:  getenvInt("MEMORY_ARTIFACTS", 1024, &errs),
		MaxSessions:      getenvInt("MAX_SESSIONS", 256, &errs),
		RulesPath:        os.Getenv("RULES_PATH"),
		ClassifierURL:    os.Getenv("CLASSIFIER_URL"),
		SimulatedDelay:   getenvDuration("SIMULATED_DELAY", 2*time.Second, &errs),
	}
	cfg.FallbackConfidence = getenvFloat("FALLBACK_CONFIDENCE", 40, &errs)
	if cfg.FallbackConfidence < 0 || cfg.FallbackConfidence > 100 {
		errs = append(errs, fmt.Errorf("FALLBACK_CONFIDENCE %v out of range [0,100]", cfg.FallbackConfidence))
		cfg.FallbackConfidence = 40
	}
	return cfg, errors.Join(errs...)
}

func getenvInt(key string, def int, errs *[]error) int {
	if v := os.Getenv(key); v != "" {
		out, err := strconv.Atoi(v)
		if err == nil && out > 0 {
			return out
		}
		*errs = append(*errs, fmt.Errorf("%s=%q: want a positive integer", key, v))
	}
	return def
}

func getenvFloat(key string, def float64, errs *[]error) float64 {
	if v := os.Getenv(key); v != "" {
		out, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return out
		}
		*errs = append(*errs, fmt.Errorf("%s=%q: %w", key, v, err))
	}
	return def
}

func getenvDuration(key string, def time.Duration, errs *[]error) time.Duration {
	if v := os.Getenv(key); v != "" {
		out, err := time.ParseDuration(v)
		if err == nil && out >= 0 {
			return out
		}
		*errs = append(*errs, fmt.Errorf("%s=%q: want a duration like 2s", key, v))
	}
	return def
}
