package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "LISTEN_ADDR", "DATABASE_URL", "SCAN_WORKERS", "CLASSIFY_TIMEOUT", "FALLBACK_CONFIDENCE", "SIMULATED_DELAY", "MEMORY_ARTIFACTS"} {
		t.Setenv(k, "")
	}
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, 4, cfg.ScanWorkers)
	assert.Equal(t, 10*time.Second, cfg.ClassifyTimeout)
	assert.Equal(t, 50, cfg.HistoryRetention)
	assert.Equal(t, 1024, cfg.MemoryArtifacts)
	assert.InDelta(t, 40, cfg.FallbackConfidence, 0)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SCAN_WORKERS", "8")
	t.Setenv("CLASSIFY_TIMEOUT", "250ms")
	t.Setenv("FALLBACK_CONFIDENCE", "35.5")
	t.Setenv("CLASSIFIER_URL", "http://infer:9000/classify")
	t.Setenv("MEMORY_ARTIFACTS", "200")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 8, cfg.ScanWorkers)
	assert.Equal(t, 250*time.Millisecond, cfg.ClassifyTimeout)
	assert.InDelta(t, 35.5, cfg.FallbackConfidence, 0.001)
	assert.Equal(t, "http://infer:9000/classify", cfg.ClassifierURL)
	assert.Equal(t, 200, cfg.MemoryArtifacts)
}

func TestLoad_MalformedFallsBack(t *testing.T) {
	t.Setenv("SCAN_WORKERS", "many")
	t.Setenv("CLASSIFY_TIMEOUT", "soon")
	t.Setenv("FALLBACK_CONFIDENCE", "140")

	cfg, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SCAN_WORKERS")
	assert.Contains(t, err.Error(), "CLASSIFY_TIMEOUT")
	assert.Contains(t, err.Error(), "FALLBACK_CONFIDENCE")
	assert.Equal(t, 4, cfg.ScanWorkers)
	assert.Equal(t, 10*time.Second, cfg.ClassifyTimeout)
	assert.InDelta(t, 40, cfg.FallbackConfidence, 0)
}
