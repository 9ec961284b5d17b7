package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/matchday/internal/config"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:                 config.EnvDev,
		ServiceName:            "matchday-api",
		HTTPAddr:               ":0",
		StorageDriver:          config.StorageMemory,
		CacheEnabled:           true,
		CacheBackend:           config.CacheBackendMemory,
		CacheTTL:               time.Minute,
		CORSAllowedOrigins:     []string{"*"},
		AdminRole:              "admin",
		AnubisTimeout:          time.Second,
		ClockTickInterval:      time.Second,
		ClockReconcileInterval: time.Minute,
		ClockMaxTickers:        8,
		MetricsEnabled:         true,
	}
}

func newTestApp(t *testing.T, cfg config.Config) *App {
	t.Helper()

	a, err := New(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, a.Close(context.Background()))
	})
	return a
}

func get(t *testing.T, handler http.Handler, path string) (int, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return rec.Code, string(body)
}

func TestNew_MemoryStorageServesSeed(t *testing.T) {
	a := newTestApp(t, memoryConfig())
	a.Start()

	status, body := get(t, a.Server.Handler, "/v1/leagues")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, "Ethiopian Premier League")

	status, body = get(t, a.Server.Handler, "/v1/ads?page=home&sizeType=inline")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, `"sizeType":"full"`)

	status, body = get(t, a.Server.Handler, "/metrics")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, "matchday_http_requests_total")
	require.Contains(t, body, "matchday_ads_creatives_served_total")
	require.Contains(t, body, "matchday_clock_active_tickers")
}

func TestNew_MetricsDisabled(t *testing.T) {
	cfg := memoryConfig()
	cfg.MetricsEnabled = false
	cfg.CacheEnabled = false
	a := newTestApp(t, cfg)

	status, _ := get(t, a.Server.Handler, "/metrics")
	require.Equal(t, http.StatusNotFound, status)

	status, _ = get(t, a.Server.Handler, "/healthz")
	require.Equal(t, http.StatusOK, status)
}

func TestNew_SeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	seed := strings.Join([]string{
		"leagues:",
		"  - id: test-league",
		"    name: Test League",
		"    country_code: ET",
		"    season: \"2025-26\"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	cfg := memoryConfig()
	cfg.SeedFile = path
	a := newTestApp(t, cfg)

	status, body := get(t, a.Server.Handler, "/v1/leagues")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, "Test League")
	require.NotContains(t, body, "Ethiopian Premier League")
}

func TestNew_Validation(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = ""
	_, err := New(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)

	cfg = memoryConfig()
	cfg.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = New(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}
