package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceName != "matchday-api" {
		t.Fatalf("unexpected ServiceName: %q", cfg.ServiceName)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("unexpected StorageDriver: %q", cfg.StorageDriver)
	}
	if cfg.CacheBackend != CacheBackendMemory || !cfg.CacheEnabled {
		t.Fatalf("unexpected cache config: enabled=%t backend=%q", cfg.CacheEnabled, cfg.CacheBackend)
	}
	if cfg.AdminRole != "admin" {
		t.Fatalf("unexpected AdminRole: %q", cfg.AdminRole)
	}
	if cfg.ClockTickInterval != time.Second {
		t.Fatalf("unexpected ClockTickInterval: %s", cfg.ClockTickInterval)
	}
	if cfg.ClockReconcileInterval != 30*time.Second {
		t.Fatalf("unexpected ClockReconcileInterval: %s", cfg.ClockReconcileInterval)
	}
	if cfg.ClockMaxTickers != 256 {
		t.Fatalf("unexpected ClockMaxTickers: %d", cfg.ClockMaxTickers)
	}
	if !cfg.MetricsEnabled {
		t.Fatalf("expected MetricsEnabled=true by default")
	}
	if cfg.PyroscopeAppName != "matchday-api" {
		t.Fatalf("unexpected PyroscopeAppName: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-other=1, uptrace-dsn='https://token@api.uptrace.dev?grpc=4317'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_BetterStackRequiresEndpointWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("BETTERSTACK_ENABLED", "true")
	t.Setenv("BETTERSTACK_ENDPOINT", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when BETTERSTACK_ENABLED=true without BETTERSTACK_ENDPOINT")
	}
}

func TestLoad_BetterStackConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("BETTERSTACK_ENABLED", "true")
	t.Setenv("BETTERSTACK_ENDPOINT", "in.logs.betterstack.com")
	t.Setenv("BETTERSTACK_TOKEN", "token-123")
	t.Setenv("BETTERSTACK_TIMEOUT", "4s")
	t.Setenv("BETTERSTACK_MIN_LEVEL", "error")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BetterStackEndpoint != "in.logs.betterstack.com" {
		t.Fatalf("unexpected BetterStackEndpoint: %q", cfg.BetterStackEndpoint)
	}
	if cfg.BetterStackTimeout != 4*time.Second {
		t.Fatalf("unexpected BetterStackTimeout: %s", cfg.BetterStackTimeout)
	}
	if cfg.BetterStackMinLevel.String() != "error" {
		t.Fatalf("unexpected BetterStackMinLevel: %s", cfg.BetterStackMinLevel.String())
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected swagger disabled in prod")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected swagger enabled in dev")
		}
	})

	t.Run("explicit override wins", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("SWAGGER_ENABLED", "true")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected swagger enabled by override")
		}
	})
}

func TestLoad_StorageDriver(t *testing.T) {
	t.Run("postgres requires db url", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("STORAGE_DRIVER", "postgres")
		t.Setenv("DB_URL", "")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error when STORAGE_DRIVER=postgres without DB_URL")
		}
	})

	t.Run("postgres with db url", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("STORAGE_DRIVER", "Postgres")
		t.Setenv("DB_URL", "postgres://localhost:5432/matchday?sslmode=disable")
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "true")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StorageDriver != StoragePostgres {
			t.Fatalf("unexpected StorageDriver: %q", cfg.StorageDriver)
		}
		if !cfg.DBDisablePreparedBinary {
			t.Fatalf("expected DBDisablePreparedBinary=true")
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("STORAGE_DRIVER", "sqlite")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown STORAGE_DRIVER")
		}
	})
}

func TestLoad_Cache(t *testing.T) {
	t.Run("redis requires url", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("CACHE_BACKEND", "redis")
		t.Setenv("REDIS_URL", "")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error when CACHE_BACKEND=redis without REDIS_URL")
		}
	})

	t.Run("redis ignored when cache disabled", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("CACHE_ENABLED", "false")
		t.Setenv("CACHE_BACKEND", "redis")
		t.Setenv("REDIS_URL", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.CacheEnabled {
			t.Fatalf("expected CacheEnabled=false")
		}
	})

	t.Run("ttl must be positive", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("CACHE_TTL", "0s")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error for CACHE_TTL=0s")
		}
	})
}

func TestLoad_Clock(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CLOCK_TICK_INTERVAL", "500ms")
	t.Setenv("CLOCK_RECONCILE_INTERVAL", "1m")
	t.Setenv("CLOCK_MAX_TICKERS", "32")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ClockTickInterval != 500*time.Millisecond {
		t.Fatalf("unexpected ClockTickInterval: %s", cfg.ClockTickInterval)
	}
	if cfg.ClockReconcileInterval != time.Minute {
		t.Fatalf("unexpected ClockReconcileInterval: %s", cfg.ClockReconcileInterval)
	}
	if cfg.ClockMaxTickers != 32 {
		t.Fatalf("unexpected ClockMaxTickers: %d", cfg.ClockMaxTickers)
	}

	t.Setenv("CLOCK_MAX_TICKERS", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for CLOCK_MAX_TICKERS=0")
	}
}

func TestLoad_CORSAllowedOrigins(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://matchday.example.com, ,http://localhost:3000 ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.CORSAllowedOrigins[0] != "https://matchday.example.com" || cfg.CORSAllowedOrigins[1] != "http://localhost:3000" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_Pyroscope(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://pyroscope:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "matchday-api-stage")
	t.Setenv("PYROSCOPE_UPLOAD_RATE", "10s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.PyroscopeEnabled {
		t.Fatalf("expected PyroscopeEnabled=true")
	}
	if cfg.PyroscopeServerAddress != "http://pyroscope:4040" {
		t.Fatalf("unexpected PyroscopeServerAddress: %q", cfg.PyroscopeServerAddress)
	}
	if cfg.PyroscopeAppName != "matchday-api-stage" {
		t.Fatalf("unexpected PyroscopeAppName: %q", cfg.PyroscopeAppName)
	}
	if cfg.PyroscopeUploadRate != 10*time.Second {
		t.Fatalf("unexpected PyroscopeUploadRate: %s", cfg.PyroscopeUploadRate)
	}
}

func TestLoad_InvalidBool(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PPROF_ENABLED", "maybe")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid PPROF_ENABLED")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("MATCHDAY_DOTENV_PROBE=from-file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("MATCHDAY_DOTENV_PROBE", "")
	os.Unsetenv("MATCHDAY_DOTENV_PROBE")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := os.Getenv("MATCHDAY_DOTENV_PROBE"); got != "from-file" {
		t.Fatalf("unexpected value: %q", got)
	}
}
