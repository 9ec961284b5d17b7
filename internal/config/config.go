package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/riskibarqy/matchday/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                      string
	ServiceName                 string
	ServiceVersion              string
	HTTPAddr                    string
	ReadTimeout                 time.Duration
	WriteTimeout                time.Duration
	LogLevel                    logging.Level
	StorageDriver               string
	DBURL                       string
	DBDisablePreparedBinary     bool
	SeedFile                    string
	CacheEnabled                bool
	CacheBackend                string
	CacheTTL                    time.Duration
	RedisURL                    string
	CORSAllowedOrigins          []string
	SwaggerEnabled              bool
	AnubisBaseURL               string
	AnubisIntrospectPath        string
	AnubisAdminKey              string
	AnubisTimeout               time.Duration
	AnubisTokenCacheTTL         time.Duration
	AnubisCircuitEnabled        bool
	AnubisCircuitFailureCount   int
	AnubisCircuitOpenTimeout    time.Duration
	AnubisCircuitHalfOpenMaxReq int
	AdminRole                   string
	ClockTickInterval           time.Duration
	ClockReconcileInterval      time.Duration
	ClockMaxTickers             int
	MetricsEnabled              bool
	PprofEnabled                bool
	PprofAddr                   string
	UptraceEnabled              bool
	UptraceDSN                  string
	UptraceLogsEnabled          bool
	BetterStackEnabled          bool
	BetterStackEndpoint         string
	BetterStackToken            string
	BetterStackTimeout          time.Duration
	BetterStackMinLevel         logging.Level
	PyroscopeEnabled            bool
	PyroscopeServerAddress      string
	PyroscopeAppName            string
	PyroscopeAuthToken          string
	PyroscopeBasicAuthUser      string
	PyroscopeBasicAuthPassword  string
	PyroscopeUploadRate         time.Duration
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// LoadDotEnv fills unset variables from the given files. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", path, err)
		}
	}

	return nil
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:               appEnv,
		ServiceName:          getEnv("APP_SERVICE_NAME", "matchday-api"),
		ServiceVersion:       getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:             getEnv("APP_HTTP_ADDR", ":8080"),
		LogLevel:             parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		DBURL:                strings.TrimSpace(os.Getenv("DB_URL")),
		SeedFile:             strings.TrimSpace(os.Getenv("SEED_FILE")),
		RedisURL:             strings.TrimSpace(os.Getenv("REDIS_URL")),
		CORSAllowedOrigins:   splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		AnubisBaseURL:        strings.TrimSpace(os.Getenv("ANUBIS_BASE_URL")),
		AnubisIntrospectPath: getEnv("ANUBIS_INTROSPECT_PATH", "/v1/auth/introspect"),
		AnubisAdminKey:       strings.TrimSpace(os.Getenv("ANUBIS_ADMIN_KEY")),
		AdminRole:            strings.TrimSpace(getEnv("ADMIN_ROLE", "admin")),
		PprofAddr:            getEnv("PPROF_ADDR", ":6060"),
		UptraceDSN:           strings.TrimSpace(os.Getenv("UPTRACE_DSN")),
		BetterStackEndpoint:  strings.TrimSpace(os.Getenv("BETTERSTACK_ENDPOINT")),
		BetterStackToken:     strings.TrimSpace(os.Getenv("BETTERSTACK_TOKEN")),
		BetterStackMinLevel:  parseLogLevel(getEnv("BETTERSTACK_MIN_LEVEL", "warn")),
	}
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"))
	}

	cfg.StorageDriver, err = parseChoice("STORAGE_DRIVER", getEnv("STORAGE_DRIVER", StorageMemory), StorageMemory, StoragePostgres)
	if err != nil {
		return Config{}, err
	}
	if cfg.StorageDriver == StoragePostgres && cfg.DBURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when STORAGE_DRIVER=%s", StoragePostgres)
	}
	cfg.CacheBackend, err = parseChoice("CACHE_BACKEND", getEnv("CACHE_BACKEND", CacheBackendMemory), CacheBackendMemory, CacheBackendRedis)
	if err != nil {
		return Config{}, err
	}

	bools := []struct {
		key      string
		fallback bool
		dst      *bool
	}{
		{"DB_DISABLE_PREPARED_BINARY_RESULT", false, &cfg.DBDisablePreparedBinary},
		{"CACHE_ENABLED", true, &cfg.CacheEnabled},
		{"SWAGGER_ENABLED", appEnv != EnvProd, &cfg.SwaggerEnabled},
		{"ANUBIS_CIRCUIT_ENABLED", true, &cfg.AnubisCircuitEnabled},
		{"METRICS_ENABLED", true, &cfg.MetricsEnabled},
		{"PPROF_ENABLED", false, &cfg.PprofEnabled},
		{"UPTRACE_ENABLED", false, &cfg.UptraceEnabled},
		{"UPTRACE_LOGS_ENABLED", false, &cfg.UptraceLogsEnabled},
		{"BETTERSTACK_ENABLED", false, &cfg.BetterStackEnabled},
		{"PYROSCOPE_ENABLED", false, &cfg.PyroscopeEnabled},
	}
	for _, item := range bools {
		value, err := getEnvAsBool(item.key, item.fallback)
		if err != nil {
			return Config{}, err
		}
		*item.dst = value
	}

	durations := []struct {
		key      string
		fallback time.Duration
		dst      *time.Duration
	}{
		{"APP_READ_TIMEOUT", 10 * time.Second, &cfg.ReadTimeout},
		{"APP_WRITE_TIMEOUT", 15 * time.Second, &cfg.WriteTimeout},
		{"CACHE_TTL", 30 * time.Second, &cfg.CacheTTL},
		{"ANUBIS_TIMEOUT", 5 * time.Second, &cfg.AnubisTimeout},
		{"ANUBIS_TOKEN_CACHE_TTL", 30 * time.Second, &cfg.AnubisTokenCacheTTL},
		{"ANUBIS_CIRCUIT_OPEN_TIMEOUT", 15 * time.Second, &cfg.AnubisCircuitOpenTimeout},
		{"CLOCK_TICK_INTERVAL", time.Second, &cfg.ClockTickInterval},
		{"CLOCK_RECONCILE_INTERVAL", 30 * time.Second, &cfg.ClockReconcileInterval},
		{"BETTERSTACK_TIMEOUT", 3 * time.Second, &cfg.BetterStackTimeout},
		{"PYROSCOPE_UPLOAD_RATE", 15 * time.Second, &cfg.PyroscopeUploadRate},
	}
	for _, item := range durations {
		value, err := getEnvAsDuration(item.key, item.fallback)
		if err != nil {
			return Config{}, err
		}
		*item.dst = value
	}

	ints := []struct {
		key      string
		fallback int
		dst      *int
	}{
		{"ANUBIS_CIRCUIT_FAILURE_COUNT", 5, &cfg.AnubisCircuitFailureCount},
		{"ANUBIS_CIRCUIT_HALF_OPEN_MAX_REQ", 2, &cfg.AnubisCircuitHalfOpenMaxReq},
		{"CLOCK_MAX_TICKERS", 256, &cfg.ClockMaxTickers},
	}
	for _, item := range ints {
		value, err := getEnvAsInt(item.key, item.fallback)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", item.key, err)
		}
		if value <= 0 {
			return Config{}, fmt.Errorf("%s must be > 0", item.key)
		}
		*item.dst = value
	}

	if cfg.CacheEnabled && cfg.CacheBackend == CacheBackendRedis && cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("REDIS_URL is required when CACHE_BACKEND=%s", CacheBackendRedis)
	}
	if cfg.AdminRole == "" {
		return Config{}, fmt.Errorf("ADMIN_ROLE cannot be empty")
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if cfg.BetterStackEnabled && cfg.BetterStackEndpoint == "" {
		return Config{}, fmt.Errorf("BETTERSTACK_ENDPOINT is required when BETTERSTACK_ENABLED=true")
	}

	cfg.PyroscopeServerAddress = getEnv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	cfg.PyroscopeAppName = getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName)
	cfg.PyroscopeAuthToken = strings.TrimSpace(os.Getenv("PYROSCOPE_AUTH_TOKEN"))
	cfg.PyroscopeBasicAuthUser = strings.TrimSpace(os.Getenv("PYROSCOPE_BASIC_AUTH_USER"))
	cfg.PyroscopeBasicAuthPassword = strings.TrimSpace(os.Getenv("PYROSCOPE_BASIC_AUTH_PASSWORD"))

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}

	return out, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseChoice(key, v string, allowed ...string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	for _, item := range allowed {
		if value == item {
			return value, nil
		}
	}

	return "", fmt.Errorf("invalid %s %q: valid values are %s", key, v, strings.Join(allowed, ", "))
}
