package app

import (
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/pahiram/internal/auth/apcis"
	"github.com/aussiebroadwan/pahiram/pkg/httpx"
	"github.com/joho/godotenv"
)

type Config struct {
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	DatabaseFile         string        // Path to SQLite database file (default: ./pahiram.db)
	APCISLoginURL        string        // APCIS login endpoint
	APCISTimeout         time.Duration // Outbound login timeout (default: 10s)
	APCISTimeLocation    string        // IANA zone of APCIS expires_at values (default: UTC)
	DefaultsFile         string        // Optional: YAML new-user defaults policy, embedded default otherwise
	MasterKeyPath        string        // Optional: key file sealing stored APCIS tokens
	RedisURL             string        // Optional: shared lookup cache
	LookupCacheTTL       time.Duration // Role and department cache TTL (default: 10m)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired token pruning interval (default: 1h)

	StrictLimit   httpx.RateLimitConfig // POST /login
	ModerateLimit httpx.RateLimitConfig // logout endpoints
	LenientLimit  httpx.RateLimitConfig // health probes
}

// LoadEnvFiles loads .env style files into the environment. Missing files
// are skipped and variables already set win.
func LoadEnvFiles(paths ...string) {
	for _, p := range paths {
		_ = godotenv.Load(p)
	}
}

func LoadConfig() Config {
	return Config{
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		DatabaseFile:         getEnvOrDefault("AUTH_DATABASE_FILE", "pahiram.db"),
		APCISLoginURL:        getEnvOrDefault("APCIS_LOGIN_URL", apcis.DefaultLoginURL),
		APCISTimeout:         getEnvDurationOrDefault("APCIS_TIMEOUT", apcis.DefaultTimeout),
		APCISTimeLocation:    getEnvOrDefault("APCIS_TIME_LOCATION", "UTC"),
		DefaultsFile:         os.Getenv("AUTH_DEFAULTS_FILE"),
		MasterKeyPath:        os.Getenv("AUTH_MASTER_KEY_PATH"),
		RedisURL:             os.Getenv("REDIS_URL"),
		LookupCacheTTL:       getEnvDurationOrDefault("LOOKUP_CACHE_TTL", 10*time.Minute),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),

		StrictLimit:   getEnvRateLimit("STRICT", httpx.StrictLimit),
		ModerateLimit: getEnvRateLimit("MODERATE", httpx.ModerateLimit),
		LenientLimit:  getEnvRateLimit("LENIENT", httpx.LenientLimit),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

// getEnvRateLimit reads RATELIMIT_<prefix>_{REQUESTS,WINDOW_SEC,BURST}.
// Setting REQUESTS to 0 disables the limit.
func getEnvRateLimit(prefix string, def httpx.RateLimitConfig) httpx.RateLimitConfig {
	cfg := def
	if n := getEnvIntOrDefault("RATELIMIT_"+prefix+"_REQUESTS", -1); n >= 0 {
		cfg.RequestsPerWindow = n
	}
	if n := getEnvIntOrDefault("RATELIMIT_"+prefix+"_WINDOW_SEC", 0); n > 0 {
		cfg.Window = time.Duration(n) * time.Second
	}
	if n := getEnvIntOrDefault("RATELIMIT_"+prefix+"_BURST", 0); n > 0 {
		cfg.Burst = n
	}
	return cfg
}
