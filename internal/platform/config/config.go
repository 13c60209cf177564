package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string
	JWTIssuer     string

	// Redis backs the view cache, the shared limiter store and ingestion locks.
	// Empty disables the cache and keeps limiter state in process.
	RedisURL     string
	ViewCacheTTL time.Duration

	VerifyRateLimit         limiter.Rate
	VerifyRateSweepInterval time.Duration
	IngestRateLimit         limiter.Rate
	IngestAPIKeyHash        string
	SideEffectTimeout       time.Duration
	BaseCurrencyCode        string
	CORSAllowedOrigins      []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "relief-ledger")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("VIEW_CACHE_TTL", "5m")
	viper.SetDefault("VERIFY_RATE_LIMIT", "5-M")
	viper.SetDefault("VERIFY_RATE_SWEEP_INTERVAL", "1m")
	viper.SetDefault("INGEST_RATE_LIMIT", "120-M")
	viper.SetDefault("INGEST_API_KEY_HASH", "")
	viper.SetDefault("SIDE_EFFECT_TIMEOUT", "5s")
	viper.SetDefault("BASE_CURRENCY_CODE", "USD")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "relief-ledger"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.RedisURL = viper.GetString("REDIS_URL")
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set. View cache disabled and rate limits are per instance.")
	}

	cfg.ViewCacheTTL = durationOrDefault("VIEW_CACHE_TTL", 5*time.Minute)
	cfg.VerifyRateSweepInterval = durationOrDefault("VERIFY_RATE_SWEEP_INTERVAL", time.Minute)
	cfg.SideEffectTimeout = durationOrDefault("SIDE_EFFECT_TIMEOUT", 5*time.Second)
	cfg.VerifyRateLimit = rateOrDefault("VERIFY_RATE_LIMIT", limiter.Rate{Period: time.Minute, Limit: 5})
	cfg.IngestRateLimit = rateOrDefault("INGEST_RATE_LIMIT", limiter.Rate{Period: time.Minute, Limit: 120})

	cfg.IngestAPIKeyHash = viper.GetString("INGEST_API_KEY_HASH")
	if cfg.IngestAPIKeyHash == "" {
		log.Println("Warning: INGEST_API_KEY_HASH not set. External donation ingestion is disabled.")
	}

	cfg.BaseCurrencyCode = strings.ToUpper(viper.GetString("BASE_CURRENCY_CODE"))

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	return cfg, nil
}

func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

// rateOrDefault parses ulule's "<limit>-<S|M|H|D>" format.
func rateOrDefault(key string, def limiter.Rate) limiter.Rate {
	raw := viper.GetString(key)
	rate, err := limiter.NewRateFromFormatted(raw)
	if err != nil {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %d per %s.\n", key, raw, def.Limit, def.Period.String())
		return def
	}
	return rate
}
