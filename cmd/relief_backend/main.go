package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/SscSPs/relief_ledger_app/internal/core/services"
	"github.com/SscSPs/relief_ledger_app/internal/handlers"
	"github.com/SscSPs/relief_ledger_app/internal/middleware"
	"github.com/SscSPs/relief_ledger_app/internal/platform/cache"
	"github.com/SscSPs/relief_ledger_app/internal/platform/config"
	"github.com/SscSPs/relief_ledger_app/internal/platform/lock"
	"github.com/SscSPs/relief_ledger_app/internal/platform/ratelimit"
	"github.com/SscSPs/relief_ledger_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/relief_ledger_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Relief Ledger API
// @version 1.0
// @description Ledger, balances and inventory for relief fund operations.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	infra, closeInfra, err := buildInfrastructure(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize infrastructure", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeInfra()

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, infra)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "x-api-key")
	r.Use(cors.New(corsCfg))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildInfrastructure wires the view cache, limiters and lock. Without Redis the cache and
// lock are left out and both limiters keep their counters in process.
func buildInfrastructure(ctx context.Context, cfg *config.Config, logger *slog.Logger) (services.Infrastructure, func(), error) {
	infra := services.Infrastructure{
		VerifyLimiter: ratelimit.NewMemoryLimiter(cfg.VerifyRateLimit, "verify", cfg.VerifyRateSweepInterval),
	}

	if cfg.RedisURL == "" {
		infra.IngestLimiter = ratelimit.NewMemoryLimiter(cfg.IngestRateLimit, "ingest", cfg.VerifyRateSweepInterval)
		return infra, func() {}, nil
	}

	rdb, err := database.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return infra, nil, err
	}
	ingestLimiter, err := ratelimit.NewRedisLimiter(rdb, cfg.IngestRateLimit, "relief:ratelimit:ingest")
	if err != nil {
		_ = rdb.Close()
		return infra, nil, err
	}

	infra.Cache = cache.NewRedisViewCache(rdb, cfg.ViewCacheTTL)
	infra.IngestLimiter = ingestLimiter
	infra.Locker = lock.NewRedisLocker(rdb)
	logger.Info("Redis connected; view cache and ingestion locks enabled")

	return infra, func() { closeRedis(rdb, logger) }, nil
}

func closeRedis(rdb *redis.Client, logger *slog.Logger) {
	if err := rdb.Close(); err != nil {
		logger.Error("Error closing redis client", slog.String("error", err.Error()))
	}
}

func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	// pgx stdlib driver keeps migrations on the same driver as the pool
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}
	if sourceErr, dbErr := m.Close(); sourceErr != nil {
		return sourceErr
	} else if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
