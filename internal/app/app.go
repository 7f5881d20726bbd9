package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/frbhusen/EPay-Store/internal/config"
	"github.com/frbhusen/EPay-Store/internal/event"
	handler "github.com/frbhusen/EPay-Store/internal/handler/http"
	"github.com/frbhusen/EPay-Store/internal/repository/postgres"
	redisrepo "github.com/frbhusen/EPay-Store/internal/repository/redis"
	"github.com/frbhusen/EPay-Store/internal/service"
	"github.com/frbhusen/EPay-Store/pkg/database"
	"github.com/frbhusen/EPay-Store/pkg/health"
	pkgkafka "github.com/frbhusen/EPay-Store/pkg/kafka"
	"github.com/frbhusen/EPay-Store/pkg/middleware"
	"github.com/frbhusen/EPay-Store/pkg/tracing"
)

// App wires together all dependencies and runs the catalog service.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	pool           *pgxpool.Pool
	rdb            *redis.Client
	producer       *pkgkafka.Producer
	httpServer     *http.Server
	tracerShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Initialize tracing.
	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "catalog-service",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTELEndpoint,
		SampleRate:     cfg.OTELSampleRate,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	// Slow query logging for the repository layer.
	database.SetSlowQueryLogging(time.Duration(cfg.SlowQueryThresholdMs)*time.Millisecond, logger)

	// Initialize PostgreSQL pool.
	pool, err := database.NewPostgresPool(ctx, &database.PostgresConfig{
		Host:            cfg.PostgresHost,
		Port:            cfg.PostgresPort,
		User:            cfg.PostgresUser,
		Password:        cfg.PostgresPass,
		DBName:          cfg.PostgresDB,
		SSLMode:         cfg.PostgresSSL,
		MaxConns:        cfg.DBMaxConns,
		MinConns:        cfg.DBMinConns,
		MaxConnLifetime: time.Duration(cfg.DBMaxConnLifetimeMins) * time.Minute,
		MaxConnIdleTime: time.Duration(cfg.DBMaxConnIdleTimeMins) * time.Minute,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	database.RegisterPoolMetrics(pool, "catalog-service")

	// Apply schema migrations.
	if err := postgres.Migrate(ctx, pool, logger); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	// Initialize Redis client.
	rdb, err := database.NewRedisClient(ctx, database.RedisConfig{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("connected to Redis",
		slog.String("host", cfg.RedisHost),
		slog.Int("db", cfg.RedisDB),
	)

	// Initialize Kafka producer.
	kafkaCfg := pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers)
	producer := pkgkafka.NewProducer(kafkaCfg, logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Build the dependency graph.
	categoryRepo := postgres.NewCategoryRepository(pool)
	subCategoryRepo := postgres.NewSubCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	preferenceTTL := time.Duration(cfg.PreferenceTTLHours) * time.Hour
	preferenceRepo := redisrepo.NewPreferenceRepository(rdb, preferenceTTL)

	eventProducer := event.NewProducer(producer, logger)

	catalogService := service.NewCatalogService(categoryRepo, subCategoryRepo, productRepo, logger)
	productService := service.NewProductService(productRepo, preferenceRepo, cfg.ExchangeRateUSDSYP, logger)
	reviewService := service.NewReviewService(productRepo, eventProducer, logger)
	currencyService := service.NewCurrencyService(preferenceRepo, eventProducer, cfg.ExchangeRateUSDSYP, logger)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("postgres", func(ctx context.Context) error {
		return pool.Ping(ctx)
	})
	healthHandler.Register("redis", func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	healthHandler.Register("kafka", producer.Ping)

	// HTTP router.
	router := handler.NewRouter(handler.RouterConfig{
		CatalogService:  catalogService,
		ProductService:  productService,
		ReviewService:   reviewService,
		CurrencyService: currencyService,
		HealthHandler:   healthHandler,
		CORS: middleware.CORSConfig{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Environment:    cfg.Environment,
		},
		Logger: logger,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		pool:           pool,
		rdb:            rdb,
		producer:       producer,
		httpServer:     httpServer,
		tracerShutdown: tracerShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
	}

	if err := a.rdb.Close(); err != nil {
		a.logger.Error("redis close error", slog.String("error", err.Error()))
	}

	a.pool.Close()

	if err := a.tracerShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
