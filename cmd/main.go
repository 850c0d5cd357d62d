package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-casino-backend/internal/handlers"
	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
	"github.com/sbilibin2017/gw-casino-backend/internal/middlewares"
	"github.com/sbilibin2017/gw-casino-backend/internal/migrations"
	"github.com/sbilibin2017/gw-casino-backend/internal/repositories"
	"github.com/sbilibin2017/gw-casino-backend/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-casino-backend API
// @version 1.0.0
// @description Backend for a casino-style mini-application: balances, game log, coin flip, box pick, safe cracker and a balance change notifier
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		corsOrigins, subscribeWindow, cacheTTL, logLevel,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		corsOrigins, subscribeWindow, cacheTTL, logLevel,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka and notifier configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	corsOrigins []string, subscribeWindow, cacheTTL time.Duration, logLevel string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "casino")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config; empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "transactions")

	// Notifier and cache config
	var windowSecond, ttlSecond int
	if windowSecond, err = strconv.Atoi(getEnv("SUBSCRIBE_WINDOW_SECOND", "30")); err != nil {
		return
	}
	subscribeWindow = time.Duration(windowSecond) * time.Second
	if ttlSecond, err = strconv.Atoi(getEnv("BALANCE_CACHE_TTL_SECOND", "3600")); err != nil {
		return
	}
	cacheTTL = time.Duration(ttlSecond) * time.Second

	corsOrigins = strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ",")

	return
}

// run initializes the logger, database, Redis, Kafka and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	corsOrigins []string, subscribeWindow, cacheTTL time.Duration, logLevel string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Apply schema migrations
	if err := migrations.Up(db); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	logger.Log.Info("Database schema is up to date")

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for settlement events
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer configured for %s topic %s", kafkaAddr, kafkaTopic)
	} else {
		logger.Log.Warn("Kafka address not configured, settlement events disabled")
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	balanceWriteRepo := repositories.NewBalanceWriteRepository(db, middlewares.GetTxFromContext)
	gameWriteRepo := repositories.NewGameWriteRepository(db, middlewares.GetTxFromContext)
	gameReadRepo := repositories.NewGameReadRepository(db)
	safeSessionRepo := repositories.NewSafeSessionRepository(db, middlewares.GetTxFromContext)
	balanceCacheRepo := repositories.NewBalanceCacheRepository(rdb, cacheTTL)

	// Initialize services
	notifierService := services.NewNotifierService(userReadRepo, balanceCacheRepo, subscribeWindow)
	walletService := services.NewWalletService(userWriteRepo, userReadRepo, balanceWriteRepo, balanceCacheRepo, notifierService, kafkaWriter, middlewares.RegisterCommitHook)
	gameService := services.NewGameService(walletService, gameWriteRepo, gameReadRepo)
	rng := services.NewRand()
	coinService := services.NewCoinService(walletService, gameWriteRepo, rng)
	boxesService := services.NewBoxesService(walletService, gameWriteRepo, rng)
	safeService := services.NewSafeService(walletService, gameWriteRepo, safeSessionRepo, rng)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Read-only routes
	r.Get("/balance/{user_id}", handlers.NewBalanceHandler(walletService))
	r.Get("/games/{user_id}", handlers.NewGamesHandler(gameService))
	r.Post("/balance/subscribe", handlers.NewSubscribeHandler(notifierService))
	r.Get("/health", handlers.NewHealthHandler(db, balanceCacheRepo))

	// Mutating routes share one transaction per request
	txMiddleware := middlewares.TxMiddleware(db)
	r.Group(func(r chi.Router) {
		r.Use(txMiddleware)
		r.Post("/init", handlers.NewInitHandler(walletService))
		r.Post("/balance/add", handlers.NewBalanceAddHandler(walletService))
		r.Post("/balance/prize", handlers.NewPrizeHandler(walletService))
		r.Post("/game", handlers.NewGameHandler(gameService))
		r.Post("/coin/start", handlers.NewCoinHandler(coinService))
		r.Post("/boxes/start", handlers.NewBoxesHandler(boxesService))
		r.Post("/safe/start", handlers.NewSafeStartHandler(safeService))
		r.Post("/safe/guess", handlers.NewSafeGuessHandler(safeService))
		r.Post("/safe/hint", handlers.NewSafeHintHandler(safeService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
