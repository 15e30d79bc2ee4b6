package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-eco-challenge/internal/config"
	"github.com/sbilibin2017/gw-eco-challenge/internal/handlers"
	"github.com/sbilibin2017/gw-eco-challenge/internal/jwt"
	"github.com/sbilibin2017/gw-eco-challenge/internal/logger"
	"github.com/sbilibin2017/gw-eco-challenge/internal/middlewares"
	"github.com/sbilibin2017/gw-eco-challenge/internal/repositories"
	"github.com/sbilibin2017/gw-eco-challenge/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-eco-challenge API
// @version 1.0.0
// @description Eco challenges with points, daily completions and badges
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// routes are the handlers served by the HTTP API.
type routes struct {
	allowedOrigins []string
	auth           func(http.Handler) http.Handler

	register      http.HandlerFunc
	login         http.HandlerFunc
	ecoCalculator http.HandlerFunc
	swagger       http.HandlerFunc

	logout          http.HandlerFunc
	listChallenges  http.HandlerFunc
	submitChallenge http.HandlerFunc
	complete        http.HandlerFunc
	dashboard       http.HandlerFunc
	stats           http.HandlerFunc
}

func newRouter(rt routes) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	// Public routes
	r.Post("/register", rt.register)
	r.Post("/login", rt.login)
	r.Post("/eco-calculator", rt.ecoCalculator)
	r.Get("/swagger/*", rt.swagger)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(rt.auth)
		r.Post("/logout", rt.logout)
		r.Get("/challenges", rt.listChallenges)
		r.Post("/challenges", rt.submitChallenge)
		r.Post("/challenges/complete", rt.complete)
		r.Get("/dashboard", rt.dashboard)
		r.Get("/api/stats", rt.stats)
	})

	return r
}

// run initializes the logger, database, Redis, Kafka and the HTTP server.
// It wires repositories, services and handlers and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.AppLogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.AppLogLevel)

	// Apply migrations
	dsn := cfg.DatabaseDSN()
	if err := repositories.Migrate(dsn); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Connect to PostgreSQL
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.PostgresHost, cfg.PostgresPort)
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka publishing is optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		}
		defer writer.Close()
		kafkaWriter = writer
		logger.Log.Infof("Publishing completion events to %s", cfg.KafkaTopic)
	}

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExpiration()),
	)

	// Initialize repositories
	transactor := repositories.NewTransactor(db, cfg.ScoringMaxRetries)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	challengeReadRepo := repositories.NewChallengeReadRepository(db)
	challengeWriteRepo := repositories.NewChallengeWriteRepository(db)
	completionReadRepo := repositories.NewCompletionReadRepository(db)
	completionWriteRepo := repositories.NewCompletionWriteRepository(db)
	badgeReadRepo := repositories.NewBadgeReadRepository(db)
	badgeWriteRepo := repositories.NewBadgeWriteRepository(db)
	challengeCache := repositories.NewChallengeCacheRepository(rdb, cfg.CatalogCacheTTL)
	denylist := repositories.NewTokenDenylistRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, denylist)
	catalogService := services.NewCatalogService(challengeReadRepo, challengeWriteRepo, challengeCache)
	progressService := services.NewProgressService(userReadRepo, badgeReadRepo, completionReadRepo)
	scoringService := services.NewScoringService(
		transactor,
		userReadRepo,
		userWriteRepo,
		challengeReadRepo,
		completionReadRepo,
		completionWriteRepo,
		badgeWriteRepo,
		kafkaWriter,
		services.ScoringRules{
			RewardPoints:   cfg.ScoringRewardPoints,
			BadgeThreshold: cfg.ScoringBadgeThreshold,
			BadgeName:      cfg.ScoringBadgeName,
		},
	)
	calculator := services.NewFootprintCalculator()

	loc := cfg.Location()
	now := func() time.Time { return time.Now().In(loc) }

	r := newRouter(routes{
		allowedOrigins: cfg.CORSAllowedOrigins,
		auth:           middlewares.AuthMiddleware(tokens, denylist),

		register:      handlers.NewRegisterHandler(authService),
		login:         handlers.NewLoginHandler(authService),
		ecoCalculator: handlers.NewEcoCalculatorHandler(calculator),
		swagger: httpSwagger.Handler(
			httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.Addr())),
		),

		logout:          handlers.NewLogoutHandler(authService),
		listChallenges:  handlers.NewListChallengesHandler(catalogService, progressService),
		submitChallenge: handlers.NewSubmitChallengeHandler(catalogService),
		complete:        handlers.NewCompleteChallengeHandler(scoringService, now),
		dashboard:       handlers.NewDashboardHandler(progressService),
		stats:           handlers.NewStatsHandler(progressService),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
