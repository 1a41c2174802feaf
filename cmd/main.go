package main

import (
	"context"
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
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/Henry18/mvp-debts/internal/config"
	"github.com/Henry18/mvp-debts/internal/handlers"
	"github.com/Henry18/mvp-debts/internal/jwt"
	"github.com/Henry18/mvp-debts/internal/logger"
	"github.com/Henry18/mvp-debts/internal/middlewares"
	"github.com/Henry18/mvp-debts/internal/migrations"
	"github.com/Henry18/mvp-debts/internal/repositories"
	"github.com/Henry18/mvp-debts/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title mvp-debts API
// @version 1.0.0
// @description Service for recording debts between users, settling them and exporting summaries
// @host localhost:8080
// @BasePath /api/v1
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
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// app holds the services the router dispatches to.
type app struct {
	db     *sqlx.DB
	tokens *jwt.JWT
	auth   *services.AuthService
	users  *services.UserService
	debts  *services.DebtService
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka is optional; without brokers debt events are skipped.
	var kafkaWriter services.KafkaWriter
	if len(cfg.Kafka.Brokers) > 0 {
		writer := &kafka.Writer{
			Addr:         kafka.TCP(cfg.Kafka.Brokers...),
			Topic:        cfg.Kafka.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
		}
		defer writer.Close()
		kafkaWriter = writer
		logger.Log.Infow("Kafka writer configured", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(cfg.JWT.Exp),
	)

	// Repositories
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	debtReadRepo := repositories.NewDebtReadRepository(db, txGetter)
	debtWriteRepo := repositories.NewDebtWriteRepository(db, txGetter)
	cacheRepo := repositories.NewCacheRepository(rdb)

	// Services
	userService := services.NewUserService(userReadRepo, userWriteRepo, debtReadRepo, cacheRepo, cfg.CacheTTL)
	authService := services.NewAuthService(userService, tokens)
	debtService := services.NewDebtService(debtReadRepo, debtWriteRepo, userService, cacheRepo, kafkaWriter, cfg.CacheTTL)

	r := newRouter(app{
		db:     db,
		tokens: tokens,
		auth:   authService,
		users:  userService,
		debts:  debtService,
	}, fmt.Sprintf("http://%s/swagger/doc.json", cfg.HTTPAddr()))

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.HTTPAddr())
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter mounts every route under /api/v1. Mutating routes run inside a
// request transaction.
func newRouter(a app, swaggerURL string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	tx := middlewares.TxMiddleware(a.db)
	auth := middlewares.AuthMiddleware(a.tokens, a.users)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.With(tx).Post("/register", handlers.NewRegisterHandler(a.auth))
		r.Post("/login", handlers.NewLoginHandler(a.auth))
		r.With(tx).Post("/users", handlers.NewCreateUserHandler(a.users))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(auth)

			r.Get("/users", handlers.NewListUsersHandler(a.users))
			r.Get("/users/me", handlers.NewMeHandler())
			r.Get("/users/{id}", handlers.NewGetUserHandler(a.users))
			r.With(tx).Patch("/users/{id}", handlers.NewUpdateUserHandler(a.users))
			r.With(tx).Delete("/users/{id}", handlers.NewRemoveUserHandler(a.users))

			r.With(tx).Post("/debts", handlers.NewCreateDebtHandler(a.debts))
			r.Get("/debts", handlers.NewListDebtsHandler(a.debts))
			r.Get("/debts/mine", handlers.NewMyDebtsHandler(a.debts))
			r.Get("/debts/i-owe", handlers.NewDebtsIOweHandler(a.debts))
			r.Get("/debts/owed-to-me", handlers.NewDebtsOwedToMeHandler(a.debts))
			r.Get("/debts/summary", handlers.NewDebtSummaryHandler(a.debts))
			r.Get("/debts/export/json", handlers.NewExportJSONHandler(a.debts))
			r.Get("/debts/export/csv", handlers.NewExportCSVHandler(a.debts))
			r.Get("/debts/export/summary", handlers.NewExportSummaryHandler(a.debts))
			r.Get("/debts/{id}", handlers.NewGetDebtHandler(a.debts))
			r.With(tx).Patch("/debts/{id}", handlers.NewUpdateDebtHandler(a.debts))
			r.With(tx).Post("/debts/{id}/pay", handlers.NewPayDebtHandler(a.debts))
			r.With(tx).Delete("/debts/{id}", handlers.NewRemoveDebtHandler(a.debts))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(swaggerURL),
	))

	return r
}
