// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/tierhub/internal/admin"
	"github.com/carterperez-dev/tierhub/internal/album"
	"github.com/carterperez-dev/tierhub/internal/auth"
	"github.com/carterperez-dev/tierhub/internal/category"
	"github.com/carterperez-dev/tierhub/internal/config"
	"github.com/carterperez-dev/tierhub/internal/core"
	"github.com/carterperez-dev/tierhub/internal/health"
	"github.com/carterperez-dev/tierhub/internal/image"
	"github.com/carterperez-dev/tierhub/internal/mailer"
	"github.com/carterperez-dev/tierhub/internal/middleware"
	"github.com/carterperez-dev/tierhub/internal/observability"
	"github.com/carterperez-dev/tierhub/internal/ranking"
	"github.com/carterperez-dev/tierhub/internal/role"
	"github.com/carterperez-dev/tierhub/internal/server"
	"github.com/carterperez-dev/tierhub/internal/storage"
	"github.com/carterperez-dev/tierhub/internal/tierlist"
	"github.com/carterperez-dev/tierhub/internal/tournament"
	"github.com/carterperez-dev/tierhub/internal/user"
)

const (
	drainDelay = 5 * time.Second

	authRequestsPerMinute = 10
	authBurst             = 5
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	generateKeys := flag.Bool("generate-keys", false,
		"write a fresh ES256 key pair to the configured paths and exit")
	flag.Parse()

	var err error
	if *generateKeys {
		err = writeKeys(*configPath)
	} else {
		err = run(*configPath)
	}
	if err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func writeKeys(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if err := auth.GenerateKeyPair(cfg.JWT.PrivateKeyPath, cfg.JWT.PublicKeyPath); err != nil {
		return err
	}

	slog.Info("key pair written",
		"private_key", cfg.JWT.PrivateKeyPath,
		"public_key", cfg.JWT.PublicKeyPath,
	)
	return nil
}

//nolint:funlen,gocyclo // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	telemetry, err := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
	if err != nil {
		return err
	}
	if cfg.Otel.Enabled {
		logger.Info("OpenTelemetry tracer initialized",
			"endpoint", cfg.Otel.Endpoint,
		)
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	reset := cfg.ShouldResetSchema()
	if err := core.Migrate(ctx, db.DB, reset); err != nil {
		return err
	}
	logger.Info("schema ready", "reset", reset)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	metrics := observability.NewMetrics()

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", jwtManager.Algorithm(),
		"access_token_expire", cfg.JWT.AccessTokenExpire,
	)

	var bucket storage.Bucket = storage.Unconfigured{}
	if cfg.Storage.Bucket != "" {
		gcs, gcsErr := storage.NewGCSBucket(ctx, cfg.Storage)
		if gcsErr != nil {
			return gcsErr
		}
		defer func() {
			if err := gcs.Close(); err != nil {
				logger.Error("storage close error", "error", err)
			}
		}()
		bucket = gcs
		logger.Info("object storage configured", "bucket", cfg.Storage.Bucket)
	} else {
		logger.Warn("object storage not configured, image uploads will fail")
	}

	var mail auth.Mailer = mailer.Disabled{Logger: logger}
	if cfg.Mail.Host != "" {
		smtp, mailErr := mailer.NewSMTPMailer(cfg.Mail, metrics)
		if mailErr != nil {
			return mailErr
		}
		mail = smtp
		logger.Info("smtp mailer configured", "host", cfg.Mail.Host)
	}

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)
	userHandler := user.NewHandler(userSvc)

	roleSvc := role.NewService(role.NewRepository(db.DB), userSvc)
	roleHandler := role.NewHandler(roleSvc)

	authRepo := auth.NewRepository(db.DB)
	revocations := auth.NewRevocations(authRepo, redis.Client, metrics, logger)
	authSvc := auth.NewService(auth.ServiceConfig{
		JWT:         jwtManager,
		Users:       userSvc,
		Roles:       roleSvc,
		Revocations: revocations,
		Mailer:      mail,
		Domains:     mailer.NewMXChecker(),
		FrontendURL: cfg.Frontend.BaseURL,
		Logger:      logger,
	})
	authHandler := auth.NewHandler(authSvc)

	albumHandler := album.NewHandler(album.NewService(album.NewRepository(db.DB)))
	categoryHandler := category.NewHandler(category.NewService(category.NewRepository(db.DB)))
	imageHandler := image.NewHandler(
		image.NewService(image.NewRepository(db.DB), bucket, metrics, logger),
		cfg.Server.MaxUploadBytes,
	)
	tierlistHandler := tierlist.NewHandler(tierlist.NewService(tierlist.NewRepository(db.DB)))
	tournamentHandler := tournament.NewHandler(
		tournament.NewService(tournament.NewRepository(db.DB)),
	)
	rankingHandler := ranking.NewHandler(ranking.NewService(ranking.NewRepository(db.DB)))

	healthHandler := health.NewHandler(
		health.NamedChecker{Name: "database", Checker: db},
		health.NamedChecker{Name: "redis", Checker: redis},
	)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
		Content:    admin.NewRepository(db.DB),
	})

	sweeper := auth.NewSweeper(authRepo, cfg.Revocation, metrics, logger)
	go sweeper.Run(ctx)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	// tracing wraps the logger so the request log carries the trace id
	router.Use(middleware.Tracing(telemetry.Tracer))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics(metrics))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Scope: "global",
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())
	if cfg.Metrics.Enabled {
		router.Handle(cfg.Metrics.Path, metrics.Handler())
	}

	authenticator := middleware.Authenticator(authSvc)
	adminOnly := middleware.RequireAdmin
	staff := middleware.RequireRole(middleware.RoleAdmin, middleware.RoleModo)

	writeLimit := middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
		Scope:    "write",
		Limit:    middleware.PerMinute(cfg.RateLimit.Requests, cfg.RateLimit.Burst),
		KeyFunc:  middleware.KeyByUserAndEndpoint,
		FailOpen: true,
	})
	requireMember := middleware.RequireRole(
		middleware.RoleAdmin,
		middleware.RoleUser,
		middleware.RoleModo,
	)
	members := func(next http.Handler) http.Handler {
		return requireMember(writeLimit.Handler(next))
	}

	publicLimit := middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
		Scope:    "auth",
		Limit:    middleware.PerMinute(authRequestsPerMinute, authBurst),
		KeyFunc:  middleware.KeyByIP,
		FailOpen: true,
	}).Handler

	router.Route("/api", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator, publicLimit)
		userHandler.RegisterRoutes(r, authenticator, adminOnly)
		roleHandler.RegisterRoutes(r, authenticator, adminOnly)
		albumHandler.RegisterRoutes(r, authenticator, members)
		categoryHandler.RegisterRoutes(r, authenticator, members, staff)
		imageHandler.RegisterRoutes(r, authenticator, members)
		tierlistHandler.RegisterRoutes(r, authenticator, members)
		tournamentHandler.RegisterRoutes(r, authenticator, members)
		rankingHandler.RegisterRoutes(r, authenticator, members)
		adminHandler.RegisterRoutes(r, authenticator, adminOnly)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		logger.Error("telemetry shutdown error", "error", err)
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
