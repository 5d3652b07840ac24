// Package main is the entrypoint for the Welcomeboard API server.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/welcomeboard/welcomeboard/internal/cache"
	"github.com/welcomeboard/welcomeboard/internal/config"
	"github.com/welcomeboard/welcomeboard/internal/handler"
	"github.com/welcomeboard/welcomeboard/internal/metrics"
	"github.com/welcomeboard/welcomeboard/internal/middleware"
	"github.com/welcomeboard/welcomeboard/internal/registry"
	"github.com/welcomeboard/welcomeboard/internal/repository"
	"github.com/welcomeboard/welcomeboard/internal/server"
	"github.com/welcomeboard/welcomeboard/internal/service"
	"github.com/welcomeboard/welcomeboard/internal/views"
)

func main() {
	ctx := context.Background()

	// Load .env in local development; production injects real env vars.
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("connected to database")

	cacheClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error(
			"failed to connect to Redis",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		os.Exit(1)
	}
	defer cacheClient.Close()
	logger.Info("connected to Redis")

	// Services
	recorder := metrics.NewInMemory()
	welcomeService := service.NewWelcomeService(nil, recorder)
	profileService := service.NewProfileService(repo, cacheClient, cfg.ProfileCacheTTL, logger, recorder)

	// View event pipeline
	var publisher *views.Publisher
	var worker *views.Worker
	if cfg.ViewEventsEnabled {
		publisher = views.NewPublisher(cacheClient.Client(), logger, recorder)
		worker = views.NewWorker(cacheClient.Client(), repo, logger, views.NewConsumerID(), recorder)
	}

	// Payload registry
	reg := registry.New()
	if err := reg.Register(registry.KeyWelcomeMessage, func(ctx context.Context) (any, error) {
		return welcomeService.WelcomePayload(ctx), nil
	}); err != nil {
		logger.Error("failed to register welcome provider", "error", err)
		os.Exit(1)
	}
	if err := reg.Register(registry.KeyUserProfile, func(ctx context.Context) (any, error) {
		return profileService.ProfilePayload(ctx), nil
	}); err != nil {
		logger.Error("failed to register profile provider", "error", err)
		os.Exit(1)
	}

	// Handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(repo, cacheClient)
	metricsHandler := handler.NewMetricsHandler(recorder)
	welcomeHandler := handler.NewWelcomeHandler(welcomeService, publisher, logger)
	profileHandler := handler.NewProfileHandler(profileService, publisher, logger)
	dashboardHandler := handler.NewDashboardHandler(reg, publisher, recorder, logger)
	adminHandler := handler.NewAdminHandler(profileService, logger)

	r := setupRouter(routerDeps{
		base:      h,
		health:    healthHandler,
		metrics:   metricsHandler,
		welcome:   welcomeHandler,
		profile:   profileHandler,
		dashboard: dashboardHandler,
		admin:     adminHandler,
		cache:     cacheClient,
		cfg:       cfg,
		logger:    logger,
	})

	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	if worker != nil {
		workerCtx, cancelWorker := context.WithCancel(ctx)
		go func() {
			if err := worker.Run(workerCtx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("view worker stopped", "error", err)
			}
		}()
		srv.OnShutdown("view_worker", func(ctx context.Context) error {
			defer cancelWorker()
			return worker.Shutdown(ctx)
		})
	}

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"view_events", cfg.ViewEventsEnabled,
		"admin_enabled", cfg.AdminEnabled(),
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type routerDeps struct {
	base      *handler.Handler
	health    *handler.HealthHandler
	metrics   *handler.MetricsHandler
	welcome   *handler.WelcomeHandler
	profile   *handler.ProfileHandler
	dashboard *handler.DashboardHandler
	admin     *handler.AdminHandler
	cache     *cache.Cache
	cfg       *config.Config
	logger    *slog.Logger
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(deps routerDeps) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.logger))
	r.Use(middleware.Recoverer(deps.logger))
	securityCfg := middleware.DefaultSecurityConfig()
	securityCfg.IsDevelopment = deps.cfg.IsDevelopment()
	r.Use(middleware.Security(securityCfg))
	r.Use(middleware.MaxBodySize(deps.cfg.MaxRequestBodySize))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = deps.cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	// Operational endpoints
	r.Get("/healthz", deps.health.Healthz)
	r.Get("/readyz", deps.health.Readyz)
	r.Get("/metricsz", deps.metrics.Metrics)

	// Root info endpoint
	r.Get("/", deps.base.Hello)

	rateLimitCfg := middleware.RateLimitConfig{
		Logger:  deps.logger,
		Cache:   deps.cache,
		Enabled: deps.cfg.RateLimitEnabled,
		RPS:     deps.cfg.RateLimitRPS,
		Burst:   deps.cfg.RateLimitBurst,
	}

	// Public payload endpoints
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimitIP(rateLimitCfg))

		r.Get("/welcome", deps.welcome.Welcome)
		r.Get("/profile", deps.profile.Profile)
		r.Get("/dashboard", deps.dashboard.Dashboard)

		// Admin endpoints are mounted only when an operator key is configured.
		if deps.cfg.AdminEnabled() {
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminKey(middleware.AdminKeyConfig{
					Logger:  deps.logger,
					KeyHash: deps.cfg.AdminKeyHash,
				}))
				r.Put("/profile", deps.admin.UpdateProfile)
			})
		}
	})

	// 404 and 405 handlers
	r.NotFound(deps.base.NotFound)
	r.MethodNotAllowed(deps.base.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
