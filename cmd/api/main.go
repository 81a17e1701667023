package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"auditapi/docs"
	"auditapi/internal/audit"
	"auditapi/internal/auth"
	"auditapi/internal/cache"
	"auditapi/internal/config"
	"auditapi/internal/database"
	"auditapi/internal/database/migration"
	handlers "auditapi/internal/http/handler"
	"auditapi/internal/http/middleware"
	"auditapi/internal/logger"
	"auditapi/internal/otel"
	"auditapi/internal/repository/postgres"
	"auditapi/internal/service"
	"auditapi/internal/storage"
)

const serviceName = "auditapi"

// @title Audit API
// @version 1.0
// @description Audit stamping demo: every write records who changed what and when.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		loc = time.UTC
	}
	log := logger.New(serviceName, cfg.LogLevel, loc)
	slog.SetDefault(log)
	if loc == time.UTC && cfg.TimeZone != "UTC" {
		log.Warn("unknown time zone, using UTC", "time_zone", cfg.TimeZone)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, serviceName, log)
	if err != nil {
		log.Error("failed to initialize tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing shutdown failed", "error", err)
		}
	}()

	db, err := database.NewPostgres(ctx, cfg.Database, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := migration.Ensure(ctx, db, log, cfg.Database.Host); err != nil {
		log.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	// Optional backends: the service runs without a directory cache or
	// artifact storage when they are not configured.
	var infoCache cache.UserInfoCache
	if cfg.Redis.Addr != "" {
		infoCache, err = cache.NewRedis(cfg.Redis, log)
		if err != nil {
			log.Warn("redis cache unavailable", "error", err)
			infoCache = nil
		} else {
			defer infoCache.Close()
		}
	}
	var objStore storage.Storage
	if cfg.MinIO.Endpoint != "" {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Warn("object storage unavailable, deploy artifacts disabled", "error", err)
			objStore = nil
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	stamper, err := audit.NewStamper(log, reg)
	if err != nil {
		log.Error("failed to create audit stamper", "error", err)
		os.Exit(1)
	}

	secret := cfg.Auth.JWTSecret
	if secret == "" {
		secret = randomSecret()
		log.Warn("AUTH_JWT_SECRET not set, tokens will not survive a restart")
	}
	tokens := auth.NewTokenService(auth.DefaultDirectory(), secret, time.Duration(cfg.Auth.TokenTTLMinute)*time.Minute, log)

	// Initialize repositories and services
	userRepo := postgres.NewUserPostgres(db)
	userSvc := service.NewUserService(userRepo, stamper, log)
	userInfoSvc := service.NewUserInfoService(postgres.NewUserInfoPostgres(db), infoCache, log)
	svcs := handlers.Services{
		Tokens:        tokens,
		Users:         userSvc,
		UserInfo:      userInfoSvc,
		Customers:     service.NewCustomerService(postgres.NewCustomerPostgres(db), stamper, log),
		Apis:          service.NewApiService(postgres.NewApiPostgres(db), stamper, log),
		Environments:  service.NewEnvironmentService(postgres.NewEnvironmentPostgres(db), objStore, stamper, log),
		ComplexAudits: service.NewComplexAuditService(postgres.NewComplexAuditPostgres(db), userRepo, stamper, log),
		AuditRecords:  service.NewAuditRecordService(postgres.NewAuditRecordPostgres(db), userRepo, stamper, log),
		AuditDemo:     service.NewAuditDemoService(userSvc, userInfoSvc, log),
	}

	promMw, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Error("failed to register http metrics", "error", err)
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// Register global middleware
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || strings.HasPrefix(c.Path(), "/health")
	})))
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMw.Handler())
	// Actor puts the resolved caller on the user context for audit stamping
	app.Use(middleware.Actor(auth.Chain{tokens, userInfoSvc}))

	handlers.RegisterRoutes(app, db, reg, loc, svcs)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info("api server starting", "addr", addr, "time_zone", loc.String())
		errCh <- app.Listen(addr)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
		log.Info("api server stopped")
	case err := <-errCh:
		if err != nil {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
