package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"skyfare/cfg"
	"skyfare/internal/booking"
	"skyfare/internal/events"
	"skyfare/internal/flight"
	"skyfare/internal/identity"
	"skyfare/internal/payment"
	"skyfare/pkg/cache"
	"skyfare/pkg/idgen"
	"skyfare/pkg/logger"
	"skyfare/pkg/provider"
	"skyfare/pkg/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// @title           Skyfare Flight API
// @version         1.0
// @description     API service for searching flights and managing bookings.
// @BasePath        /
// @schemes         http
func main() {
	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// telemetry (optional)
	// ============
	telemetryEnabled := config.Telemetry.OTLPEndpoint != ""
	if telemetryEnabled {
		shutdown, err := telemetry.Init(context.Background(), telemetry.Config{
			Endpoint:    config.Telemetry.OTLPEndpoint,
			ServiceName: "skyfare",
			Environment: config.AppEnv,
		})
		if err != nil {
			zlogger.Warn("failed to initialize telemetry, continuing without it",
				logger.Field{Key: "err", Value: err})
			telemetryEnabled = false
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					zlogger.Error("telemetry shutdown failed", logger.Field{Key: "err", Value: err})
				}
			}()
		}
	}

	// ============
	// cache
	// ============
	var resultCache cache.Cache
	if config.Redis.Addr != "" {
		resultCache = cache.NewRedisCache(config.Redis.Addr, config.Redis.Password)
	} else {
		zlogger.Info("no redis configured, using in-memory cache")
		resultCache = cache.NewMemoryCache()
	}

	// ============
	// flight provider (nil means generated flights only)
	// ============
	var flightProvider flight.Provider
	if config.Provider.AccessKey != "" {
		httpClient := &http.Client{
			Timeout: 5 * time.Second,
		}
		flightProvider = provider.NewClient(httpClient, config.Provider.BaseURL,
			config.Provider.AccessKey, config.Provider.Limit, zlogger)
	} else {
		zlogger.Info("no provider access key configured, searches use generated flights")
	}

	flightSvc := flight.NewService(flightProvider, flight.NewGenerator(), resultCache,
		config.CacheTTLMinutes, zlogger)
	flightHandler := flight.NewHandler(flightSvc)

	// ============
	// payments
	// ============
	var authorizer payment.Authorizer
	if config.Payment.StripeSecretKey != "" {
		authorizer = payment.NewStripeAuthorizer(config.Payment.StripeSecretKey, zlogger)
	} else {
		zlogger.Info("no stripe key configured, payments are simulated")
		authorizer = payment.NewMockAuthorizer(zlogger)
	}
	paymentHandler := payment.NewHandler(authorizer)

	// ============
	// booking store
	// ============
	var bookingRepo booking.Repository
	if config.Database.URL != "" {
		if err := runMigrations(config.Database.MigrationsDir, config.Database.URL); err != nil {
			log.Fatal(err)
		}
		pool, err := pgxpool.New(context.Background(), config.Database.URL)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		bookingRepo = booking.NewPGRepository(pool)
	} else {
		zlogger.Info("no database configured, bookings are stored in memory")
		bookingRepo = booking.NewMemoryRepository(true)
	}

	// ============
	// id generation
	// ============
	ids, err := idgen.NewSnowflakeGenerator(config.SnowflakeNodeID)
	if err != nil {
		log.Fatal(err)
	}

	// ============
	// booking service (+ optional event producer)
	// ============
	var opts []booking.ServiceOption
	if len(config.Kafka.Brokers) > 0 {
		producer := events.NewProducer(config.Kafka.Brokers, zlogger)
		defer producer.Close()
		opts = append(opts, booking.WithProducer(producer, config.Kafka.BookingTopic))
	}
	bookingSvc := booking.NewService(bookingRepo, flightSvc, authorizer, ids, zlogger, opts...)
	bookingHandler := booking.NewHandler(bookingSvc)

	// ============
	// identity
	// ============
	var verifier identity.Verifier
	if config.Auth.JWTSecret != "" {
		verifier = identity.NewJWTVerifier(config.Auth.JWTSecret)
	} else {
		zlogger.Info("no jwt secret configured, trusting X-User-Id header")
	}
	auth := identity.NewAuthenticator(verifier, zlogger).Middleware()

	// ============
	// HTTP
	// ============
	r := gin.Default()
	if telemetryEnabled {
		r.Use(otelgin.Middleware("skyfare"))
	}

	flightHandler.RegisterRoutes(r)
	bookingHandler.RegisterRoutes(r, auth)
	paymentHandler.RegisterRoutes(r, auth)
	initSwagger(r)

	addr := fmt.Sprintf(":%s", config.AppPort)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func runMigrations(dir, databaseURL string) error {
	m, err := migrate.New("file://"+dir, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		html := `<!DOCTYPE html>
<html>
<head>
    <title>API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
		c.String(200, html)
	})
}
