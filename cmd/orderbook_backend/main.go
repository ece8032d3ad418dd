package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/order_book_app/internal/adapters/memory"
	portsrepo "github.com/SscSPs/order_book_app/internal/core/ports/repositories"
	"github.com/SscSPs/order_book_app/internal/core/services"
	"github.com/SscSPs/order_book_app/internal/handlers"
	"github.com/SscSPs/order_book_app/internal/middleware"
	"github.com/SscSPs/order_book_app/internal/platform/config"
	"github.com/SscSPs/order_book_app/internal/stream"
	"github.com/SscSPs/order_book_app/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title Order Book API
// @version 1.0
// @description Limit order matching engine for currency pairs.

// @host localhost:8082
// @BasePath /api/v1

// @securityDefinitions.basic BasicAuth

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction && cfg.JWTSecret == config.DefaultJWTSecret {
		secret, err := utils.GenerateSecureRandomString(32)
		if err != nil {
			logger.Error("Failed to generate JWT secret", slog.String("error", err.Error()))
			os.Exit(1)
		}
		cfg.JWTSecret = secret
		logger.Warn("JWT_SECRET not set, using a random secret. Tokens will not survive a restart.")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := stream.NewHub(logger, cfg.CORSAllowedOrigins)
	go hub.Run(ctx)

	publishers := stream.Publishers{hub}
	if len(cfg.KafkaBrokers) > 0 {
		producer := stream.NewTradeProducer(cfg.KafkaBrokers, cfg.KafkaTradesTopic, logger)
		defer func() {
			if cerr := producer.Close(); cerr != nil {
				logger.Error("Error closing Kafka producer", slog.String("error", cerr.Error()))
			}
		}()
		publishers = append(publishers, producer)
		logger.Info("Publishing trades to Kafka", slog.String("topic", cfg.KafkaTradesTopic))
	}

	serviceContainer := services.NewServiceContainer(cfg, portsrepo.RepositoryProvider{
		OrderBookRepo:   memory.NewOrderBookStore(),
		TradeLedgerRepo: memory.NewTradeLedger(),
	}, publishers)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{handlers.NextPageTokenHeader, middleware.RequestIDHeader, "X-RateLimit-Remaining"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, hub); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
}
