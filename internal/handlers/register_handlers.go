package handlers

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/order_book_app/cmd/docs"
	portssvc "github.com/SscSPs/order_book_app/internal/core/ports/services"
	"github.com/SscSPs/order_book_app/internal/middleware"
	"github.com/SscSPs/order_book_app/internal/platform/config"
	"github.com/SscSPs/order_book_app/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// stream may be nil, in which case no websocket route is registered.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	stream StreamServer,
) error {
	registerValidators()

	r.GET("/health", getHealth)

	creds := middleware.Credentials{Username: cfg.APIUsername}
	if cfg.APIPassword != "" {
		hash, err := utils.HashPassword(cfg.APIPassword)
		if err != nil {
			return fmt.Errorf("failed to hash API password: %w", err)
		}
		creds.PasswordHash = hash
	}

	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit)
	if err != nil {
		return err
	}
	registerAuthRoutes(r, NewAuthHandler(cfg, creds), loginLimiter)

	if err := setupAPIV1Routes(r, cfg, services, stream, creds); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	stream StreamServer,
	creds middleware.Credentials,
) error {
	apiLimiter, err := middleware.NewLimiter(cfg.APIRateLimit)
	if err != nil {
		return err
	}

	v1 := r.Group("/api/v1", middleware.RateLimit(apiLimiter))
	if cfg.AuthEnabled {
		v1.Use(middleware.AuthMiddleware(creds, middleware.JWTSettings{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer}))
	} else {
		slog.Warn("Authentication is disabled for /api/v1")
	}

	registerOrderBookRoutes(v1, services.OrderBook)
	registerTradeRoutes(v1, services.Trade)
	registerCurrencyRoutes(v1, services.Currency)
	registerStreamRoutes(v1, stream)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
