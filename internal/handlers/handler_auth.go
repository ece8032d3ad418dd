package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/order_book_app/internal/dto"
	"github.com/SscSPs/order_book_app/internal/middleware"
	"github.com/SscSPs/order_book_app/internal/platform/config"
	"github.com/SscSPs/order_book_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
)

// AuthHandler exchanges the configured API credentials for bearer tokens.
type AuthHandler struct {
	credentials middleware.Credentials
	jwtSecret   string
	jwtIssuer   string
	jwtDuration time.Duration
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config, creds middleware.Credentials) *AuthHandler {
	return &AuthHandler{
		credentials: creds,
		jwtSecret:   cfg.JWTSecret,
		jwtIssuer:   cfg.JWTIssuer,
		jwtDuration: cfg.JWTExpiryDuration,
	}
}

// registerAuthRoutes sets up the rate limited login route.
func registerAuthRoutes(r *gin.Engine, h *AuthHandler, loginLimiter *limiter.Limiter) {
	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", limitergin.NewMiddleware(loginLimiter), h.Login)
	}
}

// Login godoc
// @Summary Login
// @Description Exchanges the API credentials for a JWT bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.credentials.Username)) == 1
	if !userOK || !utils.CheckPasswordHash(req.Password, h.credentials.PasswordHash) {
		logger.Warn("Login failed", slog.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid username or password"})
		return
	}

	token, err := utils.GenerateJWT(req.Username, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresIn: int64(h.jwtDuration.Seconds())})
}
