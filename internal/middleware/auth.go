package middleware

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/order_book_app/internal/dto"
	"github.com/SscSPs/order_book_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Credentials are the API account accepted by basic auth. PasswordHash is a
// bcrypt hash.
type Credentials struct {
	Username     string
	PasswordHash string
}

// JWTSettings validate bearer tokens issued by the login endpoint.
type JWTSettings struct {
	Secret string
	Issuer string
}

// AuthMiddleware accepts either HTTP basic credentials or a bearer token.
func AuthMiddleware(creds Credentials, jwtSettings JWTSettings) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			abortUnauthorized(c, "Authorization header required")
			return
		}

		scheme, _, _ := strings.Cut(authHeader, " ")
		switch strings.ToLower(scheme) {
		case "basic":
			username, password, ok := c.Request.BasicAuth()
			if !ok || !checkBasic(creds, username, password) {
				logger.Warn("Invalid basic credentials", slog.String("username", username))
				abortUnauthorized(c, "Invalid credentials")
				return
			}
			authenticate(c, username, "basic")

		case "bearer":
			tokenString := strings.TrimSpace(authHeader[len(scheme):])
			claims, err := utils.ParseAndValidateJWT(tokenString, jwtSettings.Secret, jwtSettings.Issuer)
			if err != nil {
				logger.Warn("Invalid token", slog.String("error", err.Error()))
				msg := "Invalid token"
				if errors.Is(err, jwt.ErrTokenExpired) {
					msg = "Token has expired"
				} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
					msg = "Token not valid yet"
				}
				abortUnauthorized(c, msg)
				return
			}
			if claims.Subject == "" {
				logger.Error("Subject missing from valid token")
				abortUnauthorized(c, "Invalid token claims")
				return
			}
			authenticate(c, claims.Subject, "bearer")

		default:
			logger.Warn("Authorization scheme not supported", slog.String("scheme", scheme))
			abortUnauthorized(c, "Authorization header format must be Basic or Bearer")
			return
		}

		c.Next()
	}
}

func checkBasic(creds Credentials, username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(creds.Username)) == 1
	passOK := utils.CheckPasswordHash(password, creds.PasswordHash)
	return userOK && passOK
}

// authenticate records the caller and enriches the request logger.
func authenticate(c *gin.Context, principal, method string) {
	c.Set(principalKey, principal)
	c.Set(authMethodKey, method)
	logger := GetLoggerFromCtx(c.Request.Context()).With(slog.String("principal", principal))
	c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), logger))
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", `Basic realm="orderbook"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: msg})
}
