package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultJWTSecret is used when JWT_SECRET is not set. Production servers
// replace it with a random secret at startup.
const DefaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// API credentials checked by basic auth and the login endpoint.
	AuthEnabled bool
	APIUsername string
	APIPassword string

	// Rates use the limiter format, e.g. "5-M" or "100-S".
	LoginRateLimit string
	APIRateLimit   string

	CORSAllowedOrigins []string

	// Trade export. Publishing to Kafka is disabled when KafkaBrokers is empty.
	KafkaBrokers     []string
	KafkaTradesTopic string

	DefaultHistoryLimit int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8082")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "order-book-app")
	v.SetDefault("AUTH_ENABLED", true)
	v.SetDefault("API_USERNAME", "admin")
	v.SetDefault("API_PASSWORD", "")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("API_RATE_LIMIT", "100-S")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TRADES_TOPIC", "orderbook.trades")
	v.SetDefault("DEFAULT_HISTORY_LIMIT", 10)
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8082"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = DefaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = v.GetString("JWT_ISSUER")
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	cfg.AuthEnabled = v.GetBool("AUTH_ENABLED")
	cfg.APIUsername = v.GetString("API_USERNAME")
	cfg.APIPassword = v.GetString("API_PASSWORD")
	if cfg.AuthEnabled && cfg.APIPassword == "" {
		log.Println("Warning: AUTH_ENABLED is set but API_PASSWORD is empty. Every API request will be rejected.")
	}

	cfg.LoginRateLimit = v.GetString("LOGIN_RATE_LIMIT")
	cfg.APIRateLimit = v.GetString("API_RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.KafkaBrokers = splitList(v.GetString("KAFKA_BROKERS"))
	cfg.KafkaTradesTopic = v.GetString("KAFKA_TRADES_TOPIC")

	cfg.DefaultHistoryLimit = v.GetInt("DEFAULT_HISTORY_LIMIT")
	if cfg.DefaultHistoryLimit <= 0 {
		cfg.DefaultHistoryLimit = 10
		log.Printf("Warning: DEFAULT_HISTORY_LIMIT must be positive. Defaulting to %d.\n", cfg.DefaultHistoryLimit)
	}

	return cfg, nil
}

// splitList parses a comma separated setting, dropping empty entries.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
