package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DEFAULT_HISTORY_LIMIT", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("JWT_EXPIRY_DURATION", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8082", cfg.Port)
	assert.Equal(t, 10, cfg.DefaultHistoryLimit)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AUTH_ENABLED", "false")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("DEFAULT_HISTORY_LIMIT", "25")
	t.Setenv("JWT_EXPIRY_DURATION", "30m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.AuthEnabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 25, cfg.DefaultHistoryLimit)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiryDuration)
}
