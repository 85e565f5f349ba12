package cmd

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFrom(t *testing.T) {
	t.Run("should use defaults", func(t *testing.T) {
		cfg, err := configFrom(newViper())

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Empty(t, cfg.KafkaBrokers)
		assert.Empty(t, cfg.RedisAddr)
		assert.Equal(t, 10*time.Second, cfg.OrderLockTTL)
		assert.Equal(t, 15*time.Minute, cfg.StaleOrderThreshold)
		assert.Equal(t, "0 * * * * *", cfg.StaleOrdersSchedule)
		assert.Equal(t, "text", cfg.LogFormat)
	})

	t.Run("should read environment", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("ORDER_LOCK_TTL", "3s")
		t.Setenv("LOG_FORMAT", "JSON")

		cfg, err := configFrom(newViper())

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.HTTPPort)
		assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
		assert.Equal(t, "redis:6379", cfg.RedisAddr)
		assert.Equal(t, 3*time.Second, cfg.OrderLockTTL)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("should report every invalid setting", func(t *testing.T) {
		t.Setenv("ORDER_LOCK_TTL", "0s")
		t.Setenv("LOG_FORMAT", "xml")

		_, err := configFrom(newViper())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ORDER_LOCK_TTL must be positive")
		assert.Contains(t, err.Error(), `LOG_FORMAT "xml" is not text or json`)
	})
}

func TestConfig_PostgresDSN(t *testing.T) {
	t.Run("should escape credentials", func(t *testing.T) {
		cfg := Config{
			DBHost:     "db",
			DBPort:     "5432",
			DBUser:     "taxi",
			DBPassword: "p@ss word",
			DBName:     "taxi",
			DBSslMode:  "disable",
		}

		assert.Equal(t, "postgres://taxi:p%40ss%20word@db:5432/taxi?sslmode=disable", cfg.PostgresDSN())
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("should write json at configured level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(Config{LogLevel: "warn", LogFormat: "json"}, &buf)

		logger.Info("hidden")
		logger.Warn("shown", "orderId", 1)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "shown", entry["msg"])
		assert.InDelta(t, 1, entry["orderId"], 0)
	})
}
