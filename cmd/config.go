package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// KafkaBrokers is empty when order events are not published.
	KafkaBrokers           []string
	KafkaOrderChangedTopic string

	// RedisAddr is empty when order locks are kept in process.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	OrderLockTTL  time.Duration

	StaleOrderThreshold time.Duration
	StaleOrdersSchedule string

	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// LoadConfig reads an optional .env file from the working directory, then
// environment variables, falling back to defaults.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return configFrom(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "taxi")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_ORDER_CHANGED_TOPIC", "taxi.order.changed")

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("ORDER_LOCK_TTL", "10s")

	v.SetDefault("STALE_ORDER_THRESHOLD", "15m")
	v.SetDefault("STALE_ORDERS_SCHEDULE", "0 * * * * *")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	return v
}

func configFrom(v *viper.Viper) (Config, error) {
	cfg := Config{
		HTTPPort: v.GetString("HTTP_PORT"),

		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSslMode:  v.GetString("DB_SSLMODE"),

		KafkaBrokers:           splitList(v.GetString("KAFKA_BROKERS")),
		KafkaOrderChangedTopic: v.GetString("KAFKA_ORDER_CHANGED_TOPIC"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		OrderLockTTL:  v.GetDuration("ORDER_LOCK_TTL"),

		StaleOrderThreshold: v.GetDuration("STALE_ORDER_THRESHOLD"),
		StaleOrdersSchedule: v.GetString("STALE_ORDERS_SCHEDULE"),

		LogLevel:        strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:       strings.ToLower(v.GetString("LOG_FORMAT")),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}

	return cfg, cfg.Validate()
}

// Validate reports every setting that cannot work.
func (c Config) Validate() error {
	var problems []error

	if c.HTTPPort == "" {
		problems = append(problems, errors.New("HTTP_PORT is required"))
	}
	if c.DBHost == "" || c.DBName == "" {
		problems = append(problems, errors.New("DB_HOST and DB_NAME are required"))
	}
	if len(c.KafkaBrokers) > 0 && c.KafkaOrderChangedTopic == "" {
		problems = append(problems, errors.New("KAFKA_ORDER_CHANGED_TOPIC is required when KAFKA_BROKERS is set"))
	}
	if c.OrderLockTTL <= 0 {
		problems = append(problems, errors.New("ORDER_LOCK_TTL must be positive"))
	}
	if c.StaleOrderThreshold <= 0 {
		problems = append(problems, errors.New("STALE_ORDER_THRESHOLD must be positive"))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		problems = append(problems, fmt.Errorf("LOG_FORMAT %q is not text or json", c.LogFormat))
	}

	return errors.Join(problems...)
}

// PostgresDSN builds a postgres:// URL understood by both lib/pq and pgx.
func (c Config) PostgresDSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return dsn.String()
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
