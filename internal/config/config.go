// Package config loads runtime configuration from an optional YAML file and
// the environment. Defaults come first, then file values, then PATIENTAPI_*
// environment variables override both. Environment keys follow the struct
// path: PATIENTAPI_SERVER_PORT, PATIENTAPI_STORAGE_BACKEND,
// PATIENTAPI_STORAGE_REDIS_URL, PATIENTAPI_BOOKING_ALLOW_RESCHEDULE_CANCELLED
// and so on.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

const envPrefix = "patientapi"

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout" split_words:"true"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout" split_words:"true"`
	MaxHeaderBytes int           `mapstructure:"max_header_bytes" split_words:"true"`
}

// StorageConfig selects the key-value backend. "memory" keeps everything in
// process, "redis" persists across restarts.
type StorageConfig struct {
	Backend string      `mapstructure:"backend"`
	Redis   RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	URL          string        `mapstructure:"url"`
	MaxRetries   int           `mapstructure:"max_retries" split_words:"true"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff" split_words:"true"`
	PoolSize     int           `mapstructure:"pool_size" split_words:"true"`
	MinIdleConns int           `mapstructure:"min_idle_conns" split_words:"true"`
}

type BookingConfig struct {
	ReferenceStart           int64  `mapstructure:"reference_start" split_words:"true"`
	MeetingBaseURL           string `mapstructure:"meeting_base_url" split_words:"true"`
	AllowRescheduleCancelled bool   `mapstructure:"allow_reschedule_cancelled" split_words:"true"`
}

type SMTPConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" split_words:"true"`
	Burst             int     `mapstructure:"burst"`
}

type SecurityConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" split_words:"true"`
	AllowedMethods []string `mapstructure:"allowed_methods" split_words:"true"`
	AllowedHeaders []string `mapstructure:"allowed_headers" split_words:"true"`
}

type MonitoringConfig struct {
	MetricsPrefix string `mapstructure:"metrics_prefix" split_words:"true"`
}

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Booking    BookingConfig    `mapstructure:"booking"`
	SMTP       SMTPConfig       `mapstructure:"smtp"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit" envconfig:"RATE_LIMIT"`
	Security   SecurityConfig   `mapstructure:"security" envconfig:"CORS"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	LogLevel   string           `mapstructure:"log_level" split_words:"true"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.max_header_bytes", 1<<20)

	v.SetDefault("storage.backend", "memory")
	v.SetDefault("storage.redis.url", "redis://localhost:6379/0")
	v.SetDefault("storage.redis.max_retries", 3)
	v.SetDefault("storage.redis.retry_backoff", "100ms")
	v.SetDefault("storage.redis.pool_size", 10)
	v.SetDefault("storage.redis.min_idle_conns", 2)

	v.SetDefault("booking.reference_start", 13000)
	v.SetDefault("booking.meeting_base_url", "https://meet.careproclinic.com")
	v.SetDefault("booking.allow_reschedule_cancelled", true)

	v.SetDefault("smtp.enabled", false)
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.from", "bookings@careproclinic.com")

	v.SetDefault("rate_limit.requests_per_second", 50.0)
	v.SetDefault("rate_limit.burst", 100)

	v.SetDefault("monitoring.metrics_prefix", "patient_api")
	v.SetDefault("log_level", "info")
}

// LoadConfig reads config.yml when present and then applies environment
// overrides. A missing file is not an error since every field has a default.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/app")
	v.AddConfigPath("/app/config")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process(envPrefix, &config); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	return &config, nil
}
