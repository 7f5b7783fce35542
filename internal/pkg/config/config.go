package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (Redis URL, upstream URL), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Upstream UpstreamConfig
	Cache    CacheConfig
	Catalog  CatalogConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
}

type RedisConfig struct {
	URL          string        `envconfig:"REDIS_URL" required:"true"`
	Timeout      time.Duration `envconfig:"REDIS_TIMEOUT" default:"5s"`
	PingAttempts int           `envconfig:"REDIS_PING_ATTEMPTS" default:"5"`
	PingInterval time.Duration `envconfig:"REDIS_PING_INTERVAL" default:"1s"`
}

type UpstreamConfig struct {
	URL              string        `envconfig:"API_URL" required:"true"`
	Timeout          time.Duration `envconfig:"API_TIMEOUT" default:"30s"`
	MinGapMinutes    int           `envconfig:"MIN_GAP_MINUTES" default:"28"`
	GapBufferMinutes int           `envconfig:"GAP_BUFFER_MINUTES" default:"2"`
}

type CacheConfig struct {
	Expiry          time.Duration `envconfig:"CACHE_EXPIRY" default:"24h"`
	RefreshCooldown time.Duration `envconfig:"REFRESH_COOLDOWN" default:"30m"`
	TimeZone        string        `envconfig:"CAMPUS_TIMEZONE" default:"America/New_York"`
}

type CatalogConfig struct {
	// empty means the embedded catalog
	Path string `envconfig:"CATALOG_PATH"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"America/New_York"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// Location resolves the campus timezone all date and cooldown math is done in.
func (c CacheConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid CAMPUS_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if _, err := cfg.Cache.Location(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Redis: RedisConfig{
			URL:          "redis://localhost:16379/0",
			Timeout:      time.Second,
			PingAttempts: 1,
			PingInterval: 10 * time.Millisecond,
		},
		Upstream: UpstreamConfig{
			URL:              "http://localhost:18080/bookings",
			Timeout:          2 * time.Second,
			MinGapMinutes:    28,
			GapBufferMinutes: 2,
		},
		Cache: CacheConfig{
			Expiry:          24 * time.Hour,
			RefreshCooldown: 30 * time.Minute,
			TimeZone:        "America/New_York",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       12 * time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "America/New_York",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
