// Package config loads service settings from an env file and the environment.
package config

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all service settings.
type Config struct {
	// Application
	AppHost     string `envconfig:"APP_HOST" default:"localhost"`
	AppPort     int    `envconfig:"APP_PORT" default:"8080"`
	AppLogLevel string `envconfig:"APP_LOG_LEVEL" default:"info"`
	// Zone whose calendar day limits completions to one per challenge
	AppTimezone string `envconfig:"APP_TIMEZONE" default:"UTC"`
	// Browser origins allowed to call the API
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// PostgreSQL
	PostgresHost         string `envconfig:"POSTGRES_HOST" default:"localhost"`
	PostgresPort         int    `envconfig:"POSTGRES_PORT" default:"5432"`
	PostgresUser         string `envconfig:"POSTGRES_USER" default:"user"`
	PostgresPassword     string `envconfig:"POSTGRES_PASSWORD" default:"password"`
	PostgresDB           string `envconfig:"POSTGRES_DB" default:"eco_challenge"`
	PostgresMaxOpenConns int    `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"16"`
	PostgresMaxIdleConns int    `envconfig:"POSTGRES_MAX_IDLE_CONNS" default:"8"`

	// Redis
	RedisHost         string        `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort         int           `envconfig:"REDIS_PORT" default:"6379"`
	RedisDB           int           `envconfig:"REDIS_DB" default:"0"`
	RedisPassword     string        `envconfig:"REDIS_PASSWORD"`
	RedisPoolSize     int           `envconfig:"REDIS_POOL_SIZE" default:"10"`
	RedisMinIdleConns int           `envconfig:"REDIS_MIN_IDLE_CONNS" default:"2"`
	CatalogCacheTTL   time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"5m"`

	// Kafka. Publishing is disabled when no brokers are set.
	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"challenge.completed"`

	// JWT
	JWTSecretKey string `envconfig:"JWT_SECRET_KEY" default:"my_super_secret_key"`
	JWTExpSecond int    `envconfig:"JWT_EXP_SECOND" default:"3600"`

	// Scoring
	ScoringRewardPoints   int64  `envconfig:"SCORING_REWARD_POINTS" default:"10"`
	ScoringBadgeThreshold int64  `envconfig:"SCORING_BADGE_THRESHOLD" default:"5"`
	ScoringBadgeName      string `envconfig:"SCORING_BADGE_NAME" default:"Novice Activist"`
	ScoringMaxRetries     uint64 `envconfig:"SCORING_MAX_RETRIES" default:"5"`
}

// Load reads the env file at path, if it exists, and maps the environment onto Config.
// Variables already set in the environment win over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot.
func (c *Config) Validate() error {
	if c.AppPort <= 0 || c.PostgresPort <= 0 || c.RedisPort <= 0 {
		return errors.New("ports must be positive")
	}
	if c.ScoringRewardPoints <= 0 {
		return errors.New("SCORING_REWARD_POINTS must be > 0")
	}
	if c.ScoringBadgeThreshold <= 0 {
		return errors.New("SCORING_BADGE_THRESHOLD must be > 0")
	}
	if c.ScoringBadgeName == "" {
		return errors.New("SCORING_BADGE_NAME must not be empty")
	}
	if c.JWTSecretKey == "" || c.JWTExpSecond <= 0 {
		return errors.New("JWT_SECRET_KEY and a positive JWT_EXP_SECOND are required")
	}
	if _, err := time.LoadLocation(c.AppTimezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	return nil
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.AppHost, c.AppPort)
}

// DatabaseDSN returns the PostgreSQL connection string.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// Location returns the zone of APP_TIMEZONE. Validate guarantees it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.AppTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// JWTExpiration returns the token lifetime.
func (c *Config) JWTExpiration() time.Duration {
	return time.Duration(c.JWTExpSecond) * time.Second
}
