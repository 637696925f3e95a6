// Package config provides configuration loading for the assessment server.
package config

import (
	"errors"
	"fmt"
	"time"

	"chatfuture/internal/logging"
)

// Storage backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendSQLite = "sqlite"
)

// Config is the root configuration
type Config struct {
	Server  ServerConfig   `koanf:"server"`
	Storage StorageConfig  `koanf:"storage"`
	AI      AIConfig       `koanf:"ai"`
	Auth    AuthConfig     `koanf:"auth"`
	Log     logging.Config `koanf:"log"`
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	Port               int    `koanf:"port"`
	CORSOrigins        string `koanf:"cors_origins"`
	ShutdownTimeoutSec int    `koanf:"shutdown_timeout_sec"`
}

// ShutdownTimeout returns the graceful shutdown window
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSec) * time.Second
}

// StorageConfig selects and configures the persistence backend
type StorageConfig struct {
	Backend       string `koanf:"backend"`
	RedisAddr     string `koanf:"redis_addr"`
	RedisPassword string `koanf:"redis_password" json:"-"`
	MongoURI      string `koanf:"mongo_uri" json:"-"`
	MongoDatabase string `koanf:"mongo_database"`
	SQLiteDir     string `koanf:"sqlite_dir"`
	TTLHours      int    `koanf:"ttl_hours"` // Redis only, 0 keeps keys forever
}

// TTL returns the Redis key lifetime
func (s StorageConfig) TTL() time.Duration {
	return time.Duration(s.TTLHours) * time.Hour
}

// AuthConfig configures identity tokens
type AuthConfig struct {
	JWTSecret       string `koanf:"jwt_secret" json:"-"`
	TokenTTLHours   int    `koanf:"token_ttl_hours"`
	AllowTokenIssue bool   `koanf:"allow_token_issue"` // exposes POST /v1/auth/token
}

// TokenTTL returns the lifetime of issued tokens
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLHours) * time.Hour
}

// Validate checks the configuration after defaults were applied
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}

	switch c.Storage.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.Storage.RedisAddr == "" {
			errs = append(errs, errors.New("storage.redis_addr is required for the redis backend"))
		}
	case BackendMongo:
		if c.Storage.MongoURI == "" {
			errs = append(errs, errors.New("storage.mongo_uri is required for the mongo backend"))
		}
	case BackendSQLite:
		if c.Storage.SQLiteDir == "" {
			errs = append(errs, errors.New("storage.sqlite_dir is required for the sqlite backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.backend %q must be one of memory, redis, mongo, sqlite", c.Storage.Backend))
	}
	if c.Storage.TTLHours < 0 {
		errs = append(errs, errors.New("storage.ttl_hours must not be negative"))
	}

	if !c.AI.IsKnownProvider() && c.AI.BaseURL == "" {
		errs = append(errs, fmt.Errorf("ai.base_url is required for provider %q", c.AI.Provider))
	}
	if c.AI.MaxTokens < 0 || c.AI.TimeoutMS < 0 {
		errs = append(errs, errors.New("ai.max_tokens and ai.timeout_ms must not be negative"))
	}

	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret is required"))
	}

	if err := c.Log.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
