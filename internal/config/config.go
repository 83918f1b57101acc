package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Cache    CacheConfig    `mapstructure:"cache"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port               int           `mapstructure:"port"                 validate:"required,gt=0,lt=65536"`
	LogLevel           string        `mapstructure:"log_level"            validate:"required,oneof=debug info warn error"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout"      validate:"gt=0"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout"     validate:"gt=0"`
	CORSAllowedOrigins []string      `mapstructure:"cors_allowed_origins"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Driver selects the task store: "postgres" or the non-persistent "memory".
	Driver          string        `mapstructure:"driver"            validate:"required,oneof=postgres memory"`
	URL             string        `mapstructure:"url"               validate:"required_if=Driver postgres"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"    validate:"gte=1"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"    validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0"`
}

// CacheConfig configures the optional Redis cache for the task list.
// Caching is disabled when RedisURL is empty.
type CacheConfig struct {
	RedisURL string        `mapstructure:"redis_url" validate:"omitempty,url"`
	TTL      time.Duration `mapstructure:"ttl"       validate:"gte=0"`
}

// Enabled reports whether a Redis cache should be used.
func (c CacheConfig) Enabled() bool {
	return c.RedisURL != ""
}
