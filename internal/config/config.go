package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	LLM      LLMConfig      `yaml:"llm"`
	Gallery  GalleryConfig  `yaml:"gallery"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RatePerMinute   int           `yaml:"rate_per_minute"  env:"SERVER_RATE_PER_MINUTE"  env-default:"10"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                 env:"DATABASE_DSN"                 env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"           env:"DATABASE_MAX_CONNS"           env-default:"10"`
	MinConns        int32         `yaml:"min_conns"           env:"DATABASE_MIN_CONNS"           env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"   env:"DATABASE_MAX_CONN_LIFETIME"   env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time"  env:"DATABASE_MAX_CONN_IDLE_TIME"  env-default:"30m"`

	// ServerSideQueries enables filtering/sorting in SQL. When false the
	// repository over-fetches and filters/sorts in memory, which is the
	// behavior the gallery contract is defined against.
	ServerSideQueries bool `yaml:"server_side_queries" env:"DATABASE_SERVER_SIDE_QUERIES" env-default:"false"`
}

// LLMConfig holds Anthropic API settings for visualization generation.
type LLMConfig struct {
	APIKey    string        `yaml:"api_key"    env:"LLM_API_KEY"`
	Model     string        `yaml:"model"      env:"LLM_MODEL"      env-default:"claude-3-5-sonnet-20241022"`
	MaxTokens int64         `yaml:"max_tokens" env:"LLM_MAX_TOKENS" env-default:"4000"`
	Timeout   time.Duration `yaml:"timeout"    env:"LLM_TIMEOUT"    env-default:"60s"`
}

// GalleryConfig holds gallery sizing and listing settings.
type GalleryConfig struct {
	// DefaultListLimit is used when a list request carries no explicit limit.
	DefaultListLimit int `yaml:"default_list_limit" env:"GALLERY_DEFAULT_LIST_LIMIT" env-default:"5"`
	// MaxListLimit caps caller-supplied limits.
	MaxListLimit int `yaml:"max_list_limit" env:"GALLERY_MAX_LIST_LIMIT" env-default:"20"`
	// StaleAfter is how long a record may sit in "generating" before the
	// cleanup command considers it orphaned.
	StaleAfter time.Duration `yaml:"stale_after" env:"GALLERY_STALE_AFTER" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
