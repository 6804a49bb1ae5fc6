package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/chefgenius/internal/cache/database"
	"github.com/davidbz/chefgenius/internal/cache/redis"
	"github.com/davidbz/chefgenius/internal/observability"
	"github.com/davidbz/chefgenius/internal/provider/openai"
	"github.com/davidbz/chefgenius/internal/provider/resilient"
)

const (
	// CacheBackendDatabase stores recipes through gorm (SQLite or PostgreSQL).
	CacheBackendDatabase = "database"
	// CacheBackendRedis stores recipes in Redis.
	CacheBackendRedis = "redis"
)

// Config represents the recipe service configuration.
type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Log        observability.Config
	Cache      CacheConfig
	Database   database.Config
	Redis      redis.Config
	Generator  GeneratorConfig
	OpenAI     openai.Config
	Generation resilient.Config
	Resolver   ResolverConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int `env:"SERVER_PORT"             envDefault:"8080"`
	ReadTimeout     int `env:"SERVER_READ_TIMEOUT"     envDefault:"30"`
	WriteTimeout    int `env:"SERVER_WRITE_TIMEOUT"    envDefault:"150"`
	ShutdownTimeout int `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// CacheConfig selects the recipe store backend.
type CacheConfig struct {
	Backend string `env:"CACHE_BACKEND" envDefault:"database"`
}

// GeneratorConfig selects the recipe generator.
type GeneratorConfig struct {
	Provider string `env:"GENERATOR_PROVIDER" envDefault:"openai"`
}

// ResolverConfig contains recipe resolution settings.
type ResolverConfig struct {
	Deduplicate bool `env:"RESOLVER_DEDUPLICATE" envDefault:"true"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*CacheConfig
	*GeneratorConfig
	*ResolverConfig
	Log        *observability.Config
	Database   *database.Config
	Redis      *redis.Config
	OpenAI     *openai.Config
	Generation *resilient.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Out:             dig.Out{},
		ServerConfig:    &cfg.Server,
		CORSConfig:      &cfg.CORS,
		CacheConfig:     &cfg.Cache,
		GeneratorConfig: &cfg.Generator,
		ResolverConfig:  &cfg.Resolver,
		Log:             &cfg.Log,
		Database:        &cfg.Database,
		Redis:           &cfg.Redis,
		OpenAI:          &cfg.OpenAI,
		Generation:      &cfg.Generation,
	}
}
