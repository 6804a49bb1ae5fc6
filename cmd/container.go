package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/chefgenius/internal/cache/database"
	"github.com/davidbz/chefgenius/internal/cache/redis"
	"github.com/davidbz/chefgenius/internal/config"
	"github.com/davidbz/chefgenius/internal/domain"
	"github.com/davidbz/chefgenius/internal/http"
	"github.com/davidbz/chefgenius/internal/http/middleware"
	"github.com/davidbz/chefgenius/internal/observability"
	"github.com/davidbz/chefgenius/internal/provider/echo"
	"github.com/davidbz/chefgenius/internal/provider/openai"
	"github.com/davidbz/chefgenius/internal/provider/registry"
	"github.com/davidbz/chefgenius/internal/provider/resilient"
)

// ErrUnknownCacheBackend indicates CACHE_BACKEND names no supported store.
var ErrUnknownCacheBackend = errors.New("unknown cache backend")

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}

	// Recipe store
	if err := container.Provide(provideRecipeStore); err != nil {
		log.Fatalf("Failed to provide recipe store: %v", err)
	}

	// Generator registry with every configured generator
	if err := container.Provide(provideRegistry); err != nil {
		log.Fatalf("Failed to provide registry: %v", err)
	}

	// Selected generator, bounded by timeout and retries
	if err := container.Provide(provideGenerator); err != nil {
		log.Fatalf("Failed to provide generator: %v", err)
	}

	// Domain Services
	if err := container.Provide(func(
		store domain.RecipeStore,
		generator domain.Generator,
		cfg *config.ResolverConfig,
	) *domain.RecipeResolver {
		return domain.NewRecipeResolver(store, generator, cfg.Deduplicate)
	}); err != nil {
		log.Fatalf("Failed to provide recipe resolver: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

// initLogging forces logger construction so the global logger reflects configuration.
func initLogging(container *dig.Container) error {
	return container.Invoke(func(*zap.Logger) {})
}

func provideRecipeStore(
	cacheCfg *config.CacheConfig,
	dbCfg *database.Config,
	redisCfg *redis.Config,
) (domain.RecipeStore, error) {
	ctx := context.Background()

	switch cacheCfg.Backend {
	case "", config.CacheBackendDatabase:
		return database.Open(ctx, *dbCfg)
	case config.CacheBackendRedis:
		return redis.Open(ctx, *redisCfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCacheBackend, cacheCfg.Backend)
	}
}

func provideRegistry(openaiCfg *openai.Config) (*registry.Registry, error) {
	ctx := context.Background()
	reg := registry.NewRegistry()

	if err := reg.Register(ctx, echo.NewGenerator()); err != nil {
		return nil, fmt.Errorf("failed to register echo generator: %w", err)
	}

	// Register OpenAI only when a key is configured.
	if openaiCfg.APIKey != "" {
		generator, err := openai.NewGenerator(*openaiCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI generator: %w", err)
		}
		if err := reg.Register(ctx, generator); err != nil {
			return nil, fmt.Errorf("failed to register OpenAI generator: %w", err)
		}
	}

	return reg, nil
}

func provideGenerator(
	reg *registry.Registry,
	genCfg *config.GeneratorConfig,
	resilientCfg *resilient.Config,
) (domain.Generator, error) {
	ctx := context.Background()

	selected, err := reg.Select(ctx, genCfg.Provider, echo.NewGenerator().Name())
	if err != nil {
		return nil, fmt.Errorf("failed to select generator: %w", err)
	}

	if selected.Name() != genCfg.Provider {
		observability.FromContext(ctx).Warn("configured generator unavailable, using fallback",
			observability.String("configured", genCfg.Provider),
			observability.String("selected", selected.Name()))
	}

	return resilient.NewGenerator(selected, *resilientCfg)
}
