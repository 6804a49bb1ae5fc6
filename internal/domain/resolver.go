package domain

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/davidbz/chefgenius/internal/observability"
)

// RecipeResolver answers recipe queries from the cache, generating on a miss.
type RecipeResolver struct {
	store     RecipeStore
	generator Generator
	dedup     bool
	inflight  singleflight.Group
}

// NewRecipeResolver creates a new resolver (DI constructor).
// With dedup enabled, concurrent misses on one key share a single generation.
func NewRecipeResolver(store RecipeStore, generator Generator, dedup bool) *RecipeResolver {
	return &RecipeResolver{
		store:     store,
		generator: generator,
		dedup:     dedup,
		inflight:  singleflight.Group{},
	}
}

// Resolve returns the recipe for query and restrictions.
func (r *RecipeResolver) Resolve(ctx context.Context, query string, restrictions []string) (*Resolution, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	key := CacheKey(query, restrictions)
	ctx = observability.WithCacheKey(ctx, key)
	logger := observability.FromContext(ctx)

	cached, err := r.store.Lookup(ctx, key)
	switch {
	case err == nil:
		logger.Info("cache HIT - returning stored recipe")
		return &Resolution{Recipe: cached, Key: key, Hit: true}, nil
	case !errors.Is(err, ErrCacheMiss):
		logger.Error("cache lookup failed", observability.Error(err))
		return nil, cacheError("lookup", key, err)
	}

	logger.Info("cache MISS - generating recipe",
		observability.Int("restrictions", len(restrictions)),
		observability.Bool("dedup", r.dedup))

	if !r.dedup {
		recipe, genErr := r.generateAndStore(ctx, key, query, restrictions)
		if genErr != nil {
			return nil, genErr
		}
		return &Resolution{Recipe: recipe, Key: key, Hit: false}, nil
	}

	// The shared call outlives any single caller's cancellation; the
	// generator's own deadline still bounds it.
	shareCtx := context.WithoutCancel(ctx)
	value, err, shared := r.inflight.Do(key, func() (any, error) {
		return r.generateAndStore(shareCtx, key, query, restrictions)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Debug("joined in-flight generation")
	}

	recipe, _ := value.(*Recipe)
	return &Resolution{Recipe: recipe, Key: key, Hit: false}, nil
}

func (r *RecipeResolver) generateAndStore(
	ctx context.Context,
	key string,
	query string,
	restrictions []string,
) (*Recipe, error) {
	ctx = observability.WithProvider(ctx, r.generator.Name())
	logger := observability.FromContext(ctx)

	raw, err := r.generator.Generate(ctx, BuildPrompt(query, restrictions))
	if err != nil {
		logger.Error("generation failed", observability.Error(err))
		var unavailable *GenerationUnavailableError
		if errors.As(err, &unavailable) {
			return nil, err
		}
		return nil, &GenerationUnavailableError{Provider: r.generator.Name(), Err: err}
	}

	if strings.TrimSpace(raw) == "" {
		logger.Error("generation returned empty text")
		return nil, &GenerationUnavailableError{Provider: r.generator.Name(), Err: ErrEmptyGeneration}
	}

	recipe, err := ExtractRecipe(raw)
	if err != nil {
		logger.Warn("generated text rejected",
			observability.Error(err),
			observability.Int("raw_length", len(raw)))
		return nil, err
	}

	if storeErr := r.store.Store(ctx, key, recipe); storeErr != nil {
		logger.Error("failed to store recipe", observability.Error(storeErr))
		return nil, cacheError("store", key, storeErr)
	}

	logger.Info("recipe generated and stored",
		observability.String("title", recipe.Title),
		observability.Int("raw_length", len(raw)))

	return recipe, nil
}

func cacheError(op, key string, err error) error {
	var ioErr *CacheIOError
	if errors.As(err, &ioErr) {
		return err
	}
	return &CacheIOError{Op: op, Key: key, Err: err}
}
