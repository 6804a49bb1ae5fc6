package domain

import "context"

// RecipeStore is the durable response cache keyed by CacheKey.
type RecipeStore interface {
	// Lookup returns the stored recipe for key, or ErrCacheMiss.
	Lookup(ctx context.Context, key string) (*Recipe, error)

	// Store upserts the recipe under key. The last write wins.
	Store(ctx context.Context, key string, recipe *Recipe) error

	// Close releases the underlying storage handle.
	Close() error
}

// Generator produces free-form recipe text from a prompt.
type Generator interface {
	// Generate returns the raw model output for prompt.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name returns the generator identifier.
	Name() string
}

// GeneratorRegistry manages available generators.
type GeneratorRegistry interface {
	// Register adds a generator to the registry.
	Register(ctx context.Context, generator Generator) error

	// Get retrieves a generator by name.
	Get(ctx context.Context, name string) (Generator, error)

	// List returns the names of all registered generators.
	List(ctx context.Context) ([]string, error)
}
