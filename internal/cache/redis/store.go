// Package redis provides a Redis-backed recipe store.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/davidbz/chefgenius/internal/codec"
	"github.com/davidbz/chefgenius/internal/domain"
	"github.com/davidbz/chefgenius/internal/observability"
)

// DefaultKeyPrefix namespaces recipe entries inside a shared Redis database.
const DefaultKeyPrefix = "recipes:"

// ErrNilClient is returned when the store is built without a client.
var ErrNilClient = errors.New("redis store: nil client")

// Config contains Redis store settings.
type Config struct {
	URL       string `env:"REDIS_URL"        envDefault:"redis://localhost:6379/0"`
	KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"recipes:"`
	Codec     string `env:"CACHE_CODEC"      envDefault:"json"`
}

// Store implements domain.RecipeStore on Redis strings without expiry.
type Store struct {
	client      goredis.UniversalClient
	prefix      string
	codec       codec.Codec[domain.Recipe]
	closeClient bool
}

var _ domain.RecipeStore = (*Store)(nil)

// NewStore wraps an existing client. The store closes the client only when closeClient is set.
func NewStore(client goredis.UniversalClient, prefix string, c codec.Codec[domain.Recipe], closeClient bool) (*Store, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if c == nil {
		c = codec.JSON[domain.Recipe]{}
	}

	return &Store{
		client:      client,
		prefix:      prefix,
		codec:       c,
		closeClient: closeClient,
	}, nil
}

// Open dials Redis from cfg and verifies connectivity.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	c, err := codec.ByName[domain.Recipe](cfg.Codec)
	if err != nil {
		return nil, err
	}

	client := goredis.NewClient(opts)
	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", pingErr)
	}

	observability.FromContext(ctx).Info("connected to redis recipe store",
		observability.String("addr", opts.Addr),
		observability.String("codec", cfg.Codec))

	return NewStore(client, cfg.KeyPrefix, c, true)
}

// Lookup returns the stored recipe for key, or domain.ErrCacheMiss.
func (s *Store) Lookup(ctx context.Context, key string) (*domain.Recipe, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, &domain.CacheIOError{Op: "lookup", Key: key, Err: err}
	}

	recipe, err := s.codec.Decode(data)
	if err != nil {
		observability.FromContext(ctx).Error("corrupt recipe entry",
			observability.Error(err),
			observability.Int("data_size", len(data)))
		return nil, &domain.CacheIOError{Op: "decode", Key: key, Err: err}
	}
	recipe.Normalize()

	if err := domain.ValidateRecipe(&recipe); err != nil {
		observability.FromContext(ctx).Error("invalid recipe entry", observability.Error(err))
		return nil, &domain.CacheIOError{Op: "decode", Key: key, Err: err}
	}

	return &recipe, nil
}

// Store writes the recipe under key with no expiry.
func (s *Store) Store(ctx context.Context, key string, recipe *domain.Recipe) error {
	if recipe == nil {
		return errors.New("recipe cannot be nil")
	}

	data, err := s.codec.Encode(*recipe)
	if err != nil {
		return &domain.CacheIOError{Op: "encode", Key: key, Err: err}
	}

	if setErr := s.client.Set(ctx, s.prefix+key, data, 0).Err(); setErr != nil {
		return &domain.CacheIOError{Op: "store", Key: key, Err: setErr}
	}

	observability.FromContext(ctx).Debug("recipe stored in redis",
		observability.Int("data_size", len(data)))

	return nil
}

// Close releases the client when the store owns it. Repeated calls are no-ops.
func (s *Store) Close() error {
	if !s.closeClient {
		return nil
	}
	if err := s.client.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
		return err
	}
	return nil
}
