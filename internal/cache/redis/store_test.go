package redis_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/davidbz/chefgenius/internal/cache/redis"
	"github.com/davidbz/chefgenius/internal/codec"
	"github.com/davidbz/chefgenius/internal/domain"
)

// startRedis runs a throwaway Redis container and returns a connected client.
func startRedis(t *testing.T) *goredis.Client {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := goredis.NewClient(&goredis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func sampleRecipe(title string) *domain.Recipe {
	cuisine := "Indian"
	servings := 4
	return &domain.Recipe{
		Title:       title,
		Cuisine:     &cuisine,
		Servings:    &servings,
		Ingredients: []domain.Ingredient{{Name: "rice", Quantity: "2 cups"}},
		Steps:       []string{"soak", "grind", "ferment"},
		Nutrition:   map[string]any{"calories": "350 kcal"},
	}
}

func TestNewStore_NilClient(t *testing.T) {
	store, err := redis.NewStore(nil, redis.DefaultKeyPrefix, nil, false)

	require.ErrorIs(t, err, redis.ErrNilClient)
	require.Nil(t, store)
}

func TestStore_LookupAndStore(t *testing.T) {
	client := startRedis(t)

	for _, name := range []string{codec.NameJSON, codec.NameMsgpack} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			c, err := codec.ByName[domain.Recipe](name)
			require.NoError(t, err)

			store, err := redis.NewStore(client, "test-"+name+":", c, false)
			require.NoError(t, err)

			_, err = store.Lookup(ctx, "dosa")
			require.ErrorIs(t, err, domain.ErrCacheMiss)

			require.NoError(t, store.Store(ctx, "dosa", sampleRecipe("Dosa")))

			got, err := store.Lookup(ctx, "dosa")
			require.NoError(t, err)
			require.Equal(t, "Dosa", got.Title)
			require.Equal(t, 4, *got.Servings)
			require.Equal(t, []string{"soak", "grind", "ferment"}, got.Steps)

			require.NoError(t, store.Store(ctx, "dosa", sampleRecipe("Masala Dosa")))

			got, err = store.Lookup(ctx, "dosa")
			require.NoError(t, err)
			require.Equal(t, "Masala Dosa", got.Title)
		})
	}
}

func TestStore_CorruptEntry(t *testing.T) {
	client := startRedis(t)
	ctx := context.Background()

	store, err := redis.NewStore(client, redis.DefaultKeyPrefix, codec.JSON[domain.Recipe]{}, false)
	require.NoError(t, err)

	entries := map[string]string{
		"broken":   "{not json",
		"empty":    "{}",
		"null":     "null",
		"untitled": `{"title": "  ", "steps": ["boil"]}`,
	}

	for key, value := range entries {
		t.Run(key, func(t *testing.T) {
			require.NoError(t, client.Set(ctx, redis.DefaultKeyPrefix+key, value, 0).Err())

			recipe, err := store.Lookup(ctx, key)

			require.Nil(t, recipe)
			var ioErr *domain.CacheIOError
			require.ErrorAs(t, err, &ioErr)
			require.Equal(t, "decode", ioErr.Op)
		})
	}
}

func TestStore_CloseOwnership(t *testing.T) {
	client := startRedis(t)
	ctx := context.Background()

	store, err := redis.NewStore(client, redis.DefaultKeyPrefix, nil, false)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// A borrowed client stays usable after the store is closed.
	require.NoError(t, client.Ping(ctx).Err())
}
