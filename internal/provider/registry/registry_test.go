package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/chefgenius/internal/provider/registry"
)

// stubGenerator is a minimal domain.Generator for registry tests.
type stubGenerator struct {
	name string
}

func (s *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (s *stubGenerator) Name() string {
	return s.name
}

func TestRegistry_Register(t *testing.T) {
	t.Run("should register generator successfully", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		err := reg.Register(ctx, &stubGenerator{name: "test-generator"})
		require.NoError(t, err)

		registered, err := reg.Get(ctx, "test-generator")
		require.NoError(t, err)
		require.Equal(t, "test-generator", registered.Name())
	})

	t.Run("should return error when generator is nil", func(t *testing.T) {
		reg := registry.NewRegistry()

		err := reg.Register(context.Background(), nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "generator cannot be nil")
	})

	t.Run("should return error when generator name is empty", func(t *testing.T) {
		reg := registry.NewRegistry()

		err := reg.Register(context.Background(), &stubGenerator{name: ""})
		require.Error(t, err)
		require.Contains(t, err.Error(), "generator name cannot be empty")
	})

	t.Run("should return error when generator already registered", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		require.NoError(t, reg.Register(ctx, &stubGenerator{name: "openai"}))

		err := reg.Register(ctx, &stubGenerator{name: "openai"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "already registered")
	})
}

func TestRegistry_Get(t *testing.T) {
	t.Run("should return error when name is empty", func(t *testing.T) {
		reg := registry.NewRegistry()

		_, err := reg.Get(context.Background(), "")
		require.Error(t, err)
		require.Contains(t, err.Error(), "generator name cannot be empty")
	})

	t.Run("should return error when generator not found", func(t *testing.T) {
		reg := registry.NewRegistry()

		_, err := reg.Get(context.Background(), "nonexistent")
		require.Error(t, err)
		require.Contains(t, err.Error(), "not found")
	})
}

func TestRegistry_List(t *testing.T) {
	t.Run("should return empty list when no generators registered", func(t *testing.T) {
		reg := registry.NewRegistry()

		names, err := reg.List(context.Background())
		require.NoError(t, err)
		require.NotNil(t, names)
		require.Empty(t, names)
	})

	t.Run("should return sorted names", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		for _, name := range []string{"openai", "echo", "gemini"} {
			require.NoError(t, reg.Register(ctx, &stubGenerator{name: name}))
		}

		names, err := reg.List(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"echo", "gemini", "openai"}, names)
	})
}

func TestRegistry_Select(t *testing.T) {
	t.Run("should prefer the requested generator", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()
		require.NoError(t, reg.Register(ctx, &stubGenerator{name: "openai"}))
		require.NoError(t, reg.Register(ctx, &stubGenerator{name: "echo"}))

		generator, err := reg.Select(ctx, "openai", "echo")
		require.NoError(t, err)
		require.Equal(t, "openai", generator.Name())
	})

	t.Run("should fall back when preferred is missing", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()
		require.NoError(t, reg.Register(ctx, &stubGenerator{name: "echo"}))

		generator, err := reg.Select(ctx, "openai", "echo")
		require.NoError(t, err)
		require.Equal(t, "echo", generator.Name())
	})

	t.Run("should fail when nothing matches", func(t *testing.T) {
		reg := registry.NewRegistry()

		_, err := reg.Select(context.Background(), "openai")
		require.Error(t, err)
		require.Contains(t, err.Error(), "no generator registered")
	})
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Run("should handle concurrent registrations safely", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		done := make(chan bool)

		for i := 0; i < 10; i++ {
			go func(idx int) {
				_ = reg.Register(ctx, &stubGenerator{name: string(rune('a' + idx))})
				done <- true
			}(i)
		}

		for i := 0; i < 10; i++ {
			<-done
		}

		names, err := reg.List(ctx)
		require.NoError(t, err)
		require.Len(t, names, 10)
	})
}
