package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/davidbz/chefgenius/internal/domain"
)

func setOfflineEnv(t *testing.T) {
	t.Helper()

	t.Setenv("CACHE_BACKEND", "database")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", ":memory:")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GENERATOR_PROVIDER", "openai")
	t.Setenv("LOG_LEVEL", "error")
}

func TestBuildContainer_ResolvesWithEchoFallback(t *testing.T) {
	setOfflineEnv(t)

	container := buildContainer()
	require.NoError(t, initLogging(container))

	err := container.Invoke(func(resolver *domain.RecipeResolver, generator domain.Generator, store domain.RecipeStore) error {
		defer store.Close()

		require.Equal(t, "echo", generator.Name())

		first, err := resolver.Resolve(context.Background(), "lemon rice", []string{"vegan"})
		require.NoError(t, err)
		require.False(t, first.Hit)
		require.Equal(t, "Lemon Rice", first.Recipe.Title)

		second, err := resolver.Resolve(context.Background(), "lemon rice", []string{"vegan"})
		require.NoError(t, err)
		require.True(t, second.Hit)

		return nil
	})
	require.NoError(t, err)
}

func TestBuildContainer_UnknownCacheBackend(t *testing.T) {
	setOfflineEnv(t)
	t.Setenv("CACHE_BACKEND", "memcached")

	container := buildContainer()

	err := container.Invoke(func(domain.RecipeStore) {})
	require.ErrorIs(t, dig.RootCause(err), ErrUnknownCacheBackend)
}

func TestRunResolve_PrintsRecipe(t *testing.T) {
	setOfflineEnv(t)

	var stdout, stderr bytes.Buffer
	err := runResolve(context.Background(), &stdout, &stderr, "tomato soup", nil)
	require.NoError(t, err)

	var recipe domain.Recipe
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &recipe))
	require.Equal(t, "Tomato Soup", recipe.Title)
	require.Equal(t, "cache: MISS\n", stderr.String())
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()

	for _, name := range []string{"serve", "resolve", "fetch"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		require.Equal(t, name, cmd.Name())
	}
}
