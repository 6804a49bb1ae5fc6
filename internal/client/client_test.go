package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/chefgenius/internal/client"
)

func TestClient_GetRecipe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/recipe", r.URL.Path)
		require.Equal(t, "dosa", r.URL.Query().Get("query"))
		require.Equal(t, []string{"vegan", "gluten-free"}, r.URL.Query()["dietary_restrictions"])

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Recipe-Cache", "HIT")
		_, _ = w.Write([]byte(`{"title": "Dosa", "servings": 4, "ingredients": [], "steps": ["grind"]}`))
	}))
	defer server.Close()

	result, err := client.New(server.URL).GetRecipe(context.Background(), "dosa", []string{"vegan", "gluten-free"})

	require.NoError(t, err)
	require.True(t, result.CacheHit)
	require.Equal(t, "Dosa", result.Recipe.Title)
	require.Equal(t, 4, *result.Recipe.Servings)
	require.Equal(t, []string{"grind"}, result.Recipe.Steps)
	require.NotNil(t, result.Recipe.Ingredients)
}

func TestClient_GetRecipeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail": "could not parse generated recipe: no JSON object found in response"}`))
	}))
	defer server.Close()

	result, err := client.New(server.URL).GetRecipe(context.Background(), "soup", nil)

	require.Nil(t, result)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	require.Contains(t, apiErr.Detail, "could not parse generated recipe")
}

func TestClient_GetRecipeWithoutRestrictions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["dietary_restrictions"]
		require.False(t, present)

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Recipe-Cache", "MISS")
		_, _ = w.Write([]byte(`{"title": "Soup", "ingredients": [], "steps": []}`))
	}))
	defer server.Close()

	result, err := client.New(server.URL).GetRecipe(context.Background(), "soup", nil)

	require.NoError(t, err)
	require.False(t, result.CacheHit)
}

func TestClient_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		}))
		defer server.Close()

		require.NoError(t, client.New(server.URL).Health(context.Background()))
	})

	t.Run("unhealthy", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("down"))
		}))
		defer server.Close()

		err := client.New(server.URL).Health(context.Background())

		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
		require.Equal(t, "down", apiErr.Detail)
	})

	t.Run("unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		require.Error(t, client.New(url).Health(context.Background()))
	})
}
