package openai_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/chefgenius/internal/domain"
	"github.com/davidbz/chefgenius/internal/provider/openai"
)

func testConfig(baseURL string) openai.Config {
	return openai.Config{
		APIKey:      "test-api-key",
		BaseURL:     baseURL,
		Model:       "gpt-4o-mini",
		Timeout:     5,
		MaxRetries:  0,
		Temperature: 0.2,
	}
}

func TestNewGenerator_Success(t *testing.T) {
	generator, err := openai.NewGenerator(testConfig("https://api.openai.com/v1"))

	require.NoError(t, err)
	require.NotNil(t, generator)
	require.Equal(t, "openai", generator.Name())
	require.Equal(t, "gpt-4o-mini", generator.Model())
}

func TestNewGenerator_MissingAPIKey(t *testing.T) {
	config := testConfig("https://api.openai.com/v1")
	config.APIKey = ""

	generator, err := openai.NewGenerator(config)

	require.Error(t, err)
	require.Nil(t, generator)
	require.Contains(t, err.Error(), "OpenAI API key is required")
}

func TestNewGenerator_MissingModel(t *testing.T) {
	config := testConfig("https://api.openai.com/v1")
	config.Model = ""

	generator, err := openai.NewGenerator(config)

	require.Error(t, err)
	require.Nil(t, generator)
}

func TestGenerator_Generate(t *testing.T) {
	var captured struct {
		Model       string  `json:"model"`
		Temperature float64 `json:"temperature"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o-mini",
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": "{\"title\": \"Dosa\"}"},
				"finish_reason": "stop"
			}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 5, "total_tokens": 17}
		}`))
	}))
	defer server.Close()

	generator, err := openai.NewGenerator(testConfig(server.URL))
	require.NoError(t, err)

	text, err := generator.Generate(context.Background(), "Dosa for 4")

	require.NoError(t, err)
	require.JSONEq(t, `{"title": "Dosa"}`, text)
	require.Equal(t, "gpt-4o-mini", captured.Model)
	require.InEpsilon(t, 0.2, captured.Temperature, 0.0001)
	require.Len(t, captured.Messages, 2)
	require.Equal(t, "system", captured.Messages[0].Role)
	require.Equal(t, domain.SystemPrompt, captured.Messages[0].Content)
	require.Equal(t, "user", captured.Messages[1].Role)
	require.Equal(t, "Dosa for 4", captured.Messages[1].Content)
}

func TestGenerator_GenerateNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "chatcmpl-2", "object": "chat.completion", "model": "gpt-4o-mini", "choices": []}`))
	}))
	defer server.Close()

	generator, err := openai.NewGenerator(testConfig(server.URL))
	require.NoError(t, err)

	_, err = generator.Generate(context.Background(), "Dosa")

	require.ErrorIs(t, err, openai.ErrNoChoices)
}

func TestGenerator_GenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": {"message": "overloaded", "type": "server_error"}}`))
	}))
	defer server.Close()

	generator, err := openai.NewGenerator(testConfig(server.URL))
	require.NoError(t, err)

	text, err := generator.Generate(context.Background(), "Dosa")

	require.Error(t, err)
	require.Empty(t, text)
	require.Contains(t, err.Error(), "OpenAI API call failed")
}
