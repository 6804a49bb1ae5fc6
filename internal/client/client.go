// Package client is a typed HTTP client for the recipe service.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/davidbz/chefgenius/internal/domain"
)

const defaultTimeout = 3 * time.Minute

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("recipe service returned %d: %s", e.StatusCode, e.Detail)
}

// Result is a recipe plus whether the service answered from its cache.
type Result struct {
	Recipe   *domain.Recipe
	CacheHit bool
}

// Client calls the recipe service over HTTP.
type Client struct {
	http *resty.Client
}

// New creates a client for the service at baseURL.
func New(baseURL string) *Client {
	return NewWithResty(resty.New().SetTimeout(defaultTimeout), baseURL)
}

// NewWithResty wraps a preconfigured resty client.
func NewWithResty(httpClient *resty.Client, baseURL string) *Client {
	return &Client{
		http: httpClient.
			SetBaseURL(baseURL).
			SetHeader("Accept", "application/json"),
	}
}

type errorBody struct {
	Detail string `json:"detail"`
}

// GetRecipe fetches the recipe for query and restrictions.
func (c *Client) GetRecipe(ctx context.Context, query string, restrictions []string) (*Result, error) {
	var recipe domain.Recipe
	var apiErr errorBody

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("query", query).
		SetQueryParamsFromValues(map[string][]string{"dietary_restrictions": restrictions}).
		SetResult(&recipe).
		SetError(&apiErr).
		Get("/recipe")
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, newAPIError(res, apiErr)
	}

	recipe.Normalize()
	return &Result{
		Recipe:   &recipe,
		CacheHit: res.Header().Get("X-Recipe-Cache") == "HIT",
	}, nil
}

// Health reports whether the service answers its health check.
func (c *Client) Health(ctx context.Context) error {
	var apiErr errorBody
	res, err := c.http.R().
		SetContext(ctx).
		SetError(&apiErr).
		Get("/health")
	if err != nil {
		return fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return newAPIError(res, apiErr)
	}
	return nil
}

func newAPIError(res *resty.Response, body errorBody) *APIError {
	detail := body.Detail
	if detail == "" {
		detail = string(res.Body())
	}
	return &APIError{StatusCode: res.StatusCode(), Detail: detail}
}
