package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCacheMiss indicates no cached entry was found.
	ErrCacheMiss = errors.New("cache miss")

	// ErrEmptyQuery is returned when the recipe query is blank.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrGenerationTimeout indicates the generator did not answer within its deadline.
	ErrGenerationTimeout = errors.New("generation timed out")

	// ErrEmptyGeneration indicates the generator returned no usable text.
	ErrEmptyGeneration = errors.New("generator returned an empty result")

	// ErrNoJSONObject indicates the text holds no brace-delimited region.
	ErrNoJSONObject = errors.New("no JSON object found in response")

	// ErrTrailingData indicates more JSON follows the first decoded value.
	ErrTrailingData = errors.New("unexpected data after JSON object")

	// ErrNotObject indicates the decoded value is not a JSON object.
	ErrNotObject = errors.New("decoded value is not a JSON object")

	// ErrMissingTitle indicates the recipe lacks a usable title.
	ErrMissingTitle = errors.New("recipe title is missing or not a non-empty string")
)

// CacheIOError reports an unavailable or corrupt cache store.
type CacheIOError struct {
	Op  string
	Key string
	Err error
}

func (e *CacheIOError) Error() string {
	return fmt.Sprintf("cache %s failed for key %q: %v", e.Op, e.Key, e.Err)
}

func (e *CacheIOError) Unwrap() error {
	return e.Err
}

// GenerationUnavailableError reports that the generator could not produce text.
type GenerationUnavailableError struct {
	Provider string
	Err      error
}

func (e *GenerationUnavailableError) Error() string {
	if e.Provider == "" {
		return fmt.Sprintf("recipe generation unavailable: %v", e.Err)
	}
	return fmt.Sprintf("recipe generation unavailable (%s): %v", e.Provider, e.Err)
}

func (e *GenerationUnavailableError) Unwrap() error {
	return e.Err
}

// GenerationParseError reports generator output that could not be turned into a Recipe.
// Raw holds the untouched generator text for diagnostics.
type GenerationParseError struct {
	Raw string
	Err error
}

func (e *GenerationParseError) Error() string {
	return fmt.Sprintf("could not parse generated recipe: %v", e.Err)
}

func (e *GenerationParseError) Unwrap() error {
	return e.Err
}
