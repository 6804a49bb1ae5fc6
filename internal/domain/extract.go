package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

const codeFence = "```"

// ExtractRecipe turns raw generator text into a validated Recipe.
// Every failure is reported as a *GenerationParseError carrying the raw text.
func ExtractRecipe(raw string) (*Recipe, error) {
	payload, err := extractObject(raw)
	if err != nil {
		return nil, &GenerationParseError{Raw: raw, Err: err}
	}

	recipe, err := DecodeRecipe(payload)
	if err != nil {
		return nil, &GenerationParseError{Raw: raw, Err: err}
	}

	return recipe, nil
}

// DecodeRecipe permissively decodes a single JSON object into a Recipe.
func DecodeRecipe(payload []byte) (*Recipe, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid JSON: %w", ErrTrailingData)
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}

	recipe, err := recipeFromObject(obj)
	if err != nil {
		return nil, err
	}

	if err := ValidateRecipe(recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

// extractObject isolates the outermost brace-delimited region of the text.
func extractObject(raw string) ([]byte, error) {
	text := stripCodeFence(strings.TrimSpace(raw))

	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < start {
		return nil, ErrNoJSONObject
	}

	return []byte(text[start : end+1]), nil
}

// stripCodeFence removes a surrounding ``` fence and its optional language tag.
func stripCodeFence(text string) string {
	if len(text) < 2*len(codeFence) ||
		!strings.HasPrefix(text, codeFence) ||
		!strings.HasSuffix(text, codeFence) {
		return text
	}

	inner := text[len(codeFence) : len(text)-len(codeFence)]
	inner = strings.TrimLeftFunc(inner, isLanguageTagRune)

	return strings.TrimSpace(inner)
}

func isLanguageTagRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '+'
}
