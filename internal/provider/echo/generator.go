// Package echo provides an offline recipe generator.
// It implements the domain.Generator interface without making external API calls,
// answering every prompt with a deterministic recipe built from the request itself.
package echo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/davidbz/chefgenius/internal/domain"
	"github.com/davidbz/chefgenius/internal/observability"
)

const (
	generatorName     = "echo"
	formatMarker      = ". Output the recipe"
	restrictionMarker = " with dietary restrictions: "
	defaultServings   = 2
)

// Generator implements domain.Generator for offline development and tests.
type Generator struct {
	name string
}

var _ domain.Generator = (*Generator)(nil)

// NewGenerator creates a new echo generator.
// No configuration is required as this generator operates entirely in-memory.
func NewGenerator() *Generator {
	return &Generator{name: generatorName}
}

// Generate returns a fenced JSON recipe echoing the query and restrictions found in prompt.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	query, restrictions := parsePrompt(prompt)
	if query == "" {
		return "", nil
	}

	observability.FromContext(ctx).Debug("echoing recipe",
		observability.String("query", query),
		observability.Strings("restrictions", restrictions))

	servings := defaultServings
	recipe := domain.Recipe{
		Title:   titleCase(query),
		Cuisine: strPtr("Home cooking"),
		Ingredients: []domain.Ingredient{
			{Name: query, Quantity: "as needed"},
			{Name: "salt", Quantity: "to taste"},
		},
		Steps: []string{
			fmt.Sprintf("Gather everything you need for %s.", query),
			"Cook until done and season to taste.",
			"Serve warm.",
		},
		Difficulty:          strPtr("easy"),
		Servings:            &servings,
		DietaryRestrictions: restrictions,
	}

	data, err := json.MarshalIndent(recipe, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode echo recipe: %w", err)
	}

	return "```json\n" + string(data) + "\n```", nil
}

// Name returns the generator identifier.
func (g *Generator) Name() string {
	return g.name
}

// parsePrompt recovers the query and restriction list from a prompt built by domain.BuildPrompt.
func parsePrompt(prompt string) (string, []string) {
	head := prompt
	if idx := strings.Index(prompt, formatMarker); idx >= 0 {
		head = prompt[:idx]
	}

	query, list, found := strings.Cut(head, restrictionMarker)
	query = strings.TrimSpace(query)
	if !found {
		return query, nil
	}

	var restrictions []string
	for _, r := range strings.Split(list, ",") {
		if r = strings.TrimSpace(r); r != "" {
			restrictions = append(restrictions, r)
		}
	}
	return query, restrictions
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func strPtr(s string) *string {
	return &s
}
