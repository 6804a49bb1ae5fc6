package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use
var (
	recipeValidator     *validator.Validate
	recipeValidatorOnce sync.Once
)

func getValidator() *validator.Validate {
	recipeValidatorOnce.Do(func() {
		recipeValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	return recipeValidator
}

// ValidateRecipe enforces the acceptance rules every stored Recipe must satisfy.
func ValidateRecipe(r *Recipe) error {
	if r == nil {
		return errors.New("recipe cannot be nil")
	}

	if strings.TrimSpace(r.Title) == "" {
		return ErrMissingTitle
	}

	if err := getValidator().Struct(r); err != nil {
		return fmt.Errorf("recipe validation failed: %w", err)
	}

	return nil
}

// recipeFromObject builds a Recipe field by field. Only title is mandatory;
// every other field is kept when it has a usable shape and dropped otherwise.
func recipeFromObject(obj map[string]any) (*Recipe, error) {
	title, ok := obj["title"].(string)
	if !ok || strings.TrimSpace(title) == "" {
		return nil, ErrMissingTitle
	}

	recipe := &Recipe{
		Title:               title,
		Cuisine:             optionalString(obj["cuisine"]),
		PreparationTime:     optionalString(obj["preparation_time"]),
		CookingTime:         optionalString(obj["cooking_time"]),
		Ingredients:         ingredientList(obj["ingredients"]),
		Steps:               stringList(obj["steps"]),
		Nutrition:           nutritionMap(obj["nutrition"]),
		Difficulty:          optionalString(obj["difficulty"]),
		Servings:            servingsCount(obj["servings"]),
		Storage:             optionalString(obj["storage"]),
		DietaryRestrictions: stringList(obj["dietary_restrictions"]),
		Substitutions:       stringList(obj["substitutions"]),
		Pitfalls:            stringList(obj["pitfalls"]),
		Plating:             optionalString(obj["plating"]),
		WinePairing:         optionalString(obj["wine_pairing"]),
		Leftovers:           optionalString(obj["leftovers"]),
		MealPrep:            optionalString(obj["meal_prep"]),
		AllergenWarnings:    stringList(obj["allergen_warnings"]),
		MakeAhead:           optionalString(obj["make_ahead"]),
		SideDishes:          stringList(obj["side_dishes"]),
	}
	recipe.Normalize()

	return recipe, nil
}

func optionalString(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

// stringList accepts an array of strings or a lone string.
// Non-string elements are skipped.
func stringList(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// ingredientList accepts {name, quantity} objects and bare names.
func ingredientList(v any) []Ingredient {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	out := make([]Ingredient, 0, len(items))
	for _, item := range items {
		switch t := item.(type) {
		case string:
			if strings.TrimSpace(t) != "" {
				out = append(out, Ingredient{Name: t})
			}
		case map[string]any:
			name, nameOK := t["name"].(string)
			if !nameOK || strings.TrimSpace(name) == "" {
				continue
			}
			out = append(out, Ingredient{Name: name, Quantity: scalarText(t["quantity"])})
		}
	}
	return out
}

func scalarText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

// servingsCount accepts a non-negative integral number or numeric string.
func servingsCount(v any) *int {
	var f float64
	switch t := v.(type) {
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return nil
	}

	n := int(f)
	return &n
}

func nutritionMap(v any) map[string]any {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	out := make(map[string]any, len(obj))
	for k, val := range obj {
		out[k] = plainValue(val)
	}
	return out
}

// plainValue replaces json.Number with native numbers so the value
// round-trips through every cache codec unchanged.
func plainValue(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = plainValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = plainValue(val)
		}
		return out
	default:
		return v
	}
}
