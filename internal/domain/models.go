package domain

// Ingredient is a single recipe ingredient.
type Ingredient struct {
	Name     string `json:"name"     msgpack:"name"     validate:"required"`
	Quantity string `json:"quantity" msgpack:"quantity"`
}

// Recipe is the structured recipe returned to clients and persisted in the cache.
// Optional scalars are pointers so that absent and empty stay distinguishable.
type Recipe struct {
	Title               string         `json:"title"                          msgpack:"title"                          validate:"required"`
	Cuisine             *string        `json:"cuisine,omitempty"              msgpack:"cuisine,omitempty"`
	PreparationTime     *string        `json:"preparation_time,omitempty"     msgpack:"preparation_time,omitempty"`
	CookingTime         *string        `json:"cooking_time,omitempty"         msgpack:"cooking_time,omitempty"`
	Ingredients         []Ingredient   `json:"ingredients"                    msgpack:"ingredients"                    validate:"dive"`
	Steps               []string       `json:"steps"                          msgpack:"steps"`
	Nutrition           map[string]any `json:"nutrition,omitempty"            msgpack:"nutrition,omitempty"`
	Difficulty          *string        `json:"difficulty,omitempty"           msgpack:"difficulty,omitempty"`
	Servings            *int           `json:"servings,omitempty"             msgpack:"servings,omitempty"             validate:"omitempty,min=0"`
	Storage             *string        `json:"storage,omitempty"              msgpack:"storage,omitempty"`
	DietaryRestrictions []string       `json:"dietary_restrictions,omitempty" msgpack:"dietary_restrictions,omitempty"`
	Substitutions       []string       `json:"substitutions,omitempty"        msgpack:"substitutions,omitempty"`
	Pitfalls            []string       `json:"pitfalls,omitempty"             msgpack:"pitfalls,omitempty"`
	Plating             *string        `json:"plating,omitempty"              msgpack:"plating,omitempty"`
	WinePairing         *string        `json:"wine_pairing,omitempty"         msgpack:"wine_pairing,omitempty"`
	Leftovers           *string        `json:"leftovers,omitempty"            msgpack:"leftovers,omitempty"`
	MealPrep            *string        `json:"meal_prep,omitempty"            msgpack:"meal_prep,omitempty"`
	AllergenWarnings    []string       `json:"allergen_warnings,omitempty"    msgpack:"allergen_warnings,omitempty"`
	MakeAhead           *string        `json:"make_ahead,omitempty"           msgpack:"make_ahead,omitempty"`
	SideDishes          []string       `json:"side_dishes,omitempty"          msgpack:"side_dishes,omitempty"`
}

// Normalize guarantees the always-present sequences are non-nil so they
// serialize as empty arrays rather than null.
func (r *Recipe) Normalize() {
	if r.Ingredients == nil {
		r.Ingredients = []Ingredient{}
	}
	if r.Steps == nil {
		r.Steps = []string{}
	}
}

// Resolution is the outcome of resolving a recipe query.
type Resolution struct {
	Recipe *Recipe
	Key    string
	Hit    bool
}
