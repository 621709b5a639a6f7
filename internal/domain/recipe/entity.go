// Package recipe contains the core domain logic for recipe normalization
// and scaling. It ingests heterogeneously-encoded recipe content from the
// backend and reduces it to canonical steps, tips and equipment, and it
// derives proportionally scaled views of ingredients and nutrition.
//
// The package performs no I/O. Apart from the payload-decode boundary it
// is fail-open: malformed content degrades to a usable default instead of
// surfacing an error.
package recipe

// Recipe is the immutable source of a recipe as fetched from the backend.
// The content fields keep their decoded payload shape; normalization into
// steps, tips and equipment happens once, when a RecipeDetail is
// assembled.
type Recipe struct {
	id          string
	name        string
	description string
	servings    int

	ingredients []Ingredient
	nutrition   *NutritionInfo

	// Raw content payloads, normalized at assembly time
	instructions ContentPayload
	tips         ContentPayload
	equipment    ContentPayload
}

// NewRecipe creates a recipe from already-decoded parts. Most callers go
// through ParsePayload instead; this constructor exists for embeddings
// that build recipes programmatically.
func NewRecipe(id, name string, servings int, ingredients []Ingredient) (*Recipe, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	if name == "" {
		return nil, ErrMissingName
	}
	if servings <= 0 {
		return nil, ErrInvalidServings
	}

	return &Recipe{
		id:          id,
		name:        name,
		servings:    servings,
		ingredients: ingredients,
	}, nil
}

// WithNutrition attaches nutritional information.
func (r *Recipe) WithNutrition(info *NutritionInfo) *Recipe {
	clone := *r
	clone.nutrition = info
	return &clone
}

// WithInstructions attaches an instruction payload.
func (r *Recipe) WithInstructions(payload ContentPayload) *Recipe {
	clone := *r
	clone.instructions = payload
	return &clone
}

// WithTips attaches a cooking-tips payload.
func (r *Recipe) WithTips(payload ContentPayload) *Recipe {
	clone := *r
	clone.tips = payload
	return &clone
}

// WithEquipment attaches an equipment payload.
func (r *Recipe) WithEquipment(payload ContentPayload) *Recipe {
	clone := *r
	clone.equipment = payload
	return &clone
}

// ID returns the recipe's identifier
func (r *Recipe) ID() string {
	return r.id
}

// Name returns the recipe's name
func (r *Recipe) Name() string {
	return r.name
}

// Description returns the recipe's description
func (r *Recipe) Description() string {
	return r.description
}

// Servings returns the unscaled number of servings
func (r *Recipe) Servings() int {
	return r.servings
}

// Ingredients returns the recipe's ingredients
func (r *Recipe) Ingredients() []Ingredient {
	return r.ingredients
}

// Nutrition returns the recipe's nutrition information, nil when the
// backend delivered none
func (r *Recipe) Nutrition() *NutritionInfo {
	return r.nutrition
}
