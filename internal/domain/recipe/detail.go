package recipe

import "math"

// RecipeDetail composes a base recipe with its normalized steps, tips and
// equipment, plus the current scale factor. Normalization runs exactly
// once, at assembly. The steps, tips and equipment slices are never
// mutated in place; rescaling produces a new RecipeDetail that shares
// them, so previously rendered views stay valid.
type RecipeDetail struct {
	recipe      *Recipe
	steps       []Step
	tips        []Tip
	equipment   []string
	scaleFactor float64
}

// IngredientView is one ingredient of a scaled recipe view. Substitutions
// is reserved for backend-sourced alternatives and is always empty for
// now.
type IngredientView struct {
	Name          string   `json:"name"`
	Quantity      string   `json:"quantity"`
	Unit          string   `json:"unit,omitempty"`
	Substitutions []string `json:"substitutions"`
}

// AssembleDetail normalizes a recipe's content payloads into an immutable
// detail view with a scale factor of 1.0.
func AssembleDetail(r *Recipe) *RecipeDetail {
	return &RecipeDetail{
		recipe:      r,
		steps:       NormalizeInstructions(r.instructions),
		tips:        NormalizeTips(r.tips),
		equipment:   NormalizeEquipment(r.equipment),
		scaleFactor: 1.0,
	}
}

// WithScale returns a new detail at the given scale factor, sharing the
// normalized step, tip and equipment slices with the receiver.
func (d *RecipeDetail) WithScale(factor float64) (*RecipeDetail, error) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, ErrInvalidScaleFactor
	}
	clone := *d
	clone.scaleFactor = factor
	return &clone, nil
}

// Recipe returns the base recipe
func (d *RecipeDetail) Recipe() *Recipe {
	return d.recipe
}

// Steps returns the normalized instruction steps
func (d *RecipeDetail) Steps() []Step {
	return d.steps
}

// Tips returns the normalized cooking tips
func (d *RecipeDetail) Tips() []Tip {
	return d.tips
}

// Equipment returns the normalized equipment list
func (d *RecipeDetail) Equipment() []string {
	return d.equipment
}

// ScaleFactor returns the current scale factor
func (d *RecipeDetail) ScaleFactor() float64 {
	return d.scaleFactor
}

// ScaledIngredients derives the ingredient list at the current scale
// factor. Textual quantities without a numeric token pass through
// unchanged.
func (d *RecipeDetail) ScaledIngredients() []IngredientView {
	views := make([]IngredientView, len(d.recipe.ingredients))
	for i, ingredient := range d.recipe.ingredients {
		views[i] = IngredientView{
			Name:          ingredient.Name,
			Quantity:      ScaleQuantity(ingredient.Quantity, d.scaleFactor),
			Unit:          ingredient.Unit,
			Substitutions: []string{},
		}
	}
	return views
}

// ScaledNutrition derives nutrition at the current scale factor. It
// returns nil when the base recipe carries no nutrition; optional fields
// absent in the base stay absent in the scaled view.
func (d *RecipeDetail) ScaledNutrition() *NutritionInfo {
	base := d.recipe.nutrition
	if base == nil {
		return nil
	}

	return &NutritionInfo{
		Calories: base.Calories * d.scaleFactor,
		Protein:  scaleOptional(base.Protein, d.scaleFactor),
		Carbs:    scaleOptional(base.Carbs, d.scaleFactor),
		Fat:      scaleOptional(base.Fat, d.scaleFactor),
		Fiber:    scaleOptional(base.Fiber, d.scaleFactor),
		Sugar:    scaleOptional(base.Sugar, d.scaleFactor),
		Sodium:   scaleOptional(base.Sodium, d.scaleFactor),
	}
}

// ScaledServings derives the serving count at the current scale factor,
// rounded half up.
func (d *RecipeDetail) ScaledServings() int {
	return int(math.Floor(float64(d.recipe.servings)*d.scaleFactor + 0.5))
}

func scaleOptional(value *float64, factor float64) *float64 {
	if value == nil {
		return nil
	}
	scaled := *value * factor
	return &scaled
}
