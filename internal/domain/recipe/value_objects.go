package recipe

import "errors"

// Value Objects - Immutable objects that describe aspects of the domain

// Ingredient represents one ingredient line of a recipe. Quantity is kept
// as the semi-structured text the backend delivered ("2 cups", "a pinch")
// so that scaling can rewrite the number without losing the formatting.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit,omitempty"`
}

// Validate validates the ingredient
func (i Ingredient) Validate() error {
	if i.Name == "" {
		return errors.New("ingredient name is required")
	}
	return nil
}

// Step is one discrete cooking instruction produced by normalization.
// Step numbers are contiguous starting at 1 within a single normalization
// result. A nil DurationMinutes means "no estimate" or "variable".
type Step struct {
	StepNumber      int    `json:"step_number"`
	Instruction     string `json:"instruction"`
	DurationMinutes *int   `json:"duration_minutes,omitempty"`
	Tips            string `json:"tips,omitempty"`
}

// Validate validates the step
func (s Step) Validate() error {
	if s.StepNumber < 1 {
		return errors.New("step number must be positive")
	}
	if s.Instruction == "" {
		return errors.New("step instruction is required")
	}
	return nil
}

// Tip is an auxiliary cooking hint attached to a recipe.
type Tip struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// TipCategoryGeneral is the category assigned to tips that arrive as
// plain prose with no category of their own.
const TipCategoryGeneral = "general"

// NutritionInfo contains per-recipe nutritional information. Calories is
// always present; the remaining fields are optional and stay absent when
// the backend did not deliver them. All quantities are grams except
// Sodium, which is milligrams.
type NutritionInfo struct {
	Calories float64  `json:"calories"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
	Fiber    *float64 `json:"fiber,omitempty"`
	Sugar    *float64 `json:"sugar,omitempty"`
	Sodium   *float64 `json:"sodium,omitempty"`
}
