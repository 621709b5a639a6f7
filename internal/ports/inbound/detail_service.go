// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the engine exposes to presentation collaborators
package inbound

import "context"

// RecipeDetailService is the primary port for the normalization and
// scaling engine. The context carries the caller's deadline convention;
// the engine itself never blocks.
type RecipeDetailService interface {
	// AssembleDetail decodes an upstream recipe payload, normalizes its
	// content and derives the views at the given scale factor. A factor
	// of 0 means "unscaled" (1.0).
	AssembleDetail(ctx context.Context, payload []byte, scaleFactor float64) (*RecipeDetailDTO, error)

	// StartCooking begins a guided-cooking session sized to the step
	// count of a previously assembled detail.
	StartCooking(ctx context.Context, recipeID string, stepCount int) (*SessionSnapshotDTO, error)

	// ResumeCooking rebuilds a session snapshot persisted by an
	// external storage collaborator and applies a completion update.
	ResumeCooking(ctx context.Context, snapshot SessionSnapshotDTO, stepIndex int, completed bool) (*SessionSnapshotDTO, error)
}

// Response DTOs

// RecipeDetailDTO is the presentation view of an assembled recipe at a
// given scale factor.
type RecipeDetailDTO struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	ScaleFactor float64             `json:"scale_factor"`
	Servings    int                 `json:"servings"`
	Ingredients []IngredientViewDTO `json:"ingredients"`
	Steps       []StepDTO           `json:"steps"`
	Tips        []TipDTO            `json:"tips"`
	Equipment   []string            `json:"equipment"`
	Nutrition   *NutritionDTO       `json:"nutrition,omitempty"`
}

// IngredientViewDTO is one scaled ingredient line.
type IngredientViewDTO struct {
	Name          string   `json:"name"`
	Quantity      string   `json:"quantity"`
	Unit          string   `json:"unit,omitempty"`
	Substitutions []string `json:"substitutions"`
}

// StepDTO is one normalized instruction step.
type StepDTO struct {
	StepNumber      int    `json:"step_number"`
	Instruction     string `json:"instruction"`
	DurationMinutes *int   `json:"duration_minutes,omitempty"`
	Tips            string `json:"tips,omitempty"`
}

// TipDTO is one normalized cooking tip.
type TipDTO struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// NutritionDTO is the scaled nutrition view. Optional fields absent in
// the source recipe stay absent here.
type NutritionDTO struct {
	Calories float64  `json:"calories"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
	Fiber    *float64 `json:"fiber,omitempty"`
	Sugar    *float64 `json:"sugar,omitempty"`
	Sodium   *float64 `json:"sodium,omitempty"`
}

// SessionSnapshotDTO is the serializable cooking-session state handed to
// presentation and storage collaborators.
type SessionSnapshotDTO struct {
	RecipeID        string  `json:"recipe_id"`
	StepCompletions []bool  `json:"step_completions"`
	StartTime       string  `json:"start_time"`
	EndTime         *string `json:"end_time,omitempty"`
	IsPaused        bool    `json:"is_paused"`
	Progress        float64 `json:"progress"`
	IsCompleted     bool    `json:"is_completed"`
}
