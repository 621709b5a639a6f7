// Package recipe provides the application layer for the recipe engine
// This implements the use cases defined in the inbound ports
package recipe

import (
	"context"
	"fmt"
	"time"

	"github.com/forkful/kitchen/internal/domain/cooking"
	"github.com/forkful/kitchen/internal/domain/recipe"
	"github.com/forkful/kitchen/internal/ports/inbound"
	"go.uber.org/zap"
)

// DetailService implements the recipe detail use cases. It is stateless:
// the embedding holds the returned snapshots.
type DetailService struct {
	logger *zap.Logger
}

// NewDetailService creates a new detail service
func NewDetailService(logger *zap.Logger) inbound.RecipeDetailService {
	return &DetailService{
		logger: logger.Named("detail-service"),
	}
}

// AssembleDetail decodes, normalizes and scales one recipe payload.
func (s *DetailService) AssembleDetail(ctx context.Context, payload []byte, scaleFactor float64) (*inbound.RecipeDetailDTO, error) {
	if scaleFactor == 0 {
		scaleFactor = 1.0
	}

	base, err := recipe.ParsePayload(payload)
	if err != nil {
		return nil, fmt.Errorf("parse recipe payload: %w", err)
	}

	detail := recipe.AssembleDetail(base)
	if scaleFactor != 1.0 {
		detail, err = detail.WithScale(scaleFactor)
		if err != nil {
			return nil, fmt.Errorf("scale recipe %q: %w", base.ID(), err)
		}
	}

	s.logger.Info("Recipe detail assembled",
		zap.String("recipe_id", base.ID()),
		zap.Int("steps", len(detail.Steps())),
		zap.Int("tips", len(detail.Tips())),
		zap.Float64("scale_factor", detail.ScaleFactor()),
	)

	return s.detailToDTO(detail), nil
}

// StartCooking begins a guided-cooking session.
func (s *DetailService) StartCooking(ctx context.Context, recipeID string, stepCount int) (*inbound.SessionSnapshotDTO, error) {
	session := cooking.StartSession(recipeID, stepCount)

	s.logger.Info("Cooking session started",
		zap.String("recipe_id", recipeID),
		zap.Int("step_count", stepCount),
	)

	return s.sessionToDTO(session), nil
}

// ResumeCooking restores a persisted session snapshot and applies one
// completion update.
func (s *DetailService) ResumeCooking(ctx context.Context, snapshot inbound.SessionSnapshotDTO, stepIndex int, completed bool) (*inbound.SessionSnapshotDTO, error) {
	domainSnap, err := s.dtoToSnapshot(snapshot)
	if err != nil {
		return nil, fmt.Errorf("restore session for recipe %q: %w", snapshot.RecipeID, err)
	}

	session, err := cooking.Restore(domainSnap).WithStep(stepIndex, completed)
	if err != nil {
		return nil, fmt.Errorf("update step %d: %w", stepIndex, err)
	}

	s.logger.Debug("Cooking session updated",
		zap.String("recipe_id", session.RecipeID()),
		zap.Int("step_index", stepIndex),
		zap.Bool("completed", completed),
		zap.Float64("progress", session.Progress()),
	)

	return s.sessionToDTO(session), nil
}

// Helper methods

// detailToDTO converts a domain detail to its presentation view.
func (s *DetailService) detailToDTO(detail *recipe.RecipeDetail) *inbound.RecipeDetailDTO {
	base := detail.Recipe()

	ingredients := make([]inbound.IngredientViewDTO, 0, len(base.Ingredients()))
	for _, view := range detail.ScaledIngredients() {
		ingredients = append(ingredients, inbound.IngredientViewDTO{
			Name:          view.Name,
			Quantity:      view.Quantity,
			Unit:          view.Unit,
			Substitutions: view.Substitutions,
		})
	}

	steps := make([]inbound.StepDTO, 0, len(detail.Steps()))
	for _, step := range detail.Steps() {
		steps = append(steps, inbound.StepDTO{
			StepNumber:      step.StepNumber,
			Instruction:     step.Instruction,
			DurationMinutes: step.DurationMinutes,
			Tips:            step.Tips,
		})
	}

	tips := make([]inbound.TipDTO, 0, len(detail.Tips()))
	for _, tip := range detail.Tips() {
		tips = append(tips, inbound.TipDTO{Text: tip.Text, Category: tip.Category})
	}

	var nutrition *inbound.NutritionDTO
	if scaled := detail.ScaledNutrition(); scaled != nil {
		nutrition = &inbound.NutritionDTO{
			Calories: scaled.Calories,
			Protein:  scaled.Protein,
			Carbs:    scaled.Carbs,
			Fat:      scaled.Fat,
			Fiber:    scaled.Fiber,
			Sugar:    scaled.Sugar,
			Sodium:   scaled.Sodium,
		}
	}

	return &inbound.RecipeDetailDTO{
		ID:          base.ID(),
		Name:        base.Name(),
		Description: base.Description(),
		ScaleFactor: detail.ScaleFactor(),
		Servings:    detail.ScaledServings(),
		Ingredients: ingredients,
		Steps:       steps,
		Tips:        tips,
		Equipment:   detail.Equipment(),
		Nutrition:   nutrition,
	}
}

// sessionToDTO converts a session to its serializable snapshot view.
func (s *DetailService) sessionToDTO(session cooking.Session) *inbound.SessionSnapshotDTO {
	snap := session.Snapshot()

	var end *string
	if snap.EndTime != nil {
		formatted := snap.EndTime.Format(time.RFC3339Nano)
		end = &formatted
	}

	return &inbound.SessionSnapshotDTO{
		RecipeID:        snap.RecipeID,
		StepCompletions: snap.StepCompletions,
		StartTime:       snap.StartTime.Format(time.RFC3339Nano),
		EndTime:         end,
		IsPaused:        snap.IsPaused,
		Progress:        session.Progress(),
		IsCompleted:     session.IsCompleted(),
	}
}

// dtoToSnapshot converts a snapshot DTO back to its domain form.
func (s *DetailService) dtoToSnapshot(dto inbound.SessionSnapshotDTO) (cooking.Snapshot, error) {
	start, err := time.Parse(time.RFC3339Nano, dto.StartTime)
	if err != nil {
		return cooking.Snapshot{}, fmt.Errorf("parse start time: %w", err)
	}

	var end *time.Time
	if dto.EndTime != nil {
		parsed, err := time.Parse(time.RFC3339Nano, *dto.EndTime)
		if err != nil {
			return cooking.Snapshot{}, fmt.Errorf("parse end time: %w", err)
		}
		end = &parsed
	}

	return cooking.Snapshot{
		RecipeID:        dto.RecipeID,
		StepCompletions: dto.StepCompletions,
		StartTime:       start,
		EndTime:         end,
		IsPaused:        dto.IsPaused,
	}, nil
}
