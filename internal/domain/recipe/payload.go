package recipe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// The backend encodes the optional content fields (detailed_instructions,
// cooking_tips, equipment_needed) in three ways depending on which service
// produced the recipe: a structured JSON array, a JSON-encoded string that
// itself holds an array, or plain prose. ContentPayload decodes all of
// them into an explicit tagged variant so the normalizers can dispatch on
// shape instead of re-inspecting raw JSON.

// PayloadKind identifies how a content field was encoded upstream.
type PayloadKind int

const (
	// PayloadAbsent means the field was missing or null.
	PayloadAbsent PayloadKind = iota
	// PayloadStructured means the field decoded to a JSON array.
	PayloadStructured
	// PayloadText means the field holds prose to be segmented.
	PayloadText
)

// ContentPayload is the decoded form of one content field. The zero value
// is the absent payload.
type ContentPayload struct {
	kind  PayloadKind
	items []json.RawMessage
	text  string
}

// TextPayload builds a prose payload.
func TextPayload(text string) ContentPayload {
	return ContentPayload{kind: PayloadText, text: text}
}

// StructuredPayload builds a structured payload from raw array elements.
func StructuredPayload(items []json.RawMessage) ContentPayload {
	return ContentPayload{kind: PayloadStructured, items: items}
}

// Kind returns the payload kind.
func (p ContentPayload) Kind() PayloadKind {
	return p.kind
}

// UnmarshalJSON decodes a content field of any supported shape. It never
// fails: unrecognized shapes degrade to a text payload so downstream
// normalization can fall back to prose segmentation.
func (p *ContentPayload) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*p = ContentPayload{}
		return nil
	}

	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err == nil {
			*p = StructuredPayload(items)
			return nil
		}
		*p = TextPayload(string(trimmed))
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			*p = TextPayload(string(trimmed))
			return nil
		}
		*p = decodeStringPayload(s)
	default:
		// Numbers, booleans and objects were never valid encodings.
		// Treat the raw text as prose rather than erroring.
		*p = TextPayload(string(trimmed))
	}
	return nil
}

// decodeStringPayload resolves a string field that may itself carry a
// JSON-encoded array. Malformed JSON falls back to prose.
func decodeStringPayload(s string) ContentPayload {
	if strings.HasPrefix(strings.TrimSpace(s), "[") {
		var items []json.RawMessage
		if err := json.Unmarshal([]byte(s), &items); err == nil {
			return StructuredPayload(items)
		}
	}
	return TextPayload(s)
}

// recipePayload mirrors the upstream recipe JSON object.
type recipePayload struct {
	ID                   string              `json:"id" validate:"required"`
	Name                 string              `json:"name" validate:"required"`
	Description          string              `json:"description"`
	Servings             int                 `json:"servings" validate:"gt=0"`
	Ingredients          []ingredientPayload `json:"ingredients" validate:"dive"`
	NutritionalInfo      *NutritionInfo      `json:"nutritional_info"`
	DetailedInstructions ContentPayload      `json:"detailed_instructions"`
	CookingTips          ContentPayload      `json:"cooking_tips"`
	EquipmentNeeded      ContentPayload      `json:"equipment_needed"`
}

type ingredientPayload struct {
	Name     string `json:"name" validate:"required"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

var payloadValidator = validator.New(validator.WithRequiredStructEnabled())

// ParsePayload decodes and validates an upstream recipe JSON object.
// This is the only boundary where the engine reports errors; once a
// Recipe exists, every downstream operation is fail-open.
func ParsePayload(data []byte) (*Recipe, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyPayload
	}

	var payload recipePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode recipe payload: %w", err)
	}

	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	ingredients := make([]Ingredient, len(payload.Ingredients))
	for i, ing := range payload.Ingredients {
		ingredients[i] = Ingredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		}
	}

	return &Recipe{
		id:           payload.ID,
		name:         payload.Name,
		description:  payload.Description,
		servings:     payload.Servings,
		ingredients:  ingredients,
		nutrition:    payload.NutritionalInfo,
		instructions: payload.DetailedInstructions,
		tips:         payload.CookingTips,
		equipment:    payload.EquipmentNeeded,
	}, nil
}

// validatePayload maps struct validation failures to domain errors.
func validatePayload(payload recipePayload) error {
	err := payloadValidator.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate recipe payload: %w", err)
	}

	for _, fieldErr := range fieldErrs {
		switch fieldErr.StructField() {
		case "ID":
			return ErrMissingID
		case "Name":
			return ErrMissingName
		case "Servings":
			return ErrInvalidServings
		}
	}
	return fmt.Errorf("validate recipe payload: %w", err)
}
