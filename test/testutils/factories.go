// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"encoding/json"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// PayloadFactory produces upstream-shaped recipe JSON payloads for tests.
type PayloadFactory struct {
	faker *gofakeit.Faker
}

// NewPayloadFactory creates a payload factory with a seeded faker so test
// data stays reproducible.
func NewPayloadFactory(seed int64) *PayloadFactory {
	return &PayloadFactory{
		faker: gofakeit.New(seed),
	}
}

// PayloadBuilder provides a fluent interface for building recipe payloads
// in any of the upstream field encodings.
type PayloadBuilder struct {
	fields map[string]any
}

// NewPayloadBuilder creates a builder preloaded with a minimal valid
// recipe object.
func (f *PayloadFactory) NewPayloadBuilder() *PayloadBuilder {
	return &PayloadBuilder{
		fields: map[string]any{
			"id":       uuid.NewString(),
			"name":     f.faker.Dinner(),
			"servings": f.faker.Number(1, 8),
			"ingredients": []map[string]any{
				{
					"name":     f.faker.Vegetable(),
					"quantity": fmt.Sprintf("%d cups", f.faker.Number(1, 4)),
					"unit":     "cup",
				},
			},
		},
	}
}

// WithID sets the recipe id.
func (b *PayloadBuilder) WithID(id string) *PayloadBuilder {
	b.fields["id"] = id
	return b
}

// WithName sets the recipe name.
func (b *PayloadBuilder) WithName(name string) *PayloadBuilder {
	b.fields["name"] = name
	return b
}

// WithServings sets the serving count.
func (b *PayloadBuilder) WithServings(servings int) *PayloadBuilder {
	b.fields["servings"] = servings
	return b
}

// WithIngredient appends an ingredient line.
func (b *PayloadBuilder) WithIngredient(name, quantity, unit string) *PayloadBuilder {
	ingredients, _ := b.fields["ingredients"].([]map[string]any)
	b.fields["ingredients"] = append(ingredients, map[string]any{
		"name":     name,
		"quantity": quantity,
		"unit":     unit,
	})
	return b
}

// WithoutIngredients clears the ingredient list.
func (b *PayloadBuilder) WithoutIngredients() *PayloadBuilder {
	b.fields["ingredients"] = []map[string]any{}
	return b
}

// WithNutrition sets the nutritional_info object.
func (b *PayloadBuilder) WithNutrition(nutrition map[string]any) *PayloadBuilder {
	b.fields["nutritional_info"] = nutrition
	return b
}

// WithInstructions sets detailed_instructions to any of the supported
// encodings: a structured array, a JSON-encoded string, or plain prose.
func (b *PayloadBuilder) WithInstructions(value any) *PayloadBuilder {
	b.fields["detailed_instructions"] = value
	return b
}

// WithTips sets cooking_tips.
func (b *PayloadBuilder) WithTips(value any) *PayloadBuilder {
	b.fields["cooking_tips"] = value
	return b
}

// WithEquipment sets equipment_needed.
func (b *PayloadBuilder) WithEquipment(value any) *PayloadBuilder {
	b.fields["equipment_needed"] = value
	return b
}

// Without removes a field entirely.
func (b *PayloadBuilder) Without(field string) *PayloadBuilder {
	delete(b.fields, field)
	return b
}

// Build renders the payload as JSON.
func (b *PayloadBuilder) Build() []byte {
	data, err := json.Marshal(b.fields)
	if err != nil {
		panic(fmt.Sprintf("testutils: build payload: %v", err))
	}
	return data
}

// StructuredSteps renders a structured instruction array with the given
// instructions, numbered sequentially.
func StructuredSteps(instructions ...string) []map[string]any {
	steps := make([]map[string]any, len(instructions))
	for i, instruction := range instructions {
		steps[i] = map[string]any{
			"step_number": i + 1,
			"instruction": instruction,
		}
	}
	return steps
}

// EncodeAsString wraps a structured value as a JSON-encoded string, the
// second upstream encoding.
func EncodeAsString(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		panic(fmt.Sprintf("testutils: encode value: %v", err))
	}
	return string(data)
}
