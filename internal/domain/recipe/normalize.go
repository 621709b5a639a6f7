package recipe

import (
	"encoding/json"
	"strings"
)

// stepRecord mirrors one element of a structured instruction array.
type stepRecord struct {
	StepNumber      int    `json:"step_number"`
	Instruction     string `json:"instruction"`
	Description     string `json:"description"`
	DurationMinutes *int   `json:"duration_minutes"`
	Tips            string `json:"tips"`
}

// tipRecord mirrors one element of a structured tips array.
type tipRecord struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// equipmentRecord mirrors one element of a structured equipment array
// when the backend sends objects instead of bare strings.
type equipmentRecord struct {
	Name string `json:"name"`
}

// NormalizeInstructions reduces an instruction payload to an ordered step
// sequence. Structured records are mapped verbatim, keeping their own
// step numbers and duration values; prose runs through SegmentText.
func NormalizeInstructions(payload ContentPayload) []Step {
	switch payload.kind {
	case PayloadStructured:
		return mapStepRecords(payload.items)
	case PayloadText:
		return SegmentText(payload.text)
	default:
		return nil
	}
}

// mapStepRecords converts structured array elements to steps, preserving
// input order and count. Durations are taken as given, never re-estimated.
func mapStepRecords(items []json.RawMessage) []Step {
	var steps []Step
	for i, item := range items {
		var record stepRecord
		if err := json.Unmarshal(item, &record); err != nil {
			// Some services send bare instruction strings inside
			// structured arrays.
			var s string
			if err := json.Unmarshal(item, &s); err != nil {
				continue
			}
			record = stepRecord{Instruction: s}
		}

		instruction := record.Instruction
		if instruction == "" {
			instruction = record.Description
		}
		instruction = terminated(strings.TrimSpace(instruction))
		if instruction == "" {
			continue
		}

		number := record.StepNumber
		if number < 1 {
			number = i + 1
		}

		steps = append(steps, Step{
			StepNumber:      number,
			Instruction:     instruction,
			DurationMinutes: record.DurationMinutes,
			Tips:            record.Tips,
		})
	}
	return steps
}

// NormalizeTips reduces a tips payload to a tip list. Plain prose wraps
// into a single general-category tip without further segmentation.
func NormalizeTips(payload ContentPayload) []Tip {
	switch payload.kind {
	case PayloadStructured:
		var tips []Tip
		for _, item := range payload.items {
			if tip, ok := decodeTip(item); ok {
				tips = append(tips, tip)
			}
		}
		return tips
	case PayloadText:
		text := strings.TrimSpace(payload.text)
		if text == "" {
			return nil
		}
		return []Tip{{Text: text, Category: TipCategoryGeneral}}
	default:
		return nil
	}
}

func decodeTip(item json.RawMessage) (Tip, bool) {
	var record tipRecord
	if err := json.Unmarshal(item, &record); err != nil {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			return Tip{}, false
		}
		record = tipRecord{Text: s}
	}

	text := strings.TrimSpace(record.Text)
	if text == "" {
		return Tip{}, false
	}

	category := record.Category
	if category == "" {
		category = TipCategoryGeneral
	}
	return Tip{Text: text, Category: category}, true
}

// NormalizeEquipment reduces an equipment payload to a flat list of item
// names. Plain prose becomes a single-element list, unsegmented.
func NormalizeEquipment(payload ContentPayload) []string {
	switch payload.kind {
	case PayloadStructured:
		var equipment []string
		for _, item := range payload.items {
			if name, ok := decodeEquipment(item); ok {
				equipment = append(equipment, name)
			}
		}
		return equipment
	case PayloadText:
		text := strings.TrimSpace(payload.text)
		if text == "" {
			return nil
		}
		return []string{text}
	default:
		return nil
	}
}

func decodeEquipment(item json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(item, &s); err == nil {
		s = strings.TrimSpace(s)
		return s, s != ""
	}

	var record equipmentRecord
	if err := json.Unmarshal(item, &record); err != nil {
		return "", false
	}
	name := strings.TrimSpace(record.Name)
	return name, name != ""
}
