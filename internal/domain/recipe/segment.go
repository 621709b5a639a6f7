package recipe

import (
	"regexp"
	"strings"
)

var (
	// "1. ", "12.", "3.   " - numbered-list delimiters
	numberedDelimiter = regexp.MustCompile(`\d+\.\s*`)
	// sentence boundary: period or exclamation mark followed by whitespace
	sentenceBoundary = regexp.MustCompile(`[.!]\s+`)
)

// noiseThreshold is the minimum length of a usable instruction fragment,
// including its terminal punctuation. Shorter fragments are artifacts of
// splitting ("2.", stray words) and get dropped. Fixed, not configurable.
const noiseThreshold = 10

// SegmentText splits raw prose into ordered instruction steps. Numbered
// lists split on their numbering, everything else splits on sentence
// boundaries. Non-empty input always yields at least one step: when every
// fragment is filtered as noise, the whole text becomes a single step.
func SegmentText(text string) []Step {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	var fragments []string
	if numberedDelimiter.MatchString(trimmed) {
		fragments = numberedDelimiter.Split(trimmed, -1)
	} else {
		fragments = sentenceBoundary.Split(trimmed, -1)
	}

	var steps []Step
	for _, fragment := range fragments {
		instruction := terminated(strings.TrimSpace(fragment))
		if len(instruction) < noiseThreshold {
			continue
		}
		steps = append(steps, Step{
			StepNumber:      len(steps) + 1,
			Instruction:     instruction,
			DurationMinutes: EstimateDuration(instruction),
		})
	}

	if len(steps) == 0 {
		// Nothing survived the noise filter; keep the whole original
		// text so the caller always gets a usable step.
		instruction := terminated(trimmed)
		steps = []Step{{
			StepNumber:      1,
			Instruction:     instruction,
			DurationMinutes: EstimateDuration(instruction),
		}}
	}

	return steps
}

// terminated appends a period unless the fragment already ends in
// terminal punctuation.
func terminated(fragment string) string {
	if fragment == "" {
		return fragment
	}
	switch fragment[len(fragment)-1] {
	case '.', '!', '?':
		return fragment
	}
	return fragment + "."
}
