package recipe

import "strings"

// durationRule pairs a keyword group with its heuristic estimate in
// minutes. A nil estimate means the action is variable (resting,
// chilling) and deliberately carries no number.
type durationRule struct {
	keywords []string
	minutes  *int
}

// durationRules is evaluated top to bottom, first match wins. The order
// is load-bearing: "heat and simmer" must resolve to the simmer estimate,
// so the boil/simmer group is checked before heat/preheat. Keep this a
// slice, not a map.
var durationRules = []durationRule{
	{keywords: []string{"boil", "simmer"}, minutes: minutesPtr(10)},
	{keywords: []string{"cook", "bake"}, minutes: minutesPtr(15)},
	{keywords: []string{"mix", "combine", "stir"}, minutes: minutesPtr(2)},
	{keywords: []string{"chop", "dice", "slice"}, minutes: minutesPtr(5)},
	{keywords: []string{"heat", "preheat"}, minutes: minutesPtr(5)},
	{keywords: []string{"rest", "chill", "cool"}, minutes: nil},
}

// EstimateDuration assigns a heuristic duration to one instruction.
// It returns nil when no keyword matches or when the first matching
// group is explicitly variable.
func EstimateDuration(instruction string) *int {
	lowered := strings.ToLower(instruction)
	for _, rule := range durationRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				if rule.minutes == nil {
					return nil
				}
				m := *rule.minutes
				return &m
			}
		}
	}
	return nil
}

func minutesPtr(m int) *int {
	return &m
}
