package cooking

import "time"

// Snapshot is the serializable form of a session for an external storage
// collaborator. The engine defines only the shape; where and whether a
// snapshot is persisted is up to the embedding.
type Snapshot struct {
	RecipeID        string     `json:"recipe_id"`
	StepCompletions []bool     `json:"step_completions"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	IsPaused        bool       `json:"is_paused"`
}

// Snapshot captures the session's current state.
func (s Session) Snapshot() Snapshot {
	completions := make([]bool, len(s.completions))
	copy(completions, s.completions)

	var end *time.Time
	if s.endTime != nil {
		t := *s.endTime
		end = &t
	}

	return Snapshot{
		RecipeID:        s.recipeID,
		StepCompletions: completions,
		StartTime:       s.startTime,
		EndTime:         end,
		IsPaused:        s.paused,
	}
}

// Restore rebuilds a session from a previously captured snapshot, for
// resuming guided cooking across app restarts.
func Restore(snap Snapshot) Session {
	completions := make([]bool, len(snap.StepCompletions))
	copy(completions, snap.StepCompletions)

	var end *time.Time
	if snap.EndTime != nil {
		t := *snap.EndTime
		end = &t
	}

	return Session{
		recipeID:    snap.RecipeID,
		completions: completions,
		startTime:   snap.StartTime,
		endTime:     end,
		paused:      snap.IsPaused,
	}
}
