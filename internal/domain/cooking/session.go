// Package cooking tracks guided-cooking sessions. A Session is an
// immutable value: every transition returns a new Session, so an
// embedding (UI layer, state store) holds the current snapshot and
// replaces it after each call. Nothing here performs I/O.
package cooking

import (
	"errors"
	"time"
)

// ErrStepIndexOutOfRange is returned when a completion update targets a
// step index outside the session's fixed range.
var ErrStepIndexOutOfRange = errors.New("step index out of range")

// Session tracks per-step completion of one cooking run. The completion
// vector's length is fixed at creation and never changes.
type Session struct {
	recipeID    string
	completions []bool
	startTime   time.Time
	endTime     *time.Time
	paused      bool
}

// StartSession begins a session for a recipe with the given step count.
// A non-positive step count yields an empty completion vector.
func StartSession(recipeID string, stepCount int) Session {
	if stepCount < 0 {
		stepCount = 0
	}
	return Session{
		recipeID:    recipeID,
		completions: make([]bool, stepCount),
		startTime:   time.Now(),
	}
}

// WithStep returns a session with the completion flag at index updated.
// No other field changes.
func (s Session) WithStep(index int, completed bool) (Session, error) {
	if index < 0 || index >= len(s.completions) {
		return s, ErrStepIndexOutOfRange
	}

	completions := make([]bool, len(s.completions))
	copy(completions, s.completions)
	completions[index] = completed

	next := s
	next.completions = completions
	return next, nil
}

// Paused returns a paused copy of the session. Completions are untouched.
func (s Session) Paused() Session {
	next := s
	next.paused = true
	return next
}

// Resumed returns a resumed copy of the session.
func (s Session) Resumed() Session {
	next := s
	next.paused = false
	return next
}

// Finished returns a session with the end time set. Finishing an already
// finished session keeps the original end time instead of silently
// moving it forward.
func (s Session) Finished() Session {
	if s.endTime != nil {
		return s
	}
	now := time.Now()
	next := s
	next.endTime = &now
	return next
}

// RecipeID returns the recipe this session tracks
func (s Session) RecipeID() string {
	return s.recipeID
}

// StepCount returns the fixed number of tracked steps
func (s Session) StepCount() int {
	return len(s.completions)
}

// StepCompleted reports whether the step at index is marked complete.
// Out-of-range indices report false.
func (s Session) StepCompleted(index int) bool {
	if index < 0 || index >= len(s.completions) {
		return false
	}
	return s.completions[index]
}

// CompletedCount returns how many steps are marked complete.
func (s Session) CompletedCount() int {
	count := 0
	for _, done := range s.completions {
		if done {
			count++
		}
	}
	return count
}

// Progress returns the completed fraction in [0, 1]. A session with no
// steps reports 0.
func (s Session) Progress() float64 {
	if len(s.completions) == 0 {
		return 0
	}
	return float64(s.CompletedCount()) / float64(len(s.completions))
}

// IsCompleted reports whether every step is marked complete. Note the
// asymmetry with Progress: a session with no steps is vacuously
// completed while its progress stays 0.
func (s Session) IsCompleted() bool {
	for _, done := range s.completions {
		if !done {
			return false
		}
	}
	return true
}

// IsPaused reports whether the session is paused
func (s Session) IsPaused() bool {
	return s.paused
}

// StartTime returns when the session started
func (s Session) StartTime() time.Time {
	return s.startTime
}

// EndTime returns when the session finished, nil while it is running
func (s Session) EndTime() *time.Time {
	return s.endTime
}

// Elapsed returns the time spent in the session so far, frozen once the
// session is finished.
func (s Session) Elapsed() time.Duration {
	end := time.Now()
	if s.endTime != nil {
		end = *s.endTime
	}
	return end.Sub(s.startTime)
}
