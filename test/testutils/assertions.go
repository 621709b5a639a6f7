// Package testutils provides custom assertions and testing utilities
package testutils

import (
	"strings"
	"testing"

	"github.com/forkful/kitchen/internal/domain/cooking"
	"github.com/forkful/kitchen/internal/domain/recipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// StepAssertions provides step-list assertion methods
type StepAssertions struct {
	t *testing.T
}

// NewStepAssertions creates a new step assertions helper
func NewStepAssertions(t *testing.T) *StepAssertions {
	return &StepAssertions{t: t}
}

// WellFormed asserts the structural invariants every normalized step list
// carries: contiguous 1-based numbering, non-empty instructions, and
// terminal punctuation on each instruction.
func (sa *StepAssertions) WellFormed(steps []recipe.Step, msgAndArgs ...interface{}) {
	for i, step := range steps {
		assert.Equal(sa.t, i+1, step.StepNumber, "step numbering should be contiguous and 1-based")
		require.NotEmpty(sa.t, step.Instruction, "step instruction should not be empty")
		last := step.Instruction[len(step.Instruction)-1]
		assert.Contains(sa.t, ".!?", string(last), "step instruction should end with terminal punctuation")
	}
}

// StepCount asserts the number of steps in the list
func (sa *StepAssertions) StepCount(steps []recipe.Step, expected int, msgAndArgs ...interface{}) {
	assert.Len(sa.t, steps, expected, msgAndArgs...)
}

// StepDuration asserts the estimated duration of a single step.
// Pass a negative value to assert the duration is absent.
func (sa *StepAssertions) StepDuration(steps []recipe.Step, index int, minutes int) {
	require.Less(sa.t, index, len(steps), "step index out of range")
	if minutes < 0 {
		assert.Nil(sa.t, steps[index].DurationMinutes, "step should have no duration")
		return
	}
	require.NotNil(sa.t, steps[index].DurationMinutes, "step should have a duration")
	assert.Equal(sa.t, minutes, *steps[index].DurationMinutes)
}

// StepContains asserts that a step's instruction contains a fragment
func (sa *StepAssertions) StepContains(steps []recipe.Step, index int, fragment string) {
	require.Less(sa.t, index, len(steps), "step index out of range")
	assert.True(sa.t, strings.Contains(steps[index].Instruction, fragment),
		"step %d instruction %q should contain %q", index+1, steps[index].Instruction, fragment)
}

// SessionAssertions provides cooking-session assertion methods
type SessionAssertions struct {
	t *testing.T
}

// NewSessionAssertions creates a new session assertions helper
func NewSessionAssertions(t *testing.T) *SessionAssertions {
	return &SessionAssertions{t: t}
}

// Progress asserts the session's completion ratio
func (sa *SessionAssertions) Progress(session cooking.Session, expected float64) {
	assert.InDelta(sa.t, expected, session.Progress(), 0.0001)
}

// Active asserts the session has started and has no end time
func (sa *SessionAssertions) Active(session cooking.Session) {
	assert.False(sa.t, session.StartTime().IsZero(), "session should have a start time")
	assert.Nil(sa.t, session.EndTime(), "active session should have no end time")
}

// Finished asserts the session carries an end time at or after its start
func (sa *SessionAssertions) Finished(session cooking.Session) {
	require.NotNil(sa.t, session.EndTime(), "finished session should have an end time")
	assert.False(sa.t, session.EndTime().Before(session.StartTime()),
		"end time should not precede start time")
}
