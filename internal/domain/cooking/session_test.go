package cooking_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/forkful/kitchen/internal/domain/cooking"
	"github.com/forkful/kitchen/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// SessionTestSuite covers the cooking-session state machine
type SessionTestSuite struct {
	suite.Suite
}

func (suite *SessionTestSuite) TestStartSession() {
	suite.Run("FreshSession_AllStepsIncomplete", func() {
		// Arrange & Act
		session := cooking.StartSession("r-1", 4)

		// Assert
		sessions := testutils.NewSessionAssertions(suite.T())
		sessions.Active(session)
		sessions.Progress(session, 0)
		assert.Equal(suite.T(), "r-1", session.RecipeID())
		assert.Equal(suite.T(), 4, session.StepCount())
		assert.Equal(suite.T(), 0, session.CompletedCount())
		assert.False(suite.T(), session.IsPaused())
		assert.False(suite.T(), session.IsCompleted())
	})

	suite.Run("NegativeStepCount_ClampedToZero", func() {
		session := cooking.StartSession("r-1", -3)

		assert.Equal(suite.T(), 0, session.StepCount())
	})
}

func (suite *SessionTestSuite) TestWithStep() {
	suite.Run("HalfComplete_ProgressIsHalf", func() {
		// Arrange
		session := cooking.StartSession("r-1", 4)

		// Act - complete steps 0 and 2
		session, err := session.WithStep(0, true)
		require.NoError(suite.T(), err)
		session, err = session.WithStep(2, true)
		require.NoError(suite.T(), err)

		// Assert
		testutils.NewSessionAssertions(suite.T()).Progress(session, 0.5)
		assert.False(suite.T(), session.IsCompleted())
		assert.True(suite.T(), session.StepCompleted(0))
		assert.False(suite.T(), session.StepCompleted(1))
		assert.True(suite.T(), session.StepCompleted(2))
	})

	suite.Run("OriginalSessionUntouched", func() {
		original := cooking.StartSession("r-1", 2)

		updated, err := original.WithStep(0, true)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 0, original.CompletedCount())
		assert.Equal(suite.T(), 1, updated.CompletedCount())
	})

	suite.Run("Uncomplete_ClearsFlag", func() {
		session := cooking.StartSession("r-1", 2)
		session, _ = session.WithStep(0, true)

		session, err := session.WithStep(0, false)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 0, session.CompletedCount())
	})

	suite.Run("IndexOutOfRange_ShouldReturnError", func() {
		session := cooking.StartSession("r-1", 2)

		_, err := session.WithStep(2, true)
		assert.ErrorIs(suite.T(), err, cooking.ErrStepIndexOutOfRange)

		_, err = session.WithStep(-1, true)
		assert.ErrorIs(suite.T(), err, cooking.ErrStepIndexOutOfRange)
	})

	suite.Run("AllComplete_ProgressIsOneAndCompleted", func() {
		session := cooking.StartSession("r-1", 3)

		for i := 0; i < 3; i++ {
			var err error
			session, err = session.WithStep(i, true)
			require.NoError(suite.T(), err)
		}

		assert.Equal(suite.T(), 1.0, session.Progress())
		assert.True(suite.T(), session.IsCompleted())
	})
}

func (suite *SessionTestSuite) TestPauseResume() {
	session := cooking.StartSession("r-1", 3)
	session, _ = session.WithStep(1, true)

	paused := session.Paused()
	assert.True(suite.T(), paused.IsPaused())
	assert.Equal(suite.T(), 1, paused.CompletedCount(), "pausing leaves completions untouched")

	resumed := paused.Resumed()
	assert.False(suite.T(), resumed.IsPaused())
	assert.Equal(suite.T(), 1, resumed.CompletedCount())
}

func (suite *SessionTestSuite) TestFinished() {
	suite.Run("SetsEndTimeOnce", func() {
		session := cooking.StartSession("r-1", 2)

		finished := session.Finished()

		testutils.NewSessionAssertions(suite.T()).Finished(finished)
		assert.Nil(suite.T(), session.EndTime(), "original session untouched")
	})

	suite.Run("Idempotent_KeepsOriginalEndTime", func() {
		finished := cooking.StartSession("r-1", 2).Finished()
		first := *finished.EndTime()

		again := finished.Finished()

		require.NotNil(suite.T(), again.EndTime())
		assert.Equal(suite.T(), first, *again.EndTime(), "finishing twice must not move the end time")
	})

	suite.Run("ElapsedFrozenAfterFinish", func() {
		finished := cooking.StartSession("r-1", 2).Finished()

		first := finished.Elapsed()
		second := finished.Elapsed()

		assert.Equal(suite.T(), first, second)
	})
}

func (suite *SessionTestSuite) TestElapsed() {
	session := cooking.StartSession("r-1", 2)

	first := session.Elapsed()
	second := session.Elapsed()

	assert.GreaterOrEqual(suite.T(), second, first, "elapsed time must not decrease while running")
	assert.GreaterOrEqual(suite.T(), first, time.Duration(0))
}

func (suite *SessionTestSuite) TestZeroStepSession() {
	session := cooking.StartSession("r-1", 0)

	// Progress guards the division; IsCompleted stays vacuously true.
	assert.Equal(suite.T(), 0.0, session.Progress())
	assert.True(suite.T(), session.IsCompleted())
}

func (suite *SessionTestSuite) TestSnapshot() {
	suite.Run("RoundTrip_PreservesState", func() {
		// Arrange
		session := cooking.StartSession("r-1", 3)
		session, _ = session.WithStep(1, true)
		session = session.Paused()

		// Act
		restored := cooking.Restore(session.Snapshot())

		// Assert
		assert.Equal(suite.T(), session.RecipeID(), restored.RecipeID())
		assert.Equal(suite.T(), session.StepCount(), restored.StepCount())
		assert.True(suite.T(), restored.StepCompleted(1))
		assert.True(suite.T(), restored.IsPaused())
		assert.Equal(suite.T(), session.StartTime(), restored.StartTime())
	})

	suite.Run("SnapshotIsDetached", func() {
		session := cooking.StartSession("r-1", 2)
		snap := session.Snapshot()

		snap.StepCompletions[0] = true

		assert.False(suite.T(), session.StepCompleted(0), "mutating a snapshot must not leak into the session")
	})

	suite.Run("JSONShape", func() {
		session := cooking.StartSession("r-9", 2)
		session, _ = session.WithStep(0, true)

		data, err := json.Marshal(session.Snapshot())
		require.NoError(suite.T(), err)

		var decoded map[string]any
		require.NoError(suite.T(), json.Unmarshal(data, &decoded))

		assert.Equal(suite.T(), "r-9", decoded["recipe_id"])
		assert.Equal(suite.T(), []any{true, false}, decoded["step_completions"])
		assert.Contains(suite.T(), decoded, "start_time")
		assert.NotContains(suite.T(), decoded, "end_time", "unset end time must be omitted")
		assert.Equal(suite.T(), false, decoded["is_paused"])
	})
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}
