package recipe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// NormalizerTestSuite covers the three-way payload dispatch for
// instructions, tips and equipment
type NormalizerTestSuite struct {
	suite.Suite
}

func (suite *NormalizerTestSuite) decodePayload(raw string) ContentPayload {
	var payload ContentPayload
	require.NoError(suite.T(), json.Unmarshal([]byte(raw), &payload))
	return payload
}

func (suite *NormalizerTestSuite) TestInstructionDispatch() {
	suite.Run("AbsentPayload_YieldsNoSteps", func() {
		assert.Empty(suite.T(), NormalizeInstructions(ContentPayload{}))
		assert.Empty(suite.T(), NormalizeInstructions(suite.decodePayload(`null`)))
	})

	suite.Run("StructuredArray_MappedVerbatim", func() {
		// Arrange
		payload := suite.decodePayload(`[
			{"step_number": 1, "instruction": "Chop the vegetables.", "duration_minutes": 7, "tips": "Use a sharp knife"},
			{"step_number": 2, "instruction": "Boil the stock."}
		]`)

		// Act
		steps := NormalizeInstructions(payload)

		// Assert - order, count and given durations preserved, no re-estimation
		require.Len(suite.T(), steps, 2)
		assert.Equal(suite.T(), 1, steps[0].StepNumber)
		assert.Equal(suite.T(), "Chop the vegetables.", steps[0].Instruction)
		require.NotNil(suite.T(), steps[0].DurationMinutes)
		assert.Equal(suite.T(), 7, *steps[0].DurationMinutes, "given duration kept even though the chop heuristic says 5")
		assert.Equal(suite.T(), "Use a sharp knife", steps[0].Tips)

		assert.Equal(suite.T(), 2, steps[1].StepNumber)
		assert.Nil(suite.T(), steps[1].DurationMinutes, "missing duration stays absent in structured records")
	})

	suite.Run("JSONEncodedString_DecodedThenMapped", func() {
		payload := suite.decodePayload(`"[{\"step_number\": 1, \"instruction\": \"Simmer the broth.\"}]"`)

		steps := NormalizeInstructions(payload)

		require.Len(suite.T(), steps, 1)
		assert.Equal(suite.T(), PayloadStructured, payload.Kind())
		assert.Equal(suite.T(), "Simmer the broth.", steps[0].Instruction)
	})

	suite.Run("PlainProse_Segmented", func() {
		payload := suite.decodePayload(`"Preheat the oven. Mix the batter well."`)

		steps := NormalizeInstructions(payload)

		require.Len(suite.T(), steps, 2)
		assert.Equal(suite.T(), PayloadText, payload.Kind())
	})

	suite.Run("MalformedJSONString_FallsBackToSegmentation", func() {
		// Arrange - looks like an array but is not valid JSON
		payload := suite.decodePayload(`"[{broken json fragment"`)

		// Act
		steps := NormalizeInstructions(payload)

		// Assert - fail-open: the raw text becomes a single step
		assert.Equal(suite.T(), PayloadText, payload.Kind())
		require.Len(suite.T(), steps, 1)
	})

	suite.Run("BareStringsInsideArray_Kept", func() {
		payload := suite.decodePayload(`["Chop the onions finely", {"step_number": 2, "instruction": "Boil water."}]`)

		steps := NormalizeInstructions(payload)

		require.Len(suite.T(), steps, 2)
		assert.Equal(suite.T(), "Chop the onions finely.", steps[0].Instruction)
		assert.Equal(suite.T(), 1, steps[0].StepNumber)
	})

	suite.Run("RecordWithoutStepNumber_GetsPosition", func() {
		payload := suite.decodePayload(`[{"instruction": "Rest the dough."}, {"instruction": "Bake it."}]`)

		steps := NormalizeInstructions(payload)

		require.Len(suite.T(), steps, 2)
		assert.Equal(suite.T(), 1, steps[0].StepNumber)
		assert.Equal(suite.T(), 2, steps[1].StepNumber)
	})

	suite.Run("DescriptionAlias_Accepted", func() {
		payload := suite.decodePayload(`[{"step_number": 1, "description": "Whisk the eggs."}]`)

		steps := NormalizeInstructions(payload)

		require.Len(suite.T(), steps, 1)
		assert.Equal(suite.T(), "Whisk the eggs.", steps[0].Instruction)
	})
}

func (suite *NormalizerTestSuite) TestTipsDispatch() {
	suite.Run("StructuredTips_Mapped", func() {
		payload := suite.decodePayload(`[{"text": "Salt the water generously", "category": "seasoning"}]`)

		tips := NormalizeTips(payload)

		require.Len(suite.T(), tips, 1)
		assert.Equal(suite.T(), "Salt the water generously", tips[0].Text)
		assert.Equal(suite.T(), "seasoning", tips[0].Category)
	})

	suite.Run("MissingCategory_DefaultsToGeneral", func() {
		payload := suite.decodePayload(`[{"text": "Taste as you go"}]`)

		tips := NormalizeTips(payload)

		require.Len(suite.T(), tips, 1)
		assert.Equal(suite.T(), TipCategoryGeneral, tips[0].Category)
	})

	suite.Run("BareStringsInsideArray_Wrapped", func() {
		payload := suite.decodePayload(`["Use fresh herbs when possible"]`)

		tips := NormalizeTips(payload)

		require.Len(suite.T(), tips, 1)
		assert.Equal(suite.T(), "Use fresh herbs when possible", tips[0].Text)
		assert.Equal(suite.T(), TipCategoryGeneral, tips[0].Category)
	})

	suite.Run("PlainProse_SingleGeneralTip", func() {
		// Prose tips are wrapped whole, never segmented
		payload := suite.decodePayload(`"Rest the meat before carving. It keeps the juices in."`)

		tips := NormalizeTips(payload)

		require.Len(suite.T(), tips, 1)
		assert.Equal(suite.T(), "Rest the meat before carving. It keeps the juices in.", tips[0].Text)
	})

	suite.Run("AbsentPayload_NoTips", func() {
		assert.Empty(suite.T(), NormalizeTips(ContentPayload{}))
	})
}

func (suite *NormalizerTestSuite) TestEquipmentDispatch() {
	suite.Run("StructuredStrings_Kept", func() {
		payload := suite.decodePayload(`["dutch oven", "wooden spoon"]`)

		assert.Equal(suite.T(), []string{"dutch oven", "wooden spoon"}, NormalizeEquipment(payload))
	})

	suite.Run("ObjectItems_NameExtracted", func() {
		payload := suite.decodePayload(`[{"name": "stand mixer"}]`)

		assert.Equal(suite.T(), []string{"stand mixer"}, NormalizeEquipment(payload))
	})

	suite.Run("JSONEncodedString_Decoded", func() {
		payload := suite.decodePayload(`"[\"cast iron skillet\"]"`)

		assert.Equal(suite.T(), []string{"cast iron skillet"}, NormalizeEquipment(payload))
	})

	suite.Run("PlainProse_SingleElement", func() {
		payload := suite.decodePayload(`"a large heavy-bottomed pot"`)

		assert.Equal(suite.T(), []string{"a large heavy-bottomed pot"}, NormalizeEquipment(payload))
	})

	suite.Run("AbsentPayload_NoEquipment", func() {
		assert.Empty(suite.T(), NormalizeEquipment(ContentPayload{}))
	})
}

func TestNormalizerTestSuite(t *testing.T) {
	suite.Run(t, new(NormalizerTestSuite))
}

func BenchmarkNormalizeInstructionsProse(b *testing.B) {
	payload := TextPayload("Preheat the oven. Mix the batter well. Bake for forty minutes until golden.")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NormalizeInstructions(payload)
	}
}
