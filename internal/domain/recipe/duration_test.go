package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateDuration(t *testing.T) {
	tests := []struct {
		instruction string
		want        int
	}{
		{"Boil the pasta until al dente.", 10},
		{"Simmer the sauce gently.", 10},
		{"Cook the rice covered.", 15},
		{"Bake until golden brown.", 15},
		{"Mix the dry ingredients.", 2},
		{"Combine everything in a bowl.", 2},
		{"Stir until smooth.", 2},
		{"Chop the onions finely.", 5},
		{"Dice the carrots.", 5},
		{"Slice the bread.", 5},
		{"Heat the oil in a pan.", 5},
		{"Preheat the oven to 180C.", 5},
	}

	for _, tt := range tests {
		t.Run(tt.instruction, func(t *testing.T) {
			got := EstimateDuration(tt.instruction)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestEstimateDurationVariable(t *testing.T) {
	// Resting and chilling have no meaningful fixed estimate.
	assert.Nil(t, EstimateDuration("Rest the dough for a while."))
	assert.Nil(t, EstimateDuration("Chill before serving."))
	assert.Nil(t, EstimateDuration("Let it cool on a rack."))
}

func TestEstimateDurationNoKeyword(t *testing.T) {
	assert.Nil(t, EstimateDuration("Serve immediately."))
	assert.Nil(t, EstimateDuration(""))
}

// The rule table is ordered and the first matching group wins, so an
// instruction mentioning both heating and simmering takes the simmer
// estimate.
func TestEstimateDurationFirstMatchWins(t *testing.T) {
	got := EstimateDuration("Heat and simmer for a bit.")
	require.NotNil(t, got)
	assert.Equal(t, 10, *got)

	// "stir" outranks "chop" because the mix group comes first
	got = EstimateDuration("Stir in the chopped herbs.")
	require.NotNil(t, got)
	assert.Equal(t, 2, *got)
}

func TestEstimateDurationCaseInsensitive(t *testing.T) {
	got := EstimateDuration("BOIL WATER.")
	require.NotNil(t, got)
	assert.Equal(t, 10, *got)
}
