package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allLadderSteps enumerates every valid tier/division pair in ascending
// ladder order, apex tiers last.
func allLadderSteps() [][2]string {
	var steps [][2]string
	for _, tier := range divisionedTiers {
		for _, div := range divisions {
			steps = append(steps, [2]string{tier, div})
		}
	}
	for _, tier := range apexTiers {
		steps = append(steps, [2]string{tier, ""})
	}
	return steps
}

func TestScoreMonotonicAcrossLadder(t *testing.T) {
	steps := allLadderSteps()

	// Any LP in a lower step must lose to any LP in a higher step.
	// Apex tiers share one step, so stop comparing before them.
	apexStart := len(steps) - len(apexTiers)
	for i := 0; i < apexStart; i++ {
		for j := i + 1; j < len(steps); j++ {
			lo, err := Score(steps[i][0], steps[i][1], 99)
			require.NoError(t, err)
			hi, err := Score(steps[j][0], steps[j][1], 0)
			require.NoError(t, err)
			if hi <= lo {
				t.Fatalf("score(%v, 99) = %d not below score(%v, 0) = %d",
					steps[i], lo, steps[j], hi)
			}
		}
	}
}

func TestScoreApexTiersShareStep(t *testing.T) {
	master, err := Score("MASTER", "", 500)
	require.NoError(t, err)
	challenger, err := Score("CHALLENGER", "", 200)
	require.NoError(t, err)

	// Apex players are ordered purely by LP.
	assert.Greater(t, master, challenger)
}

func TestScoreLeaguePointsBreakTiesWithinDivision(t *testing.T) {
	a, err := Score("GOLD", "II", 75)
	require.NoError(t, err)
	b, err := Score("GOLD", "II", 40)
	require.NoError(t, err)
	assert.Greater(t, a, b)
}

func TestScoreNormalizesCaseAndSpacing(t *testing.T) {
	a, err := Score("gold", "ii", 10)
	require.NoError(t, err)
	b, err := Score(" GOLD ", " II ", 10)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestScoreUnknownPairFailsFast(t *testing.T) {
	_, err := Score("COPPER", "IV", 10)
	assert.Error(t, err)

	_, err = Score("GOLD", "V", 10)
	assert.Error(t, err)
}

func TestDisplayText(t *testing.T) {
	assert.Equal(t, "GOLD II 54 LP", DisplayText("GOLD", "II", 54))
	assert.Equal(t, "MASTER 654 LP", DisplayText("MASTER", "I", 654))
	assert.Equal(t, "UNRANKED", DisplayText("UNRANKED", "", 0))
}

func TestNewEntry(t *testing.T) {
	e, err := NewEntry("player1", "DIAMOND", "I", 82)
	require.NoError(t, err)
	assert.Equal(t, "player1", e.PlayerID)
	assert.Equal(t, 82, e.LeaguePoints)
	assert.Equal(t, "DIAMOND I 82 LP", e.DisplayText)
	assert.Greater(t, e.Score, 0)
}

func TestUnrankedEntry(t *testing.T) {
	e := UnrankedEntry("player2")
	assert.Zero(t, e.Score)
	assert.Equal(t, TierUnranked, e.Tier)
	assert.Equal(t, TierUnranked, e.DisplayText)
}
