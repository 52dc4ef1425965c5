package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dugout/internal/roster"
	"dugout/internal/score/rule"
)

func defaultCalculator(t *testing.T) *MatchupCalculator {
	t.Helper()
	rules, err := rule.Defaults(roster.NewMatchupEnv)
	require.NoError(t, err)
	return NewMatchupCalculator(NewEvaluator(rules))
}

func TestBaseScore(t *testing.T) {
	b := roster.Batter{BA: 0.280, OBP: 0.380, SLG: 0.540}
	// 0.30*0.280 + 0.40*0.380 + 0.30*0.540 = 0.398
	assert.InDelta(t, 39.8, BaseScore(b), 1e-9)

	assert.Zero(t, BaseScore(roster.Batter{}))
}

func TestScoreMatchups(t *testing.T) {
	calculator := defaultCalculator(t)

	batter := roster.Batter{
		Name: "Leadoff", BA: 0.280, K: 120, OBP: 0.380,
		SLG: 0.540, HR: 25, RBI: 70, Hand: roster.Left,
	}
	pitcher := roster.Pitcher{
		Name: "Soft Tosser", ERA: 4.50, WHIP: 1.40,
		KRate: 0.18, WalkRate: 0.12, Hand: roster.Right,
	}

	result, err := calculator.ScoreMatchups([]roster.Batter{batter}, &pitcher)
	require.NoError(t, err)
	require.Contains(t, result, "Leadoff")

	// Fires: opposite-handed +5, obp walk advantage +8, power vs weak
	// era +10, lineup obp pressure +3, power surge unlock +4.
	assert.InDelta(t, BaseScore(batter)+30.0, result["Leadoff"], 1e-9)
}

func TestScoreMatchups_ClampHigh(t *testing.T) {
	calculator := defaultCalculator(t)

	batter := roster.Batter{
		Name: "Machine", BA: 0.400, K: 80, OBP: 0.500,
		SLG: 0.800, HR: 45, RBI: 130, Hand: roster.Right,
	}
	pitcher := roster.Pitcher{
		Name: "Batting Practice", ERA: 4.50, WHIP: 1.45,
		KRate: 0.18, WalkRate: 0.12, Hand: roster.Left,
	}

	result, err := calculator.ScoreMatchups([]roster.Batter{batter}, &pitcher)
	require.NoError(t, err)
	assert.Equal(t, MaxScore, result["Machine"], "score saturates at the upper bound")
}

func TestScoreMatchups_ClampLow(t *testing.T) {
	calculator := defaultCalculator(t)

	batter := roster.Batter{
		Name: "Overmatched", BA: 0.150, K: 160, OBP: 0.180,
		SLG: 0.220, HR: 2, RBI: 12, Hand: roster.Right,
	}
	pitcher := roster.Pitcher{
		Name: "Ace", ERA: 2.20, WHIP: 0.90,
		KRate: 0.35, WalkRate: 0.05, Hand: roster.Right,
	}

	result, err := calculator.ScoreMatchups([]roster.Batter{batter}, &pitcher)
	require.NoError(t, err)
	assert.Equal(t, MinScore, result["Overmatched"], "score saturates at the lower bound")
}

func TestScoreMatchups_UnknownPitcherNeutrality(t *testing.T) {
	calculator := defaultCalculator(t)

	batter := roster.Batter{
		Name: "Elite", BA: 0.306, K: 132, OBP: 0.419,
		SLG: 0.582, HR: 40, RBI: 80, Hand: roster.Right,
	}
	// All-zero stats: a pitcher with no recorded games. Every ERA/WHIP
	// rule must stay silent instead of reading zero as an elite arm.
	sentinel := roster.Pitcher{Name: "Callup", Hand: roster.Right}

	result, err := calculator.ScoreMatchups([]roster.Batter{batter}, &sentinel)
	require.NoError(t, err)

	// Only stat-independent rules fire: same-handed -15, elite batter
	// bonus +6, elite core bonus +2.
	assert.InDelta(t, BaseScore(batter)-7.0, result["Elite"], 1e-9)
}

func TestScoreMatchups_MissingPitcher(t *testing.T) {
	calculator := defaultCalculator(t)

	_, err := calculator.ScoreMatchups([]roster.Batter{{Name: "A", Hand: roster.Right}}, nil)
	var missing *MissingPitcherError
	require.ErrorAs(t, err, &missing)
}

func TestScoreMatchups_InvalidRecord(t *testing.T) {
	calculator := defaultCalculator(t)

	batters := []roster.Batter{
		{Name: "Fine", BA: 0.280, OBP: 0.350, SLG: 0.440, Hand: roster.Left},
		{Name: "Broken", BA: 1.4, OBP: 0.350, SLG: 0.440, Hand: roster.Left},
	}
	pitcher := roster.Pitcher{Name: "P", ERA: 3.50, WHIP: 1.20, KRate: 0.22, WalkRate: 0.08, Hand: roster.Right}

	_, err := calculator.ScoreMatchups(batters, &pitcher)
	var invalid *InvalidRecordError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Broken", invalid.Subject)
}

func TestScoreMatchups_EmptyBatters(t *testing.T) {
	calculator := defaultCalculator(t)
	pitcher := roster.Pitcher{Name: "P", ERA: 3.50, WHIP: 1.20, KRate: 0.22, WalkRate: 0.08, Hand: roster.Right}

	result, err := calculator.ScoreMatchups(nil, &pitcher)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestScoreMatchups_Deterministic(t *testing.T) {
	calculator := defaultCalculator(t)

	batters := []roster.Batter{
		{Name: "A", BA: 0.306, K: 132, OBP: 0.419, SLG: 0.582, HR: 40, RBI: 80, Hand: roster.Right},
		{Name: "B", BA: 0.354, K: 30, OBP: 0.393, SLG: 0.469, HR: 10, RBI: 69, Hand: roster.Left},
	}
	pitcher := roster.Pitcher{Name: "P", ERA: 4.20, WHIP: 1.33, KRate: 0.21, WalkRate: 0.11, Hand: roster.Left}

	first, err := calculator.ScoreMatchups(batters, &pitcher)
	require.NoError(t, err)
	second, err := calculator.ScoreMatchups(batters, &pitcher)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScoreBatterVsPitchers(t *testing.T) {
	calculator := defaultCalculator(t)

	batter := roster.Batter{
		Name: "Leadoff", BA: 0.280, K: 120, OBP: 0.380,
		SLG: 0.540, HR: 25, RBI: 70, Hand: roster.Left,
	}
	pitchers := []roster.Pitcher{
		{Name: "Ace", ERA: 2.20, WHIP: 0.90, KRate: 0.35, WalkRate: 0.05, Hand: roster.Left},
		{ERA: 4.50, WHIP: 1.40, KRate: 0.18, WalkRate: 0.12, Hand: roster.Right},
	}

	result, err := calculator.ScoreBatterVsPitchers(batter, pitchers)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Contains(t, result, "Ace")
	assert.Contains(t, result, "Pitcher 2", "nameless pitchers are keyed positionally")
	assert.Greater(t, result["Pitcher 2"], result["Ace"], "the soft tosser rates as the better matchup")
}

func TestScoreBatterVsPitchers_EmptyPitchers(t *testing.T) {
	calculator := defaultCalculator(t)

	batter := roster.Batter{Name: "A", BA: 0.280, OBP: 0.350, SLG: 0.440, Hand: roster.Left}
	_, err := calculator.ScoreBatterVsPitchers(batter, nil)
	var missing *MissingPitcherError
	require.ErrorAs(t, err, &missing)
}

func TestScoreBatterVsPitchers_InvalidPitcher(t *testing.T) {
	calculator := defaultCalculator(t)

	batter := roster.Batter{Name: "A", BA: 0.280, OBP: 0.350, SLG: 0.440, Hand: roster.Left}
	pitchers := []roster.Pitcher{{ERA: -2.0, Hand: roster.Right}}

	_, err := calculator.ScoreBatterVsPitchers(batter, pitchers)
	var invalid *InvalidRecordError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Pitcher 1", invalid.Subject)
}
