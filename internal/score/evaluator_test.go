package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dugout/internal/roster"
	"dugout/internal/score/rule"
)

func compileRules(t *testing.T, script string) []rule.Rule {
	t.Helper()
	rules, err := rule.Load([]byte(script), roster.NewMatchupEnv)
	require.NoError(t, err)
	return rules
}

func testPitcher() roster.Pitcher {
	return roster.Pitcher{
		Name: "Soft Tosser", ERA: 4.50, WHIP: 1.40,
		KRate: 0.18, WalkRate: 0.12, Hand: roster.Right,
	}
}

func TestEvaluator_UniversalFilteredApplication(t *testing.T) {
	rules := compileRules(t, `
- name: obp threshold
  kind: universal
  when: "obp > 0.350"
  then: 3
`)
	batters := []roster.Batter{
		{Name: "High", BA: 0.300, OBP: 0.400, SLG: 0.450, Hand: roster.Left},
		{Name: "Low", BA: 0.250, OBP: 0.300, SLG: 0.380, Hand: roster.Left},
	}

	adjustments := NewEvaluator(rules).Adjustments(batters, testPitcher())
	assert.Equal(t, 3.0, adjustments["High"], "qualifying batter receives the delta")
	assert.Zero(t, adjustments["Low"], "non-qualifying batter is untouched")
}

func TestEvaluator_ExistentialOneQualifier(t *testing.T) {
	rules := compileRules(t, `
- name: power surge unlock
  kind: existential
  when: "slg > 0.500 && era > 4.00"
  then: 4
`)
	batters := []roster.Batter{
		{Name: "Slugger", BA: 0.280, OBP: 0.360, SLG: 0.560, Hand: roster.Left},
		{Name: "Slap", BA: 0.310, OBP: 0.380, SLG: 0.410, Hand: roster.Right},
	}

	adjustments := NewEvaluator(rules).Adjustments(batters, testPitcher())
	assert.Equal(t, 4.0, adjustments["Slugger"], "the qualifying batter unlocks and receives the bonus")
	assert.Zero(t, adjustments["Slap"], "non-qualifying batters get nothing even when the gate is open")
}

func TestEvaluator_ExistentialZeroQualifiers(t *testing.T) {
	rules := compileRules(t, `
- name: power surge unlock
  kind: existential
  when: "slg > 0.500 && era > 4.00"
  then: 4
`)
	batters := []roster.Batter{
		{Name: "Slugger", BA: 0.280, OBP: 0.360, SLG: 0.560, Hand: roster.Left},
	}
	// ERA below the gate threshold: nobody qualifies, nobody is paid.
	pitcher := roster.Pitcher{Name: "Ace", ERA: 3.10, WHIP: 1.10, KRate: 0.25, WalkRate: 0.07, Hand: roster.Right}

	adjustments := NewEvaluator(rules).Adjustments(batters, pitcher)
	assert.Zero(t, adjustments["Slugger"])
}

func TestEvaluator_AdjustmentsSum(t *testing.T) {
	rules := compileRules(t, `
- name: opposite hand
  when: 'hand != "S" && hand != pitcherHand'
  then: 5
- name: obp walk advantage
  when: "obp > 0.350 && walkRate > 0.10"
  then: 8
- name: strikeout risk
  when: "kRate > 0.30 && k > 150"
  then: -8
`)
	batters := []roster.Batter{
		{Name: "Lefty", BA: 0.290, K: 110, OBP: 0.390, SLG: 0.470, Hand: roster.Left},
	}

	adjustments := NewEvaluator(rules).Adjustments(batters, testPitcher())
	assert.Equal(t, 13.0, adjustments["Lefty"], "matching rule deltas sum")
}

func TestEvaluator_EmptyCollection(t *testing.T) {
	rules := compileRules(t, `
- name: anything
  when: "obp > 0.0"
  then: 1
`)
	adjustments := NewEvaluator(rules).Adjustments(nil, testPitcher())
	assert.Empty(t, adjustments)
}

func TestEvaluator_OrderIndependence(t *testing.T) {
	rules, err := rule.Defaults(roster.NewMatchupEnv)
	require.NoError(t, err)

	batters := []roster.Batter{
		{Name: "A", BA: 0.306, K: 132, OBP: 0.419, SLG: 0.582, HR: 40, RBI: 80, Hand: roster.Right},
		{Name: "B", BA: 0.354, K: 30, OBP: 0.393, SLG: 0.469, HR: 10, RBI: 69, Hand: roster.Left},
		{Name: "C", BA: 0.220, K: 160, OBP: 0.280, SLG: 0.360, HR: 12, RBI: 40, Hand: roster.Left},
	}
	reversed := []roster.Batter{batters[2], batters[1], batters[0]}

	evaluator := NewEvaluator(rules)
	forward := evaluator.Adjustments(batters, testPitcher())
	backward := evaluator.Adjustments(reversed, testPitcher())
	assert.Equal(t, forward, backward, "adjustment sums do not depend on batter order")
}

func TestEvaluator_RuleCount(t *testing.T) {
	rules, err := rule.Defaults(roster.NewMatchupEnv)
	require.NoError(t, err)
	assert.Equal(t, len(rules), NewEvaluator(rules).RuleCount())
}
