package score

import (
	"fmt"

	"dugout/internal/roster"
)

// Base score weighting. OBP carries the most weight; the weighted sum of
// rate stats is already in [0,1] and scales directly to the 0-100 range.
const (
	baWeight  = 0.30
	obpWeight = 0.40
	slgWeight = 0.30
)

// MatchupCalculator orchestrates one matchup analysis run: validate the
// records, derive a base score per batter, aggregate rule adjustments
// through the evaluator, and normalize into [0,100]. A run is a pure
// function of its input records.
type MatchupCalculator struct {
	// evaluator — the quantifier evaluator holding the compiled rule set.
	evaluator *Evaluator
}

// NewMatchupCalculator creates a calculator over an evaluator.
func NewMatchupCalculator(evaluator *Evaluator) *MatchupCalculator {
	return &MatchupCalculator{evaluator: evaluator}
}

// BaseScore derives the pre-adjustment score from a batter's rate stats:
// 30% BA, 40% OBP, 30% SLG, scaled to 0-100.
func BaseScore(b roster.Batter) float64 {
	weighted := b.BA*baWeight + b.OBP*obpWeight + b.SLG*slgWeight
	return clamp(weighted * MaxScore)
}

// ScoreMatchups scores every batter against the pitcher and returns the
// result keyed by batter name.
//
// Validation happens up front: a nil pitcher is a MissingPitcherError and
// any record violating its invariants is an InvalidRecordError — in both
// cases no batter is scored. An empty batter collection is not an error
// and yields an empty map.
func (c *MatchupCalculator) ScoreMatchups(batters []roster.Batter, pitcher *roster.Pitcher) (Matchups, error) {
	if pitcher == nil {
		return nil, NewMissingPitcherError()
	}
	if err := pitcher.Validate(); err != nil {
		return nil, NewInvalidRecordError(pitcherKey(*pitcher, 0), err)
	}
	for i := range batters {
		if err := batters[i].Validate(); err != nil {
			return nil, NewInvalidRecordError(batters[i].Name, err)
		}
	}

	results := make(Matchups, len(batters))
	if len(batters) == 0 {
		return results, nil
	}

	adjustments := c.evaluator.Adjustments(batters, *pitcher)
	for i := range batters {
		results[batters[i].Name] = clamp(BaseScore(batters[i]) + adjustments[batters[i].Name])
	}
	return results, nil
}

// ScoreBatterVsPitchers scores one batter against each pitcher in turn and
// returns the result keyed by pitcher name. Nameless pitchers are keyed
// "Pitcher 1", "Pitcher 2", ... in input order.
//
// Each pitcher forms its own single-batter collection, so quantified rules
// degrade to their per-batter reading.
func (c *MatchupCalculator) ScoreBatterVsPitchers(batter roster.Batter, pitchers []roster.Pitcher) (Matchups, error) {
	if len(pitchers) == 0 {
		return nil, NewMissingPitcherError()
	}
	if err := batter.Validate(); err != nil {
		return nil, NewInvalidRecordError(batter.Name, err)
	}
	for i := range pitchers {
		if err := pitchers[i].Validate(); err != nil {
			return nil, NewInvalidRecordError(pitcherKey(pitchers[i], i), err)
		}
	}

	base := BaseScore(batter)
	lineup := []roster.Batter{batter}

	results := make(Matchups, len(pitchers))
	for i := range pitchers {
		adjustments := c.evaluator.Adjustments(lineup, pitchers[i])
		results[pitcherKey(pitchers[i], i)] = clamp(base + adjustments[batter.Name])
	}
	return results, nil
}

// pitcherKey returns the pitcher's name, or a positional placeholder for
// nameless records.
func pitcherKey(p roster.Pitcher, index int) string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("Pitcher %d", index+1)
}
