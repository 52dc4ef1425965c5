package score

import (
	"math"

	"dugout/internal/roster"
)

// Cross-position prediction tables. All lookups are flat data, keyed by
// position or position pair, so the predictor stays testable in isolation
// from the branch rules. Values follow defensive-spectrum research and the
// per-position averages of the reference data set.

type positionPair [2]roster.Position

// positionSimilarity ranks how well performance at one position carries
// over to another. Symmetric except for the C↔1B direction, where moving
// out from behind the plate transfers better than moving in.
var positionSimilarity = map[positionPair]float64{
	// Outfield corners: nearly interchangeable.
	{roster.LeftField, roster.RightField}: 0.97,
	{roster.RightField, roster.LeftField}: 0.97,
	// Corner outfield to center: center demands more range.
	{roster.LeftField, roster.CenterField}:  0.82,
	{roster.CenterField, roster.LeftField}:  0.82,
	{roster.RightField, roster.CenterField}: 0.82,
	{roster.CenterField, roster.RightField}: 0.82,
	// Corner outfield and first base share corner demands.
	{roster.LeftField, roster.FirstBase}:  0.78,
	{roster.RightField, roster.FirstBase}: 0.78,
	{roster.FirstBase, roster.LeftField}:  0.78,
	{roster.FirstBase, roster.RightField}: 0.78,
	// Middle infield.
	{roster.Shortstop, roster.SecondBase}: 0.88,
	{roster.SecondBase, roster.Shortstop}: 0.88,
	// Left side of the infield.
	{roster.Shortstop, roster.ThirdBase}: 0.85,
	{roster.ThirdBase, roster.Shortstop}: 0.85,
	{roster.SecondBase, roster.ThirdBase}: 0.92,
	{roster.ThirdBase, roster.SecondBase}: 0.92,
	// Corner infield.
	{roster.ThirdBase, roster.FirstBase}: 0.72,
	{roster.FirstBase, roster.ThirdBase}: 0.72,
	// First base into the middle infield or center: big step up.
	{roster.FirstBase, roster.SecondBase}:  0.68,
	{roster.SecondBase, roster.FirstBase}:  0.68,
	{roster.FirstBase, roster.Shortstop}:   0.62,
	{roster.Shortstop, roster.FirstBase}:   0.62,
	{roster.FirstBase, roster.CenterField}: 0.58,
	{roster.CenterField, roster.FirstBase}: 0.58,
	// Catcher transitions: specialized position, weak carryover.
	{roster.Catcher, roster.FirstBase}:   0.52,
	{roster.FirstBase, roster.Catcher}:   0.48,
	{roster.Catcher, roster.LeftField}:   0.38,
	{roster.Catcher, roster.RightField}:  0.38,
	{roster.LeftField, roster.Catcher}:   0.35,
	{roster.RightField, roster.Catcher}:  0.35,
	{roster.Catcher, roster.CenterField}: 0.40,
	{roster.CenterField, roster.Catcher}: 0.38,
	// Middle infield to outfield: athleticism transfers, skills less so.
	{roster.SecondBase, roster.LeftField}:   0.45,
	{roster.LeftField, roster.SecondBase}:   0.45,
	{roster.SecondBase, roster.RightField}:  0.45,
	{roster.RightField, roster.SecondBase}:  0.45,
	{roster.SecondBase, roster.CenterField}: 0.42,
	{roster.CenterField, roster.SecondBase}: 0.42,
	{roster.Shortstop, roster.LeftField}:    0.43,
	{roster.LeftField, roster.Shortstop}:    0.43,
	{roster.Shortstop, roster.RightField}:   0.43,
	{roster.RightField, roster.Shortstop}:   0.43,
	{roster.Shortstop, roster.CenterField}:  0.40,
	{roster.CenterField, roster.Shortstop}:  0.40,
	// Third base to outfield.
	{roster.ThirdBase, roster.LeftField}:   0.48,
	{roster.LeftField, roster.ThirdBase}:   0.48,
	{roster.ThirdBase, roster.RightField}:  0.48,
	{roster.RightField, roster.ThirdBase}:  0.48,
	{roster.ThirdBase, roster.CenterField}: 0.45,
	{roster.CenterField, roster.ThirdBase}: 0.45,
	// Infield to catcher: minimum carryover.
	{roster.SecondBase, roster.Catcher}: 0.36,
	{roster.Catcher, roster.SecondBase}: 0.36,
	{roster.Shortstop, roster.Catcher}:  0.36,
	{roster.Catcher, roster.Shortstop}:  0.36,
	{roster.ThirdBase, roster.Catcher}:  0.37,
	{roster.Catcher, roster.ThirdBase}:  0.37,
}

// fieldingAdjustment shifts fielding percentage between positions, derived
// from per-position league averages (C .998 baseline down to 3B .981).
var fieldingAdjustment = map[roster.Position]float64{
	roster.Catcher:     0.0,
	roster.CenterField: -0.001,
	roster.FirstBase:   0.004,
	roster.SecondBase:  -0.004,
	roster.Shortstop:   -0.005,
	roster.RightField:  -0.008,
	roster.LeftField:   -0.011,
	roster.ThirdBase:   -0.017,
}

// errorRateMultiplier rescales error counts between positions, normalized
// to center field as the cleanest position.
var errorRateMultiplier = map[roster.Position]float64{
	roster.CenterField: 1.0,
	roster.Catcher:     1.17,
	roster.FirstBase:   1.34,
	roster.RightField:  3.37,
	roster.LeftField:   3.49,
	roster.SecondBase:  6.06,
	roster.Shortstop:   8.40,
	roster.ThirdBase:   30.40,
}

// predictedCaughtStealing is the default caught-stealing percentage when
// predicting into catcher from a non-catcher source (league average).
const predictedCaughtStealing = 0.22

// Predictor derives defensive facts for positions a player has not played
// by transferring stats from the most similar played position.
type Predictor struct{}

// NewPredictor creates a cross-position predictor.
func NewPredictor() *Predictor {
	return &Predictor{}
}

// BestSource returns the played position most similar to the target, with
// its similarity. ok is false when no played position can predict the
// target (empty source set or unknown pairs).
func (p *Predictor) BestSource(played []roster.Position, target roster.Position) (source roster.Position, similarity float64, ok bool) {
	for _, candidate := range played {
		if candidate == target {
			continue
		}
		s, known := positionSimilarity[positionPair{candidate, target}]
		if known && s > similarity {
			similarity = s
			source = candidate
			ok = true
		}
	}
	return source, similarity, ok
}

// PredictUnplayed builds predicted facts for every valid position the
// player has not appeared at. Targets without a similar played source are
// skipped.
func (p *Predictor) PredictUnplayed(player roster.Fielder, played map[roster.Position]DefensiveFact) map[roster.Position]DefensiveFact {
	predicted := make(map[roster.Position]DefensiveFact)
	for _, target := range roster.AllPositions {
		if player.Eligible(target) {
			continue
		}
		source, _, ok := p.BestSource(player.Positions, target)
		if !ok {
			continue
		}
		sourceFact, exists := played[source]
		if !exists {
			continue
		}
		predicted[target] = p.predictFact(sourceFact, target)
	}
	return predicted
}

// predictFact transfers a source-position fact onto the target position:
// fielding percentage moves by the difficulty adjustment delta, errors
// rescale by the error-rate ratio capped to total chances, and putouts
// absorb the remainder.
func (p *Predictor) predictFact(source DefensiveFact, target roster.Position) DefensiveFact {
	chances := source.Putouts + source.Errors
	if chances < 1 {
		chances = 1
	}

	fp := source.FieldingPct + fieldingAdjustment[target] - fieldingAdjustment[source.Position]
	fp = math.Max(0.0, math.Min(1.0, fp))

	ratio := errorRateMultiplier[target] / errorRateMultiplier[source.Position]
	errors := int(math.Round(float64(source.Errors) * ratio))
	if errors < 0 {
		errors = 0
	}
	if errors > chances {
		errors = chances
	}

	fact := DefensiveFact{
		Player:      source.Player,
		Position:    target,
		FieldingPct: fp,
		Errors:      errors,
		Putouts:     chances - errors,
	}
	if target == roster.Catcher {
		if source.Position == roster.Catcher {
			fact.PassedBalls = source.PassedBalls
			fact.CaughtStealingPct = source.CaughtStealingPct
		} else {
			fact.CaughtStealingPct = predictedCaughtStealing
		}
	}
	return fact
}
