package score

import "dugout/internal/roster"

// Catcher branch weights: fielding percentage primary, passed balls as an
// inverse penalty, caught-stealing as the secondary positive.
const (
	catcherFieldingWeight = 0.4
	catcherPassedWeight   = 0.3
	catcherCaughtWeight   = 0.3
)

// General-position branch weights: fielding percentage primary, errors as
// an inverse penalty, putouts as a minor positive (high-putout players are
// trusted with more chances).
const (
	generalFieldingWeight = 0.5
	generalErrorWeight    = 0.3
	generalPutoutWeight   = 0.2
)

// DefensiveFact is one player-position evaluation subject: either taken
// straight from a played position or predicted for an unplayed one.
type DefensiveFact struct {
	Player            string
	Position          roster.Position
	FieldingPct       float64
	Errors            int
	Putouts           int
	PassedBalls       int
	CaughtStealingPct float64
}

// newDefensiveFact builds the evaluation subject for a played position.
// Catcher-only stats are carried only into the catcher fact; the general
// branch must never read them.
func newDefensiveFact(f roster.Fielder, pos roster.Position) DefensiveFact {
	fact := DefensiveFact{
		Player:      f.Name,
		Position:    pos,
		FieldingPct: f.FieldingPct,
		Errors:      f.Errors,
		Putouts:     f.Putouts,
	}
	if pos == roster.Catcher {
		fact.PassedBalls = f.PassedBalls
		fact.CaughtStealingPct = f.CaughtStealingPct
	}
	return fact
}

// KnowledgeBase holds the two mutually exclusive defensive branch rules.
// Position selects the branch; both produce a raw score in [0,1].
type KnowledgeBase struct{}

// NewKnowledgeBase creates the defensive knowledge base.
func NewKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{}
}

// Evaluate applies the branch rule for the fact's position and returns the
// raw score in [0,1]. Chances (putouts + errors) normalize the count stats;
// a player with zero chances contributes zero for those terms.
func (kb *KnowledgeBase) Evaluate(fact DefensiveFact) float64 {
	fp := fact.FieldingPct
	chances := fact.Putouts + fact.Errors

	if fact.Position == roster.Catcher {
		return kb.catcherRule(fp, fact.PassedBalls, fact.CaughtStealingPct, chances)
	}
	return kb.generalRule(fp, fact.Errors, fact.Putouts, chances)
}

func (kb *KnowledgeBase) catcherRule(fp float64, passedBalls int, caughtStealing float64, chances int) float64 {
	var normalizedPassed float64
	if chances > 0 {
		normalizedPassed = float64(passedBalls) / float64(chances)
	}
	return fp*catcherFieldingWeight +
		(1.0-normalizedPassed)*catcherPassedWeight +
		caughtStealing*catcherCaughtWeight
}

func (kb *KnowledgeBase) generalRule(fp float64, errors, putouts, chances int) float64 {
	var normalizedErrors, normalizedPutouts float64
	if chances > 0 {
		normalizedErrors = float64(errors) / float64(chances)
		normalizedPutouts = float64(putouts) / float64(chances)
	}
	return fp*generalFieldingWeight +
		(1.0-normalizedErrors)*generalErrorWeight +
		normalizedPutouts*generalPutoutWeight
}

// DefenseCalculator orchestrates one defensive analysis run: validate the
// records, build a fact per played position (plus predicted facts for
// unplayed positions when enabled), evaluate each through the knowledge
// base and normalize into [0,100].
type DefenseCalculator struct {
	kb        *KnowledgeBase
	predictor *Predictor
}

// NewDefenseCalculator creates a calculator over a knowledge base and its
// cross-position predictor.
func NewDefenseCalculator() *DefenseCalculator {
	kb := NewKnowledgeBase()
	return &DefenseCalculator{kb: kb, predictor: NewPredictor()}
}

// ScoreDefense scores every player at every eligible position, and — when
// predictAll is set — at every other position a similar played position
// can predict from. Results are keyed by player name, then position.
//
// Validation happens up front: a record with zero eligible positions is an
// EmptyPositionSetError and any other invariant violation is an
// InvalidRecordError; no player is scored if any record is malformed. An
// empty player collection yields an empty map.
func (c *DefenseCalculator) ScoreDefense(players []roster.Fielder, predictAll bool) (Defense, error) {
	for i := range players {
		if len(players[i].Positions) == 0 {
			return nil, NewEmptyPositionSetError(players[i].Name)
		}
		if err := players[i].Validate(); err != nil {
			return nil, NewInvalidRecordError(players[i].Name, err)
		}
	}

	results := make(Defense, len(players))
	for i := range players {
		player := players[i]
		facts := make(map[roster.Position]DefensiveFact, len(player.Positions))
		for _, pos := range player.Positions {
			facts[pos] = newDefensiveFact(player, pos)
		}

		if predictAll {
			for pos, fact := range c.predictor.PredictUnplayed(player, facts) {
				facts[pos] = fact
			}
		}

		scores := make(map[roster.Position]float64, len(facts))
		for pos, fact := range facts {
			raw := c.kb.Evaluate(fact)
			scores[pos] = clamp(raw * MaxScore)
		}
		results[player.Name] = scores
	}
	return results, nil
}
