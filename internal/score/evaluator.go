package score

import (
	"log/slog"

	"dugout/internal/roster"
	"dugout/internal/score/rule"
)

// Evaluator applies a tagged rule set over a batter collection within one
// pitcher context and produces the summed adjustment per batter.
//
// The evaluation is two-pass by construction: existential rules need a
// full scan of the collection to decide whether their bonus is unlocked
// before any batter can receive it. Universal rules are settled in the
// first pass. The result is a pure sum, so it does not depend on rule or
// batter order.
type Evaluator struct {
	// rules — the tagged rule set applied during evaluation.
	rules []rule.Rule
}

// NewEvaluator creates an evaluator over an already-compiled rule set.
func NewEvaluator(rules []rule.Rule) *Evaluator {
	return &Evaluator{rules: rules}
}

// RuleCount returns the number of rules in the set.
func (e *Evaluator) RuleCount() int {
	return len(e.rules)
}

// Adjustments evaluates every rule for every batter against the pitcher
// and returns the total adjustment keyed by batter name. An empty batter
// collection yields an empty map.
//
// Rule evaluation failures are logged via slog and the rule is skipped for
// that batter; a bad rule never aborts the run.
func (e *Evaluator) Adjustments(batters []roster.Batter, pitcher roster.Pitcher) map[string]float64 {
	adjustments := make(map[string]float64, len(batters))
	if len(batters) == 0 {
		return adjustments
	}

	facts := make([]map[string]any, len(batters))
	for i, batter := range batters {
		facts[i] = roster.MatchupFacts(batter, pitcher)
		adjustments[batter.Name] = 0
	}

	// Pass one: universal rules settle immediately; existential rules
	// record who matched and whether anyone did.
	type gate struct {
		rule    *rule.Rule
		matched []bool
		active  bool
	}
	var gates []gate

	for i := range e.rules {
		r := &e.rules[i]
		if r.Kind == rule.KindExistential {
			g := gate{rule: r, matched: make([]bool, len(batters))}
			for j := range batters {
				matched, err := r.Match(facts[j])
				if err != nil {
					slog.Error("rule eval", "error", err, "rule", r.Name, "batter", batters[j].Name)
					continue
				}
				g.matched[j] = matched
				g.active = g.active || matched
			}
			gates = append(gates, g)
			continue
		}

		for j, batter := range batters {
			matched, err := r.Match(facts[j])
			if err != nil {
				slog.Error("rule eval", "error", err, "rule", r.Name, "batter", batter.Name)
				continue
			}
			if matched {
				adjustments[batter.Name] += r.Then
			}
		}
	}

	// Pass two: hand out existential bonuses, but only for gates that at
	// least one batter unlocked.
	for _, g := range gates {
		if !g.active {
			continue
		}
		for j, batter := range batters {
			if g.matched[j] {
				adjustments[batter.Name] += g.rule.Then
			}
		}
	}

	return adjustments
}
