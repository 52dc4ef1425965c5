package roster

import "github.com/google/cel-go/cel"

// NewMatchupEnv declares the CEL environment for matchup rule conditions.
// Every variable corresponds to one entry of the fact map produced by
// MatchupFacts: batter stats first, then the pitcher context.
func NewMatchupEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		// --- Batter ---
		cel.Variable("name", cel.StringType),
		cel.Variable("ba", cel.DoubleType),
		cel.Variable("k", cel.IntType),
		cel.Variable("obp", cel.DoubleType),
		cel.Variable("slg", cel.DoubleType),
		cel.Variable("hr", cel.IntType),
		cel.Variable("rbi", cel.IntType),
		cel.Variable("hand", cel.StringType),

		// --- Pitcher context ---
		cel.Variable("era", cel.DoubleType),
		cel.Variable("whip", cel.DoubleType),
		cel.Variable("kRate", cel.DoubleType),
		cel.Variable("walkRate", cel.DoubleType),
		cel.Variable("pitcherHand", cel.StringType),
		cel.Variable("unknownPitcher", cel.BoolType),
	)
	if err != nil {
		return nil, err
	}
	return env, nil
}

// MatchupFacts flattens one batter-pitcher pair into the fact map the CEL
// rules evaluate against. Keys match the variables of NewMatchupEnv.
func MatchupFacts(b Batter, p Pitcher) map[string]any {
	return map[string]any{
		"name": b.Name,
		"ba":   b.BA,
		"k":    b.K,
		"obp":  b.OBP,
		"slg":  b.SLG,
		"hr":   b.HR,
		"rbi":  b.RBI,
		"hand": string(b.Hand),

		"era":            p.ERA,
		"whip":           p.WHIP,
		"kRate":          p.KRate,
		"walkRate":       p.WalkRate,
		"pitcherHand":    string(p.Hand),
		"unknownPitcher": p.Unknown(),
	}
}
